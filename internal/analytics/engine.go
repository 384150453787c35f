package analytics

import (
	"sort"

	"github.com/SlpAus/frc-scouting-backend/internal/field"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
)

// FieldSource 是统计引擎对字段目录的只读依赖
type FieldSource interface {
	// EnabledFields 返回指定scope下启用的字段，按(order, id)升序
	EnabledFields(scope field.Scope) ([]field.ScoringField, error)
}

// RecordSource 是统计引擎对记录存储的只读依赖
type RecordSource interface {
	ListTeams() ([]record.TeamEntry, error)
	ListTeamsByNumbers(teamNumbers []int) ([]record.TeamEntry, error)
	ListMatchesByTeam(teamNumber int) ([]record.MatchEntry, error)
}

// Result 是单个队伍的统计结果。
// JSON字段名是对外契约的一部分，序列化形态必须保持不变。
type Result struct {
	TeamNumber int `json:"teamNumber"`
	// TeamAverages 把每个启用的队伍字段key映射为数值或null
	TeamAverages map[string]*float64 `json:"teamAverages"`
	// MatchAverages 把每个启用的比赛字段key映射为该队所有比赛的算术平均或null
	MatchAverages map[string]*float64 `json:"matchAverages"`
	// MatchCount 是该队的比赛记录总数，与各字段是否有值无关
	MatchCount int `json:"matchCount"`
}

// Engine 是无状态的统计引擎。
// 每次Aggregate都是一次独立的只读计算：重新拉取字段定义和记录，
// 不持有任何跨调用缓存，也从不写回存储。
type Engine struct {
	fields  FieldSource
	records RecordSource
}

// NewEngine 构造统计引擎
func NewEngine(fields FieldSource, records RecordSource) *Engine {
	return &Engine{fields: fields, records: records}
}

// Aggregate 计算一组队伍的统计结果。
//
// teamNumbers为空时覆盖存储中的全部队伍；非正的编号会被静默过滤，
// 保持引擎对调用方噪声的容忍。单个值的换算失败只影响该字段该队的
// 平均值，存储读取失败则整体上抛，不产生部分结果。
// 输出按队伍编号升序，对固定的存储快照是确定性的。
func (e *Engine) Aggregate(teamNumbers []int) ([]Result, error) {
	teamFields, err := e.fields.EnabledFields(field.ScopeTeam)
	if err != nil {
		return nil, err
	}
	matchFields, err := e.fields.EnabledFields(field.ScopeMatch)
	if err != nil {
		return nil, err
	}

	teams, err := e.fetchTeams(teamNumbers)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(teams))
	for _, t := range teams {
		matches, err := e.records.ListMatchesByTeam(t.TeamNumber)
		if err != nil {
			return nil, err
		}

		teamAverages := make(map[string]*float64, len(teamFields))
		for _, f := range teamFields {
			teamAverages[f.Key] = Coerce(f.InputType, f.ScoringRule, t.Values[f.Key])
		}

		matchAverages := make(map[string]*float64, len(matchFields))
		for _, f := range matchFields {
			matchAverages[f.Key] = averageOverMatches(f, matches)
		}

		results = append(results, Result{
			TeamNumber:    t.TeamNumber,
			TeamAverages:  teamAverages,
			MatchAverages: matchAverages,
			MatchCount:    len(matches),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].TeamNumber < results[j].TeamNumber
	})
	return results, nil
}

// fetchTeams 解析请求的队伍集合。
// 未提供集合表示全部队伍；提供了集合但过滤后为空时返回空结果，
// 而不是悄悄退化为全部队伍。
func (e *Engine) fetchTeams(teamNumbers []int) ([]record.TeamEntry, error) {
	if len(teamNumbers) == 0 {
		return e.records.ListTeams()
	}

	valid := make([]int, 0, len(teamNumbers))
	for _, n := range teamNumbers {
		if n > 0 {
			valid = append(valid, n)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}
	return e.records.ListTeamsByNumbers(valid)
}

// averageOverMatches 计算一个比赛字段在该队所有比赛上的算术平均。
// 只有换算成功的值计入分子分母；没有任何可用值时返回nil。
func averageOverMatches(f field.ScoringField, matches []record.MatchEntry) *float64 {
	var sum float64
	var count int
	for _, m := range matches {
		if n := Coerce(f.InputType, f.ScoringRule, m.Values[f.Key]); n != nil {
			sum += *n
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}
