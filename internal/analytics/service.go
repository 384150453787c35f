package analytics

import (
	"github.com/SlpAus/frc-scouting-backend/internal/field"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
)

// registryFieldSource 把field模块的只读接口适配为引擎的FieldSource
type registryFieldSource struct{}

func (registryFieldSource) EnabledFields(scope field.Scope) ([]field.ScoringField, error) {
	return field.ListEnabledFields(scope)
}

// storeRecordSource 把record模块的只读接口适配为引擎的RecordSource
type storeRecordSource struct{}

func (storeRecordSource) ListTeams() ([]record.TeamEntry, error) {
	return record.ListTeams()
}

func (storeRecordSource) ListTeamsByNumbers(teamNumbers []int) ([]record.TeamEntry, error) {
	return record.ListTeamsByNumbers(teamNumbers)
}

func (storeRecordSource) ListMatchesByTeam(teamNumber int) ([]record.MatchEntry, error) {
	return record.ListMatchesByTeam(teamNumber)
}

// defaultEngine 是绑定在真实存储上的全局引擎实例。
// 引擎本身无状态，单例只是省去每次请求的构造。
var defaultEngine = NewEngine(registryFieldSource{}, storeRecordSource{})

// AggregateTeams 用真实存储计算一组队伍的统计结果
func AggregateTeams(teamNumbers []int) ([]Result, error) {
	return defaultEngine.Aggregate(teamNumbers)
}
