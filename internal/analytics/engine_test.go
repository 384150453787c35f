package analytics

import (
	"errors"
	"testing"

	"github.com/SlpAus/frc-scouting-backend/internal/field"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFieldSource 是字段目录的内存实现
type fakeFieldSource struct {
	fields []field.ScoringField
	err    error
}

func (f *fakeFieldSource) EnabledFields(scope field.Scope) ([]field.ScoringField, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []field.ScoringField
	for _, sf := range f.fields {
		if sf.Scope == scope && sf.Enabled == 1 {
			result = append(result, sf)
		}
	}
	return result, nil
}

// fakeRecordSource 是记录存储的内存实现
type fakeRecordSource struct {
	teams   []record.TeamEntry
	matches map[int][]record.MatchEntry
	err     error
}

func (f *fakeRecordSource) ListTeams() ([]record.TeamEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.teams, nil
}

func (f *fakeRecordSource) ListTeamsByNumbers(teamNumbers []int) ([]record.TeamEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int]bool, len(teamNumbers))
	for _, n := range teamNumbers {
		wanted[n] = true
	}
	var result []record.TeamEntry
	for _, t := range f.teams {
		if wanted[t.TeamNumber] {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeRecordSource) ListMatchesByTeam(teamNumber int) ([]record.MatchEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches[teamNumber], nil
}

// newScoutingFixture 构造一套贴近实际使用的字段和记录
func newScoutingFixture() (*fakeFieldSource, *fakeRecordSource) {
	fields := &fakeFieldSource{fields: []field.ScoringField{
		{ID: 1, Scope: field.ScopeTeam, Key: "drive_train", InputType: field.InputText, Enabled: 1, Order: 1, ScoringRule: field.TextRule()},
		{ID: 2, Scope: field.ScopeTeam, Key: "pit_rating", InputType: field.InputNumber, Enabled: 1, Order: 2, ScoringRule: field.NumberRule()},
		{ID: 3, Scope: field.ScopeMatch, Key: "auto_score", InputType: field.InputNumber, Enabled: 1, Order: 1, ScoringRule: field.NumberRule()},
		{ID: 4, Scope: field.ScopeMatch, Key: "defense_grade", InputType: field.InputGrade, Enabled: 1, Order: 3, ScoringRule: field.GradeRule(field.DefaultGradeWeights)},
	}}

	records := &fakeRecordSource{
		teams: []record.TeamEntry{
			{ID: 1, TeamNumber: 254, Values: record.ValueMap{
				"drive_train": record.TextValue("Swerve"),
				"pit_rating":  record.NumberValue(9),
			}},
			{ID: 2, TeamNumber: 971, Values: record.ValueMap{
				"drive_train": record.TextValue("West Coast"),
			}},
			{ID: 3, TeamNumber: 1678, Values: record.ValueMap{}},
		},
		matches: map[int][]record.MatchEntry{
			254: {
				{ID: 1, TeamNumber: 254, MatchNumber: 1, Values: record.ValueMap{
					"auto_score":    record.NumberValue(12),
					"defense_grade": record.TextValue("B"),
				}},
				{ID: 2, TeamNumber: 254, MatchNumber: 2, Values: record.ValueMap{
					"auto_score":    record.NumberValue(15),
					"defense_grade": record.TextValue("A"),
				}},
			},
			971: {
				{ID: 3, TeamNumber: 971, MatchNumber: 1, Values: record.ValueMap{
					"auto_score":    record.NumberValue(18),
					"defense_grade": record.TextValue("Z"),
				}},
			},
		},
	}
	return fields, records
}

func TestAggregateEndToEnd(t *testing.T) {
	fields, records := newScoutingFixture()
	engine := NewEngine(fields, records)

	results, err := engine.Aggregate([]int{254})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 254, r.TeamNumber)
	assert.Equal(t, 2, r.MatchCount)

	require.NotNil(t, r.MatchAverages["auto_score"])
	assert.Equal(t, 13.5, *r.MatchAverages["auto_score"])

	require.NotNil(t, r.MatchAverages["defense_grade"])
	assert.Equal(t, 3.5, *r.MatchAverages["defense_grade"])

	require.NotNil(t, r.TeamAverages["pit_rating"])
	assert.Equal(t, 9.0, *r.TeamAverages["pit_rating"])

	// 文本字段在结果里出现，但值永远是null
	val, ok := r.TeamAverages["drive_train"]
	assert.True(t, ok)
	assert.Nil(t, val)
}

func TestAggregateOrderingAndFiltering(t *testing.T) {
	fields, records := newScoutingFixture()
	engine := NewEngine(fields, records)

	t.Run("结果按队伍编号升序", func(t *testing.T) {
		results, err := engine.Aggregate([]int{971, 254})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, 254, results[0].TeamNumber)
		assert.Equal(t, 971, results[1].TeamNumber)
	})

	t.Run("未请求的队伍不会出现", func(t *testing.T) {
		results, err := engine.Aggregate([]int{254})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 254, results[0].TeamNumber)
	})

	t.Run("空集合覆盖全部队伍", func(t *testing.T) {
		results, err := engine.Aggregate(nil)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("非正的编号被静默过滤", func(t *testing.T) {
		results, err := engine.Aggregate([]int{-1, 0, 254})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 254, results[0].TeamNumber)
	})

	t.Run("只含非法编号时得到空结果", func(t *testing.T) {
		results, err := engine.Aggregate([]int{-5, 0})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestAggregateDeterminism(t *testing.T) {
	fields, records := newScoutingFixture()
	engine := NewEngine(fields, records)

	first, err := engine.Aggregate([]int{254, 971, 1678})
	require.NoError(t, err)
	second, err := engine.Aggregate([]int{254, 971, 1678})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregateEmptyMatches(t *testing.T) {
	fields, records := newScoutingFixture()
	engine := NewEngine(fields, records)

	// 1678没有任何比赛记录
	results, err := engine.Aggregate([]int{1678})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 0, r.MatchCount)
	for key, avg := range r.MatchAverages {
		assert.Nil(t, avg, "字段 %s 应该没有平均值", key)
	}
}

func TestAggregateUncoercibleValuesDegrade(t *testing.T) {
	fields, records := newScoutingFixture()
	engine := NewEngine(fields, records)

	// 971唯一一场比赛的防守评分是无法识别的"Z"
	results, err := engine.Aggregate([]int{971})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 1, r.MatchCount)
	assert.Nil(t, r.MatchAverages["defense_grade"])

	// 同一场比赛的其他字段不受影响
	require.NotNil(t, r.MatchAverages["auto_score"])
	assert.Equal(t, 18.0, *r.MatchAverages["auto_score"])
}

func TestAggregateDisabledFieldExclusion(t *testing.T) {
	fields, records := newScoutingFixture()
	fields.fields = append(fields.fields, field.ScoringField{
		ID: 5, Scope: field.ScopeMatch, Key: "secret_metric",
		InputType: field.InputNumber, Enabled: 0, Order: 4, ScoringRule: field.NumberRule(),
	})
	records.matches[254][0].Values["secret_metric"] = record.NumberValue(99)

	engine := NewEngine(fields, records)
	results, err := engine.Aggregate([]int{254})
	require.NoError(t, err)
	require.Len(t, results, 1)

	_, ok := results[0].MatchAverages["secret_metric"]
	assert.False(t, ok, "禁用字段的key不应出现在结果里")
}

func TestAggregateScopeIsolation(t *testing.T) {
	// 两个scope各有一个同名key "rating"，类型和取值完全不同
	fields := &fakeFieldSource{fields: []field.ScoringField{
		{ID: 1, Scope: field.ScopeTeam, Key: "rating", InputType: field.InputNumber, Enabled: 1, ScoringRule: field.NumberRule()},
		{ID: 2, Scope: field.ScopeMatch, Key: "rating", InputType: field.InputGrade, Enabled: 1, ScoringRule: field.GradeRule(field.DefaultGradeWeights)},
	}}
	records := &fakeRecordSource{
		teams: []record.TeamEntry{
			{ID: 1, TeamNumber: 100, Values: record.ValueMap{"rating": record.NumberValue(7)}},
		},
		matches: map[int][]record.MatchEntry{
			100: {
				{ID: 1, TeamNumber: 100, MatchNumber: 1, Values: record.ValueMap{"rating": record.TextValue("S")}},
			},
		},
	}

	engine := NewEngine(fields, records)
	results, err := engine.Aggregate([]int{100})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.NotNil(t, r.TeamAverages["rating"])
	assert.Equal(t, 7.0, *r.TeamAverages["rating"])

	require.NotNil(t, r.MatchAverages["rating"])
	assert.Equal(t, 5.0, *r.MatchAverages["rating"])
}

func TestAggregateStoreErrorPropagates(t *testing.T) {
	fields, records := newScoutingFixture()
	records.err = errors.New("connection refused")

	engine := NewEngine(fields, records)
	results, err := engine.Aggregate(nil)
	assert.Error(t, err)
	assert.Nil(t, results)
}
