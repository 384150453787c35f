package field

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRule(t *testing.T) {
	t.Run("number模式", func(t *testing.T) {
		rule := DecodeRule([]byte(`{"mode":"number"}`))
		assert.Equal(t, RuleModeNumber, rule.Mode)
		assert.Empty(t, rule.Weights)
	})

	t.Run("grade模式携带权重", func(t *testing.T) {
		rule := DecodeRule([]byte(`{"mode":"grade","weights":{"S":5,"A":4}}`))
		assert.Equal(t, RuleModeGrade, rule.Mode)
		assert.Equal(t, 5.0, rule.Weights["S"])
		assert.Equal(t, 4.0, rule.Weights["A"])
	})

	t.Run("权重键会被归一化为大写", func(t *testing.T) {
		rule := DecodeRule([]byte(`{"mode":"grade","weights":{"s":5," a ":4}}`))
		assert.Equal(t, 5.0, rule.Weights["S"])
		assert.Equal(t, 4.0, rule.Weights["A"])
	})

	t.Run("未知mode退化为text", func(t *testing.T) {
		rule := DecodeRule([]byte(`{"mode":"percentile","cutoff":90}`))
		assert.Equal(t, RuleModeText, rule.Mode)
	})

	t.Run("缺失mode退化为text", func(t *testing.T) {
		rule := DecodeRule([]byte(`{}`))
		assert.Equal(t, RuleModeText, rule.Mode)
	})

	t.Run("非法JSON退化为text", func(t *testing.T) {
		rule := DecodeRule([]byte(`{not json`))
		assert.Equal(t, RuleModeText, rule.Mode)
	})

	t.Run("空输入退化为text", func(t *testing.T) {
		rule := DecodeRule(nil)
		assert.Equal(t, RuleModeText, rule.Mode)
	})
}

func TestScoringRuleJSON(t *testing.T) {
	t.Run("grade规则的线上形态", func(t *testing.T) {
		data, err := json.Marshal(GradeRule(map[string]float64{"S": 5}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"mode":"grade","weights":{"S":5}}`, string(data))
	})

	t.Run("number规则不携带weights", func(t *testing.T) {
		data, err := json.Marshal(NumberRule())
		require.NoError(t, err)
		assert.JSONEq(t, `{"mode":"number"}`, string(data))
	})

	t.Run("反序列化经过全函数解码", func(t *testing.T) {
		var rule ScoringRule
		require.NoError(t, json.Unmarshal([]byte(`{"mode":"bogus"}`), &rule))
		assert.Equal(t, RuleModeText, rule.Mode)
	})
}

func TestScoringRuleScan(t *testing.T) {
	t.Run("从文本列恢复", func(t *testing.T) {
		var rule ScoringRule
		require.NoError(t, rule.Scan(`{"mode":"grade","weights":{"S":5}}`))
		assert.Equal(t, RuleModeGrade, rule.Mode)
	})

	t.Run("损坏的存量数据退化为text", func(t *testing.T) {
		var rule ScoringRule
		require.NoError(t, rule.Scan("garbage"))
		assert.Equal(t, RuleModeText, rule.Mode)
	})

	t.Run("NULL列退化为text", func(t *testing.T) {
		var rule ScoringRule
		require.NoError(t, rule.Scan(nil))
		assert.Equal(t, RuleModeText, rule.Mode)
	})
}
