package analytics

import (
	"math"
	"testing"

	"github.com/SlpAus/frc-scouting-backend/internal/field"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceNumber(t *testing.T) {
	rule := field.NumberRule()

	t.Run("数值直接通过", func(t *testing.T) {
		got := Coerce(field.InputNumber, rule, record.NumberValue(12.5))
		require.NotNil(t, got)
		assert.Equal(t, 12.5, *got)
	})

	t.Run("数字字符串会被解析", func(t *testing.T) {
		got := Coerce(field.InputNumber, rule, record.TextValue("12.5"))
		require.NotNil(t, got)
		assert.Equal(t, 12.5, *got)
	})

	t.Run("带空白的数字字符串也能解析", func(t *testing.T) {
		got := Coerce(field.InputNumber, rule, record.TextValue("  42 "))
		require.NotNil(t, got)
		assert.Equal(t, 42.0, *got)
	})

	t.Run("无法解析的字符串得到nil", func(t *testing.T) {
		assert.Nil(t, Coerce(field.InputNumber, rule, record.TextValue("abc")))
	})

	t.Run("空值得到nil", func(t *testing.T) {
		assert.Nil(t, Coerce(field.InputNumber, rule, record.NullValue()))
	})

	t.Run("非有限数得到nil", func(t *testing.T) {
		assert.Nil(t, Coerce(field.InputNumber, rule, record.NumberValue(math.NaN())))
		assert.Nil(t, Coerce(field.InputNumber, rule, record.NumberValue(math.Inf(1))))
		assert.Nil(t, Coerce(field.InputNumber, rule, record.TextValue("Inf")))
	})
}

func TestCoerceGrade(t *testing.T) {
	rule := field.GradeRule(map[string]float64{
		"S": 5, "A": 4, "B": 3, "C": 2, "D": 1, "E": 0, "F": 0,
	})

	t.Run("等级按权重表换算", func(t *testing.T) {
		got := Coerce(field.InputGrade, rule, record.TextValue("B"))
		require.NotNil(t, got)
		assert.Equal(t, 3.0, *got)
	})

	t.Run("等级字母不区分大小写", func(t *testing.T) {
		got := Coerce(field.InputGrade, rule, record.TextValue("b"))
		require.NotNil(t, got)
		assert.Equal(t, 3.0, *got)
	})

	t.Run("无法识别的字母得到nil", func(t *testing.T) {
		assert.Nil(t, Coerce(field.InputGrade, rule, record.TextValue("Z")))
	})

	t.Run("数值形态的等级得到nil", func(t *testing.T) {
		assert.Nil(t, Coerce(field.InputGrade, rule, record.NumberValue(3)))
	})

	t.Run("规则未带权重时回退到缺省换算表", func(t *testing.T) {
		got := Coerce(field.InputGrade, field.GradeRule(nil), record.TextValue("S"))
		require.NotNil(t, got)
		assert.Equal(t, field.DefaultGradeWeights["S"], *got)
	})

	t.Run("自定义权重优先于缺省表", func(t *testing.T) {
		custom := field.GradeRule(map[string]float64{"S": 10})
		got := Coerce(field.InputGrade, custom, record.TextValue("S"))
		require.NotNil(t, got)
		assert.Equal(t, 10.0, *got)

		// 自定义表里没有的字母不回退，直接得到nil
		assert.Nil(t, Coerce(field.InputGrade, custom, record.TextValue("A")))
	})
}

func TestCoerceText(t *testing.T) {
	rule := field.TextRule()

	t.Run("文本字段永远得到nil", func(t *testing.T) {
		assert.Nil(t, Coerce(field.InputText, rule, record.TextValue("Swerve")))
		assert.Nil(t, Coerce(field.InputText, rule, record.NumberValue(42)))
		assert.Nil(t, Coerce(field.InputText, rule, record.NullValue()))
	})
}
