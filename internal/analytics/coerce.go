package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/SlpAus/frc-scouting-backend/internal/field"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
)

// Coerce 把一个已存储的记录值换算为可平均的数值，无法换算时返回nil。
// 这是一个全函数：任何畸形输入都得到nil，绝不panic。
//
// 换算策略由字段的录入类型决定：
//   - number: 数值直接通过，文本尝试解析，解析失败或结果非有限数得到nil
//   - grade:  文本按等级字母查权重表，规则未带权重时回退到缺省换算表
//   - text:   永远是nil，文本字段不参与统计
func Coerce(inputType field.InputType, rule field.ScoringRule, v record.Value) *float64 {
	if v.IsNull() {
		return nil
	}

	switch inputType {
	case field.InputNumber:
		return coerceNumber(v)
	case field.InputGrade:
		return coerceGrade(rule, v)
	default:
		return nil
	}
}

// coerceNumber 处理number类型的值
func coerceNumber(v record.Value) *float64 {
	switch v.Kind {
	case record.KindNumber:
		return finiteOrNil(v.Number)
	case record.KindText:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return nil
		}
		return finiteOrNil(n)
	default:
		return nil
	}
}

// coerceGrade 处理grade类型的值。
// 等级字母不区分大小写；权重表里查不到的字母一律得到nil。
func coerceGrade(rule field.ScoringRule, v record.Value) *float64 {
	if v.Kind != record.KindText {
		return nil
	}

	grade := strings.ToUpper(strings.TrimSpace(v.Text))

	weights := rule.Weights
	if len(weights) == 0 {
		weights = field.DefaultGradeWeights
	}

	score, ok := weights[grade]
	if !ok {
		return nil
	}
	return finiteOrNil(score)
}

// finiteOrNil 过滤NaN与无穷，保证进入平均值的都是有限数
func finiteOrNil(n float64) *float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}
