package field

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// RuleMode 是打分规则的判别标签
type RuleMode string

const (
	// RuleModeNumber 表示值本身就是数值
	RuleModeNumber RuleMode = "number"
	// RuleModeText 表示值永远不参与统计
	RuleModeText RuleMode = "text"
	// RuleModeGrade 表示值是S~F等级，按权重表换算成数值
	RuleModeGrade RuleMode = "grade"
)

// ScoringRule 是打分规则的封闭联合类型。
// 线上存量数据中的规则是开放JSON对象，因此解码必须是全函数：
// 无法识别或格式损坏的规则一律退化为text模式（永不计入数值）。
type ScoringRule struct {
	Mode RuleMode `json:"mode"`
	// Weights 只在grade模式下有意义，键为大写等级字母
	Weights map[string]float64 `json:"weights,omitempty"`
}

// NumberRule 返回一个number模式的规则
func NumberRule() ScoringRule {
	return ScoringRule{Mode: RuleModeNumber}
}

// TextRule 返回一个text模式的规则
func TextRule() ScoringRule {
	return ScoringRule{Mode: RuleModeText}
}

// GradeRule 返回一个带指定权重表的grade模式规则
func GradeRule(weights map[string]float64) ScoringRule {
	return ScoringRule{Mode: RuleModeGrade, Weights: weights}
}

// DecodeRule 将任意JSON字节解码为ScoringRule，永不失败。
// 缺失mode、未知mode或非法JSON都会得到text模式。
func DecodeRule(raw []byte) ScoringRule {
	if len(raw) == 0 {
		return TextRule()
	}

	var aux struct {
		Mode    string             `json:"mode"`
		Weights map[string]float64 `json:"weights"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return TextRule()
	}

	switch RuleMode(aux.Mode) {
	case RuleModeNumber:
		return NumberRule()
	case RuleModeGrade:
		// 权重表键统一成大写，与等级字母的归一化保持一致
		weights := make(map[string]float64, len(aux.Weights))
		for k, v := range aux.Weights {
			weights[strings.ToUpper(strings.TrimSpace(k))] = v
		}
		return GradeRule(weights)
	default:
		return TextRule()
	}
}

// UnmarshalJSON 实现了json.Unmarshaler，复用全函数解码
func (r *ScoringRule) UnmarshalJSON(data []byte) error {
	*r = DecodeRule(data)
	return nil
}

// Value 实现了driver.Valuer，把规则序列化为JSON文本存库
func (r ScoringRule) Value() (driver.Value, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("无法序列化打分规则: %w", err)
	}
	return string(data), nil
}

// Scan 实现了sql.Scanner，损坏的存量数据同样退化为text模式
func (r *ScoringRule) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = TextRule()
	case []byte:
		*r = DecodeRule(v)
	case string:
		*r = DecodeRule([]byte(v))
	default:
		return fmt.Errorf("无法从 %T 类型扫描打分规则", value)
	}
	return nil
}
