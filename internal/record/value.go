package record

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ValueKind 是记录值的判别标签
type ValueKind int

const (
	// KindNull 表示没有可用的值
	KindNull ValueKind = iota
	// KindNumber 表示数值
	KindNumber
	// KindText 表示文本
	KindText
)

// Value 是记录值的封闭联合类型：数值、文本或空。
// 存量数据是开放的JSON，布尔、数组和对象等无法归类的形态
// 在解码时一律折叠为Null，交给统计引擎自然地按"无值"处理。
type Value struct {
	Kind   ValueKind
	Number float64
	Text   string
}

// NullValue 返回空值
func NullValue() Value {
	return Value{Kind: KindNull}
}

// NumberValue 返回一个数值
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// TextValue 返回一个文本值
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IsNull 判断是否为空值
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// UnmarshalJSON 实现了json.Unmarshaler。
// 解码是全函数：任何无法归入联合类型的形态都得到Null，永不报错。
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*v = NullValue()
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*v = NullValue()
			return nil
		}
		*v = TextValue(s)
	case 't', 'f', '[', '{':
		// 布尔与复合类型不在联合类型之内
		*v = NullValue()
	default:
		var n float64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			*v = NullValue()
			return nil
		}
		*v = NumberValue(n)
	}
	return nil
}

// MarshalJSON 实现了json.Marshaler，保持与解码对称的线上形态
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Number)
	case KindText:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

// ValueMap 是以字段key寻址的记录值映射
type ValueMap map[string]Value

// Value 实现了driver.Valuer，把整个映射序列化为JSON文本存库
func (m ValueMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("无法序列化记录值: %w", err)
	}
	return string(data), nil
}

// Scan 实现了sql.Scanner
func (m *ValueMap) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = ValueMap{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("无法从 %T 类型扫描记录值", value)
	}

	parsed := ValueMap{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// 损坏的存量数据退化为空映射，而不是让读取失败
		*m = ValueMap{}
		return nil
	}
	*m = parsed
	return nil
}
