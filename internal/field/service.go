package field

import (
	"errors"
	"regexp"
	"strings"
)

// keyPattern 限定字段key的合法形态，与客户端表单的寻址约定一致
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)

// 写入边界的业务错误，handler据此映射HTTP状态码
var (
	// ErrInvalidInput 表示请求内容未通过校验
	ErrInvalidInput = errors.New("字段内容不合法")
	// ErrDuplicateKey 表示(scope, key)组合已存在
	ErrDuplicateKey = errors.New("同一范围内的字段key已存在")
	// ErrFieldNotFound 表示目标字段不存在
	ErrFieldNotFound = errors.New("找不到此項目")
)

// CreateFieldInput 是创建字段的入参
type CreateFieldInput struct {
	Scope       Scope
	Key         string
	Label       string
	InputType   InputType
	Enabled     *int
	Order       *int
	ScoringRule *ScoringRule
}

// UpdateFieldInput 是按ID部分更新字段的入参，nil表示该项保持不变
type UpdateFieldInput struct {
	Scope       *Scope
	Key         *string
	Label       *string
	InputType   *InputType
	Enabled     *int
	Order       *int
	ScoringRule *ScoringRule
}

// defaultRuleFor 在调用方未提供规则时，按录入类型给出自然的缺省规则
func defaultRuleFor(t InputType) ScoringRule {
	switch t {
	case InputNumber:
		return NumberRule()
	case InputGrade:
		return GradeRule(nil)
	default:
		return TextRule()
	}
}

// normalizeEnabled 把任意整数折叠为0/1
func normalizeEnabled(v int) int {
	if v == 0 {
		return 0
	}
	return 1
}

// CreateField 校验并创建一个新字段。
// label为空时回退为key；(scope, key)的唯一性在这里强制。
func CreateField(input CreateFieldInput) (*ScoringField, error) {
	if !input.Scope.IsValid() || !input.InputType.IsValid() {
		return nil, ErrInvalidInput
	}
	if !keyPattern.MatchString(input.Key) {
		return nil, ErrInvalidInput
	}

	existing, err := findByScopeAndKey(input.Scope, input.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateKey
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		label = input.Key
	}

	f := ScoringField{
		Scope:     input.Scope,
		Key:       input.Key,
		Label:     label,
		InputType: input.InputType,
		Enabled:   1,
	}
	if input.Enabled != nil {
		f.Enabled = normalizeEnabled(*input.Enabled)
	}
	if input.Order != nil {
		f.Order = *input.Order
	}
	if input.ScoringRule != nil {
		f.ScoringRule = *input.ScoringRule
	} else {
		f.ScoringRule = defaultRuleFor(input.InputType)
	}

	if err := insertField(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateField 对已有字段做破坏性的部分覆盖更新
func UpdateField(id uint, input UpdateFieldInput) (*ScoringField, error) {
	f, err := GetFieldByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFieldNotFound
	}

	if input.Scope != nil {
		if !input.Scope.IsValid() {
			return nil, ErrInvalidInput
		}
		f.Scope = *input.Scope
	}
	if input.Key != nil {
		if !keyPattern.MatchString(*input.Key) {
			return nil, ErrInvalidInput
		}
		f.Key = *input.Key
	}

	// scope或key变化时重新检查唯一性
	if input.Scope != nil || input.Key != nil {
		existing, err := findByScopeAndKey(f.Scope, f.Key)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != f.ID {
			return nil, ErrDuplicateKey
		}
	}

	if input.Label != nil {
		label := strings.TrimSpace(*input.Label)
		if label == "" {
			label = f.Key
		}
		f.Label = label
	}
	if input.InputType != nil {
		if !input.InputType.IsValid() {
			return nil, ErrInvalidInput
		}
		f.InputType = *input.InputType
	}
	if input.Enabled != nil {
		f.Enabled = normalizeEnabled(*input.Enabled)
	}
	if input.Order != nil {
		f.Order = *input.Order
	}
	if input.ScoringRule != nil {
		f.ScoringRule = *input.ScoringRule
	}

	if err := saveField(f); err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteField 按ID删除字段，字段历史值保留在记录里不受影响
func DeleteField(id uint) error {
	ok, err := deleteFieldByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFieldNotFound
	}
	return nil
}
