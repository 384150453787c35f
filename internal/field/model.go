package field

// Scope 表示一个字段适用的实体类型
type Scope string

const (
	// ScopeTeam 表示字段作用于队伍档案
	ScopeTeam Scope = "team"
	// ScopeMatch 表示字段作用于单场比赛记录
	ScopeMatch Scope = "match"
)

// IsValid 检查scope是否为已知取值
func (s Scope) IsValid() bool {
	return s == ScopeTeam || s == ScopeMatch
}

// InputType 表示字段在表单中的录入类型
type InputType string

const (
	// InputGrade 是S~F的等级评分
	InputGrade InputType = "grade"
	// InputNumber 是数值输入
	InputNumber InputType = "number"
	// InputText 是自由文本，永远不参与统计
	InputText InputType = "text"
)

// IsValid 检查inputType是否为已知取值
func (t InputType) IsValid() bool {
	return t == InputGrade || t == InputNumber || t == InputText
}

// ScoringField 定义了数据库中评分字段的数据结构
// 字段集合是数据驱动的：表单渲染和统计引擎都以这里的定义为准
type ScoringField struct {
	// ID 是字段的唯一整数标识，创建后不变
	ID uint `gorm:"primaryKey" json:"id"`

	// Scope 标记字段属于队伍档案还是比赛记录
	// 两个scope是互相独立的目录，key允许跨scope重名
	Scope Scope `gorm:"size:20;not null;uniqueIndex:idx_fields_scope_key" json:"scope"`

	// Key 是values映射中使用的寻址键，限定为[A-Za-z0-9_]{1,64}
	// 同一scope内必须唯一，由写入边界保证
	Key string `gorm:"size:64;not null;uniqueIndex:idx_fields_scope_key" json:"key"`

	// Label 是展示用的名称，写入时为空则回退为Key
	Label string `gorm:"not null" json:"label"`

	// InputType 决定了录入控件和数值转换策略
	InputType InputType `gorm:"size:20;not null" json:"inputType"`

	// Enabled 用0/1表示字段是否启用
	// 禁用的字段不出现在表单和统计中，但已存的值保留
	Enabled int `gorm:"not null;default:1" json:"enabled"`

	// Order 只用于决定展示和处理顺序，相同时按ID升序
	Order int `gorm:"column:sort_order;not null;default:0" json:"order"`

	// ScoringRule 是统计引擎使用的打分规则
	ScoringRule ScoringRule `gorm:"type:text" json:"scoringRule"`
}

// TableName 指定表名
func (ScoringField) TableName() string {
	return "scoring_fields"
}
