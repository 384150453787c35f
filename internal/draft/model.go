package draft

import (
	"github.com/SlpAus/frc-scouting-backend/internal/record"
)

// Kind 区分草稿的目标实体
type Kind string

const (
	// KindTeam 表示草稿要写入队伍档案
	KindTeam Kind = "team"
	// KindMatch 表示草稿要写入比赛记录
	KindMatch Kind = "match"
)

// IsValid 检查kind是否为已知取值
func (k Kind) IsValid() bool {
	return k == KindTeam || k == KindMatch
}

// Draft 是一条排队等待写入主存储的离线草稿。
// 同一ID重复保存会整体覆盖旧内容：除"最后写入胜出"外没有任何合并逻辑。
type Draft struct {
	// ID 是草稿的唯一标识，客户端未提供时由服务端生成UUID
	ID string `json:"id"`

	Kind        Kind `json:"kind"`
	TeamNumber  int  `json:"teamNumber"`
	MatchNumber int  `json:"matchNumber,omitempty"`

	// Values 与正式记录的values语义一致
	Values record.ValueMap `json:"values"`

	// SavedAt 是草稿保存时刻的Unix毫秒时间戳，决定冲刷顺序
	SavedAt int64 `json:"savedAt"`
}

// --- Redis键定义 ---
// 草稿只存在于Redis中，落库成功后即删除

const (
	// DataKey 是一个Redis Hash：草稿ID -> 草稿JSON
	DataKey = "draft:data"
	// QueueKey 是一个Redis Sorted Set：按SavedAt排序的草稿ID队列
	QueueKey = "draft:queue"
)
