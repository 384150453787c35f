package record

// TeamEntry 定义了一个队伍的档案记录。
// TeamNumber 是调用方提供的外部唯一标识（正整数），不是内部主键。
type TeamEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// TeamNumber 是队伍编号，全表唯一
	TeamNumber int `gorm:"uniqueIndex;not null" json:"teamNumber"`

	// Values 是以字段key寻址的开放记录值映射
	Values ValueMap `gorm:"type:text" json:"values"`
}

// TableName 指定表名
func (TeamEntry) TableName() string {
	return "team_entries"
}

// MatchEntry 定义了一个队伍在一场比赛中的观察记录。
// 以(TeamNumber, MatchNumber)复合键唯一；同一队伍可以有很多场比赛。
type MatchEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TeamNumber  int `gorm:"not null;uniqueIndex:idx_matches_team_match" json:"teamNumber"`
	MatchNumber int `gorm:"not null;uniqueIndex:idx_matches_team_match" json:"matchNumber"`

	// Values 语义与TeamEntry.Values完全相同
	Values ValueMap `gorm:"type:text" json:"values"`
}

// TableName 指定表名
func (MatchEntry) TableName() string {
	return "match_entries"
}

// TeamFullRecord 是单个队伍的完整读取视图：档案加全部比赛
type TeamFullRecord struct {
	Team    *TeamEntry   `json:"team"`
	Matches []MatchEntry `json:"matches"`
}
