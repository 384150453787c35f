package sheets

import (
	"fmt"
	"time"

	"github.com/SlpAus/frc-scouting-backend/internal/field"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
)

// Snapshot 是一次完整的数据快照，也是与Apps Script交换的线上格式。
// 导出时整包发往试算表，导入时整包取回再落库。
type Snapshot struct {
	Fields     []field.ScoringField `json:"fields"`
	Teams      []record.TeamEntry   `json:"teams"`
	Matches    []record.MatchEntry  `json:"matches"`
	ExportedAt time.Time            `json:"exportedAt"`
}

// BuildSnapshot 从主存储组装一份当前数据的快照
func BuildSnapshot() (*Snapshot, error) {
	fields, err := field.ListFields(nil)
	if err != nil {
		return nil, err
	}
	teams, err := record.ListTeams()
	if err != nil {
		return nil, err
	}
	matches, err := record.ListAllMatches()
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Fields:     fields,
		Teams:      teams,
		Matches:    matches,
		ExportedAt: time.Now().UTC(),
	}, nil
}

// ApplySnapshot 把快照按自然键做最后写入胜出的upsert落库：
// 字段按(scope, key)，队伍按编号，比赛按(队伍, 场次)。
// 不做删除：快照里没有的本地数据保持原样。
func ApplySnapshot(snap *Snapshot) error {
	existingFields, err := field.ListFields(nil)
	if err != nil {
		return err
	}
	byScopeKey := make(map[string]field.ScoringField, len(existingFields))
	for _, f := range existingFields {
		byScopeKey[fieldKey(f.Scope, f.Key)] = f
	}

	for _, f := range snap.Fields {
		f := f
		if existing, ok := byScopeKey[fieldKey(f.Scope, f.Key)]; ok {
			_, err = field.UpdateField(existing.ID, field.UpdateFieldInput{
				Label:       &f.Label,
				InputType:   &f.InputType,
				Enabled:     &f.Enabled,
				Order:       &f.Order,
				ScoringRule: &f.ScoringRule,
			})
		} else {
			_, err = field.CreateField(field.CreateFieldInput{
				Scope:       f.Scope,
				Key:         f.Key,
				Label:       f.Label,
				InputType:   f.InputType,
				Enabled:     &f.Enabled,
				Order:       &f.Order,
				ScoringRule: &f.ScoringRule,
			})
		}
		if err != nil {
			return fmt.Errorf("无法落库快照字段 %s/%s: %w", f.Scope, f.Key, err)
		}
	}

	for _, t := range snap.Teams {
		if t.TeamNumber <= 0 {
			continue
		}
		values := t.Values
		if _, err := record.UpsertTeam(t.TeamNumber, &values); err != nil {
			return fmt.Errorf("无法落库快照队伍 %d: %w", t.TeamNumber, err)
		}
	}

	for _, m := range snap.Matches {
		if m.TeamNumber <= 0 || m.MatchNumber <= 0 {
			continue
		}
		values := m.Values
		if _, err := record.UpsertMatch(m.TeamNumber, m.MatchNumber, &values); err != nil {
			return fmt.Errorf("无法落库快照比赛 (%d, %d): %w", m.TeamNumber, m.MatchNumber, err)
		}
	}

	return nil
}

// fieldKey 组合(scope, key)为映射键
func fieldKey(scope field.Scope, key string) string {
	return string(scope) + "/" + key
}
