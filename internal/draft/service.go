package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/metrics"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
	"github.com/google/uuid"
)

// ErrInvalidDraft 表示草稿内容未通过写入边界的校验
var ErrInvalidDraft = errors.New("草稿内容不合法")

// SaveDraft 校验并保存一条草稿。
// ID为空时生成UUID，SavedAt为零时取当前时间。返回保存后的草稿。
func SaveDraft(ctx context.Context, d Draft) (*Draft, error) {
	if !d.Kind.IsValid() || d.TeamNumber <= 0 {
		return nil, ErrInvalidDraft
	}
	if d.Kind == KindMatch && d.MatchNumber <= 0 {
		return nil, ErrInvalidDraft
	}

	if d.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("无法生成草稿ID: %w", err)
		}
		d.ID = id.String()
	}
	if d.SavedAt == 0 {
		d.SavedAt = time.Now().UnixMilli()
	}
	if d.Values == nil {
		d.Values = record.ValueMap{}
	}

	if err := saveDraft(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDrafts 返回按保存时间升序排列的全部草稿
func ListDrafts(ctx context.Context) ([]Draft, error) {
	return listDrafts(ctx)
}

// DeleteDraft 丢弃一条草稿
func DeleteDraft(ctx context.Context, id string) (bool, error) {
	return deleteDraft(ctx, id)
}

// FlushOnce 把队列中的草稿按保存顺序逐条写入主存储。
// 单条落库失败不会中断整轮冲刷，失败的草稿留在队列里等下一轮。
// 返回本轮成功落库的数量。
func FlushOnce(ctx context.Context) (int, error) {
	drafts, err := listDrafts(ctx)
	if err != nil {
		return 0, err
	}

	flushed := 0
	for _, d := range drafts {
		if err := applyDraft(d); err != nil {
			metrics.DraftFlushFailures.Inc()
			fmt.Printf("警告: 草稿 %s 落库失败: %v\n", d.ID, err)
			continue
		}
		if _, err := deleteDraft(ctx, d.ID); err != nil {
			// 落库成功但删除失败，下一轮会重放同一条草稿；
			// upsert语义保证重放是幂等的
			fmt.Printf("警告: 草稿 %s 已落库但未能出队: %v\n", d.ID, err)
			continue
		}
		metrics.DraftsFlushed.Inc()
		flushed++
	}
	return flushed, nil
}

// applyDraft 把单条草稿以upsert语义写入主存储
func applyDraft(d Draft) error {
	values := d.Values
	switch d.Kind {
	case KindTeam:
		_, err := record.UpsertTeam(d.TeamNumber, &values)
		return err
	case KindMatch:
		_, err := record.UpsertMatch(d.TeamNumber, d.MatchNumber, &values)
		return err
	default:
		return ErrInvalidDraft
	}
}
