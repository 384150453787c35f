package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

// saveDraft 把草稿写入Redis。
// Hash覆盖写加上Sorted Set重新计分，天然实现按ID的最后写入胜出。
func saveDraft(ctx context.Context, d *Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("无法序列化草稿 %s: %w", d.ID, err)
	}

	pipe := database.RDB.Pipeline()
	pipe.HSet(ctx, DataKey, d.ID, data)
	pipe.ZAdd(ctx, QueueKey, redis.Z{Score: float64(d.SavedAt), Member: d.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("无法写入草稿 %s 到Redis: %w", d.ID, err)
	}
	return nil
}

// listDrafts 按保存时间升序返回队列中的全部草稿
func listDrafts(ctx context.Context) ([]Draft, error) {
	ids, err := database.RDB.ZRange(ctx, QueueKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("无法从Redis读取草稿队列: %w", err)
	}
	if len(ids) == 0 {
		return []Draft{}, nil
	}

	rows, err := database.RDB.HMGet(ctx, DataKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("无法从Redis批量读取草稿: %w", err)
	}

	drafts := make([]Draft, 0, len(rows))
	for _, row := range rows {
		raw, ok := row.(string)
		if !ok {
			// 队列里有ID但Hash里没有数据，跳过这种半删除状态
			continue
		}
		var d Draft
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			continue
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// deleteDraft 从Redis中移除一条草稿，返回是否确有删除
func deleteDraft(ctx context.Context, id string) (bool, error) {
	pipe := database.RDB.Pipeline()
	delCmd := pipe.HDel(ctx, DataKey, id)
	pipe.ZRem(ctx, QueueKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("无法从Redis删除草稿 %s: %w", id, err)
	}
	return delCmd.Val() > 0, nil
}

// countDrafts 返回当前排队的草稿数量
func countDrafts(ctx context.Context) (int64, error) {
	n, err := database.RDB.ZCard(ctx, QueueKey).Result()
	if err != nil {
		return 0, fmt.Errorf("无法统计草稿数量: %w", err)
	}
	return n, nil
}
