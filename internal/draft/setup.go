package draft

import (
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
)

// PrimeModule 在应用启动时检查草稿队列的状态
func PrimeModule() error {
	n, err := countDrafts(database.Ctx)
	if err != nil {
		return fmt.Errorf("无法初始化草稿模块: %w", err)
	}
	if n > 0 {
		fmt.Printf("草稿队列中有 %d 条待冲刷的草稿。\n", n)
	} else {
		fmt.Println("草稿队列为空。")
	}
	return nil
}

// HandleRedisRecovery 在Redis从不健康状态恢复后重新盘点队列。
// Redis重启会清空未持久化的草稿，这里只负责如实汇报现状。
func HandleRedisRecovery() {
	n, err := countDrafts(database.Ctx)
	if err != nil {
		fmt.Printf("警告: Redis恢复后无法盘点草稿队列: %v\n", err)
		return
	}
	fmt.Printf("Redis已恢复，草稿队列中现存 %d 条草稿。\n", n)
}
