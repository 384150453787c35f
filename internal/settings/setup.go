package settings

import (
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
)

// PrimeDB 负责初始化settings模块的数据库表结构
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Settings{}); err != nil {
		return fmt.Errorf("无法迁移settings表: %w", err)
	}
	fmt.Println("Settings数据库表迁移成功。")
	return nil
}
