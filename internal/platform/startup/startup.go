package startup

import (
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/draft"
	"github.com/SlpAus/frc-scouting-backend/internal/field"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
	"github.com/SlpAus/frc-scouting-backend/internal/settings"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := settings.PrimeDB(); err != nil {
		return err
	}
	if err := field.PrimeDB(); err != nil {
		return err
	}
	if err := record.PrimeDB(); err != nil {
		return err
	}
	if err := draft.PrimeModule(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
