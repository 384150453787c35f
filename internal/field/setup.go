package field

import (
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
)

// PrimeDB 负责初始化field模块的数据库表结构和种子数据
func PrimeDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := seedIfEmpty(); err != nil {
		return err
	}
	return nil
}

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&ScoringField{}); err != nil {
		return fmt.Errorf("无法迁移scoring_fields表: %w", err)
	}
	fmt.Println("ScoringField数据库表迁移成功。")
	return nil
}

// seedIfEmpty 在字段表为空时写入一套默认的侦察字段。
// 等级字段的权重直接引用DefaultGradeWeights，保证与兜底换算一致。
func seedIfEmpty() error {
	var count int64
	if err := database.DB.Model(&ScoringField{}).Count(&count).Error; err != nil {
		return fmt.Errorf("无法统计字段数量: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []ScoringField{
		{
			Scope:       ScopeTeam,
			Key:         "drive_train",
			Label:       "底盤/驅動類型",
			InputType:   InputText,
			Enabled:     1,
			Order:       1,
			ScoringRule: TextRule(),
		},
		{
			Scope:       ScopeTeam,
			Key:         "team_notes",
			Label:       "隊伍備註",
			InputType:   InputText,
			Enabled:     1,
			Order:       2,
			ScoringRule: TextRule(),
		},
		{
			Scope:       ScopeMatch,
			Key:         "auto_score",
			Label:       "自動期得分",
			InputType:   InputNumber,
			Enabled:     1,
			Order:       1,
			ScoringRule: NumberRule(),
		},
		{
			Scope:       ScopeMatch,
			Key:         "teleop_score",
			Label:       "手動期得分",
			InputType:   InputNumber,
			Enabled:     1,
			Order:       2,
			ScoringRule: NumberRule(),
		},
		{
			Scope:       ScopeMatch,
			Key:         "defense_grade",
			Label:       "防守評分 (S~F)",
			InputType:   InputGrade,
			Enabled:     1,
			Order:       3,
			ScoringRule: GradeRule(DefaultGradeWeights),
		},
	}

	if err := database.DB.Create(&seeds).Error; err != nil {
		return fmt.Errorf("无法写入字段种子数据: %w", err)
	}
	fmt.Printf("已写入 %d 个默认侦察字段。\n", len(seeds))
	return nil
}
