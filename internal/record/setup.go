package record

import (
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
)

// PrimeDB 负责初始化record模块的数据库表结构和演示数据
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
	if err := database.DB.AutoMigrate(&TeamEntry{}, &MatchEntry{}); err != nil {
		return fmt.Errorf("无法迁移记录表: %w", err)
	}
	fmt.Println("TeamEntry/MatchEntry数据库表迁移成功。")
	return nil
}

// seedIfEmpty 在队伍表为空时写入几支演示队伍和比赛，方便首次体验
func seedIfEmpty() error {
	teams, err := ListTeams()
	if err != nil {
		return err
	}
	if len(teams) > 0 {
		return nil
	}

	type teamSeed struct {
		number int
		values ValueMap
	}
	type matchSeed struct {
		team, match int
		values      ValueMap
	}

	teamSeeds := []teamSeed{
		{254, ValueMap{"drive_train": TextValue("Swerve"), "team_notes": TextValue("機構穩定、控球好")}},
		{971, ValueMap{"drive_train": TextValue("Swerve"), "team_notes": TextValue("自動期路線成熟")}},
		{1678, ValueMap{"drive_train": TextValue("West Coast"), "team_notes": TextValue("配合度高")}},
	}
	matchSeeds := []matchSeed{
		{254, 1, ValueMap{"auto_score": NumberValue(12), "teleop_score": NumberValue(25), "defense_grade": TextValue("B")}},
		{254, 2, ValueMap{"auto_score": NumberValue(15), "teleop_score": NumberValue(23), "defense_grade": TextValue("A")}},
		{971, 1, ValueMap{"auto_score": NumberValue(18), "teleop_score": NumberValue(20), "defense_grade": TextValue("A")}},
		{1678, 1, ValueMap{"auto_score": NumberValue(10), "teleop_score": NumberValue(28), "defense_grade": TextValue("C")}},
	}

	for _, s := range teamSeeds {
		values := s.values
		if _, err := UpsertTeam(s.number, &values); err != nil {
			return err
		}
	}
	for _, s := range matchSeeds {
		values := s.values
		if _, err := UpsertMatch(s.team, s.match, &values); err != nil {
			return err
		}
	}

	fmt.Printf("已写入 %d 支演示队伍和 %d 场演示比赛。\n", len(teamSeeds), len(matchSeeds))
	return nil
}
