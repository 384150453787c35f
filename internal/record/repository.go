package record

import (
	"errors"
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
	"gorm.io/gorm"
)

// ListTeams 返回按队伍编号升序排列的全部队伍档案
func ListTeams() ([]TeamEntry, error) {
	var teams []TeamEntry
	if err := database.DB.Order("team_number asc").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("无法读取队伍列表: %w", err)
	}
	return teams, nil
}

// ListTeamsByNumbers 返回编号在给定集合内的队伍档案
func ListTeamsByNumbers(teamNumbers []int) ([]TeamEntry, error) {
	var teams []TeamEntry
	err := database.DB.
		Where("team_number IN ?", teamNumbers).
		Order("team_number asc").
		Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("无法按编号读取队伍: %w", err)
	}
	return teams, nil
}

// GetTeamByNumber 按队伍编号查找档案，未找到时返回(nil, nil)
func GetTeamByNumber(teamNumber int) (*TeamEntry, error) {
	var t TeamEntry
	err := database.DB.Where("team_number = ?", teamNumber).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("无法查询队伍 %d: %w", teamNumber, err)
	}
	return &t, nil
}

// UpsertTeam 以upsert语义写入队伍档案。
// values为nil表示保留已有的值映射不变；非nil表示整体替换。
func UpsertTeam(teamNumber int, values *ValueMap) (*TeamEntry, error) {
	existing, err := GetTeamByNumber(teamNumber)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		t := TeamEntry{TeamNumber: teamNumber, Values: ValueMap{}}
		if values != nil {
			t.Values = *values
		}
		if err := database.DB.Create(&t).Error; err != nil {
			return nil, fmt.Errorf("无法创建队伍 %d: %w", teamNumber, err)
		}
		return &t, nil
	}

	if values != nil {
		existing.Values = *values
	}
	if err := database.DB.Save(existing).Error; err != nil {
		return nil, fmt.Errorf("无法更新队伍 %d: %w", teamNumber, err)
	}
	return existing, nil
}

// ListMatchesByTeam 返回某队全部比赛记录，按(场次, id)升序
func ListMatchesByTeam(teamNumber int) ([]MatchEntry, error) {
	var matches []MatchEntry
	err := database.DB.
		Where("team_number = ?", teamNumber).
		Order("match_number asc, id asc").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取队伍 %d 的比赛记录: %w", teamNumber, err)
	}
	return matches, nil
}

// ListAllMatches 返回全部比赛记录，用于快照导出
func ListAllMatches() ([]MatchEntry, error) {
	var matches []MatchEntry
	err := database.DB.
		Order("team_number asc, match_number asc, id asc").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取全部比赛记录: %w", err)
	}
	return matches, nil
}

// getMatch 按复合键查找比赛记录，未找到时返回(nil, nil)
func getMatch(teamNumber, matchNumber int) (*MatchEntry, error) {
	var m MatchEntry
	err := database.DB.
		Where("team_number = ? AND match_number = ?", teamNumber, matchNumber).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("无法查询队伍 %d 第 %d 场的记录: %w", teamNumber, matchNumber, err)
	}
	return &m, nil
}

// UpsertMatch 以upsert语义写入比赛记录，values语义同UpsertTeam
func UpsertMatch(teamNumber, matchNumber int, values *ValueMap) (*MatchEntry, error) {
	existing, err := getMatch(teamNumber, matchNumber)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		m := MatchEntry{TeamNumber: teamNumber, MatchNumber: matchNumber, Values: ValueMap{}}
		if values != nil {
			m.Values = *values
		}
		if err := database.DB.Create(&m).Error; err != nil {
			return nil, fmt.Errorf("无法创建比赛记录 (%d, %d): %w", teamNumber, matchNumber, err)
		}
		return &m, nil
	}

	if values != nil {
		existing.Values = *values
	}
	if err := database.DB.Save(existing).Error; err != nil {
		return nil, fmt.Errorf("无法更新比赛记录 (%d, %d): %w", teamNumber, matchNumber, err)
	}
	return existing, nil
}

// DeleteMatch 删除一条比赛记录，返回是否确有删除
func DeleteMatch(teamNumber, matchNumber int) (bool, error) {
	result := database.DB.
		Where("team_number = ? AND match_number = ?", teamNumber, matchNumber).
		Delete(&MatchEntry{})
	if result.Error != nil {
		return false, fmt.Errorf("无法删除比赛记录 (%d, %d): %w", teamNumber, matchNumber, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetTeamFullRecord 组合队伍档案和比赛记录为完整视图
func GetTeamFullRecord(teamNumber int) (*TeamFullRecord, error) {
	team, err := GetTeamByNumber(teamNumber)
	if err != nil {
		return nil, err
	}
	matches, err := ListMatchesByTeam(teamNumber)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []MatchEntry{}
	}
	return &TeamFullRecord{Team: team, Matches: matches}, nil
}
