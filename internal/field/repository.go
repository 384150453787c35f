package field

import (
	"errors"
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
	"gorm.io/gorm"
)

// ListFields 返回按(sort_order, id)升序排列的字段定义。
// scope为nil时返回全部字段，否则只返回指定scope的字段。
// 统计引擎依赖这里的确定性顺序。
func ListFields(scope *Scope) ([]ScoringField, error) {
	query := database.DB.Order("sort_order asc, id asc")
	if scope != nil {
		query = query.Where("scope = ?", *scope)
	}

	var fields []ScoringField
	if err := query.Find(&fields).Error; err != nil {
		return nil, fmt.Errorf("无法从数据库读取字段定义: %w", err)
	}
	return fields, nil
}

// ListEnabledFields 返回指定scope下所有启用的字段，顺序同ListFields
func ListEnabledFields(scope Scope) ([]ScoringField, error) {
	var fields []ScoringField
	err := database.DB.
		Where("scope = ? AND enabled = 1", scope).
		Order("sort_order asc, id asc").
		Find(&fields).Error
	if err != nil {
		return nil, fmt.Errorf("无法从数据库读取启用字段: %w", err)
	}
	return fields, nil
}

// GetFieldByID 按主键查找字段，未找到时返回(nil, nil)
func GetFieldByID(id uint) (*ScoringField, error) {
	var f ScoringField
	err := database.DB.First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("无法查询字段 %d: %w", id, err)
	}
	return &f, nil
}

// findByScopeAndKey 查找(scope, key)下的现有字段，用于唯一性检查
func findByScopeAndKey(scope Scope, key string) (*ScoringField, error) {
	var f ScoringField
	err := database.DB.Where("scope = ? AND key = ?", scope, key).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("无法按(scope, key)查询字段: %w", err)
	}
	return &f, nil
}

// insertField 将新字段写入数据库
func insertField(f *ScoringField) error {
	if err := database.DB.Create(f).Error; err != nil {
		return fmt.Errorf("无法创建字段: %w", err)
	}
	return nil
}

// saveField 整体覆盖保存一个已有字段
func saveField(f *ScoringField) error {
	if err := database.DB.Save(f).Error; err != nil {
		return fmt.Errorf("无法保存字段 %d: %w", f.ID, err)
	}
	return nil
}

// deleteFieldByID 按主键删除字段，返回是否确有删除
func deleteFieldByID(id uint) (bool, error) {
	result := database.DB.Delete(&ScoringField{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("无法删除字段 %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
