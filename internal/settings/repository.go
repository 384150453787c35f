package settings

import (
	"errors"
	"fmt"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
	"gorm.io/gorm"
)

// GetSettings 返回唯一的设置行，尚未配置时返回(nil, nil)
func GetSettings() (*Settings, error) {
	var s Settings
	err := database.DB.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("无法读取设置: %w", err)
	}
	return &s, nil
}

// UpsertSettings 创建或部分更新设置行。
// nil参数表示对应项保持不变。
func UpsertSettings(endpointURL, apiToken *string) (*Settings, error) {
	existing, err := GetSettings()
	if err != nil {
		return nil, err
	}

	if existing == nil {
		s := Settings{}
		if endpointURL != nil {
			s.SheetsEndpointURL = *endpointURL
		}
		if apiToken != nil {
			s.APIToken = *apiToken
		}
		if err := database.DB.Create(&s).Error; err != nil {
			return nil, fmt.Errorf("无法创建设置: %w", err)
		}
		return &s, nil
	}

	if endpointURL != nil {
		existing.SheetsEndpointURL = *endpointURL
	}
	if apiToken != nil {
		existing.APIToken = *apiToken
	}
	if err := database.DB.Save(existing).Error; err != nil {
		return nil, fmt.Errorf("无法更新设置: %w", err)
	}
	return existing, nil
}
