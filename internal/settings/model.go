package settings

// Settings 是全局唯一的一行配置，保存试算表桥接的连接信息
type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// SheetsEndpointURL 是Google Apps Script Web App的部署地址
	SheetsEndpointURL string `gorm:"column:sheets_endpoint_url;not null" json:"sheetsEndpointUrl"`

	// APIToken 是Apps Script侧校验的共享令牌，可以为空
	APIToken string `gorm:"column:api_token" json:"apiToken"`
}

// TableName 指定表名
func (Settings) TableName() string {
	return "settings"
}
