package settings

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// upsertSettingsRequest 对应 PUT /api/settings 的请求体
type upsertSettingsRequest struct {
	SheetsEndpointURL *string `json:"sheetsEndpointUrl"`
	APIToken          *string `json:"apiToken"`
}

// GetSettingsHandler 返回当前设置，尚未配置时返回null
func GetSettingsHandler(c *gin.Context) {
	s, err := GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "讀取設定失敗"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpsertSettingsHandler 创建或更新设置。
// 端点URL从未配置过时，不允许只提交令牌。
func UpsertSettingsHandler(c *gin.Context) {
	var req upsertSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "設定內容不正確"})
		return
	}

	if req.SheetsEndpointURL != nil && !isValidHTTPURL(*req.SheetsEndpointURL) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "請填寫有效的試算表連結 URL", "field": "sheetsEndpointUrl"})
		return
	}

	if req.SheetsEndpointURL == nil {
		existing, err := GetSettings()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "讀取設定失敗"})
			return
		}
		if existing == nil || existing.SheetsEndpointURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "請填寫試算表連結 URL", "field": "sheetsEndpointUrl"})
			return
		}
	}

	saved, err := UpsertSettings(req.SheetsEndpointURL, req.APIToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "儲存設定失敗"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// isValidHTTPURL 检查字符串是不是一个http(s)地址
func isValidHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
