package sheets

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportHandler 处理 POST /api/sheets/export
func ExportHandler(c *gin.Context) {
	if err := ExportAll(c.Request.Context()); err != nil {
		writeBridgeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ImportHandler 处理 POST /api/sheets/import
func ImportHandler(c *gin.Context) {
	if err := ImportAll(c.Request.Context()); err != nil {
		writeBridgeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// writeBridgeError 把桥接错误映射为HTTP响应
func writeBridgeError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotConfigured) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "請先在設定頁面填寫試算表連結", "field": "sheetsEndpointUrl"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"message": "試算表同步失敗，請稍後重試"})
}
