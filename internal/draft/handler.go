package draft

import (
	"errors"
	"net/http"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
	"github.com/gin-gonic/gin"
)

// saveDraftRequest 对应草稿保存请求的请求体
type saveDraftRequest struct {
	Kind        Kind            `json:"kind" binding:"required"`
	TeamNumber  int             `json:"teamNumber" binding:"required"`
	MatchNumber int             `json:"matchNumber"`
	Values      record.ValueMap `json:"values"`
	SavedAt     int64           `json:"savedAt"`
}

// requireRedis 在Redis不可用时直接拒绝草稿请求
func requireRedis(c *gin.Context) bool {
	if !database.IsRedisHealthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "草稿服務暫時不可用，請稍後重試"})
		return false
	}
	return true
}

// ListDraftsHandler 返回排队中的全部草稿
func ListDraftsHandler(c *gin.Context) {
	if !requireRedis(c) {
		return
	}

	drafts, err := ListDrafts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "讀取草稿失敗"})
		return
	}
	c.JSON(http.StatusOK, drafts)
}

// CreateDraftHandler 保存一条新草稿，ID由服务端生成
func CreateDraftHandler(c *gin.Context) {
	if !requireRedis(c) {
		return
	}
	saveDraftFromRequest(c, "")
}

// UpsertDraftHandler 按客户端指定的ID保存草稿，重复保存整体覆盖
func UpsertDraftHandler(c *gin.Context) {
	if !requireRedis(c) {
		return
	}
	saveDraftFromRequest(c, c.Param("id"))
}

// saveDraftFromRequest 解析请求体并保存草稿
func saveDraftFromRequest(c *gin.Context, id string) {
	var req saveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "草稿內容不正確"})
		return
	}

	saved, err := SaveDraft(c.Request.Context(), Draft{
		ID:          id,
		Kind:        req.Kind,
		TeamNumber:  req.TeamNumber,
		MatchNumber: req.MatchNumber,
		Values:      req.Values,
		SavedAt:     req.SavedAt,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidDraft) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "草稿內容不正確"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "儲存草稿失敗"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteDraftHandler 丢弃一条草稿
func DeleteDraftHandler(c *gin.Context) {
	if !requireRedis(c) {
		return
	}

	ok, err := DeleteDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "刪除草稿失敗"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "找不到此草稿"})
		return
	}
	c.Status(http.StatusNoContent)
}

// FlushDraftsHandler 立即触发一轮冲刷，把草稿写入主存储
func FlushDraftsHandler(c *gin.Context) {
	if !requireRedis(c) {
		return
	}

	flushed, err := FlushOnce(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "草稿同步失敗"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "flushed": flushed})
}
