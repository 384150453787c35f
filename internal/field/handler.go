package field

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- API请求模型 ---

// createFieldRequest 对应 POST /api/fields 的请求体
type createFieldRequest struct {
	Scope       Scope        `json:"scope" binding:"required"`
	Key         string       `json:"key" binding:"required"`
	Label       string       `json:"label"`
	InputType   InputType    `json:"inputType" binding:"required"`
	Enabled     *int         `json:"enabled"`
	Order       *int         `json:"order"`
	ScoringRule *ScoringRule `json:"scoringRule"`
}

// updateFieldRequest 对应 PUT /api/fields/:id 的请求体，所有项都可省略
type updateFieldRequest struct {
	Scope       *Scope       `json:"scope"`
	Key         *string      `json:"key"`
	Label       *string      `json:"label"`
	InputType   *InputType   `json:"inputType"`
	Enabled     *int         `json:"enabled"`
	Order       *int         `json:"order"`
	ScoringRule *ScoringRule `json:"scoringRule"`
}

// --- 控制器函数 ---

// ListFieldsHandler 返回字段定义列表，可选按scope过滤
func ListFieldsHandler(c *gin.Context) {
	var scope *Scope
	if raw := c.Query("scope"); raw != "" {
		s := Scope(raw)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "scope只能是team或match", "field": "scope"})
			return
		}
		scope = &s
	}

	fields, err := ListFields(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "讀取欄位定義失敗"})
		return
	}
	if fields == nil {
		fields = []ScoringField{}
	}
	c.JSON(http.StatusOK, fields)
}

// CreateFieldHandler 创建一个新字段
func CreateFieldHandler(c *gin.Context) {
	var req createFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "欄位內容不正確"})
		return
	}

	created, err := CreateField(CreateFieldInput{
		Scope:       req.Scope,
		Key:         req.Key,
		Label:       req.Label,
		InputType:   req.InputType,
		Enabled:     req.Enabled,
		Order:       req.Order,
		ScoringRule: req.ScoringRule,
	})
	if err != nil {
		writeFieldError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateFieldHandler 按ID部分更新字段
func UpdateFieldHandler(c *gin.Context) {
	id, ok := parseFieldID(c)
	if !ok {
		return
	}

	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "欄位內容不正確"})
		return
	}

	updated, err := UpdateField(id, UpdateFieldInput{
		Scope:       req.Scope,
		Key:         req.Key,
		Label:       req.Label,
		InputType:   req.InputType,
		Enabled:     req.Enabled,
		Order:       req.Order,
		ScoringRule: req.ScoringRule,
	})
	if err != nil {
		writeFieldError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteFieldHandler 按ID删除字段
func DeleteFieldHandler(c *gin.Context) {
	id, ok := parseFieldID(c)
	if !ok {
		return
	}

	if err := DeleteField(id); err != nil {
		writeFieldError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseFieldID 解析路径中的字段ID，失败时直接响应404
func parseFieldID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "找不到此項目"})
		return 0, false
	}
	return uint(id), true
}

// writeFieldError 把服务层错误映射为HTTP响应
func writeFieldError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": "欄位內容不正確"})
	case errors.Is(err, ErrDuplicateKey):
		c.JSON(http.StatusBadRequest, gin.H{"message": "同一範圍內已有相同key的欄位", "field": "key"})
	case errors.Is(err, ErrFieldNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "找不到此項目"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "處理欄位時發生內部錯誤"})
	}
}
