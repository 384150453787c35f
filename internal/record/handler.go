package record

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// upsertEntryRequest 对应队伍/比赛记录的PUT请求体。
// values缺省时保留旧值映射，提供时整体替换。
type upsertEntryRequest struct {
	Values *ValueMap `json:"values"`
}

// --- 控制器函数 ---

// ListTeamsHandler 返回全部队伍档案
func ListTeamsHandler(c *gin.Context) {
	teams, err := ListTeams()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "讀取隊伍列表失敗"})
		return
	}
	if teams == nil {
		teams = []TeamEntry{}
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeamHandler 返回单个队伍的完整记录（档案+比赛）
func GetTeamHandler(c *gin.Context) {
	teamNumber, err := strconv.Atoi(c.Param("teamNumber"))
	if err != nil {
		// 与历史行为保持一致：编号无法解析时返回空记录而不是报错
		c.JSON(http.StatusOK, TeamFullRecord{Team: nil, Matches: []MatchEntry{}})
		return
	}

	full, err := GetTeamFullRecord(teamNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "讀取隊伍記錄失敗"})
		return
	}
	c.JSON(http.StatusOK, full)
}

// UpsertTeamHandler 创建或覆盖队伍档案
func UpsertTeamHandler(c *gin.Context) {
	teamNumber, err := strconv.Atoi(c.Param("teamNumber"))
	if err != nil || teamNumber <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "隊伍編號不正確", "field": "teamNumber"})
		return
	}

	var req upsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "記錄內容不正確"})
		return
	}

	saved, err := UpsertTeam(teamNumber, req.Values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "儲存隊伍記錄失敗"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// ListMatchesHandler 返回某队全部比赛记录
func ListMatchesHandler(c *gin.Context) {
	teamNumber, err := strconv.Atoi(c.Param("teamNumber"))
	if err != nil {
		c.JSON(http.StatusOK, []MatchEntry{})
		return
	}

	matches, err := ListMatchesByTeam(teamNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "讀取比賽記錄失敗"})
		return
	}
	if matches == nil {
		matches = []MatchEntry{}
	}
	c.JSON(http.StatusOK, matches)
}

// UpsertMatchHandler 创建或覆盖一条比赛记录
func UpsertMatchHandler(c *gin.Context) {
	teamNumber, errA := strconv.Atoi(c.Param("teamNumber"))
	matchNumber, errB := strconv.Atoi(c.Param("matchNumber"))
	if errA != nil || errB != nil || teamNumber <= 0 || matchNumber <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "隊伍或場次不正確"})
		return
	}

	var req upsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "記錄內容不正確"})
		return
	}

	saved, err := UpsertMatch(teamNumber, matchNumber, req.Values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "儲存比賽記錄失敗"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteMatchHandler 删除一条比赛记录
func DeleteMatchHandler(c *gin.Context) {
	teamNumber, errA := strconv.Atoi(c.Param("teamNumber"))
	matchNumber, errB := strconv.Atoi(c.Param("matchNumber"))
	if errA != nil || errB != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "找不到此比賽"})
		return
	}

	ok, err := DeleteMatch(teamNumber, matchNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "刪除比賽記錄失敗"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "找不到此比賽"})
		return
	}
	c.Status(http.StatusNoContent)
}
