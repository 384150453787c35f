package analytics

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// maxComparedTeams 是单次请求允许指定的队伍数量上限。
// 这是传输层的限制：引擎本身对任意大小的集合都能正确工作。
const maxComparedTeams = 8

// AggregateHandler 处理 GET /api/analytics/aggregate。
// teamNumbers是逗号分隔的队伍编号，省略时统计全部队伍。
func AggregateHandler(c *gin.Context) {
	metrics.AggregateRequests.Inc()

	teamNumbers := parseTeamNumbers(c.Query("teamNumbers"))
	if len(teamNumbers) > maxComparedTeams {
		teamNumbers = teamNumbers[:maxComparedTeams]
	}

	results, err := AggregateTeams(teamNumbers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "取得統計資料失敗"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// parseTeamNumbers 解析逗号分隔的编号列表，无法解析的片段静默丢弃
func parseTeamNumbers(raw string) []int {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	numbers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}
