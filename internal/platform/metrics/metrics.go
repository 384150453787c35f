package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry 是本应用私有的Prometheus注册表，避免混入默认全局注册表的指标
var registry = prometheus.NewRegistry()

var (
	// AggregateRequests 统计聚合接口被调用的次数
	AggregateRequests = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "scouting",
		Name:      "aggregate_requests_total",
		Help:      "聚合统计接口的累计调用次数",
	})

	// DraftsFlushed 统计被成功落库的离线草稿数量
	DraftsFlushed = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "scouting",
		Name:      "drafts_flushed_total",
		Help:      "后台冲刷成功写入主存储的草稿累计数量",
	})

	// DraftFlushFailures 统计草稿落库失败的次数
	DraftFlushFailures = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "scouting",
		Name:      "draft_flush_failures_total",
		Help:      "草稿写入主存储失败的累计次数",
	})

	// SheetsSyncs 按方向统计试算表同步的次数
	SheetsSyncs = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "scouting",
		Name:      "sheets_syncs_total",
		Help:      "试算表导入/导出的累计次数",
	}, []string{"direction"})
)

// Handler 返回暴露/metrics端点的gin处理函数
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
