package api

import (
	"github.com/SlpAus/frc-scouting-backend/internal/analytics"
	"github.com/SlpAus/frc-scouting-backend/internal/draft"
	"github.com/SlpAus/frc-scouting-backend/internal/field"
	"github.com/SlpAus/frc-scouting-backend/internal/platform/metrics"
	"github.com/SlpAus/frc-scouting-backend/internal/record"
	"github.com/SlpAus/frc-scouting-backend/internal/settings"
	"github.com/SlpAus/frc-scouting-backend/internal/sheets"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		// 设置
		api.GET("/settings", settings.GetSettingsHandler)
		api.PUT("/settings", settings.UpsertSettingsHandler)

		// 字段定义
		fieldRoutes := api.Group("/fields")
		{
			fieldRoutes.GET("", field.ListFieldsHandler)
			fieldRoutes.POST("", field.CreateFieldHandler)
			fieldRoutes.PUT("/:id", field.UpdateFieldHandler)
			fieldRoutes.DELETE("/:id", field.DeleteFieldHandler)
		}

		// 队伍与比赛记录
		teamRoutes := api.Group("/teams")
		{
			teamRoutes.GET("", record.ListTeamsHandler)
			teamRoutes.GET("/:teamNumber", record.GetTeamHandler)
			teamRoutes.PUT("/:teamNumber", record.UpsertTeamHandler)

			teamRoutes.GET("/:teamNumber/matches", record.ListMatchesHandler)
			teamRoutes.PUT("/:teamNumber/matches/:matchNumber", record.UpsertMatchHandler)
			teamRoutes.DELETE("/:teamNumber/matches/:matchNumber", record.DeleteMatchHandler)
		}

		// 统计聚合
		api.GET("/analytics/aggregate", analytics.AggregateHandler)

		// 试算表同步
		api.POST("/sheets/export", sheets.ExportHandler)
		api.POST("/sheets/import", sheets.ImportHandler)

		// 离线草稿队列
		draftRoutes := api.Group("/drafts")
		{
			draftRoutes.GET("", draft.ListDraftsHandler)
			draftRoutes.POST("", draft.CreateDraftHandler)
			draftRoutes.PUT("/:id", draft.UpsertDraftHandler)
			draftRoutes.DELETE("/:id", draft.DeleteDraftHandler)
			draftRoutes.POST("/flush", draft.FlushDraftsHandler)
		}
	}
}
