package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/frc-scouting-backend/api"
	"github.com/SlpAus/frc-scouting-backend/internal/draft"
	"github.com/SlpAus/frc-scouting-backend/internal/platform/config"
	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
	"github.com/SlpAus/frc-scouting-backend/internal/platform/health"
	"github.com/SlpAus/frc-scouting-backend/internal/platform/shutdown"
	"github.com/SlpAus/frc-scouting-backend/internal/platform/startup"
	"github.com/SlpAus/frc-scouting-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	// 1. 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 2. 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 3. 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 4. 异步启动后台的持续健康检查器
	go health.StartRedisHealthCheck()

	// 5. 创建两阶段停机的生命周期管理器，并启动草稿冲刷器
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	flusherGraceful, err := gracefulMgr.NewServiceHandle("draft-flusher")
	if err != nil {
		panic(err)
	}
	flusherForceful, err := forcefulMgr.NewServiceHandle("draft-flusher")
	if err != nil {
		panic(err)
	}
	go draft.StartFlusher(flusherGraceful, flusherForceful)

	r := gin.Default()

	allowedOrigins := cfg.Server.Cors.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	// 6. 阻塞监听停机信号，协调两阶段优雅停机
	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
