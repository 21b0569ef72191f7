package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"debate_arena/internal/api"
	"debate_arena/internal/config"
	"debate_arena/internal/middleware"
	"debate_arena/internal/models"
	"debate_arena/internal/repository"
	"debate_arena/internal/service"
	"debate_arena/internal/storage"
	"debate_arena/internal/utils"
)

func main() {
	// 初始化 logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// 以設定檔的值初始化 JWT
	utils.Init(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Opinion{},
		&models.DebateRoom{},
		&models.DebateMessage{},
		&models.DebateVote{},
	); err != nil {
		logger.Fatal("Failed to auto migrate database", zap.Error(err))
	}

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, cfg.Debate, logger)

	// 設置 Gin 路由
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger(logger))
	api.SetupRoutes(r, services)

	// 啟動伺服器
	logger.Info("server starting", zap.String("address", cfg.Server.Address))
	if err := r.Run(cfg.Server.Address); err != nil {
		logger.Fatal("Failed to run server", zap.Error(err))
	}
}
