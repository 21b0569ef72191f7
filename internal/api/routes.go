package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/api/handlers"
	"debate_arena/internal/middleware"
	"debate_arena/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	topicHandler := handlers.NewTopicHandler(services.Topic)
	debateHandler := handlers.NewDebateHandler(services.Matcher, services.Room)
	wsHandler := handlers.NewWebSocketHandler(services.Hub, services.Room)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// WebSocket 連接點，token 為可選，匿名觀眾也能連線
		api.GET("/ws", wsHandler.HandleWebSocket)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		// 目前登入的用戶
		authorized.GET("/me", authHandler.Me)

		// 主題與意見
		topics := authorized.Group("/topics")
		{
			topics.GET("", topicHandler.ListTopics)
			topics.POST("", topicHandler.CreateTopic)
			topics.GET("/:id", topicHandler.GetTopic)
			topics.POST("/:id/opinions", topicHandler.UpsertOpinion)
			topics.GET("/:id/opinions", topicHandler.ListOpinions)
		}

		// 辯論房間
		debates := authorized.Group("/debates")
		{
			// 配對：隨機挑選對手，或直接挑戰某則意見的作者
			debates.POST("/match", debateHandler.MatchDebate)
			debates.POST("/direct", debateHandler.StartDirectDebate)

			// 房間操作
			debates.GET("", debateHandler.ListMyDebates)
			debates.GET("/:id", debateHandler.GetRoom)
			debates.GET("/:id/messages", debateHandler.GetMessages)
			debates.POST("/:id/messages", debateHandler.SendMessage)
			debates.POST("/:id/votes", debateHandler.SubmitVote)
			debates.GET("/:id/votes", debateHandler.GetVotes)
			debates.PUT("/:id/privacy", debateHandler.SetPrivacy)
			debates.POST("/:id/end", debateHandler.EndRoom)
		}
	}
}
