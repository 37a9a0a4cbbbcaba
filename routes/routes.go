package routes

import (
	"MindMirrorGo/controllers"
	"MindMirrorGo/middleware"
	"MindMirrorGo/services"
	"MindMirrorGo/storage"
	"MindMirrorGo/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies 路由依赖
type Dependencies struct {
	Analysis    *services.AnalysisService
	Store       storage.Storage
	Issuer      *utils.TokenIssuer
	Revocations services.RevocationStore
	// RateLimiter 为 nil 时不限流
	RateLimiter *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	analysisController := controllers.NewAnalysisController(deps.Analysis, deps.Store)
	historyController := controllers.NewHistoryController(deps.Store)
	syncController := controllers.NewSyncController(deps.Store)
	authController := controllers.NewAuthController(deps.Store, deps.Issuer, deps.Revocations)

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(deps.Issuer, deps.Revocations)) // 会话可选

	// 分析接口，登录后会保存结果
	analysis := api.Group("")
	// 未配置密钥时每个请求都直接返回 api_key_missing，不参与限流
	if deps.Analysis.Ready() {
		analysis.Use(deps.RateLimiter.Middleware())
	}
	{
		analysis.POST("/analyze/mood", analysisController.AnalyzeMood)
		analysis.POST("/analyze/thoughts", analysisController.ClarifyThoughts)
		analysis.POST("/analyze/relationship", analysisController.AnalyzeRelationship)
		analysis.POST("/generate/daily-tips", analysisController.GenerateDailyTips)
		analysis.POST("/analyze/social-media", analysisController.AnalyzeSocialMedia)
	}

	// 公开路由（无需认证）
	{
		api.POST("/auth/register", authController.Register)
		api.POST("/auth/login", authController.Login)
	}

	// 需要认证的路由
	private := api.Group("")
	private.Use(middleware.RequireSession())
	{
		private.POST("/auth/logout", authController.Logout)
		private.GET("/auth/me", authController.Me)
		private.POST("/sync", syncController.Sync)
		private.GET("/mood-history", historyController.GetMoodHistory)
		private.GET("/journal", historyController.GetJournalEntries)
		private.GET("/daily-tips", historyController.GetDailyTips)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
