package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MindMirrorGo/config"
	"MindMirrorGo/middleware"
	"MindMirrorGo/routes"
	"MindMirrorGo/services"
	"MindMirrorGo/storage"
	"MindMirrorGo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 初始化日志
	if err := config.InitLogger(conf.LogLevel, conf.LogDir); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 初始化存储
	store, err := storage.NewStorage(conf)
	if err != nil {
		config.Logger.Fatalw("无法初始化存储", "backend", conf.StorageBackend, "error", err)
	}
	defer store.Close()

	// 初始化Redis，未配置时会话吊销记录保存在内存
	var revocations services.RevocationStore = services.NewMemoryRevocationStore()
	redisClient, err := config.NewRedisClient(context.Background(), conf)
	if err != nil {
		config.Logger.Fatalw("无法初始化Redis", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		revocations = services.NewRedisRevocationStore(redisClient)
	}

	// 初始化生成模型客户端
	generator, err := services.NewGenerator(conf)
	if err != nil {
		config.Logger.Fatalw("无法初始化模型客户端", "provider", conf.LLMProvider, "error", err)
	}
	analysis := services.NewAnalysisService(generator, services.AnalysisOptions{
		Credentialed:            conf.LLMAPIKey != "",
		FallbackOnUpstreamError: conf.FallbackOnUpstreamError,
	})
	if analysis.Ready() {
		// 启动自检，只记录结果不阻塞启动
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), conf.LLMTimeout)
			defer cancel()
			if err := analysis.Verify(ctx); err != nil {
				config.Logger.Errorw("模型密钥自检失败", "provider", conf.LLMProvider, "model", conf.LLMModel, "error", err)
				return
			}
			config.Logger.Infow("模型密钥自检通过", "provider", conf.LLMProvider, "model", conf.LLMModel)
		}()
	}

	secret := conf.JWTSecret
	if secret == "" {
		// 仅非生产环境允许，重启后旧令牌失效
		secret = utils.GenerateID()
		config.Logger.Warnw("JWT_SECRET 未设置，使用临时密钥")
	}

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r, conf.CORSOrigins)

	// 注册路由
	routes.RegisterRoutes(r, routes.Dependencies{
		Analysis:    analysis,
		Store:       store,
		Issuer:      utils.NewTokenIssuer(secret, conf.SessionTTL),
		Revocations: revocations,
		RateLimiter: middleware.NewRateLimiter(conf.RateLimitRPM, conf.RateLimitBurst),
	})

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		config.Logger.Infow("启动服务器",
			"port", conf.ServerPort,
			"storage", conf.StorageBackend,
			"provider", conf.LLMProvider,
			"model", conf.LLMModel,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatalw("服务器启动失败", "error", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Info("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.Errorw("服务器关闭失败", "error", err)
		return
	}

	config.Logger.Info("服务器已关闭")
}
