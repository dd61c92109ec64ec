// Package main 是应用程序入口
package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dumeirei/taskmall-admin/docs"
	"github.com/dumeirei/taskmall-admin/internal/common/cache"
	"github.com/dumeirei/taskmall-admin/internal/common/config"
	"github.com/dumeirei/taskmall-admin/internal/common/jwt"
	"github.com/dumeirei/taskmall-admin/internal/common/metrics"
	commonMiddleware "github.com/dumeirei/taskmall-admin/internal/common/middleware"
	"github.com/dumeirei/taskmall-admin/internal/common/notice"
	"github.com/dumeirei/taskmall-admin/internal/common/qrcode"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
	adminHandler "github.com/dumeirei/taskmall-admin/internal/handler/admin"
	authHandler "github.com/dumeirei/taskmall-admin/internal/handler/auth"
	orderHandler "github.com/dumeirei/taskmall-admin/internal/handler/order"
	paymentHandler "github.com/dumeirei/taskmall-admin/internal/handler/payment"
	uploadHandler "github.com/dumeirei/taskmall-admin/internal/handler/upload"
	"github.com/dumeirei/taskmall-admin/internal/middleware"
	"github.com/dumeirei/taskmall-admin/internal/repository"
	"github.com/dumeirei/taskmall-admin/internal/resource"
	"github.com/dumeirei/taskmall-admin/internal/scheduler"
	adminService "github.com/dumeirei/taskmall-admin/internal/service/admin"
	authService "github.com/dumeirei/taskmall-admin/internal/service/auth"
	consumerService "github.com/dumeirei/taskmall-admin/internal/service/consumer"
	uploadService "github.com/dumeirei/taskmall-admin/internal/service/upload"
	"github.com/dumeirei/taskmall-admin/pkg/authrpc"
	"github.com/dumeirei/taskmall-admin/pkg/oss"
)

// adminPrefix 后台接口前缀，操作日志按此推断集合名
const adminPrefix = "/api/admin"

// app 需要在退出时收尾的组件
type app struct {
	operationLogger *commonMiddleware.OperationLogger
	scheduler       *scheduler.Scheduler
}

// setupRouter 设置路由
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	m *metrics.Metrics,
) (*app, error) {
	// 基础组件
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:     cfg.JWT.Secret,
		ExpireTime: cfg.JWT.AccessTokenDuration(),
		Issuer:     cfg.JWT.Issuer,
	})
	sessions := session.NewStore(redisClient, cfg.Session.KeyPrefix, cfg.Session.TTLDuration())
	notifier := notice.NewDispatcher(logger.Named("notice"))

	var queryCache *cache.QueryCache
	if cfg.QueryCache.Enabled {
		queryCache = cache.NewQueryCache(redisClient, cfg.QueryCache.TTLDuration())
	}

	uploader, err := oss.New(&oss.Config{
		Provider:        cfg.OSS.Provider,
		Endpoint:        cfg.OSS.Endpoint,
		AccessKeyID:     cfg.OSS.AccessKeyID,
		AccessKeySecret: cfg.OSS.AccessKeySecret,
		BucketName:      cfg.OSS.Bucket,
		Domain:          cfg.OSS.CustomDomain,
		BasePath:        cfg.OSS.UploadDir,
		LocalRoot:       cfg.OSS.LocalRoot,
		LocalURLPrefix:  cfg.OSS.LocalURLPrefix,
	})
	if err != nil {
		return nil, err
	}

	remoteAuth := authrpc.New(authrpc.Config{
		BaseURL:   cfg.Auth.ServiceURL,
		AnonKey:   cfg.Auth.AnonKey,
		VerifyRPC: cfg.Auth.VerifyRPC,
		Timeout:   cfg.Auth.TimeoutDuration(),
	})

	// 仓储与服务
	oplogRepo := repository.NewOperationLogRepository(db)
	resources := adminService.NewResources(db, resource.Deps{
		Cache:     queryCache,
		Notifier:  notifier,
		Metrics:   m,
		Logger:    logger.Named("resource"),
		ExportBOM: cfg.Export.WithBOM,
	})

	adminAuthSvc := adminService.NewAuthService(&cfg.Auth, sessions, jwtManager, notifier, m)
	dashboardSvc := adminService.NewDashboardService(resources, oplogRepo)
	operationLogSvc := adminService.NewOperationLogService(oplogRepo)
	consumerAuthSvc := authService.NewAuthService(remoteAuth, sessions, jwtManager, notifier, m)
	channelSvc := consumerService.NewChannelService(qrcode.NewGenerator())
	walletSvc := consumerService.NewWalletService(db, channelSvc, queryCache, notifier)
	taskOrderSvc := consumerService.NewTaskOrderService(time.Now())
	uploadSvc := uploadService.NewUploadService(uploader, cfg.OSS.MaxSize)

	// 处理器
	adminAuthH := adminHandler.NewAuthHandler(adminAuthSvc)
	resourceH := adminHandler.NewResourceHandler(resources)
	dashboardH := adminHandler.NewDashboardHandler(dashboardSvc, operationLogSvc)
	uploadH := uploadHandler.NewHandler(uploadSvc)
	authH := authHandler.NewHandler(consumerAuthSvc)
	orderH := orderHandler.NewTaskOrderHandler(taskOrderSvc)
	paymentH := paymentHandler.NewHandler(channelSvc, walletSvc)

	operationLogger := commonMiddleware.NewOperationLogger(oplogRepo, adminPrefix)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Notices())
	r.Use(middleware.CORS(&cfg.CORS))
	r.Use(middleware.Logging(middleware.DefaultLoggingConfig(logger)))
	if cfg.Tracing.Enabled {
		r.Use(commonMiddleware.Tracing(&commonMiddleware.TracingConfig{
			ServiceName: cfg.Tracing.ServiceName,
			SkipPaths:   []string{"/health", "/ping", "/ready", cfg.Metrics.Path},
		}))
	}
	if cfg.Metrics.Enabled {
		r.Use(m.Middleware())
		r.GET(cfg.Metrics.Path, m.Handler())
	}
	if cfg.RateLimit.Enabled {
		r.Use(middleware.IPRateLimit(redisClient, cfg.RateLimit.RequestsPerSecond, time.Second))
	}

	// 健康检查（不需要认证）
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db, redisClient))

	// Swagger 文档
	docs.SwaggerInfo.Version = version
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 本地存储的上传文件
	if local, ok := uploader.(*oss.LocalUploader); ok {
		r.Static(cfg.OSS.LocalURLPrefix, local.Root())
	}

	loginWindow := time.Duration(cfg.Auth.LoginRateWindow) * time.Second

	// 后台接口
	admin := r.Group(adminPrefix)
	{
		admin.POST("/auth/login",
			middleware.LoginRateLimit(redisClient, session.KindAdmin, cfg.Auth.LoginRateLimit, loginWindow),
			adminAuthH.Login,
		)

		protected := admin.Group("", middleware.AdminAuth(jwtManager, sessions), operationLogger.Log())
		protected.POST("/auth/logout", adminAuthH.Logout)
		protected.GET("/auth/session", adminAuthH.Session)
		protected.GET("/dashboard", dashboardH.Overview)
		protected.GET("/operation-logs", dashboardH.ListOperationLogs)
		protected.POST("/upload/image", uploadH.UploadImage)
		resourceH.Register(protected)
	}

	// 用户端接口
	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login",
			middleware.LoginRateLimit(redisClient, session.KindConsumer, cfg.Auth.LoginRateLimit, loginWindow),
			authH.Login,
		)
		v1.GET("/deposit-channels", paymentH.ListChannels)
		v1.GET("/deposit-channels/:id/qrcode", paymentH.ChannelQRCode)

		user := v1.Group("", middleware.ConsumerAuth(jwtManager, sessions))
		user.POST("/auth/logout", authH.Logout)
		user.GET("/auth/session", authH.Session)
		user.GET("/task-orders", orderH.List)
		user.GET("/task-orders/summary", orderH.Summary)
		user.POST("/deposits", paymentH.Deposit)
		user.GET("/deposits", paymentH.ListDeposits)
		user.POST("/withdrawals", paymentH.Withdraw)
		user.GET("/withdrawals", paymentH.ListWithdrawals)
	}

	// 定时任务
	a := &app{operationLogger: operationLogger}
	if cfg.Scheduler.Enabled {
		a.scheduler = scheduler.NewScheduler()
		tasks := scheduler.NewTaskHandler(resources, sessions, operationLogSvc, m)
		if err := tasks.Register(a.scheduler, &cfg.Scheduler); err != nil {
			return nil, err
		}
	}
	return a, nil
}
