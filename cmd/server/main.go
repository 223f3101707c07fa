package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/config"
	"github.com/modernointeriors/modernointeriors-sub000/internal/handler"
	"github.com/modernointeriors/modernointeriors-sub000/internal/middleware"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting moderno-interiors service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// 初始化Redis
	rdb := initRedis(cfg.Redis)

	// 初始化依赖
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg, zapLogger)
	handlers := handler.NewHandlers(services, cfg)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// 注册路由
	registerRoutes(router, handlers, rdb, cfg)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, rdb *redis.Client, cfg *config.Config) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 公开接口 (官网前台，无需登录)
		public := v1.Group("/public")
		{
			public.POST("/inquiries", h.Inquiry.Create)
			public.GET("/projects", h.Project.ListPublished)
			public.GET("/projects/:slug", h.Project.GetBySlug)
			public.GET("/articles", h.Article.ListPublished)
			public.GET("/articles/:slug", h.Article.GetBySlug)
			public.GET("/partners", h.Content.ListPartners)
			public.GET("/faqs", h.Content.ListFAQs)
			public.GET("/content/:key", h.Content.GetPage)
		}

		// 认证 (无需登录)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的接口
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret, rdb))
		{
			// 当前用户
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 用户管理
			users := authorized.Group("/users")
			users.Use(middleware.RequirePermission(entity.PermUsersManage))
			{
				users.GET("", h.User.List)
				users.POST("", h.User.Create)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			// 客户管理
			clients := authorized.Group("/clients")
			{
				clients.GET("", middleware.RequirePermission(entity.PermClientsRead), h.Client.List)
				clients.POST("", middleware.RequirePermission(entity.PermClientsWrite), h.Client.Create)
				clients.GET("/:id", middleware.RequirePermission(entity.PermClientsRead), h.Client.Get)
				clients.PUT("/:id", middleware.RequirePermission(entity.PermClientsWrite), h.Client.Update)
				clients.DELETE("/:id", middleware.RequirePermission(entity.PermClientsWrite), h.Client.Delete)
				clients.GET("/:id/transactions", middleware.RequirePermission(entity.PermFinanceRead), h.Client.Transactions)
				clients.GET("/:id/interactions", middleware.RequirePermission(entity.PermCRMRead), h.Client.Interactions)
			}

			// 交易管理
			transactions := authorized.Group("/transactions")
			{
				transactions.GET("", middleware.RequirePermission(entity.PermFinanceRead), h.Transaction.List)
				transactions.POST("", middleware.RequirePermission(entity.PermFinanceWrite), h.Transaction.Create)
				transactions.GET("/:id", middleware.RequirePermission(entity.PermFinanceRead), h.Transaction.Get)
				transactions.PUT("/:id", middleware.RequirePermission(entity.PermFinanceWrite), h.Transaction.Update)
				transactions.DELETE("/:id", middleware.RequirePermission(entity.PermFinanceWrite), h.Transaction.Delete)
			}

			// 销售机会
			deals := authorized.Group("/deals")
			{
				deals.GET("", middleware.RequirePermission(entity.PermCRMRead), h.CRM.ListDeals)
				deals.POST("", middleware.RequirePermission(entity.PermCRMWrite), h.CRM.CreateDeal)
				deals.GET("/:id", middleware.RequirePermission(entity.PermCRMRead), h.CRM.GetDeal)
				deals.PUT("/:id", middleware.RequirePermission(entity.PermCRMWrite), h.CRM.UpdateDeal)
				deals.DELETE("/:id", middleware.RequirePermission(entity.PermCRMWrite), h.CRM.DeleteDeal)
			}

			// 客户互动
			interactions := authorized.Group("/interactions")
			{
				interactions.GET("", middleware.RequirePermission(entity.PermCRMRead), h.CRM.ListInteractions)
				interactions.POST("", middleware.RequirePermission(entity.PermCRMWrite), h.CRM.CreateInteraction)
				interactions.PUT("/:id", middleware.RequirePermission(entity.PermCRMWrite), h.CRM.UpdateInteraction)
				interactions.DELETE("/:id", middleware.RequirePermission(entity.PermCRMWrite), h.CRM.DeleteInteraction)
			}

			// 咨询管理
			inquiries := authorized.Group("/inquiries")
			{
				inquiries.GET("", middleware.RequirePermission(entity.PermInquiriesRead), h.Inquiry.List)
				inquiries.GET("/:id", middleware.RequirePermission(entity.PermInquiriesRead), h.Inquiry.Get)
				inquiries.PUT("/:id/status", middleware.RequirePermission(entity.PermInquiriesWrite), h.Inquiry.UpdateStatus)
				inquiries.DELETE("/:id", middleware.RequirePermission(entity.PermInquiriesWrite), h.Inquiry.Delete)
			}

			// 案例项目
			projects := authorized.Group("/projects")
			{
				projects.GET("", middleware.RequirePermission(entity.PermContentRead), h.Project.List)
				projects.POST("", middleware.RequirePermission(entity.PermContentWrite), h.Project.Create)
				projects.GET("/:id", middleware.RequirePermission(entity.PermContentRead), h.Project.Get)
				projects.PUT("/:id", middleware.RequirePermission(entity.PermContentWrite), h.Project.Update)
				projects.DELETE("/:id", middleware.RequirePermission(entity.PermContentWrite), h.Project.Delete)
			}

			// 文章
			articles := authorized.Group("/articles")
			{
				articles.GET("", middleware.RequirePermission(entity.PermContentRead), h.Article.List)
				articles.POST("", middleware.RequirePermission(entity.PermContentWrite), h.Article.Create)
				articles.GET("/:id", middleware.RequirePermission(entity.PermContentRead), h.Article.Get)
				articles.PUT("/:id", middleware.RequirePermission(entity.PermContentWrite), h.Article.Update)
				articles.POST("/:id/publish", middleware.RequirePermission(entity.PermContentWrite), h.Article.Publish)
				articles.POST("/:id/unpublish", middleware.RequirePermission(entity.PermContentWrite), h.Article.Unpublish)
				articles.DELETE("/:id", middleware.RequirePermission(entity.PermContentWrite), h.Article.Delete)
			}

			// 站点内容
			authorized.PUT("/content/:key", middleware.RequirePermission(entity.PermContentWrite), h.Content.UpdatePage)

			// 合作伙伴
			partners := authorized.Group("/partners")
			{
				partners.POST("", middleware.RequirePermission(entity.PermContentWrite), h.Content.CreatePartner)
				partners.PUT("/:id", middleware.RequirePermission(entity.PermContentWrite), h.Content.UpdatePartner)
				partners.DELETE("/:id", middleware.RequirePermission(entity.PermContentWrite), h.Content.DeletePartner)
			}

			// 常见问题
			faqs := authorized.Group("/faqs")
			{
				faqs.POST("", middleware.RequirePermission(entity.PermContentWrite), h.Content.CreateFAQ)
				faqs.PUT("/:id", middleware.RequirePermission(entity.PermContentWrite), h.Content.UpdateFAQ)
				faqs.DELETE("/:id", middleware.RequirePermission(entity.PermContentWrite), h.Content.DeleteFAQ)
			}

			// 文件上传
			authorized.POST("/uploads/images", middleware.RequirePermission(entity.PermUploadsWrite), h.Upload.UploadImage)

			// 数据导出
			exports := authorized.Group("/exports")
			{
				exports.GET("/clients", middleware.RequirePermission(entity.PermExportsRead), h.Export.ExportClients)
				exports.GET("/clients/:id/transactions", middleware.RequirePermission(entity.PermExportsRead), h.Export.ExportClientTransactions)
			}
		}
	}
}
