package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/modernointeriors/modernointeriors-sub000/internal/config"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 建表并引导初始管理员账号。账号由 ADMIN_USERNAME / ADMIN_PASSWORD /
// ADMIN_EMAIL 环境变量指定，已存在则跳过。
func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// 建表
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Client{},
		&entity.Transaction{},
		&entity.Deal{},
		&entity.Interaction{},
		&entity.Inquiry{},
		&entity.Project{},
		&entity.Article{},
		&entity.SiteContent{},
		&entity.Partner{},
		&entity.FAQ{},
	); err != nil {
		zapLogger.Fatal("Failed to auto-migrate tables", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	if err := seedAdmin(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}
}

func seedAdmin(db *gorm.DB, zapLogger *zap.Logger) error {
	username := config.GetEnvOrDefault("ADMIN_USERNAME", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	email := config.GetEnvOrDefault("ADMIN_EMAIL", "admin@moderno-interiors.local")

	if password == "" {
		zapLogger.Info("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	ctx := context.Background()
	userRepo := repository.NewRepositories(db).User

	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		zapLogger.Info("Admin user already exists, skipping", zap.String("username", username))
		return nil
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}

	user := &entity.User{
		ID:           uuid.New().String()[:32],
		Username:     username,
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	zapLogger.Info("Admin user created", zap.String("username", username))
	return nil
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
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
