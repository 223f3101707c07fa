package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/modernointeriors/modernointeriors-sub000/internal/config"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services 服务集合
type Services struct {
	Auth        *AuthService
	User        *UserService
	Client      *ClientService
	Finance     *FinanceService
	Transaction *TransactionService
	CRM         *CRMService
	Inquiry     *InquiryService
	Project     *ProjectService
	Article     *ArticleService
	Content     *ContentService
	Upload      *UploadService
	Export      *ExportService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	// 初始化MinIO客户端
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("minio init failed, uploads disabled", zap.Error(err))
			minioClient = nil
		}
	}

	finance := NewFinanceService(repos, logger)

	return &Services{
		Auth:        NewAuthService(repos.User, rdb, cfg),
		User:        NewUserService(repos.User),
		Client:      NewClientService(repos, finance, logger),
		Finance:     finance,
		Transaction: NewTransactionService(repos, finance),
		CRM:         NewCRMService(repos),
		Inquiry:     NewInquiryService(repos, logger),
		Project:     NewProjectService(repos, rdb),
		Article:     NewArticleService(repos, rdb),
		Content:     NewContentService(repos, rdb),
		Upload:      NewUploadService(minioClient, cfg.MinIO.Bucket, cfg.MinIO.Endpoint, cfg.MinIO.UseSSL),
		Export:      NewExportService(repos),
	}
}
