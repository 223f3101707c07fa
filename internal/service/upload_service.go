package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadService 图片上传服务，对象存MinIO
type UploadService struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewUploadService 创建上传服务
func NewUploadService(client *minio.Client, bucket, endpoint string, useSSL bool) *UploadService {
	return &UploadService{client: client, bucket: bucket, endpoint: endpoint, useSSL: useSSL}
}

// allowedImageExts 允许的图片扩展名
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".svg":  true,
}

// UploadResult 上传结果
type UploadResult struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	Size       int64  `json:"size"`
}

// UploadImage 上传图片，按日期分目录存储
func (s *UploadService) UploadImage(ctx context.Context, reader io.Reader, fileName string, fileSize int64, contentType string) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedImageExts[ext] {
		return nil, newValidationError(map[string]string{"file": "unsupported image type " + ext})
	}

	if s.client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	objectName := fmt.Sprintf("images/%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String()[:8], ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}

	return &UploadResult{
		URL:        fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName),
		ObjectName: objectName,
		Size:       fileSize,
	}, nil
}
