package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/config"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Client      *ClientHandler
	Transaction *TransactionHandler
	CRM         *CRMHandler
	Inquiry     *InquiryHandler
	Project     *ProjectHandler
	Article     *ArticleHandler
	Content     *ContentHandler
	Upload      *UploadHandler
	Export      *ExportHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(svc.Auth, cfg),
		User:        NewUserHandler(svc.User),
		Client:      NewClientHandler(svc.Client),
		Transaction: NewTransactionHandler(svc.Transaction),
		CRM:         NewCRMHandler(svc.CRM),
		Inquiry:     NewInquiryHandler(svc.Inquiry),
		Project:     NewProjectHandler(svc.Project),
		Article:     NewArticleHandler(svc.Article),
		Content:     NewContentHandler(svc.Content),
		Upload:      NewUploadHandler(svc.Upload),
		Export:      NewExportHandler(svc.Export),
	}
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

// Forbidden 禁止访问响应
func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// HandleError 按错误类型映射响应：校验错误400，记录不存在404，其余500
func HandleError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(400, Response{
			Code:    40000,
			Message: vErr.Error(),
			Data:    gin.H{"fields": vErr.Fields},
		})
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "Record not found")
	default:
		InternalError(c, err.Error())
	}
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// pagination 解析分页参数
func pagination(c *gin.Context) (int, int) {
	page := 1
	pageSize := 20
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}
