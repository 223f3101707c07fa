package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// UploadHandler 文件上传处理器
type UploadHandler struct {
	svc *service.UploadService
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// UploadImage 上传图片到对象存储
// POST /api/uploads/images
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.svc == nil {
		InternalError(c, "Object storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "Missing file field: "+err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "Open uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	result, err := h.svc.UploadImage(
		c.Request.Context(),
		file,
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, result)
}
