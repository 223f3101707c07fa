package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// InquiryHandler 咨询表单处理器
type InquiryHandler struct {
	svc *service.InquiryService
}

// NewInquiryHandler 创建咨询处理器
func NewInquiryHandler(svc *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

// Create 提交咨询（公开接口，匿名邮箱自动建档为潜在客户）
// POST /api/public/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var req service.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inquiry, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, inquiry)
}

// Get 获取咨询详情
// GET /api/inquiries/:id
func (h *InquiryHandler) Get(c *gin.Context) {
	inquiry, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, inquiry)
}

// List 咨询列表
// GET /api/inquiries
func (h *InquiryHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	filters := map[string]string{
		"status": c.Query("status"),
		"locale": c.Query("locale"),
	}

	result, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, result)
}

// UpdateStatus 更新咨询状态
// PUT /api/inquiries/:id/status
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inquiry, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, inquiry)
}

// Delete 删除咨询
// DELETE /api/inquiries/:id
func (h *InquiryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}
