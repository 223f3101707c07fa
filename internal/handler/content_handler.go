package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// ContentHandler 站点内容处理器
type ContentHandler struct {
	svc *service.ContentService
}

// NewContentHandler 创建内容处理器
func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// GetPage 获取页面内容（公开接口）
// GET /api/public/content/:key
func (h *ContentHandler) GetPage(c *gin.Context) {
	content, err := h.svc.GetPage(c.Request.Context(), c.Param("key"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, content)
}

// UpdatePage 更新页面内容
// PUT /api/content/:key
func (h *ContentHandler) UpdatePage(c *gin.Context) {
	var req service.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	content, err := h.svc.UpdatePage(c.Request.Context(), c.Param("key"), GetUserID(c), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, content)
}

// ListPartners 合作伙伴列表（公开接口）
// GET /api/public/partners
func (h *ContentHandler) ListPartners(c *gin.Context) {
	items, err := h.svc.ListPartners(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": items})
}

// CreatePartner 创建合作伙伴
// POST /api/partners
func (h *ContentHandler) CreatePartner(c *gin.Context) {
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	partner, err := h.svc.CreatePartner(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, partner)
}

// UpdatePartner 更新合作伙伴
// PUT /api/partners/:id
func (h *ContentHandler) UpdatePartner(c *gin.Context) {
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	partner, err := h.svc.UpdatePartner(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, partner)
}

// DeletePartner 删除合作伙伴
// DELETE /api/partners/:id
func (h *ContentHandler) DeletePartner(c *gin.Context) {
	if err := h.svc.DeletePartner(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}

// ListFAQs 常见问题列表（公开接口）
// GET /api/public/faqs
func (h *ContentHandler) ListFAQs(c *gin.Context) {
	items, err := h.svc.ListFAQs(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": items})
}

// CreateFAQ 创建常见问题
// POST /api/faqs
func (h *ContentHandler) CreateFAQ(c *gin.Context) {
	var req service.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	faq, err := h.svc.CreateFAQ(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, faq)
}

// UpdateFAQ 更新常见问题
// PUT /api/faqs/:id
func (h *ContentHandler) UpdateFAQ(c *gin.Context) {
	var req service.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	faq, err := h.svc.UpdateFAQ(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, faq)
}

// DeleteFAQ 删除常见问题
// DELETE /api/faqs/:id
func (h *ContentHandler) DeleteFAQ(c *gin.Context) {
	if err := h.svc.DeleteFAQ(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}
