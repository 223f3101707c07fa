package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// CRMHandler 销售机会与互动处理器
type CRMHandler struct {
	svc *service.CRMService
}

// NewCRMHandler 创建CRM处理器
func NewCRMHandler(svc *service.CRMService) *CRMHandler {
	return &CRMHandler{svc: svc}
}

// CreateDeal 创建销售机会
// POST /api/deals
func (h *CRMHandler) CreateDeal(c *gin.Context) {
	var req service.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	deal, err := h.svc.CreateDeal(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, deal)
}

// GetDeal 获取销售机会详情
// GET /api/deals/:id
func (h *CRMHandler) GetDeal(c *gin.Context) {
	deal, err := h.svc.GetDeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, deal)
}

// ListDeals 销售机会列表
// GET /api/deals
func (h *CRMHandler) ListDeals(c *gin.Context) {
	page, pageSize := pagination(c)
	filters := map[string]string{
		"client_id": c.Query("client_id"),
		"stage":     c.Query("stage"),
	}

	result, err := h.svc.ListDeals(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, result)
}

// UpdateDeal 更新销售机会
// PUT /api/deals/:id
func (h *CRMHandler) UpdateDeal(c *gin.Context) {
	var req service.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	deal, err := h.svc.UpdateDeal(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, deal)
}

// DeleteDeal 删除销售机会
// DELETE /api/deals/:id
func (h *CRMHandler) DeleteDeal(c *gin.Context) {
	if err := h.svc.DeleteDeal(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}

// CreateInteraction 创建客户互动记录
// POST /api/interactions
func (h *CRMHandler) CreateInteraction(c *gin.Context) {
	var req service.CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.svc.CreateInteraction(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, item)
}

// ListInteractions 互动记录列表
// GET /api/interactions
func (h *CRMHandler) ListInteractions(c *gin.Context) {
	page, pageSize := pagination(c)
	filters := map[string]string{
		"client_id": c.Query("client_id"),
		"type":      c.Query("type"),
	}

	items, total, err := h.svc.ListInteractions(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateInteraction 更新互动记录
// PUT /api/interactions/:id
func (h *CRMHandler) UpdateInteraction(c *gin.Context) {
	var req service.UpdateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.svc.UpdateInteraction(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, item)
}

// DeleteInteraction 删除互动记录
// DELETE /api/interactions/:id
func (h *CRMHandler) DeleteInteraction(c *gin.Context) {
	if err := h.svc.DeleteInteraction(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}
