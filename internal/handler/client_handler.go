package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// ClientHandler 客户处理器
type ClientHandler struct {
	svc *service.ClientService
}

// NewClientHandler 创建客户处理器
func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// Create 创建客户
// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req service.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, client)
}

// Get 获取客户详情
// GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, client)
}

// List 客户列表
// GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	filters := map[string]string{
		"keyword": c.Query("keyword"),
		"stage":   c.Query("stage"),
		"status":  c.Query("status"),
		"tier":    c.Query("tier"),
	}

	result, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, result)
}

// Update 更新客户
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var req service.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, client)
}

// Delete 删除客户
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}

// Transactions 客户交易记录
// GET /api/clients/:id/transactions
func (h *ClientHandler) Transactions(c *gin.Context) {
	items, err := h.svc.Transactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": items})
}

// Interactions 客户互动记录
// GET /api/clients/:id/interactions
func (h *ClientHandler) Interactions(c *gin.Context) {
	items, err := h.svc.Interactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": items})
}
