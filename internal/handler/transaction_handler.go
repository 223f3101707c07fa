package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// TransactionHandler 交易处理器
type TransactionHandler struct {
	svc *service.TransactionService
}

// NewTransactionHandler 创建交易处理器
func NewTransactionHandler(svc *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Create 创建交易，完成后触发客户财务重算
// POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req service.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tx, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, tx)
}

// Get 获取交易详情
// GET /api/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	tx, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, tx)
}

// List 交易列表
// GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	filters := map[string]string{
		"client_id": c.Query("client_id"),
		"status":    c.Query("status"),
		"type":      c.Query("type"),
	}

	result, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, result)
}

// Update 更新交易
// PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	var req service.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tx, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, tx)
}

// Delete 删除交易
// DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}
