package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// ArticleHandler 文章处理器
type ArticleHandler struct {
	svc *service.ArticleService
}

// NewArticleHandler 创建文章处理器
func NewArticleHandler(svc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Create 创建文章
// POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	article, err := h.svc.Create(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, article)
}

// Get 获取文章详情
// GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, article)
}

// GetBySlug 按slug获取已发布文章（公开接口）
// GET /api/public/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, article)
}

// List 文章列表（后台）
// GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	filters := map[string]string{
		"keyword": c.Query("keyword"),
		"status":  c.Query("status"),
	}

	result, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, result)
}

// ListPublished 已发布文章列表（公开接口）
// GET /api/public/articles
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	items, err := h.svc.ListPublished(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": items})
}

// Update 更新文章
// PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	article, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, article)
}

// Publish 发布文章
// POST /api/articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	article, err := h.svc.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, article)
}

// Unpublish 下架文章
// POST /api/articles/:id/unpublish
func (h *ArticleHandler) Unpublish(c *gin.Context) {
	article, err := h.svc.Unpublish(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, article)
}

// Delete 删除文章
// DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}
