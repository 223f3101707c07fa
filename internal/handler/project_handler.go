package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// ProjectHandler 案例项目处理器
type ProjectHandler struct {
	svc *service.ProjectService
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// Create 创建项目
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, project)
}

// Get 获取项目详情
// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, project)
}

// GetBySlug 按slug获取已发布项目（公开接口）
// GET /api/public/projects/:slug
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, project)
}

// List 项目列表（后台）
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	filters := map[string]string{
		"keyword":  c.Query("keyword"),
		"category": c.Query("category"),
		"status":   c.Query("status"),
	}

	result, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, result)
}

// ListPublished 已发布项目列表（公开接口）
// GET /api/public/projects
func (h *ProjectHandler) ListPublished(c *gin.Context) {
	items, err := h.svc.ListPublished(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": items})
}

// Update 更新项目
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, project)
}

// Delete 删除项目
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}
