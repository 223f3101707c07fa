package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/redis/go-redis/v9"
)

// ProjectService 作品集项目服务
type ProjectService struct {
	repos *repository.Repositories
	rdb   *redis.Client
}

// NewProjectService 创建作品集项目服务
func NewProjectService(repos *repository.Repositories, rdb *redis.Client) *ProjectService {
	return &ProjectService{repos: repos, rdb: rdb}
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Slug          string   `json:"slug" binding:"required"`
	TitleEN       string   `json:"title_en" binding:"required"`
	TitleVI       string   `json:"title_vi" binding:"required"`
	DescriptionEN string   `json:"description_en"`
	DescriptionVI string   `json:"description_vi"`
	Category      string   `json:"category"`
	Location      string   `json:"location"`
	Area          string   `json:"area"`
	Year          int      `json:"year"`
	CoverURL      string   `json:"cover_url"`
	Gallery       []string `json:"gallery"`
	Published     bool     `json:"published"`
	SortOrder     int      `json:"sort_order"`
	ClientID      *string  `json:"client_id"`
}

// UpdateProjectRequest 更新项目请求
type UpdateProjectRequest struct {
	Slug          *string   `json:"slug"`
	TitleEN       *string   `json:"title_en"`
	TitleVI       *string   `json:"title_vi"`
	DescriptionEN *string   `json:"description_en"`
	DescriptionVI *string   `json:"description_vi"`
	Category      *string   `json:"category"`
	Location      *string   `json:"location"`
	Area          *string   `json:"area"`
	Year          *int      `json:"year"`
	CoverURL      *string   `json:"cover_url"`
	Gallery       *[]string `json:"gallery"`
	Published     *bool     `json:"published"`
	SortOrder     *int      `json:"sort_order"`
	ClientID      *string   `json:"client_id"`
}

// ProjectListResult 项目列表结果
type ProjectListResult struct {
	Items      []entity.Project `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Create 创建项目
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (*entity.Project, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.Slug) == "" {
		fields["slug"] = "required"
	}
	if strings.TrimSpace(req.TitleEN) == "" {
		fields["title_en"] = "required"
	}
	if strings.TrimSpace(req.TitleVI) == "" {
		fields["title_vi"] = "required"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	if _, err := s.repos.Project.FindBySlug(ctx, req.Slug); err == nil {
		return nil, newValidationError(map[string]string{"slug": "already in use"})
	}

	now := time.Now()
	project := &entity.Project{
		ID:            uuid.New().String()[:32],
		Slug:          req.Slug,
		TitleEN:       req.TitleEN,
		TitleVI:       req.TitleVI,
		DescriptionEN: req.DescriptionEN,
		DescriptionVI: req.DescriptionVI,
		Category:      req.Category,
		Location:      req.Location,
		Area:          req.Area,
		Year:          req.Year,
		CoverURL:      req.CoverURL,
		Gallery:       req.Gallery,
		Published:     req.Published,
		SortOrder:     req.SortOrder,
		ClientID:      req.ClientID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repos.Project.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.clearCache(ctx)
	return project, nil
}

// Get 获取项目详情
func (s *ProjectService) Get(ctx context.Context, id string) (*entity.Project, error) {
	return s.repos.Project.FindByID(ctx, id)
}

// GetBySlug 根据slug获取项目（官网公开接口）
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	return s.repos.Project.FindBySlug(ctx, slug)
}

// List 获取项目列表（后台）
func (s *ProjectService) List(ctx context.Context, page, pageSize int, filters map[string]string) (*ProjectListResult, error) {
	projects, total, err := s.repos.Project.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &ProjectListResult{
		Items:      projects,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// ListPublished 获取已发布项目（官网公开接口）
func (s *ProjectService) ListPublished(ctx context.Context) ([]entity.Project, error) {
	return s.repos.Project.ListPublished(ctx)
}

// Update 更新项目
func (s *ProjectService) Update(ctx context.Context, id string, req *UpdateProjectRequest) (*entity.Project, error) {
	project, err := s.repos.Project.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		project.Slug = *req.Slug
	}
	if req.TitleEN != nil {
		project.TitleEN = *req.TitleEN
	}
	if req.TitleVI != nil {
		project.TitleVI = *req.TitleVI
	}
	if req.DescriptionEN != nil {
		project.DescriptionEN = *req.DescriptionEN
	}
	if req.DescriptionVI != nil {
		project.DescriptionVI = *req.DescriptionVI
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Area != nil {
		project.Area = *req.Area
	}
	if req.Year != nil {
		project.Year = *req.Year
	}
	if req.CoverURL != nil {
		project.CoverURL = *req.CoverURL
	}
	if req.Gallery != nil {
		project.Gallery = *req.Gallery
	}
	if req.Published != nil {
		project.Published = *req.Published
	}
	if req.SortOrder != nil {
		project.SortOrder = *req.SortOrder
	}
	if req.ClientID != nil {
		project.ClientID = req.ClientID
	}
	project.UpdatedAt = time.Now()

	if err := s.repos.Project.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.clearCache(ctx)
	return project, nil
}

// Delete 软删除项目
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Project.Delete(ctx, id); err != nil {
		return err
	}
	s.clearCache(ctx)
	return nil
}

// clearCache 清除官网项目缓存
func (s *ProjectService) clearCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, "public:projects")
}
