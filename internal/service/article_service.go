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

// ArticleService 文章服务
type ArticleService struct {
	repos *repository.Repositories
	rdb   *redis.Client
}

// NewArticleService 创建文章服务
func NewArticleService(repos *repository.Repositories, rdb *redis.Client) *ArticleService {
	return &ArticleService{repos: repos, rdb: rdb}
}

// CreateArticleRequest 创建文章请求
type CreateArticleRequest struct {
	Slug      string `json:"slug" binding:"required"`
	TitleEN   string `json:"title_en" binding:"required"`
	TitleVI   string `json:"title_vi" binding:"required"`
	ExcerptEN string `json:"excerpt_en"`
	ExcerptVI string `json:"excerpt_vi"`
	BodyEN    string `json:"body_en"`
	BodyVI    string `json:"body_vi"`
	CoverURL  string `json:"cover_url"`
}

// UpdateArticleRequest 更新文章请求
type UpdateArticleRequest struct {
	Slug      *string `json:"slug"`
	TitleEN   *string `json:"title_en"`
	TitleVI   *string `json:"title_vi"`
	ExcerptEN *string `json:"excerpt_en"`
	ExcerptVI *string `json:"excerpt_vi"`
	BodyEN    *string `json:"body_en"`
	BodyVI    *string `json:"body_vi"`
	CoverURL  *string `json:"cover_url"`
}

// ArticleListResult 文章列表结果
type ArticleListResult struct {
	Items      []entity.Article `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Create 创建文章（草稿）
func (s *ArticleService) Create(ctx context.Context, authorID string, req *CreateArticleRequest) (*entity.Article, error) {
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

	if _, err := s.repos.Article.FindBySlug(ctx, req.Slug); err == nil {
		return nil, newValidationError(map[string]string{"slug": "already in use"})
	}

	now := time.Now()
	article := &entity.Article{
		ID:        uuid.New().String()[:32],
		Slug:      req.Slug,
		TitleEN:   req.TitleEN,
		TitleVI:   req.TitleVI,
		ExcerptEN: req.ExcerptEN,
		ExcerptVI: req.ExcerptVI,
		BodyEN:    req.BodyEN,
		BodyVI:    req.BodyVI,
		CoverURL:  req.CoverURL,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.clearCache(ctx)
	return article, nil
}

// Get 获取文章详情
func (s *ArticleService) Get(ctx context.Context, id string) (*entity.Article, error) {
	return s.repos.Article.FindByID(ctx, id)
}

// GetBySlug 根据slug获取文章（官网公开接口）
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	return s.repos.Article.FindBySlug(ctx, slug)
}

// List 获取文章列表（后台）
func (s *ArticleService) List(ctx context.Context, page, pageSize int, filters map[string]string) (*ArticleListResult, error) {
	articles, total, err := s.repos.Article.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &ArticleListResult{
		Items:      articles,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// ListPublished 获取已发布文章（官网公开接口）
func (s *ArticleService) ListPublished(ctx context.Context) ([]entity.Article, error) {
	return s.repos.Article.ListPublished(ctx)
}

// Update 更新文章
func (s *ArticleService) Update(ctx context.Context, id string, req *UpdateArticleRequest) (*entity.Article, error) {
	article, err := s.repos.Article.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		article.Slug = *req.Slug
	}
	if req.TitleEN != nil {
		article.TitleEN = *req.TitleEN
	}
	if req.TitleVI != nil {
		article.TitleVI = *req.TitleVI
	}
	if req.ExcerptEN != nil {
		article.ExcerptEN = *req.ExcerptEN
	}
	if req.ExcerptVI != nil {
		article.ExcerptVI = *req.ExcerptVI
	}
	if req.BodyEN != nil {
		article.BodyEN = *req.BodyEN
	}
	if req.BodyVI != nil {
		article.BodyVI = *req.BodyVI
	}
	if req.CoverURL != nil {
		article.CoverURL = *req.CoverURL
	}
	article.UpdatedAt = time.Now()

	if err := s.repos.Article.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	s.clearCache(ctx)
	return article, nil
}

// Publish 发布文章
func (s *ArticleService) Publish(ctx context.Context, id string) (*entity.Article, error) {
	article, err := s.repos.Article.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	article.PublishedAt = &now
	article.UpdatedAt = now

	if err := s.repos.Article.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}

	s.clearCache(ctx)
	return article, nil
}

// Unpublish 撤回文章
func (s *ArticleService) Unpublish(ctx context.Context, id string) (*entity.Article, error) {
	article, err := s.repos.Article.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.PublishedAt = nil
	article.UpdatedAt = time.Now()

	if err := s.repos.Article.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("unpublish article: %w", err)
	}

	s.clearCache(ctx)
	return article, nil
}

// Delete 软删除文章
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Article.Delete(ctx, id); err != nil {
		return err
	}
	s.clearCache(ctx)
	return nil
}

// clearCache 清除官网文章缓存
func (s *ArticleService) clearCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, "public:articles")
}
