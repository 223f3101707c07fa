package repository

import (
	"context"
	"errors"
	"time"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"gorm.io/gorm"
)

// ArticleRepository 文章仓库
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建文章仓库
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// FindByID 根据ID查找文章
func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*entity.Article, error) {
	var article entity.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindBySlug 根据slug查找文章
func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var article entity.Article
	err := r.db.WithContext(ctx).
		Where("slug = ? AND deleted_at IS NULL", slug).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Create 创建文章
func (r *ArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// Update 保存文章
func (r *ArticleRepository) Update(ctx context.Context, article *entity.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// Delete 软删除文章
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Article{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List 获取文章列表
func (r *ArticleRepository) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Article, int64, error) {
	var articles []entity.Article
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Article{}).Where("deleted_at IS NULL")

	if keyword := filters["keyword"]; keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title_en LIKE ? OR title_vi LIKE ?", pattern, pattern)
	}
	if published := filters["published"]; published == "true" {
		query = query.Where("published_at IS NOT NULL")
	} else if published == "false" {
		query = query.Where("published_at IS NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&articles).Error

	return articles, total, err
}

// ListPublished 获取已发布文章，官网公开接口使用
func (r *ArticleRepository) ListPublished(ctx context.Context) ([]entity.Article, error) {
	var articles []entity.Article
	err := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL AND deleted_at IS NULL").
		Order("published_at DESC").
		Find(&articles).Error
	return articles, err
}
