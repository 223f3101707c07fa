package repository

import (
	"context"
	"errors"
	"time"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"gorm.io/gorm"
)

// ProjectRepository 作品集项目仓库
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建作品集项目仓库
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID 根据ID查找项目
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindBySlug 根据slug查找项目
func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).
		Where("slug = ? AND deleted_at IS NULL", slug).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create 创建项目
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update 保存项目
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete 软删除项目
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Project{}).
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

// List 获取项目列表
func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Project, int64, error) {
	var projects []entity.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Project{}).Where("deleted_at IS NULL")

	if keyword := filters["keyword"]; keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title_en LIKE ? OR title_vi LIKE ?", pattern, pattern)
	}
	if category := filters["category"]; category != "" {
		query = query.Where("category = ?", category)
	}
	if published := filters["published"]; published != "" {
		query = query.Where("published = ?", published == "true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("sort_order ASC, created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&projects).Error

	return projects, total, err
}

// ListPublished 获取已发布项目，官网公开接口使用
func (r *ProjectRepository) ListPublished(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	err := r.db.WithContext(ctx).
		Where("published = ? AND deleted_at IS NULL", true).
		Order("sort_order ASC, created_at DESC").
		Find(&projects).Error
	return projects, err
}
