package repository

import (
	"context"
	"errors"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"gorm.io/gorm"
)

// InteractionRepository 客户互动仓库
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository 创建客户互动仓库
func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// FindByID 根据ID查找互动记录
func (r *InteractionRepository) FindByID(ctx context.Context, id string) (*entity.Interaction, error) {
	var it entity.Interaction
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

// Create 创建互动记录
func (r *InteractionRepository) Create(ctx context.Context, it *entity.Interaction) error {
	return r.db.WithContext(ctx).Create(it).Error
}

// Update 保存互动记录
func (r *InteractionRepository) Update(ctx context.Context, it *entity.Interaction) error {
	return r.db.WithContext(ctx).Save(it).Error
}

// Delete 删除互动记录
func (r *InteractionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Interaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByClient 获取某客户互动记录，按发生时间倒序
func (r *InteractionRepository) ListByClient(ctx context.Context, clientID string) ([]entity.Interaction, error) {
	var items []entity.Interaction
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("occurred_at DESC").
		Find(&items).Error
	return items, err
}

// List 获取互动记录列表
func (r *InteractionRepository) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Interaction, int64, error) {
	var items []entity.Interaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Interaction{})

	if clientID := filters["client_id"]; clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if itType := filters["type"]; itType != "" {
		query = query.Where("type = ?", itType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("occurred_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}
