package repository

import (
	"context"
	"errors"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"gorm.io/gorm"
)

// DealRepository 商机仓库
type DealRepository struct {
	db *gorm.DB
}

// NewDealRepository 创建商机仓库
func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

// FindByID 根据ID查找商机
func (r *DealRepository) FindByID(ctx context.Context, id string) (*entity.Deal, error) {
	var deal entity.Deal
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ?", id).
		First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &deal, nil
}

// Create 创建商机
func (r *DealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

// Update 保存商机
func (r *DealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	return r.db.WithContext(ctx).Save(deal).Error
}

// Delete 删除商机
func (r *DealRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Deal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List 获取商机列表
func (r *DealRepository) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Deal, int64, error) {
	var deals []entity.Deal
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Deal{})

	if clientID := filters["client_id"]; clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if stage := filters["stage"]; stage != "" {
		query = query.Where("stage = ?", stage)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Client").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&deals).Error

	return deals, total, err
}
