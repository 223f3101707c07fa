package repository

import (
	"context"
	"errors"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"gorm.io/gorm"
)

// InquiryRepository 询单仓库
type InquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository 创建询单仓库
func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// FindByID 根据ID查找询单
func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	var inq entity.Inquiry
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&inq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inq, nil
}

// Create 创建询单
func (r *InquiryRepository) Create(ctx context.Context, inq *entity.Inquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

// Update 保存询单
func (r *InquiryRepository) Update(ctx context.Context, inq *entity.Inquiry) error {
	return r.db.WithContext(ctx).Save(inq).Error
}

// Delete 删除询单
func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Inquiry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List 获取询单列表
func (r *InquiryRepository) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Inquiry, int64, error) {
	var items []entity.Inquiry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Inquiry{})

	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if email := filters["email"]; email != "" {
		query = query.Where("email = ?", email)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}
