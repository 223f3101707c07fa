package repository

import (
	"context"
	"errors"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"gorm.io/gorm"
)

// ClientRepository 客户仓库
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository 创建客户仓库
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// FindByID 根据ID查找客户
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByEmail 根据邮箱查找客户
func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// Create 创建客户
func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// Update 保存客户
func (r *ClientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// UpdateFields 部分字段更新，不触碰未指定字段
func (r *ClientRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Client{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 删除客户。流水不级联删除，留存为孤儿记录。
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List 获取客户列表
func (r *ClientRepository) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Client{})

	if keyword := filters["keyword"]; keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR company LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if stage := filters["stage"]; stage != "" {
		query = query.Where("stage = ?", stage)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if tier := filters["tier"]; tier != "" {
		query = query.Where("tier = ?", tier)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&clients).Error

	return clients, total, err
}
