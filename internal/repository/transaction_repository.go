package repository

import (
	"context"
	"errors"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"gorm.io/gorm"
)

// TransactionRepository 财务流水仓库
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository 创建财务流水仓库
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// FindByID 根据ID查找流水
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// Create 创建流水
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// Update 保存流水
func (r *TransactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// Delete 删除流水
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByClient 获取客户全部流水，新到旧
func (r *TransactionRepository) ListByClient(ctx context.Context, clientID string) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

// ListCompletedByClient 获取客户已完成流水，财务重算的唯一输入
func (r *TransactionRepository) ListCompletedByClient(ctx context.Context, clientID string) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND status = ?", clientID, entity.TransactionStatusCompleted).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

// List 获取流水列表
func (r *TransactionRepository) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Transaction, int64, error) {
	var txs []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

	if clientID := filters["client_id"]; clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if txType := filters["type"]; txType != "" {
		query = query.Where("type = ?", txType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&txs).Error

	return txs, total, err
}
