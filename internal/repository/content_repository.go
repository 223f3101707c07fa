package repository

import (
	"context"
	"errors"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"gorm.io/gorm"
)

// ContentRepository 站点内容仓库（单页内容、合作伙伴、FAQ）
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository 创建站点内容仓库
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// FindByKey 根据key查找单页内容
func (r *ContentRepository) FindByKey(ctx context.Context, key string) (*entity.SiteContent, error) {
	var content entity.SiteContent
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &content, nil
}

// Upsert 创建或覆盖单页内容
func (r *ContentRepository) Upsert(ctx context.Context, content *entity.SiteContent) error {
	return r.db.WithContext(ctx).Save(content).Error
}

// CreatePartner 创建合作伙伴
func (r *ContentRepository) CreatePartner(ctx context.Context, p *entity.Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// UpdatePartner 保存合作伙伴
func (r *ContentRepository) UpdatePartner(ctx context.Context, p *entity.Partner) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// DeletePartner 删除合作伙伴
func (r *ContentRepository) DeletePartner(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Partner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindPartnerByID 根据ID查找合作伙伴
func (r *ContentRepository) FindPartnerByID(ctx context.Context, id string) (*entity.Partner, error) {
	var p entity.Partner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListPartners 获取合作伙伴列表
func (r *ContentRepository) ListPartners(ctx context.Context) ([]entity.Partner, error) {
	var partners []entity.Partner
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&partners).Error
	return partners, err
}

// CreateFAQ 创建FAQ
func (r *ContentRepository) CreateFAQ(ctx context.Context, f *entity.FAQ) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// UpdateFAQ 保存FAQ
func (r *ContentRepository) UpdateFAQ(ctx context.Context, f *entity.FAQ) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// DeleteFAQ 删除FAQ
func (r *ContentRepository) DeleteFAQ(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.FAQ{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindFAQByID 根据ID查找FAQ
func (r *ContentRepository) FindFAQByID(ctx context.Context, id string) (*entity.FAQ, error) {
	var f entity.FAQ
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListFAQs 获取FAQ列表
func (r *ContentRepository) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	var faqs []entity.FAQ
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&faqs).Error
	return faqs, err
}
