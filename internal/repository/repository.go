package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
)

// Repositories 仓库集合
type Repositories struct {
	db *gorm.DB

	User        *UserRepository
	Client      *ClientRepository
	Transaction *TransactionRepository
	Deal        *DealRepository
	Interaction *InteractionRepository
	Inquiry     *InquiryRepository
	Project     *ProjectRepository
	Article     *ArticleRepository
	Content     *ContentRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		User:        NewUserRepository(db),
		Client:      NewClientRepository(db),
		Transaction: NewTransactionRepository(db),
		Deal:        NewDealRepository(db),
		Interaction: NewInteractionRepository(db),
		Inquiry:     NewInquiryRepository(db),
		Project:     NewProjectRepository(db),
		Article:     NewArticleRepository(db),
		Content:     NewContentRepository(db),
	}
}

// Atomic 在单个数据库事务内执行fn，fn收到绑定该事务的仓库集合。
// 客户财务重算的读-汇总-写-定级流水线依赖它保证原子性。
func (r *Repositories) Atomic(ctx context.Context, fn func(txRepos *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
