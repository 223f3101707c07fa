package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/shopspring/decimal"
)

// TransactionService 财务流水服务。每次流水变更在自身持久化
// 成功后同步触发所属客户的财务重算。
type TransactionService struct {
	repos   *repository.Repositories
	finance *FinanceService
}

// NewTransactionService 创建财务流水服务
func NewTransactionService(repos *repository.Repositories, finance *FinanceService) *TransactionService {
	return &TransactionService{repos: repos, finance: finance}
}

// CreateTransactionRequest 创建流水请求，amount为数字字符串
type CreateTransactionRequest struct {
	ClientID    string          `json:"client_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	PaymentDate string          `json:"payment_date" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdateTransactionRequest 更新流水请求
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type"`
	Status      *string          `json:"status"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	PaymentDate *string          `json:"payment_date"`
	Notes       *string          `json:"notes"`
}

// TransactionListResult 流水列表结果
type TransactionListResult struct {
	Items      []entity.Transaction `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// Create 创建流水并重算所属客户
func (s *TransactionService) Create(ctx context.Context, req *CreateTransactionRequest) (*entity.Transaction, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.ClientID) == "" {
		fields["client_id"] = "required"
	}
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "required"
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		fields["amount"] = "must be a positive decimal"
	}
	if strings.TrimSpace(req.PaymentDate) == "" {
		fields["payment_date"] = "required"
	}
	if req.Type != "" && !entity.ValidTransactionType(req.Type) {
		fields["type"] = "invalid value"
	}
	if req.Status != "" && !entity.ValidTransactionStatus(req.Status) {
		fields["status"] = "invalid value"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	paymentDate, err := entity.ParseDate(req.PaymentDate)
	if err != nil {
		return nil, newValidationError(map[string]string{"payment_date": "must be YYYY-MM-DD"})
	}

	// 流水必须归属已有客户
	if _, err := s.repos.Client.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	txType := req.Type
	if txType == "" {
		txType = entity.TransactionTypePayment
	}
	status := req.Status
	if status == "" {
		status = entity.TransactionStatusPending
	}

	now := time.Now()
	tx := &entity.Transaction{
		ID:          uuid.New().String()[:32],
		ClientID:    req.ClientID,
		Amount:      req.Amount,
		Type:        txType,
		Status:      status,
		Title:       req.Title,
		Description: req.Description,
		PaymentDate: paymentDate,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repos.Transaction.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.finance.RecalculateQuietly(ctx, tx.ClientID)
	return tx, nil
}

// Update 更新流水并重算所属客户（取更新后的归属）
func (s *TransactionService) Update(ctx context.Context, id string, req *UpdateTransactionRequest) (*entity.Transaction, error) {
	tx, err := s.repos.Transaction.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil && req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, newValidationError(map[string]string{"amount": "must be a positive decimal"})
	}
	if req.Type != nil && !entity.ValidTransactionType(*req.Type) {
		return nil, newValidationError(map[string]string{"type": "invalid value"})
	}
	if req.Status != nil && !entity.ValidTransactionStatus(*req.Status) {
		return nil, newValidationError(map[string]string{"status": "invalid value"})
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Type != nil {
		tx.Type = *req.Type
	}
	if req.Status != nil {
		tx.Status = *req.Status
	}
	if req.Title != nil {
		tx.Title = *req.Title
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.PaymentDate != nil {
		d, err := entity.ParseDate(*req.PaymentDate)
		if err != nil {
			return nil, newValidationError(map[string]string{"payment_date": "must be YYYY-MM-DD"})
		}
		tx.PaymentDate = d
	}
	if req.Notes != nil {
		tx.Notes = *req.Notes
	}
	tx.UpdatedAt = time.Now()

	if err := s.repos.Transaction.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	s.finance.RecalculateQuietly(ctx, tx.ClientID)
	return tx, nil
}

// Delete 删除流水。删除前捕获归属客户，行移除后重算该客户。
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	tx, err := s.repos.Transaction.FindByID(ctx, id)
	if err != nil {
		return err
	}
	clientID := tx.ClientID

	if err := s.repos.Transaction.Delete(ctx, id); err != nil {
		return err
	}

	s.finance.RecalculateQuietly(ctx, clientID)
	return nil
}

// Get 获取流水详情
func (s *TransactionService) Get(ctx context.Context, id string) (*entity.Transaction, error) {
	return s.repos.Transaction.FindByID(ctx, id)
}

// List 获取流水列表
func (s *TransactionService) List(ctx context.Context, page, pageSize int, filters map[string]string) (*TransactionListResult, error) {
	txs, total, err := s.repos.Transaction.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &TransactionListResult{
		Items:      txs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
