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

// CRMService 商机与客户互动服务
type CRMService struct {
	repos *repository.Repositories
}

// NewCRMService 创建CRM服务
func NewCRMService(repos *repository.Repositories) *CRMService {
	return &CRMService{repos: repos}
}

// CreateDealRequest 创建商机请求
type CreateDealRequest struct {
	ClientID          string           `json:"client_id" binding:"required"`
	Title             string           `json:"title" binding:"required"`
	Stage             string           `json:"stage"`
	Value             *decimal.Decimal `json:"value"`
	ExpectedCloseDate *string          `json:"expected_close_date"`
	Notes             string           `json:"notes"`
}

// UpdateDealRequest 更新商机请求
type UpdateDealRequest struct {
	Title             *string          `json:"title"`
	Stage             *string          `json:"stage"`
	Value             *decimal.Decimal `json:"value"`
	ExpectedCloseDate *string          `json:"expected_close_date"`
	Notes             *string          `json:"notes"`
}

// DealListResult 商机列表结果
type DealListResult struct {
	Items      []entity.Deal `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// CreateDeal 创建商机
func (s *CRMService) CreateDeal(ctx context.Context, req *CreateDealRequest) (*entity.Deal, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.ClientID) == "" {
		fields["client_id"] = "required"
	}
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "required"
	}
	if req.Stage != "" && !entity.ValidDealStage(req.Stage) {
		fields["stage"] = "invalid value"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	if _, err := s.repos.Client.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	stage := req.Stage
	if stage == "" {
		stage = entity.DealStageLead
	}
	value := decimal.Zero
	if req.Value != nil {
		value = *req.Value
	}

	var closeDate *entity.Date
	if req.ExpectedCloseDate != nil && *req.ExpectedCloseDate != "" {
		d, err := entity.ParseDate(*req.ExpectedCloseDate)
		if err != nil {
			return nil, newValidationError(map[string]string{"expected_close_date": "must be YYYY-MM-DD"})
		}
		closeDate = &d
	}

	now := time.Now()
	deal := &entity.Deal{
		ID:                uuid.New().String()[:32],
		ClientID:          req.ClientID,
		Title:             req.Title,
		Stage:             stage,
		Value:             value,
		ExpectedCloseDate: closeDate,
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repos.Deal.Create(ctx, deal); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}
	return deal, nil
}

// UpdateDeal 更新商机
func (s *CRMService) UpdateDeal(ctx context.Context, id string, req *UpdateDealRequest) (*entity.Deal, error) {
	deal, err := s.repos.Deal.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Stage != nil && !entity.ValidDealStage(*req.Stage) {
		return nil, newValidationError(map[string]string{"stage": "invalid value"})
	}

	if req.Title != nil {
		deal.Title = *req.Title
	}
	if req.Stage != nil {
		deal.Stage = *req.Stage
	}
	if req.Value != nil {
		deal.Value = *req.Value
	}
	if req.ExpectedCloseDate != nil {
		if *req.ExpectedCloseDate == "" {
			deal.ExpectedCloseDate = nil
		} else {
			d, err := entity.ParseDate(*req.ExpectedCloseDate)
			if err != nil {
				return nil, newValidationError(map[string]string{"expected_close_date": "must be YYYY-MM-DD"})
			}
			deal.ExpectedCloseDate = &d
		}
	}
	if req.Notes != nil {
		deal.Notes = *req.Notes
	}
	deal.UpdatedAt = time.Now()

	if err := s.repos.Deal.Update(ctx, deal); err != nil {
		return nil, fmt.Errorf("update deal: %w", err)
	}
	return deal, nil
}

// GetDeal 获取商机详情
func (s *CRMService) GetDeal(ctx context.Context, id string) (*entity.Deal, error) {
	return s.repos.Deal.FindByID(ctx, id)
}

// DeleteDeal 删除商机
func (s *CRMService) DeleteDeal(ctx context.Context, id string) error {
	return s.repos.Deal.Delete(ctx, id)
}

// ListDeals 获取商机列表
func (s *CRMService) ListDeals(ctx context.Context, page, pageSize int, filters map[string]string) (*DealListResult, error) {
	deals, total, err := s.repos.Deal.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &DealListResult{
		Items:      deals,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// CreateInteractionRequest 创建互动记录请求
type CreateInteractionRequest struct {
	ClientID   string    `json:"client_id" binding:"required"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Summary    string    `json:"summary" binding:"required"`
}

// UpdateInteractionRequest 更新互动记录请求
type UpdateInteractionRequest struct {
	Type       *string    `json:"type"`
	OccurredAt *time.Time `json:"occurred_at"`
	Summary    *string    `json:"summary"`
}

// CreateInteraction 创建互动记录
func (s *CRMService) CreateInteraction(ctx context.Context, req *CreateInteractionRequest) (*entity.Interaction, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.ClientID) == "" {
		fields["client_id"] = "required"
	}
	if strings.TrimSpace(req.Summary) == "" {
		fields["summary"] = "required"
	}
	if req.Type != "" && !entity.ValidInteractionType(req.Type) {
		fields["type"] = "invalid value"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	if _, err := s.repos.Client.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	itType := req.Type
	if itType == "" {
		itType = entity.InteractionTypeOther
	}
	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	now := time.Now()
	it := &entity.Interaction{
		ID:         uuid.New().String()[:32],
		ClientID:   req.ClientID,
		Type:       itType,
		OccurredAt: occurredAt,
		Summary:    req.Summary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repos.Interaction.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create interaction: %w", err)
	}
	return it, nil
}

// UpdateInteraction 更新互动记录
func (s *CRMService) UpdateInteraction(ctx context.Context, id string, req *UpdateInteractionRequest) (*entity.Interaction, error) {
	it, err := s.repos.Interaction.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil && !entity.ValidInteractionType(*req.Type) {
		return nil, newValidationError(map[string]string{"type": "invalid value"})
	}

	if req.Type != nil {
		it.Type = *req.Type
	}
	if req.OccurredAt != nil {
		it.OccurredAt = *req.OccurredAt
	}
	if req.Summary != nil {
		it.Summary = *req.Summary
	}
	it.UpdatedAt = time.Now()

	if err := s.repos.Interaction.Update(ctx, it); err != nil {
		return nil, fmt.Errorf("update interaction: %w", err)
	}
	return it, nil
}

// DeleteInteraction 删除互动记录
func (s *CRMService) DeleteInteraction(ctx context.Context, id string) error {
	return s.repos.Interaction.Delete(ctx, id)
}

// ListInteractions 获取互动记录列表
func (s *CRMService) ListInteractions(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Interaction, int64, error) {
	return s.repos.Interaction.List(ctx, page, pageSize, filters)
}
