package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"go.uber.org/zap"
)

// ClientService 客户服务
type ClientService struct {
	repos   *repository.Repositories
	finance *FinanceService
	logger  *zap.Logger
}

// NewClientService 创建客户服务
func NewClientService(repos *repository.Repositories, finance *FinanceService, logger *zap.Logger) *ClientService {
	return &ClientService{repos: repos, finance: finance, logger: logger}
}

// CreateClientRequest 创建客户请求
type CreateClientRequest struct {
	FirstName      string   `json:"first_name" binding:"required"`
	LastName       string   `json:"last_name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone"`
	Company        string   `json:"company"`
	Address        string   `json:"address"`
	Stage          string   `json:"stage"`
	Status         string   `json:"status"`
	ReferredByID   *string  `json:"referred_by_id"`
	WarrantyStatus string   `json:"warranty_status"`
	WarrantyExpiry *string  `json:"warranty_expiry"`
	Tags           []string `json:"tags"`
	Notes          string   `json:"notes"`
}

// UpdateClientRequest 更新客户请求。派生财务字段不可经此修改，
// 即使提交也会被下一次重算覆盖。
type UpdateClientRequest struct {
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Company        *string   `json:"company"`
	Address        *string   `json:"address"`
	Stage          *string   `json:"stage"`
	Status         *string   `json:"status"`
	Tier           *string   `json:"tier"`
	ReferredByID   *string   `json:"referred_by_id"`
	WarrantyStatus *string   `json:"warranty_status"`
	WarrantyExpiry *string   `json:"warranty_expiry"`
	Tags           *[]string `json:"tags"`
	Notes          *string   `json:"notes"`
}

// ClientListResult 客户列表结果
type ClientListResult struct {
	Items      []entity.Client `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// Create 创建客户
func (s *ClientService) Create(ctx context.Context, req *CreateClientRequest) (*entity.Client, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.FirstName) == "" {
		fields["first_name"] = "required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		fields["last_name"] = "required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "required"
	}
	if req.Stage != "" && !entity.ValidClientStage(req.Stage) {
		fields["stage"] = "invalid value"
	}
	if req.Status != "" && !entity.ValidClientStatus(req.Status) {
		fields["status"] = "invalid value"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	if _, err := s.repos.Client.FindByEmail(ctx, req.Email); err == nil {
		return nil, newValidationError(map[string]string{"email": "already in use"})
	}

	stage := req.Stage
	if stage == "" {
		stage = entity.ClientStageLead
	}
	status := req.Status
	if status == "" {
		status = entity.ClientStatusActive
	}
	warrantyStatus := req.WarrantyStatus
	if warrantyStatus == "" {
		warrantyStatus = entity.WarrantyNone
	}

	var expiry *entity.Date
	if req.WarrantyExpiry != nil && *req.WarrantyExpiry != "" {
		d, err := entity.ParseDate(*req.WarrantyExpiry)
		if err != nil {
			return nil, newValidationError(map[string]string{"warranty_expiry": "must be YYYY-MM-DD"})
		}
		expiry = &d
	}

	now := time.Now()
	client := &entity.Client{
		ID:             uuid.New().String()[:32],
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		Address:        req.Address,
		Stage:          stage,
		Status:         status,
		Tier:           entity.TierSilver,
		ReferredByID:   req.ReferredByID,
		WarrantyStatus: warrantyStatus,
		WarrantyExpiry: expiry,
		Tags:           req.Tags,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repos.Client.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// Get 获取客户详情。读取时做质保自愈，不触发财务重算，
// 写路径的同步重算负责保证财务字段新鲜。
func (s *ClientService) Get(ctx context.Context, id string) (*entity.Client, error) {
	client, err := s.repos.Client.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.finance.ResolveWarranty(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List 获取客户列表。对每个客户先做质保自愈，再无条件重算财务并
// 回读，作为写路径非事务失败时的兜底修复。
func (s *ClientService) List(ctx context.Context, page, pageSize int, filters map[string]string) (*ClientListResult, error) {
	clients, total, err := s.repos.Client.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	refreshed := make([]entity.Client, 0, len(clients))
	for i := range clients {
		client := &clients[i]
		if err := s.finance.ResolveWarranty(ctx, client); err != nil {
			return nil, err
		}
		s.finance.RecalculateQuietly(ctx, client.ID)

		fresh, err := s.repos.Client.FindByID(ctx, client.ID)
		if err != nil {
			// 并发删除，跳过该行
			if err == repository.ErrNotFound {
				continue
			}
			return nil, err
		}
		refreshed = append(refreshed, *fresh)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &ClientListResult{
		Items:      refreshed,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Update 更新客户资料字段
func (s *ClientService) Update(ctx context.Context, id string, req *UpdateClientRequest) (*entity.Client, error) {
	client, err := s.repos.Client.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Stage != nil && !entity.ValidClientStage(*req.Stage) {
		return nil, newValidationError(map[string]string{"stage": "invalid value"})
	}
	if req.Status != nil && !entity.ValidClientStatus(*req.Status) {
		return nil, newValidationError(map[string]string{"status": "invalid value"})
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Stage != nil {
		client.Stage = *req.Stage
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.Tier != nil {
		// 手工置vip后由等级判定保持粘性，其余取值会被下次重算覆盖
		client.Tier = *req.Tier
	}
	if req.ReferredByID != nil {
		client.ReferredByID = req.ReferredByID
	}
	if req.WarrantyStatus != nil {
		client.WarrantyStatus = *req.WarrantyStatus
	}
	if req.WarrantyExpiry != nil {
		if *req.WarrantyExpiry == "" {
			client.WarrantyExpiry = nil
		} else {
			d, err := entity.ParseDate(*req.WarrantyExpiry)
			if err != nil {
				return nil, newValidationError(map[string]string{"warranty_expiry": "must be YYYY-MM-DD"})
			}
			client.WarrantyExpiry = &d
		}
	}
	if req.Tags != nil {
		client.Tags = *req.Tags
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	client.UpdatedAt = time.Now()

	if err := s.repos.Client.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

// Delete 删除客户。其流水留存为孤儿记录，之后针对该客户的重算
// 以ErrNotFound结束并仅记日志。
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Client.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("client deleted, transactions orphaned", zap.String("client_id", id))
	return nil
}

// Transactions 获取客户流水历史，新到旧
func (s *ClientService) Transactions(ctx context.Context, clientID string) ([]entity.Transaction, error) {
	if _, err := s.repos.Client.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repos.Transaction.ListByClient(ctx, clientID)
}

// Interactions 获取客户互动历史
func (s *ClientService) Interactions(ctx context.Context, clientID string) ([]entity.Interaction, error) {
	if _, err := s.repos.Client.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repos.Interaction.ListByClient(ctx, clientID)
}
