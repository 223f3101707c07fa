package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"go.uber.org/zap"
)

// InquiryService 官网询单服务。提交询单时若邮箱未对应客户，
// 自动建立lead阶段客户档案。
type InquiryService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewInquiryService 创建询单服务
func NewInquiryService(repos *repository.Repositories, logger *zap.Logger) *InquiryService {
	return &InquiryService{repos: repos, logger: logger}
}

// CreateInquiryRequest 提交询单请求（官网公开接口）
type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
	Locale  string `json:"locale"`
}

// InquiryListResult 询单列表结果
type InquiryListResult struct {
	Items      []entity.Inquiry `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Create 提交询单，必要时自动创建客户
func (s *InquiryService) Create(ctx context.Context, req *CreateInquiryRequest) (*entity.Inquiry, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "required"
	}
	if strings.TrimSpace(req.Message) == "" {
		fields["message"] = "required"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	locale := req.Locale
	if locale != "vi" {
		locale = "en"
	}

	client, err := s.repos.Client.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("lookup client: %w", err)
		}
		client, err = s.autoCreateClient(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	inquiry := &entity.Inquiry{
		ID:        uuid.New().String()[:32],
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Locale:    locale,
		Status:    entity.InquiryStatusNew,
		ClientID:  &client.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repos.Inquiry.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return inquiry, nil
}

// autoCreateClient 根据询单信息建立lead客户
func (s *InquiryService) autoCreateClient(ctx context.Context, req *CreateInquiryRequest) (*entity.Client, error) {
	first, last := splitName(req.Name)

	now := time.Now()
	client := &entity.Client{
		ID:             uuid.New().String()[:32],
		FirstName:      first,
		LastName:       last,
		Email:          req.Email,
		Phone:          req.Phone,
		Stage:          entity.ClientStageLead,
		Status:         entity.ClientStatusActive,
		Tier:           entity.TierSilver,
		WarrantyStatus: entity.WarrantyNone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repos.Client.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("auto-create client: %w", err)
	}

	s.logger.Info("client auto-created from inquiry",
		zap.String("client_id", client.ID),
		zap.String("email", client.Email),
	)
	return client, nil
}

// splitName 将全名拆为first/last，单词名落入first
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return name, ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// Get 获取询单详情
func (s *InquiryService) Get(ctx context.Context, id string) (*entity.Inquiry, error) {
	return s.repos.Inquiry.FindByID(ctx, id)
}

// List 获取询单列表
func (s *InquiryService) List(ctx context.Context, page, pageSize int, filters map[string]string) (*InquiryListResult, error) {
	items, total, err := s.repos.Inquiry.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &InquiryListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus 更新询单状态
func (s *InquiryService) UpdateStatus(ctx context.Context, id, status string) (*entity.Inquiry, error) {
	switch status {
	case entity.InquiryStatusNew, entity.InquiryStatusContacted, entity.InquiryStatusClosed:
	default:
		return nil, newValidationError(map[string]string{"status": "invalid value"})
	}

	inquiry, err := s.repos.Inquiry.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	inquiry.Status = status
	inquiry.UpdatedAt = time.Now()

	if err := s.repos.Inquiry.Update(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("update inquiry: %w", err)
	}
	return inquiry, nil
}

// Delete 删除询单
func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return s.repos.Inquiry.Delete(ctx, id)
}
