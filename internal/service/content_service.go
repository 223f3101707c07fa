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
	"github.com/redis/go-redis/v9"
)

// ContentService 站点内容服务（首页/关于页、合作伙伴、FAQ）
type ContentService struct {
	repos *repository.Repositories
	rdb   *redis.Client
}

// NewContentService 创建站点内容服务
func NewContentService(repos *repository.Repositories, rdb *redis.Client) *ContentService {
	return &ContentService{repos: repos, rdb: rdb}
}

// UpdateContentRequest 更新单页内容请求
type UpdateContentRequest struct {
	PayloadEN map[string]interface{} `json:"payload_en"`
	PayloadVI map[string]interface{} `json:"payload_vi"`
}

// GetPage 获取单页内容，不存在时返回空载荷
func (s *ContentService) GetPage(ctx context.Context, key string) (*entity.SiteContent, error) {
	if key != entity.ContentKeyHomepage && key != entity.ContentKeyAbout {
		return nil, newValidationError(map[string]string{"key": "invalid value"})
	}

	content, err := s.repos.Content.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &entity.SiteContent{
				Key:       key,
				PayloadEN: entity.JSONB{},
				PayloadVI: entity.JSONB{},
			}, nil
		}
		return nil, err
	}
	return content, nil
}

// UpdatePage 更新单页内容
func (s *ContentService) UpdatePage(ctx context.Context, key, userID string, req *UpdateContentRequest) (*entity.SiteContent, error) {
	if key != entity.ContentKeyHomepage && key != entity.ContentKeyAbout {
		return nil, newValidationError(map[string]string{"key": "invalid value"})
	}

	content, err := s.repos.Content.FindByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		content = &entity.SiteContent{
			ID:        uuid.New().String()[:32],
			Key:       key,
			CreatedAt: time.Now(),
		}
	}

	if req.PayloadEN != nil {
		content.PayloadEN = entity.JSONB(req.PayloadEN)
	}
	if req.PayloadVI != nil {
		content.PayloadVI = entity.JSONB(req.PayloadVI)
	}
	content.UpdatedBy = userID
	content.UpdatedAt = time.Now()

	if err := s.repos.Content.Upsert(ctx, content); err != nil {
		return nil, fmt.Errorf("save content: %w", err)
	}

	s.clearCache(ctx, key)
	return content, nil
}

// PartnerRequest 合作伙伴请求
type PartnerRequest struct {
	Name      string `json:"name" binding:"required"`
	LogoURL   string `json:"logo_url"`
	Website   string `json:"website"`
	SortOrder int    `json:"sort_order"`
}

// CreatePartner 创建合作伙伴
func (s *ContentService) CreatePartner(ctx context.Context, req *PartnerRequest) (*entity.Partner, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, newValidationError(map[string]string{"name": "required"})
	}

	now := time.Now()
	partner := &entity.Partner{
		ID:        uuid.New().String()[:32],
		Name:      req.Name,
		LogoURL:   req.LogoURL,
		Website:   req.Website,
		SortOrder: req.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repos.Content.CreatePartner(ctx, partner); err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}
	return partner, nil
}

// UpdatePartner 更新合作伙伴
func (s *ContentService) UpdatePartner(ctx context.Context, id string, req *PartnerRequest) (*entity.Partner, error) {
	partner, err := s.repos.Content.FindPartnerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	partner.Name = req.Name
	partner.LogoURL = req.LogoURL
	partner.Website = req.Website
	partner.SortOrder = req.SortOrder
	partner.UpdatedAt = time.Now()

	if err := s.repos.Content.UpdatePartner(ctx, partner); err != nil {
		return nil, fmt.Errorf("update partner: %w", err)
	}
	return partner, nil
}

// DeletePartner 删除合作伙伴
func (s *ContentService) DeletePartner(ctx context.Context, id string) error {
	return s.repos.Content.DeletePartner(ctx, id)
}

// ListPartners 获取合作伙伴列表
func (s *ContentService) ListPartners(ctx context.Context) ([]entity.Partner, error) {
	return s.repos.Content.ListPartners(ctx)
}

// FAQRequest FAQ请求
type FAQRequest struct {
	QuestionEN string `json:"question_en" binding:"required"`
	QuestionVI string `json:"question_vi" binding:"required"`
	AnswerEN   string `json:"answer_en"`
	AnswerVI   string `json:"answer_vi"`
	SortOrder  int    `json:"sort_order"`
}

// CreateFAQ 创建FAQ
func (s *ContentService) CreateFAQ(ctx context.Context, req *FAQRequest) (*entity.FAQ, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.QuestionEN) == "" {
		fields["question_en"] = "required"
	}
	if strings.TrimSpace(req.QuestionVI) == "" {
		fields["question_vi"] = "required"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	now := time.Now()
	faq := &entity.FAQ{
		ID:         uuid.New().String()[:32],
		QuestionEN: req.QuestionEN,
		QuestionVI: req.QuestionVI,
		AnswerEN:   req.AnswerEN,
		AnswerVI:   req.AnswerVI,
		SortOrder:  req.SortOrder,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repos.Content.CreateFAQ(ctx, faq); err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	return faq, nil
}

// UpdateFAQ 更新FAQ
func (s *ContentService) UpdateFAQ(ctx context.Context, id string, req *FAQRequest) (*entity.FAQ, error) {
	faq, err := s.repos.Content.FindFAQByID(ctx, id)
	if err != nil {
		return nil, err
	}

	faq.QuestionEN = req.QuestionEN
	faq.QuestionVI = req.QuestionVI
	faq.AnswerEN = req.AnswerEN
	faq.AnswerVI = req.AnswerVI
	faq.SortOrder = req.SortOrder
	faq.UpdatedAt = time.Now()

	if err := s.repos.Content.UpdateFAQ(ctx, faq); err != nil {
		return nil, fmt.Errorf("update faq: %w", err)
	}
	return faq, nil
}

// DeleteFAQ 删除FAQ
func (s *ContentService) DeleteFAQ(ctx context.Context, id string) error {
	return s.repos.Content.DeleteFAQ(ctx, id)
}

// ListFAQs 获取FAQ列表
func (s *ContentService) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	return s.repos.Content.ListFAQs(ctx)
}

// clearCache 清除官网内容缓存
func (s *ContentService) clearCache(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, "public:content:"+key)
}
