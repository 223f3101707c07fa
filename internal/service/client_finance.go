package service

import (
	"context"
	"fmt"
	"time"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// 等级阈值，与totalSpending做精确十进制比较，>=为含边界
var (
	tierGoldThreshold     = decimal.NewFromInt(50000)
	tierPlatinumThreshold = decimal.NewFromInt(100000)
)

// vipReferralThreshold 达到该推荐计数即为vip
const vipReferralThreshold = 5

// FinanceService 客户财务重算引擎。
// 客户的派生财务字段始终等于其已完成流水的纯函数，
// 每次流水变更后同步重算，而不是读取时惰性计算。
type FinanceService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewFinanceService 创建财务重算引擎
func NewFinanceService(repos *repository.Repositories, logger *zap.Logger) *FinanceService {
	return &FinanceService{repos: repos, logger: logger}
}

// FinancialSummary 单次汇总结果
type FinancialSummary struct {
	TotalSpending   decimal.Decimal
	RefundAmount    decimal.Decimal
	Commission      decimal.Decimal
	OrderCount      int
	CommissionCount int
}

// Aggregate 对一组流水做单遍汇总，只计入completed状态。
// payment计入totalSpending和orderCount，refund计入refundAmount，
// commission计入commission和commissionCount。
func Aggregate(txs []entity.Transaction) FinancialSummary {
	sum := FinancialSummary{
		TotalSpending: decimal.Zero,
		RefundAmount:  decimal.Zero,
		Commission:    decimal.Zero,
	}
	for _, t := range txs {
		if t.Status != entity.TransactionStatusCompleted {
			continue
		}
		switch t.Type {
		case entity.TransactionTypePayment:
			sum.TotalSpending = sum.TotalSpending.Add(t.Amount)
			sum.OrderCount++
		case entity.TransactionTypeRefund:
			sum.RefundAmount = sum.RefundAmount.Add(t.Amount)
		case entity.TransactionTypeCommission:
			sum.Commission = sum.Commission.Add(t.Amount)
			sum.CommissionCount++
		}
	}
	return sum
}

// ClassifyTier 等级判定，按优先级首个命中为准。
// vip具有粘性：一旦存储等级为vip，消费变化不会将其降级，
// 只有推荐计数跌回阈值之下且当前等级非vip时才按消费定级。
func ClassifyTier(currentTier string, totalSpending decimal.Decimal, referralCount int) string {
	switch {
	case referralCount >= vipReferralThreshold || currentTier == entity.TierVIP:
		return entity.TierVIP
	case totalSpending.GreaterThanOrEqual(tierPlatinumThreshold):
		return entity.TierPlatinum
	case totalSpending.GreaterThanOrEqual(tierGoldThreshold):
		return entity.TierGold
	default:
		return entity.TierSilver
	}
}

// Recalculate 重算客户的派生财务字段并重新定级。
// 读-汇总-写-定级在单个数据库事务内执行，避免并发流水写入
// 之间的丢失更新。客户不存在时返回repository.ErrNotFound。
//
// referralRevenue与referralCount取自客户自身commission类流水的
// 合计与条数，并非被推荐客户的统计口径；该口径沿用既有行为。
func (s *FinanceService) Recalculate(ctx context.Context, clientID string) error {
	return s.repos.Atomic(ctx, func(tx *repository.Repositories) error {
		client, err := tx.Client.FindByID(ctx, clientID)
		if err != nil {
			return err
		}

		txs, err := tx.Transaction.ListCompletedByClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("list completed transactions: %w", err)
		}

		sum := Aggregate(txs)
		tier := ClassifyTier(client.Tier, sum.TotalSpending, sum.CommissionCount)

		return tx.Client.UpdateFields(ctx, clientID, map[string]interface{}{
			"total_spending":   sum.TotalSpending,
			"refund_amount":    sum.RefundAmount,
			"commission":       sum.Commission,
			"order_count":      sum.OrderCount,
			"referral_revenue": sum.Commission,
			"referral_count":   sum.CommissionCount,
			"tier":             tier,
		})
	})
}

// RecalculateQuietly 重算但不向调用方传播失败：触发重算的流水操作
// 本身已持久化成功，重算失败只记日志，留给下一次列表读取兜底修复。
func (s *FinanceService) RecalculateQuietly(ctx context.Context, clientID string) {
	if err := s.Recalculate(ctx, clientID); err != nil {
		s.logger.Warn("client financial recalculation failed",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
	}
}

// ResolveWarranty 质保状态读取时自愈：存储状态为active且质保到期日
// 已过则落库改为expired。不存在none到active的自动迁移。
func (s *FinanceService) ResolveWarranty(ctx context.Context, client *entity.Client) error {
	if client.WarrantyStatus != entity.WarrantyActive {
		return nil
	}
	if client.WarrantyExpiry == nil || client.WarrantyExpiry.IsZero() {
		return nil
	}
	if !client.WarrantyExpiry.Before(time.Now()) {
		return nil
	}

	if err := s.repos.Client.UpdateFields(ctx, client.ID, map[string]interface{}{
		"warranty_status": entity.WarrantyExpired,
	}); err != nil {
		return fmt.Errorf("persist warranty status: %w", err)
	}
	client.WarrantyStatus = entity.WarrantyExpired
	return nil
}
