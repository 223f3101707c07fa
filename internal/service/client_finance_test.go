package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/modernointeriors/modernointeriors-sub000/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupFinanceTest(t *testing.T) (*FinanceService, *repository.Repositories, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return NewFinanceService(repos, zap.NewNop()), repos, db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(txType, status, amount string) entity.Transaction {
	return entity.Transaction{
		Type:   txType,
		Status: status,
		Amount: dec(amount),
	}
}

func TestAggregateRoutesByTypeAndStatus(t *testing.T) {
	sum := Aggregate([]entity.Transaction{
		tx(entity.TransactionTypePayment, entity.TransactionStatusCompleted, "1000.50"),
		tx(entity.TransactionTypePayment, entity.TransactionStatusCompleted, "2499.50"),
		tx(entity.TransactionTypePayment, entity.TransactionStatusPending, "9999"),
		tx(entity.TransactionTypePayment, entity.TransactionStatusCancelled, "5000"),
		tx(entity.TransactionTypeRefund, entity.TransactionStatusCompleted, "300"),
		tx(entity.TransactionTypeRefund, entity.TransactionStatusPending, "700"),
		tx(entity.TransactionTypeCommission, entity.TransactionStatusCompleted, "150.25"),
		tx(entity.TransactionTypeCommission, entity.TransactionStatusCompleted, "49.75"),
	})

	assert.True(t, sum.TotalSpending.Equal(dec("3500")), "total spending: %s", sum.TotalSpending)
	assert.Equal(t, 2, sum.OrderCount)
	assert.True(t, sum.RefundAmount.Equal(dec("300")), "refund amount: %s", sum.RefundAmount)
	assert.True(t, sum.Commission.Equal(dec("200")), "commission: %s", sum.Commission)
	assert.Equal(t, 2, sum.CommissionCount)
}

func TestAggregateEmpty(t *testing.T) {
	sum := Aggregate(nil)

	assert.True(t, sum.TotalSpending.IsZero())
	assert.True(t, sum.RefundAmount.IsZero())
	assert.True(t, sum.Commission.IsZero())
	assert.Equal(t, 0, sum.OrderCount)
	assert.Equal(t, 0, sum.CommissionCount)
}

func TestClassifyTierThresholds(t *testing.T) {
	cases := []struct {
		spending string
		want     string
	}{
		{"0", entity.TierSilver},
		{"49999.99", entity.TierSilver},
		{"50000", entity.TierGold},
		{"50000.01", entity.TierGold},
		{"99999.99", entity.TierGold},
		{"100000", entity.TierPlatinum},
		{"250000", entity.TierPlatinum},
	}
	for _, tc := range cases {
		got := ClassifyTier(entity.TierSilver, dec(tc.spending), 0)
		assert.Equal(t, tc.want, got, "spending %s", tc.spending)
	}
}

func TestClassifyTierVIP(t *testing.T) {
	// 推荐计数达标即vip，与消费无关
	assert.Equal(t, entity.TierVIP, ClassifyTier(entity.TierSilver, decimal.Zero, 5))
	assert.Equal(t, entity.TierVIP, ClassifyTier(entity.TierSilver, dec("200000"), 7))

	// vip粘性：存储等级为vip时不会被消费降级
	assert.Equal(t, entity.TierVIP, ClassifyTier(entity.TierVIP, decimal.Zero, 0))
	assert.Equal(t, entity.TierVIP, ClassifyTier(entity.TierVIP, dec("60000"), 0))

	// 推荐计数不足且非vip时按消费定级
	assert.Equal(t, entity.TierPlatinum, ClassifyTier(entity.TierGold, dec("100000"), 4))
}

func TestRecalculatePersistsDerivedFields(t *testing.T) {
	finance, repos, db := setupFinanceTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	testutil.SeedTestTransaction(t, db, "tx-001", client.ID, "30000", entity.TransactionTypePayment, entity.TransactionStatusCompleted)
	testutil.SeedTestTransaction(t, db, "tx-002", client.ID, "30000", entity.TransactionTypePayment, entity.TransactionStatusCompleted)
	testutil.SeedTestTransaction(t, db, "tx-003", client.ID, "9999", entity.TransactionTypePayment, entity.TransactionStatusPending)
	testutil.SeedTestTransaction(t, db, "tx-004", client.ID, "5000", entity.TransactionTypeRefund, entity.TransactionStatusCompleted)
	testutil.SeedTestTransaction(t, db, "tx-005", client.ID, "1200", entity.TransactionTypeCommission, entity.TransactionStatusCompleted)

	require.NoError(t, finance.Recalculate(ctx, client.ID))

	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)

	assert.True(t, fresh.TotalSpending.Equal(dec("60000")), "total spending: %s", fresh.TotalSpending)
	assert.Equal(t, 2, fresh.OrderCount)
	assert.True(t, fresh.RefundAmount.Equal(dec("5000")), "refund amount: %s", fresh.RefundAmount)
	assert.True(t, fresh.Commission.Equal(dec("1200")), "commission: %s", fresh.Commission)
	assert.True(t, fresh.ReferralRevenue.Equal(dec("1200")), "referral revenue: %s", fresh.ReferralRevenue)
	assert.Equal(t, 1, fresh.ReferralCount)
	assert.Equal(t, entity.TierGold, fresh.Tier)
}

func TestRecalculateIdempotent(t *testing.T) {
	finance, repos, db := setupFinanceTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	testutil.SeedTestTransaction(t, db, "tx-001", client.ID, "120000", entity.TransactionTypePayment, entity.TransactionStatusCompleted)

	require.NoError(t, finance.Recalculate(ctx, client.ID))
	require.NoError(t, finance.Recalculate(ctx, client.ID))

	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)

	assert.True(t, fresh.TotalSpending.Equal(dec("120000")))
	assert.Equal(t, 1, fresh.OrderCount)
	assert.Equal(t, entity.TierPlatinum, fresh.Tier)
}

func TestRecalculatePromotesToVIPByCommissionCount(t *testing.T) {
	finance, repos, db := setupFinanceTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	for i := 0; i < 5; i++ {
		testutil.SeedTestTransaction(t, db, fmt.Sprintf("tx-%03d", i), client.ID, "100",
			entity.TransactionTypeCommission, entity.TransactionStatusCompleted)
	}

	require.NoError(t, finance.Recalculate(ctx, client.ID))

	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.TierVIP, fresh.Tier)
	assert.Equal(t, 5, fresh.ReferralCount)
	assert.True(t, fresh.ReferralRevenue.Equal(dec("500")))
	assert.True(t, fresh.TotalSpending.IsZero())
}

func TestRecalculateKeepsVIPSticky(t *testing.T) {
	finance, repos, db := setupFinanceTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	require.NoError(t, repos.Client.UpdateFields(ctx, client.ID, map[string]interface{}{
		"tier": entity.TierVIP,
	}))

	// 没有任何流水，消费为零，vip仍保持
	require.NoError(t, finance.Recalculate(ctx, client.ID))

	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.TierVIP, fresh.Tier)
	assert.True(t, fresh.TotalSpending.IsZero())
}

func TestRecalculateMissingClient(t *testing.T) {
	finance, _, _ := setupFinanceTest(t)

	err := finance.Recalculate(context.Background(), "no-such-client")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResolveWarrantyExpiresOnRead(t *testing.T) {
	finance, repos, db := setupFinanceTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	yesterday := entity.Date{Time: time.Now().AddDate(0, 0, -1)}
	require.NoError(t, repos.Client.UpdateFields(ctx, client.ID, map[string]interface{}{
		"warranty_status": entity.WarrantyActive,
		"warranty_expiry": yesterday,
	}))

	loaded, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	require.NoError(t, finance.ResolveWarranty(ctx, loaded))

	assert.Equal(t, entity.WarrantyExpired, loaded.WarrantyStatus)

	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.WarrantyExpired, fresh.WarrantyStatus)
}

func TestResolveWarrantyFutureExpiryUnchanged(t *testing.T) {
	finance, repos, db := setupFinanceTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	nextYear := entity.Date{Time: time.Now().AddDate(1, 0, 0)}
	require.NoError(t, repos.Client.UpdateFields(ctx, client.ID, map[string]interface{}{
		"warranty_status": entity.WarrantyActive,
		"warranty_expiry": nextYear,
	}))

	loaded, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	require.NoError(t, finance.ResolveWarranty(ctx, loaded))

	assert.Equal(t, entity.WarrantyActive, loaded.WarrantyStatus)
}

func TestResolveWarrantyNoneNeverMigrates(t *testing.T) {
	finance, repos, db := setupFinanceTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	yesterday := entity.Date{Time: time.Now().AddDate(0, 0, -1)}
	require.NoError(t, repos.Client.UpdateFields(ctx, client.ID, map[string]interface{}{
		"warranty_status": entity.WarrantyNone,
		"warranty_expiry": yesterday,
	}))

	loaded, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	require.NoError(t, finance.ResolveWarranty(ctx, loaded))

	assert.Equal(t, entity.WarrantyNone, loaded.WarrantyStatus)
}
