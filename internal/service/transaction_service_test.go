package service

import (
	"context"
	"testing"
	"time"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/modernointeriors/modernointeriors-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTransactionTest(t *testing.T) (*TransactionService, *repository.Repositories, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	finance := NewFinanceService(repos, zap.NewNop())
	return NewTransactionService(repos, finance), repos, db
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func TestTransactionCreateDefaultsAndRecalc(t *testing.T) {
	svc, repos, db := setupTransactionTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")

	tx, err := svc.Create(ctx, &CreateTransactionRequest{
		ClientID:    client.ID,
		Amount:      dec("60000"),
		Title:       "Villa interior package",
		PaymentDate: today(),
	})
	require.NoError(t, err)

	// 默认type payment、status pending
	assert.Equal(t, entity.TransactionTypePayment, tx.Type)
	assert.Equal(t, entity.TransactionStatusPending, tx.Status)

	// pending不计入汇总
	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, fresh.TotalSpending.IsZero())
	assert.Equal(t, entity.TierSilver, fresh.Tier)
}

func TestTransactionCreateCompletedTriggersRecalc(t *testing.T) {
	svc, repos, db := setupTransactionTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")

	_, err := svc.Create(ctx, &CreateTransactionRequest{
		ClientID:    client.ID,
		Amount:      dec("60000"),
		Status:      entity.TransactionStatusCompleted,
		Title:       "Villa interior package",
		PaymentDate: today(),
	})
	require.NoError(t, err)

	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, fresh.TotalSpending.Equal(dec("60000")))
	assert.Equal(t, 1, fresh.OrderCount)
	assert.Equal(t, entity.TierGold, fresh.Tier)
}

func TestTransactionCreateValidation(t *testing.T) {
	svc, _, db := setupTransactionTest(t)
	ctx := context.Background()

	testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")

	_, err := svc.Create(ctx, &CreateTransactionRequest{
		ClientID:    "client-001",
		Amount:      dec("-5"),
		Type:        "bogus",
		Title:       "",
		PaymentDate: today(),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "amount")
	assert.Contains(t, vErr.Fields, "type")
	assert.Contains(t, vErr.Fields, "title")
}

func TestTransactionCreateUnknownClient(t *testing.T) {
	svc, _, _ := setupTransactionTest(t)

	_, err := svc.Create(context.Background(), &CreateTransactionRequest{
		ClientID:    "no-such-client",
		Amount:      dec("100"),
		Title:       "Orphan",
		PaymentDate: today(),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTransactionStatusChangeRecalculates(t *testing.T) {
	svc, repos, db := setupTransactionTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	seeded := testutil.SeedTestTransaction(t, db, "tx-001", client.ID, "50000",
		entity.TransactionTypePayment, entity.TransactionStatusPending)

	completed := entity.TransactionStatusCompleted
	_, err := svc.Update(ctx, seeded.ID, &UpdateTransactionRequest{Status: &completed})
	require.NoError(t, err)

	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, fresh.TotalSpending.Equal(dec("50000")))
	assert.Equal(t, entity.TierGold, fresh.Tier)

	// 取消后再次重算，汇总回落
	cancelled := entity.TransactionStatusCancelled
	_, err = svc.Update(ctx, seeded.ID, &UpdateTransactionRequest{Status: &cancelled})
	require.NoError(t, err)

	fresh, err = repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, fresh.TotalSpending.IsZero())
	assert.Equal(t, entity.TierSilver, fresh.Tier)
}

func TestTransactionDeleteRecalculatesOwner(t *testing.T) {
	svc, repos, db := setupTransactionTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	testutil.SeedTestTransaction(t, db, "tx-001", client.ID, "30000",
		entity.TransactionTypePayment, entity.TransactionStatusCompleted)
	refund := testutil.SeedTestTransaction(t, db, "tx-002", client.ID, "5000",
		entity.TransactionTypeRefund, entity.TransactionStatusCompleted)

	finance := NewFinanceService(repos, zap.NewNop())
	require.NoError(t, finance.Recalculate(ctx, client.ID))

	require.NoError(t, svc.Delete(ctx, refund.ID))

	fresh, err := repos.Client.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, fresh.RefundAmount.IsZero(), "refund amount after delete: %s", fresh.RefundAmount)
	assert.True(t, fresh.TotalSpending.Equal(dec("30000")))
}
