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

func setupClientTest(t *testing.T) (*ClientService, *repository.Repositories, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	finance := NewFinanceService(repos, zap.NewNop())
	return NewClientService(repos, finance, zap.NewNop()), repos, db
}

func TestClientCreateDefaults(t *testing.T) {
	svc, _, _ := setupClientTest(t)

	client, err := svc.Create(context.Background(), &CreateClientRequest{
		FirstName: "Linh",
		LastName:  "Tran",
		Email:     "linh@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, client.ID)
	assert.Equal(t, entity.ClientStageLead, client.Stage)
	assert.Equal(t, entity.ClientStatusActive, client.Status)
	assert.Equal(t, entity.TierSilver, client.Tier)
	assert.Equal(t, entity.WarrantyNone, client.WarrantyStatus)
	assert.True(t, client.TotalSpending.IsZero())
}

func TestClientCreateDuplicateEmail(t *testing.T) {
	svc, _, db := setupClientTest(t)

	testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")

	_, err := svc.Create(context.Background(), &CreateClientRequest{
		FirstName: "Binh",
		LastName:  "Nguyen",
		Email:     "an@example.com",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")
}

func TestClientGetHealsWarranty(t *testing.T) {
	svc, repos, db := setupClientTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	yesterday := entity.Date{Time: time.Now().AddDate(0, 0, -1)}
	require.NoError(t, repos.Client.UpdateFields(ctx, client.ID, map[string]interface{}{
		"warranty_status": entity.WarrantyActive,
		"warranty_expiry": yesterday,
	}))

	got, err := svc.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.WarrantyExpired, got.WarrantyStatus)
}

func TestClientListSweepRepairsStaleFinancials(t *testing.T) {
	svc, repos, db := setupClientTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	testutil.SeedTestTransaction(t, db, "tx-001", client.ID, "60000",
		entity.TransactionTypePayment, entity.TransactionStatusCompleted)

	// 人为污染派生字段，模拟写路径重算失败后的陈旧状态
	require.NoError(t, repos.Client.UpdateFields(ctx, client.ID, map[string]interface{}{
		"total_spending": dec("999"),
		"tier":           entity.TierSilver,
	}))

	result, err := svc.List(ctx, 1, 20, map[string]string{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	got := result.Items[0]
	assert.True(t, got.TotalSpending.Equal(dec("60000")), "total spending: %s", got.TotalSpending)
	assert.Equal(t, entity.TierGold, got.Tier)
}

func TestClientUpdatePartialFields(t *testing.T) {
	svc, _, db := setupClientTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")

	phone := "+84 90 123 4567"
	got, err := svc.Update(ctx, client.ID, &UpdateClientRequest{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, phone, got.Phone)
	assert.Equal(t, "An", got.FirstName)
	assert.Equal(t, "an@example.com", got.Email)
}

func TestClientDeleteOrphansTransactions(t *testing.T) {
	svc, repos, db := setupClientTest(t)
	ctx := context.Background()

	client := testutil.SeedTestClient(t, db, "client-001", "An", "Nguyen", "an@example.com")
	testutil.SeedTestTransaction(t, db, "tx-001", client.ID, "100",
		entity.TransactionTypePayment, entity.TransactionStatusCompleted)

	require.NoError(t, svc.Delete(ctx, client.ID))

	_, err := repos.Client.FindByID(ctx, client.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// 流水仍然留存
	orphan, err := repos.Transaction.FindByID(ctx, "tx-001")
	require.NoError(t, err)
	assert.Equal(t, client.ID, orphan.ClientID)

	// 针对已删除客户的重算以ErrNotFound结束
	finance := NewFinanceService(repos, zap.NewNop())
	assert.ErrorIs(t, finance.Recalculate(ctx, client.ID), repository.ErrNotFound)
}
