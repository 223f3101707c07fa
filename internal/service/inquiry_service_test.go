package service

import (
	"context"
	"testing"

	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/modernointeriors/modernointeriors-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupInquiryTest(t *testing.T) (*InquiryService, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return NewInquiryService(repos, zap.NewNop()), repos
}

func TestInquiryAutoCreatesLeadClient(t *testing.T) {
	svc, repos := setupInquiryTest(t)
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, &CreateInquiryRequest{
		Name:    "Minh Hoang Pham",
		Email:   "minh@example.com",
		Message: "Xin báo giá thiết kế căn hộ 2 phòng ngủ",
		Locale:  "vi",
	})
	require.NoError(t, err)
	require.NotNil(t, inquiry.ClientID)
	assert.Equal(t, "vi", inquiry.Locale)
	assert.Equal(t, entity.InquiryStatusNew, inquiry.Status)

	client, err := repos.Client.FindByID(ctx, *inquiry.ClientID)
	require.NoError(t, err)
	assert.Equal(t, "Minh", client.FirstName)
	assert.Equal(t, "Hoang Pham", client.LastName)
	assert.Equal(t, entity.ClientStageLead, client.Stage)
	assert.Equal(t, entity.ClientStatusActive, client.Status)
	assert.Equal(t, entity.TierSilver, client.Tier)
}

func TestInquiryLinksExistingClient(t *testing.T) {
	svc, repos := setupInquiryTest(t)
	ctx := context.Background()

	existing := &entity.Client{
		ID:        "client-001",
		FirstName: "An",
		LastName:  "Nguyen",
		Email:     "an@example.com",
		Stage:     entity.ClientStageContract,
		Status:    entity.ClientStatusActive,
		Tier:      entity.TierGold,
	}
	require.NoError(t, repos.Client.Create(ctx, existing))

	inquiry, err := svc.Create(ctx, &CreateInquiryRequest{
		Name:    "An Nguyen",
		Email:   "an@example.com",
		Message: "Follow-up on kitchen remodel",
	})
	require.NoError(t, err)
	require.NotNil(t, inquiry.ClientID)
	assert.Equal(t, existing.ID, *inquiry.ClientID)

	// 未新建客户，阶段不被回退
	fresh, err := repos.Client.FindByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ClientStageContract, fresh.Stage)
}

func TestInquiryUnknownLocaleFallsBackToEnglish(t *testing.T) {
	svc, _ := setupInquiryTest(t)

	inquiry, err := svc.Create(context.Background(), &CreateInquiryRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Message: "Hello",
		Locale:  "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, "en", inquiry.Locale)
}

func TestInquiryStatusTransition(t *testing.T) {
	svc, _ := setupInquiryTest(t)
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, &CreateInquiryRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Message: "Hello",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, inquiry.ID, entity.InquiryStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusContacted, updated.Status)

	_, err = svc.UpdateStatus(ctx, inquiry.ID, "bogus")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
