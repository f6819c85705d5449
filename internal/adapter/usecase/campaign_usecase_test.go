package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port/mocks"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// TestCampaignAdd_EndBeforeStart rejects the form before any persistence
// call is made.
func TestCampaignAdd_EndBeforeStart(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	_, err := NewCampaignUseCase(repo).Add(context.Background(), domain.CampaignForm{
		Name: "Summer", StartDate: day("2024-06-30"), EndDate: day("2024-06-01"),
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must not be before startDate", verr.Fields["endDate"])
}

func TestCampaignAdd(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	got, err := NewCampaignUseCase(repo).Add(context.Background(), domain.CampaignForm{
		Name: " Summer ", StartDate: day("2024-06-01"), EndDate: day("2024-06-01"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Summer", got.Name)
	assert.Equal(t, domain.CampaignDraft, got.Status)
}

func TestCampaignAdd_MissingFields(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	_, err := NewCampaignUseCase(repo).Add(context.Background(), domain.CampaignForm{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "startDate")
	assert.Contains(t, verr.Fields, "endDate")
}

func TestCampaignDelete_StillReferenced(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Delete(mock.Anything, "c1").
		Return(fmt.Errorf("%w: creatives_campaign_id_fkey", domain.ErrConstraint))

	err := NewCampaignUseCase(repo).Delete(context.Background(), "c1")
	assert.True(t, domain.IsConstraint(err))
}

func TestCampaignLists_NeverNil(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListOptions(mock.Anything).Return(nil, nil)
	repo.EXPECT().List(mock.Anything).Return(nil, nil)

	svc := NewCampaignUseCase(repo)
	options, err := svc.ListForSelect(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, options)

	list, err := svc.ListComplete(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
}
