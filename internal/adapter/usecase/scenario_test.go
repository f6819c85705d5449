package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port/mocks"
)

type library struct {
	store     *memStore
	assets    *AssetUseCase
	campaigns *CampaignUseCase
	storage   *mocks.MockObjectStorage
	wf        *WorkflowUseCase
}

func newLibrary(t *testing.T) library {
	store := newMemStore()
	l := library{
		store:     store,
		assets:    NewAssetUseCase(memCreatives{store}),
		campaigns: NewCampaignUseCase(memCampaigns{store}),
		storage:   mocks.NewMockObjectStorage(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l.wf = NewWorkflowUseCase(l.assets, l.campaigns, l.storage, mocks.NewMockMediaProbe(t), "thumbnails/", logger)
	return l
}

func TestScenario_AssignShowsCampaign(t *testing.T) {
	l := newLibrary(t)
	ctx := context.Background()

	summer, err := l.campaigns.Add(ctx, domain.CampaignForm{
		Name: "Summer", StartDate: day("2024-06-01"), EndDate: day("2024-06-30"),
	})
	require.NoError(t, err)

	banner, err := l.assets.Add(ctx, domain.CreativeForm{
		Name: "banner", FileURL: "k1", FileType: "image/png", FileSize: 1024,
	})
	require.NoError(t, err)

	require.NoError(t, l.assets.AssignCampaign(ctx, banner.ID, summer.ID))

	all, err := l.assets.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Campaign)
	assert.Equal(t, domain.CampaignSummary{ID: summer.ID, Name: "Summer", Status: domain.CampaignDraft}, *all[0].Campaign)

	campaigns, err := l.campaigns.ListComplete(ctx)
	require.NoError(t, err)
	joined := BuildCampaignsWithCreatives(campaigns, all)
	require.Len(t, joined, 1)
	require.Len(t, joined[0].Creatives, 1)
	assert.Equal(t, banner.ID, joined[0].Creatives[0].ID)

	unassigned, err := l.assets.ListUnassigned(ctx)
	require.NoError(t, err)
	assert.Empty(t, unassigned)
}

func TestScenario_InvalidCampaignWritesNothing(t *testing.T) {
	l := newLibrary(t)

	_, err := l.campaigns.Add(context.Background(), domain.CampaignForm{
		Name: "Summer", StartDate: day("2024-06-30"), EndDate: day("2024-06-01"),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, l.store.writes)

	list, err := l.campaigns.ListComplete(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestScenario_UnassignedPartitionsLibrary(t *testing.T) {
	l := newLibrary(t)
	ctx := context.Background()

	c, err := l.campaigns.Add(ctx, domain.CampaignForm{Name: "C", StartDate: day("2024-01-01"), EndDate: day("2024-02-01")})
	require.NoError(t, err)
	for _, key := range []string{"k1", "k2", "k3"} {
		_, err = l.assets.Add(ctx, domain.CreativeForm{ID: key, Name: key, FileURL: key, FileType: "image/png", FileSize: 1})
		require.NoError(t, err)
	}
	require.NoError(t, l.assets.AssignCampaign(ctx, "k2", c.ID))

	all, err := l.assets.ListAll(ctx)
	require.NoError(t, err)
	unassigned, err := l.assets.ListUnassigned(ctx)
	require.NoError(t, err)
	byCampaign, err := l.assets.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)

	_, wantUnassigned := PartitionCreatives(all)
	assert.ElementsMatch(t, wantUnassigned, unassigned)
	assert.Equal(t, len(all), len(unassigned)+len(byCampaign))

	require.NoError(t, l.assets.UnassignCampaign(ctx, "k2"))
	require.NoError(t, l.assets.UnassignCampaign(ctx, "k2"))
	got, err := l.assets.Get(ctx, "k2")
	require.NoError(t, err)
	assert.Nil(t, got.CampaignID)
}

func TestScenario_CascadeDeleteCampaign(t *testing.T) {
	l := newLibrary(t)
	ctx := context.Background()

	c, err := l.campaigns.Add(ctx, domain.CampaignForm{Name: "C", StartDate: day("2024-01-01"), EndDate: day("2024-02-01")})
	require.NoError(t, err)
	for _, key := range []string{"k1", "k2", "k3"} {
		_, err = l.assets.Add(ctx, domain.CreativeForm{ID: key, Name: key, FileURL: key, FileType: "image/png", FileSize: 1})
		require.NoError(t, err)
		require.NoError(t, l.assets.AssignCampaign(ctx, key, c.ID))
	}

	_, err = l.wf.DeleteCampaign(ctx, c.ID)
	require.NoError(t, err)

	referencing, err := l.assets.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, referencing)

	list, err := l.campaigns.ListComplete(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestScenario_DeleteAssetRemovesStoredObjects(t *testing.T) {
	l := newLibrary(t)
	ctx := context.Background()

	_, err := l.assets.Add(ctx, domain.CreativeForm{ID: "a2", Name: "clip", FileURL: "k2", FileType: "video/mp4", FileSize: 10})
	require.NoError(t, err)

	l.storage.EXPECT().Delete(mock.Anything, "k2").Return(nil).Once()
	l.storage.EXPECT().Delete(mock.Anything, "thumbnails/k2.jpg").Return(nil).Once()

	_, err = l.wf.DeleteAsset(ctx, "a2")
	require.NoError(t, err)

	all, err := l.assets.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
