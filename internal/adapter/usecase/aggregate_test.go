package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardenpalme/app/internal/core/domain"
)

func creative(id string, campaignID *string, fileType string, size int64, submitted time.Time) domain.CreativeWithCampaign {
	return domain.CreativeWithCampaign{Creative: domain.Creative{
		ID: id, CampaignID: campaignID, FileType: fileType, FileSize: size,
		SubmissionDate: submitted, ApprovalStatus: domain.ApprovalPending,
	}}
}

func TestBuildCampaignsWithCreatives_Empty(t *testing.T) {
	out := BuildCampaignsWithCreatives(nil, nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	campaigns := []domain.Campaign{{ID: "c1"}, {ID: "c2"}}
	out = BuildCampaignsWithCreatives(campaigns, []domain.CreativeWithCampaign{})
	require.Len(t, out, 2)
	for _, c := range out {
		assert.NotNil(t, c.Creatives)
		assert.Empty(t, c.Creatives)
	}
}

func TestBuildCampaignsWithCreatives_Groups(t *testing.T) {
	now := time.Now()
	campaigns := []domain.Campaign{{ID: "c1"}, {ID: "c2"}}
	creatives := []domain.CreativeWithCampaign{
		creative("a3", ptr("c1"), "image/png", 1, now),
		creative("a2", nil, "image/png", 1, now),
		creative("a1", ptr("c1"), "image/png", 1, now),
		creative("a0", ptr("gone"), "image/png", 1, now),
	}

	out := BuildCampaignsWithCreatives(campaigns, creatives)
	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].ID)
	require.Len(t, out[0].Creatives, 2)
	assert.Equal(t, "a3", out[0].Creatives[0].ID)
	assert.Equal(t, "a1", out[0].Creatives[1].ID)
	assert.Empty(t, out[1].Creatives)
}

func TestPartitionCreatives(t *testing.T) {
	now := time.Now()
	all := []domain.CreativeWithCampaign{
		creative("a1", ptr("c1"), "image/png", 1, now),
		creative("a2", nil, "image/png", 1, now),
		creative("a3", nil, "video/mp4", 1, now),
	}

	assigned, unassigned := PartitionCreatives(all)
	assert.Len(t, assigned, 1)
	assert.Len(t, unassigned, 2)
	assert.Equal(t, len(all), len(assigned)+len(unassigned))
	for _, c := range unassigned {
		assert.Nil(t, c.CampaignID)
	}

	assigned, unassigned = PartitionCreatives(nil)
	assert.NotNil(t, assigned)
	assert.NotNil(t, unassigned)
}

func TestBuildLibraryStats(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	campaigns := []domain.Campaign{
		{ID: "c1", Status: domain.CampaignDraft},
		{ID: "c2", Status: domain.CampaignApproved},
	}
	approved := creative("a2", nil, "video/mp4", 200, base.Add(48*time.Hour))
	approved.ApprovalStatus = domain.ApprovalApproved
	creatives := []domain.CreativeWithCampaign{
		creative("a1", ptr("c1"), "image/png", 100, base),
		approved,
		creative("a3", ptr("gone"), "image/jpeg", 50, base.Add(24*time.Hour)),
		creative("a4", nil, "application/pdf", 10, base),
	}

	stats := BuildLibraryStats(creatives, campaigns, nil, nil)
	assert.Equal(t, 4, stats.Creatives)
	assert.Equal(t, 2, stats.Assigned)
	assert.Equal(t, 2, stats.Unassigned)
	assert.Equal(t, 1, stats.Videos)
	assert.Equal(t, 2, stats.Images)
	assert.Equal(t, int64(360), stats.TotalBytes)
	assert.Equal(t, 3, stats.ByApprovalStatus[domain.ApprovalPending])
	assert.Equal(t, 1, stats.ByApprovalStatus[domain.ApprovalApproved])
	assert.Equal(t, 2, stats.Campaigns)
	assert.Equal(t, 1, stats.ByCampaignStatus[domain.CampaignDraft])
	assert.Equal(t, 1, stats.EmptyCampaigns)
	assert.Equal(t, 1, stats.OrphanAssignments)

	from := base.Add(12 * time.Hour)
	to := base.Add(36 * time.Hour)
	windowed := BuildLibraryStats(creatives, campaigns, &from, &to)
	assert.Equal(t, 1, windowed.Creatives)
	assert.Equal(t, int64(50), windowed.TotalBytes)
	assert.Equal(t, 2, windowed.EmptyCampaigns)
}
