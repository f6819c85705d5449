package usecase

import (
	"strings"
	"time"

	"github.com/ardenpalme/app/internal/core/domain"
)

// BuildCampaignsWithCreatives joins campaigns with the creatives assigned
// to them. Campaign order and the order of creatives within a campaign
// follow the inputs. Every campaign gets a non-nil creatives slice.
func BuildCampaignsWithCreatives(campaigns []domain.Campaign, creatives []domain.CreativeWithCampaign) []domain.CampaignWithCreatives {
	byCampaign := make(map[string][]domain.CreativeWithCampaign, len(campaigns))
	for _, c := range creatives {
		if c.CampaignID == nil {
			continue
		}
		byCampaign[*c.CampaignID] = append(byCampaign[*c.CampaignID], c)
	}

	out := make([]domain.CampaignWithCreatives, 0, len(campaigns))
	for _, cp := range campaigns {
		list := byCampaign[cp.ID]
		if list == nil {
			list = []domain.CreativeWithCampaign{}
		}
		out = append(out, domain.CampaignWithCreatives{Campaign: cp, Creatives: list})
	}
	return out
}

// PartitionCreatives splits creatives by whether they have a campaign.
// Both results are non-nil and keep the input order.
func PartitionCreatives(creatives []domain.CreativeWithCampaign) (assigned, unassigned []domain.CreativeWithCampaign) {
	assigned = []domain.CreativeWithCampaign{}
	unassigned = []domain.CreativeWithCampaign{}
	for _, c := range creatives {
		if c.CampaignID != nil {
			assigned = append(assigned, c)
		} else {
			unassigned = append(unassigned, c)
		}
	}
	return assigned, unassigned
}

// BuildLibraryStats summarises the library. When from or to is set, only
// creatives submitted inside the window are counted; campaigns are always
// counted in full.
func BuildLibraryStats(creatives []domain.CreativeWithCampaign, campaigns []domain.Campaign, from, to *time.Time) domain.LibraryStats {
	stats := domain.LibraryStats{
		ByApprovalStatus: map[domain.ApprovalStatus]int{},
		ByCampaignStatus: map[domain.CampaignStatus]int{},
		Campaigns:        len(campaigns),
	}

	known := make(map[string]struct{}, len(campaigns))
	for _, cp := range campaigns {
		known[cp.ID] = struct{}{}
		stats.ByCampaignStatus[cp.Status]++
	}

	used := make(map[string]struct{}, len(campaigns))
	for _, c := range creatives {
		if from != nil && c.SubmissionDate.Before(*from) {
			continue
		}
		if to != nil && c.SubmissionDate.After(*to) {
			continue
		}
		stats.Creatives++
		stats.TotalBytes += c.FileSize
		stats.ByApprovalStatus[c.ApprovalStatus]++
		switch {
		case c.IsVideo():
			stats.Videos++
		case strings.HasPrefix(strings.ToLower(c.FileType), "image/"):
			stats.Images++
		}
		if c.CampaignID == nil {
			stats.Unassigned++
			continue
		}
		stats.Assigned++
		if _, ok := known[*c.CampaignID]; ok {
			used[*c.CampaignID] = struct{}{}
		} else {
			stats.OrphanAssignments++
		}
	}
	stats.EmptyCampaigns = len(campaigns) - len(used)
	return stats
}
