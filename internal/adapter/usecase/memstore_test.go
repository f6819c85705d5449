package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ardenpalme/app/internal/core/domain"
)

// memStore is an in-memory stand-in for the postgres repositories. It
// enforces the same key and reference rules as the schema.
type memStore struct {
	mu        sync.Mutex
	creatives map[string]domain.Creative
	campaigns map[string]domain.Campaign
	writes    int
}

func newMemStore() *memStore {
	return &memStore{creatives: map[string]domain.Creative{}, campaigns: map[string]domain.Campaign{}}
}

type memCreatives struct{ *memStore }

type memCampaigns struct{ *memStore }

func (s *memStore) project(c domain.Creative) domain.CreativeWithCampaign {
	out := domain.CreativeWithCampaign{Creative: c}
	if c.CampaignID != nil {
		if cp, ok := s.campaigns[*c.CampaignID]; ok {
			out.Campaign = cp.Summary()
		}
	}
	return out
}

func (r memCreatives) Create(_ context.Context, c *domain.Creative) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.creatives[c.ID]; ok {
		return fmt.Errorf("%w: creatives_pkey", domain.ErrConflict)
	}
	for _, other := range r.creatives {
		if other.FileURL == c.FileURL {
			return fmt.Errorf("%w: creatives_file_url_key", domain.ErrConflict)
		}
	}
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	r.creatives[c.ID] = *c
	r.writes++
	return nil
}

func (r memCreatives) Get(_ context.Context, id string) (*domain.CreativeWithCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creatives[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.project(c)
	return &out, nil
}

func (r memCreatives) Update(_ context.Context, edit domain.CreativeEdit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creatives[edit.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Name = edit.Name
	if edit.NotesSet {
		c.Notes = edit.Notes
	}
	if edit.Tags != nil {
		c.Tags = *edit.Tags
	}
	r.creatives[c.ID] = c
	r.writes++
	return nil
}

func (r memCreatives) SetApprovalStatus(_ context.Context, id string, status domain.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creatives[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.ApprovalStatus = status
	r.creatives[id] = c
	r.writes++
	return nil
}

func (r memCreatives) Delete(_ context.Context, id string) (*domain.Creative, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creatives[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.creatives, id)
	r.writes++
	return &c, nil
}

func (r memCreatives) Connect(_ context.Context, id, campaignID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creatives[id]
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.campaigns[campaignID]; !ok {
		return fmt.Errorf("%w: creatives_campaign_id_fkey", domain.ErrConstraint)
	}
	c.CampaignID = &campaignID
	r.creatives[id] = c
	r.writes++
	return nil
}

func (r memCreatives) Disconnect(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creatives[id]
	if !ok {
		return false, nil
	}
	c.CampaignID = nil
	r.creatives[id] = c
	r.writes++
	return true, nil
}

func (r memCreatives) FindMany(_ context.Context, filter domain.CreativeFilter) ([]domain.CreativeWithCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.CreativeWithCampaign{}
	for _, c := range r.creatives {
		if filter.Unassigned && c.CampaignID != nil {
			continue
		}
		if filter.CampaignID != nil && (c.CampaignID == nil || *c.CampaignID != *filter.CampaignID) {
			continue
		}
		out = append(out, r.project(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmissionDate.Equal(out[j].SubmissionDate) {
			return out[i].SubmissionDate.After(out[j].SubmissionDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r memCampaigns) Create(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[c.ID]; ok {
		return fmt.Errorf("%w: campaigns_pkey", domain.ErrConflict)
	}
	r.campaigns[c.ID] = *c
	r.writes++
	return nil
}

func (r memCampaigns) Get(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r memCampaigns) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range r.creatives {
		if c.CampaignID != nil && *c.CampaignID == id {
			return fmt.Errorf("%w: creatives_campaign_id_fkey", domain.ErrConstraint)
		}
	}
	delete(r.campaigns, id)
	r.writes++
	return nil
}

func (r memCampaigns) ListOptions(_ context.Context) ([]domain.CampaignOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.CampaignOption{}
	for _, c := range r.campaigns {
		out = append(out, domain.CampaignOption{ID: c.ID, Name: c.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memCampaigns) List(_ context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Campaign{}
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}
