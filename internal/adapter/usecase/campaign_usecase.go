package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port"
)

var _ port.CampaignService = (*CampaignUseCase)(nil)

// CampaignUseCase validates and applies campaign writes.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a new usecase backed by repo.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// Add validates form, including the end date not preceding the start
// date, and persists a new draft campaign.
func (u *CampaignUseCase) Add(ctx context.Context, form domain.CampaignForm) (*domain.Campaign, error) {
	form.Name = strings.TrimSpace(form.Name)
	if err := validateStruct(form); err != nil {
		return nil, err
	}

	c := &domain.Campaign{
		ID:             uuid.NewString(),
		Name:           form.Name,
		StartDate:      form.StartDate,
		EndDate:        form.EndDate,
		Notes:          form.Notes,
		OrgID:          form.OrgID,
		UserID:         form.UserID,
		Status:         domain.CampaignDraft,
		SubmittedBy:    form.SubmittedBy,
		SubmissionDate: form.SubmissionDate,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a single campaign.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "is required")
	}
	return u.repo.Get(ctx, id)
}

// Delete removes a single campaign. Creatives still pointing at it make
// the store refuse with domain.ErrConstraint.
func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "is required")
	}
	return u.repo.Delete(ctx, id)
}

// ListForSelect returns id and name of every campaign, ordered by name.
func (u *CampaignUseCase) ListForSelect(ctx context.Context) ([]domain.CampaignOption, error) {
	out, err := u.repo.ListOptions(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.CampaignOption{}
	}
	return out, nil
}

// ListComplete returns every campaign, latest start date first.
func (u *CampaignUseCase) ListComplete(ctx context.Context) ([]domain.Campaign, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Campaign{}
	}
	return out, nil
}
