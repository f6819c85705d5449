package port

import (
	"context"

	"github.com/ardenpalme/app/internal/core/domain"
)

// CreativeRepository is the persistence port for creatives. It is an
// outbound port in hexagonal architecture. Single-row writes rely on the
// store's row atomicity; nothing here spans more than one row.
type CreativeRepository interface {
	// Create inserts a new creative. A duplicate id or file key yields
	// domain.ErrConflict.
	Create(ctx context.Context, c *domain.Creative) error
	// Get returns a creative with its campaign summary.
	Get(ctx context.Context, id string) (*domain.CreativeWithCampaign, error)
	// Update applies the editable fields. Missing id yields domain.ErrNotFound.
	Update(ctx context.Context, edit domain.CreativeEdit) error
	// SetApprovalStatus records a review decision.
	SetApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) error
	// Delete removes the row and returns it as it was.
	Delete(ctx context.Context, id string) (*domain.Creative, error)
	// Connect associates a creative with a campaign. A missing creative
	// yields domain.ErrNotFound, a missing campaign domain.ErrConstraint.
	Connect(ctx context.Context, id, campaignID string) error
	// Disconnect clears the association. It reports whether a row matched.
	Disconnect(ctx context.Context, id string) (bool, error)
	// FindMany returns creatives matching filter, most recent submission
	// first.
	FindMany(ctx context.Context, filter domain.CreativeFilter) ([]domain.CreativeWithCampaign, error)
}

// CampaignRepository is the persistence port for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Delete removes a single campaign. It fails with domain.ErrConstraint
	// while creatives still reference it.
	Delete(ctx context.Context, id string) error
	ListOptions(ctx context.Context) ([]domain.CampaignOption, error)
	List(ctx context.Context) ([]domain.Campaign, error)
}
