package port

import (
	"context"

	"github.com/ardenpalme/app/internal/core/domain"
)

// AssetService is the sole writer of creative records. It is the primary
// port used by the HTTP layer and by the workflow coordinator.
type AssetService interface {
	// Add validates form and persists a new creative with approval status
	// PENDING and no campaign.
	Add(ctx context.Context, form domain.CreativeForm) (*domain.CreativeWithCampaign, error)
	Get(ctx context.Context, id string) (*domain.CreativeWithCampaign, error)
	// Update mutates name, notes and tags only. Tags and notes absent from
	// edit are kept.
	Update(ctx context.Context, edit domain.CreativeEdit) (*domain.CreativeWithCampaign, error)
	// Review records an approval decision made outside this service.
	Review(ctx context.Context, id string, status domain.ApprovalStatus) (*domain.CreativeWithCampaign, error)
	// Delete removes the record only. Stored payloads are left untouched.
	Delete(ctx context.Context, id string) (*domain.Creative, error)
	AssignCampaign(ctx context.Context, id, campaignID string) error
	// UnassignCampaign is idempotent.
	UnassignCampaign(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.CreativeWithCampaign, error)
	ListUnassigned(ctx context.Context) ([]domain.CreativeWithCampaign, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.CreativeWithCampaign, error)
}

// CampaignService validates and applies campaign writes.
type CampaignService interface {
	Add(ctx context.Context, form domain.CampaignForm) (*domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Delete removes a single campaign; it does not unassign creatives.
	Delete(ctx context.Context, id string) error
	ListForSelect(ctx context.Context) ([]domain.CampaignOption, error)
	ListComplete(ctx context.Context) ([]domain.Campaign, error)
}

// UploadRequest describes one payload to upload. Path points at a local
// copy of the bytes; the workflow reads it as many times as it needs.
type UploadRequest struct {
	Path             string
	OriginalFilename string
	ContentType      string
	Size             int64
	Name             string
	Notes            *string
	Tags             []string
	ProofOfPlay      bool
	OrgID            string
	SubmittedBy      string
}

// Workflow sequences operations that span object storage and the record
// services. Steps run strictly in order; none run concurrently.
type Workflow interface {
	UploadAsset(ctx context.Context, req UploadRequest) (*domain.CreativeWithCampaign, *domain.WorkflowReport, error)
	DeleteAsset(ctx context.Context, id string) (*domain.WorkflowReport, error)
	DeleteCampaign(ctx context.Context, id string) (*domain.WorkflowReport, error)
	// OpenFile streams a stored payload back to the caller.
	OpenFile(ctx context.Context, key string) (*Object, error)
}
