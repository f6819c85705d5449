package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port"
)

var _ port.AssetService = (*AssetUseCase)(nil)

// AssetUseCase is the sole writer of creative records. It validates every
// input before it reaches the repository and keeps approval status out of
// client edits.
type AssetUseCase struct {
	repo port.CreativeRepository
	now  func() time.Time
}

// NewAssetUseCase creates a new usecase backed by repo.
func NewAssetUseCase(repo port.CreativeRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo, now: time.Now}
}

// Add validates form and persists a new creative. The record starts in
// PENDING review with no campaign; a missing id or submission date is
// generated here.
func (u *AssetUseCase) Add(ctx context.Context, form domain.CreativeForm) (*domain.CreativeWithCampaign, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Tags = NormalizeTags(form.Tags)
	if err := validateStruct(form); err != nil {
		return nil, err
	}

	c := &domain.Creative{
		ID:             form.ID,
		Name:           form.Name,
		Notes:          form.Notes,
		Tags:           form.Tags,
		FileURL:        form.FileURL,
		ThumbnailURL:   form.ThumbnailURL,
		FileType:       form.FileType,
		FileSize:       form.FileSize,
		Width:          form.Width,
		Height:         form.Height,
		Duration:       form.Duration,
		ApprovalStatus: domain.ApprovalPending,
		ProofOfPlay:    form.ProofOfPlay,
		OrgID:          form.OrgID,
		SubmittedBy:    form.SubmittedBy,
		SubmissionDate: form.SubmissionDate,
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.SubmissionDate.IsZero() {
		c.SubmissionDate = u.now().UTC()
	}

	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &domain.CreativeWithCampaign{Creative: *c}, nil
}

// Get returns a single creative with its campaign summary.
func (u *AssetUseCase) Get(ctx context.Context, id string) (*domain.CreativeWithCampaign, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "is required")
	}
	return u.repo.Get(ctx, id)
}

// Update renames an existing creative and, when present in edit, replaces
// its tags and notes. Absent fields keep their stored values.
func (u *AssetUseCase) Update(ctx context.Context, edit domain.CreativeEdit) (*domain.CreativeWithCampaign, error) {
	edit.Name = strings.TrimSpace(edit.Name)
	if edit.Tags != nil {
		tags := NormalizeTags(*edit.Tags)
		edit.Tags = &tags
	}
	if err := validateStruct(edit); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, edit); err != nil {
		return nil, err
	}
	return u.repo.Get(ctx, edit.ID)
}

// Review records the decision of the external approval process.
func (u *AssetUseCase) Review(ctx context.Context, id string, status domain.ApprovalStatus) (*domain.CreativeWithCampaign, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "is required")
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("approvalStatus", "must be one of PENDING, APPROVED, REJECTED")
	}
	if err := u.repo.SetApprovalStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.repo.Get(ctx, id)
}

// Delete removes the record and returns it so the caller can clean up the
// stored payloads.
func (u *AssetUseCase) Delete(ctx context.Context, id string) (*domain.Creative, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "is required")
	}
	return u.repo.Delete(ctx, id)
}

// AssignCampaign moves a creative into a campaign, replacing any previous
// assignment.
func (u *AssetUseCase) AssignCampaign(ctx context.Context, id, campaignID string) error {
	if id == "" {
		return domain.NewValidationError("id", "is required")
	}
	if campaignID == "" {
		return domain.NewValidationError("campaignId", "is required")
	}
	return u.repo.Connect(ctx, id, campaignID)
}

// UnassignCampaign returns a creative to the unassigned pool. Unknown ids
// and already unassigned creatives are left as they are.
func (u *AssetUseCase) UnassignCampaign(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "is required")
	}
	found, err := u.repo.Disconnect(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		slog.DebugContext(ctx, "unassign on unknown creative", slog.String("creative_id", id))
	}
	return nil
}

// ListAll returns every creative, newest submission first.
func (u *AssetUseCase) ListAll(ctx context.Context) ([]domain.CreativeWithCampaign, error) {
	return u.list(ctx, domain.CreativeFilter{})
}

// ListUnassigned returns creatives without a campaign, newest submission
// first.
func (u *AssetUseCase) ListUnassigned(ctx context.Context) ([]domain.CreativeWithCampaign, error) {
	return u.list(ctx, domain.CreativeFilter{Unassigned: true})
}

// ListByCampaign returns the creatives currently assigned to campaignID.
func (u *AssetUseCase) ListByCampaign(ctx context.Context, campaignID string) ([]domain.CreativeWithCampaign, error) {
	if campaignID == "" {
		return nil, domain.NewValidationError("campaignId", "is required")
	}
	return u.list(ctx, domain.CreativeFilter{CampaignID: &campaignID})
}

func (u *AssetUseCase) list(ctx context.Context, filter domain.CreativeFilter) ([]domain.CreativeWithCampaign, error) {
	out, err := u.repo.FindMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.CreativeWithCampaign{}
	}
	return out, nil
}
