package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardenpalme/app/internal/core/domain"
)

const creativeColumns = `
            cr.id,
            cr.name,
            cr.notes,
            cr.tags,
            cr.file_url,
            cr.thumbnail_url,
            cr.file_type,
            cr.file_size,
            cr.width,
            cr.height,
            cr.duration,
            cr.approval_status,
            cr.proof_of_play,
            cr.org_id,
            cr.submitted_by,
            cr.submission_date,
            cr.campaign_id,
            cr.created_at,
            cr.updated_at`

const creativeSelect = `
        SELECT` + creativeColumns + `,
            cp.id,
            cp.name,
            cp.status
        FROM creatives cr
        LEFT JOIN campaigns cp ON cp.id = cr.campaign_id`

// rowScanner is satisfied by pgx.Row and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

// CreativeRepository implements port.CreativeRepository using pgxpool.
type CreativeRepository struct {
	pool *pgxpool.Pool
}

// NewCreativeRepository returns a new repository instance.
func NewCreativeRepository(pool *pgxpool.Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool}
}

func creativeDest(c *domain.Creative) []any {
	return []any{
		&c.ID,
		&c.Name,
		&c.Notes,
		&c.Tags,
		&c.FileURL,
		&c.ThumbnailURL,
		&c.FileType,
		&c.FileSize,
		&c.Width,
		&c.Height,
		&c.Duration,
		&c.ApprovalStatus,
		&c.ProofOfPlay,
		&c.OrgID,
		&c.SubmittedBy,
		&c.SubmissionDate,
		&c.CampaignID,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

func scanCreativeWithCampaign(row rowScanner) (domain.CreativeWithCampaign, error) {
	var (
		out                    domain.CreativeWithCampaign
		cpID, cpName, cpStatus *string
	)
	dest := append(creativeDest(&out.Creative), &cpID, &cpName, &cpStatus)
	if err := row.Scan(dest...); err != nil {
		return out, err
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if cpID != nil {
		out.Campaign = &domain.CampaignSummary{ID: *cpID}
		if cpName != nil {
			out.Campaign.Name = *cpName
		}
		if cpStatus != nil {
			out.Campaign.Status = domain.CampaignStatus(*cpStatus)
		}
	}
	return out, nil
}

// Create inserts a creative and fills in the store-maintained timestamps.
func (r *CreativeRepository) Create(ctx context.Context, c *domain.Creative) error {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	err := r.pool.QueryRow(ctx, `
        INSERT INTO creatives
            (id, name, notes, tags, file_url, thumbnail_url, file_type, file_size, width, height, duration,
             approval_status, proof_of_play, org_id, submitted_by, submission_date, campaign_id,
             created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,now(),now())
        RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Notes, tags, c.FileURL, c.ThumbnailURL, c.FileType, c.FileSize, c.Width, c.Height, c.Duration,
		c.ApprovalStatus, c.ProofOfPlay, c.OrgID, c.SubmittedBy, c.SubmissionDate, c.CampaignID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// Get returns a creative with its campaign summary.
func (r *CreativeRepository) Get(ctx context.Context, id string) (*domain.CreativeWithCampaign, error) {
	out, err := scanCreativeWithCampaign(r.pool.QueryRow(ctx, creativeSelect+` WHERE cr.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// Update writes the name and, when set in edit, notes and tags. Unset
// fields keep their stored values.
func (r *CreativeRepository) Update(ctx context.Context, edit domain.CreativeEdit) error {
	var tags []string
	if edit.Tags != nil {
		tags = *edit.Tags
		if tags == nil {
			tags = []string{}
		}
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE creatives
		    SET name = $2,
		        notes = CASE WHEN $3::boolean THEN $4::text ELSE notes END,
		        tags = CASE WHEN $5::boolean THEN $6::text[] ELSE tags END,
		        updated_at = now()
		  WHERE id = $1`,
		edit.ID, edit.Name, edit.NotesSet, edit.Notes, edit.Tags != nil, tags)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetApprovalStatus records a review decision.
func (r *CreativeRepository) SetApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE creatives SET approval_status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the creative and returns the deleted row.
func (r *CreativeRepository) Delete(ctx context.Context, id string) (*domain.Creative, error) {
	var c domain.Creative
	err := r.pool.QueryRow(ctx,
		`DELETE FROM creatives cr WHERE cr.id = $1 RETURNING`+creativeColumns, id).
		Scan(creativeDest(&c)...)
	if err != nil {
		return nil, mapError(err)
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c, nil
}

// Connect points the creative at campaignID. The foreign key rejects an
// unknown campaign.
func (r *CreativeRepository) Connect(ctx context.Context, id, campaignID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE creatives SET campaign_id = $2, updated_at = now() WHERE id = $1`, id, campaignID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Disconnect clears the campaign of a creative. It reports false when no
// creative has the given id.
func (r *CreativeRepository) Disconnect(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE creatives SET campaign_id = NULL, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return false, mapError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindMany returns creatives matching filter ordered by submission date,
// newest first.
func (r *CreativeRepository) FindMany(ctx context.Context, filter domain.CreativeFilter) ([]domain.CreativeWithCampaign, error) {
	var (
		where []string
		args  []any
	)
	if filter.Unassigned {
		where = append(where, "cr.campaign_id IS NULL")
	}
	if filter.CampaignID != nil {
		args = append(args, *filter.CampaignID)
		where = append(where, fmt.Sprintf("cr.campaign_id = $%d", len(args)))
	}
	query := creativeSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY cr.submission_date DESC, cr.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CreativeWithCampaign, error) {
		return scanCreativeWithCampaign(row)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}
