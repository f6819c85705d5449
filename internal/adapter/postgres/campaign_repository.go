package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardenpalme/app/internal/core/domain"
)

const campaignColumns = `id, name, start_date, end_date, notes, org_id, user_id, status,
            submitted_by, submission_date, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row rowScanner) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.Notes, &c.OrgID, &c.UserID, &c.Status,
		&c.SubmittedBy, &c.SubmissionDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Create inserts a campaign and fills in the store-maintained timestamps.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns
            (id, name, start_date, end_date, notes, org_id, user_id, status, submitted_by, submission_date,
             created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now())
        RETURNING created_at, updated_at`,
		c.ID, c.Name, c.StartDate, c.EndDate, c.Notes, c.OrgID, c.UserID, c.Status, c.SubmittedBy, c.SubmissionDate,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapError(err)
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

// Delete removes a single campaign. Referencing creatives make the foreign
// key refuse it.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListOptions returns id and name of every campaign ordered by name.
func (r *CampaignRepository) ListOptions(ctx context.Context) ([]domain.CampaignOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM campaigns ORDER BY name, id`)
	if err != nil {
		return nil, mapError(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignOption, error) {
		var o domain.CampaignOption
		err := row.Scan(&o.ID, &o.Name)
		return o, err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// List returns every campaign, latest start date first.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY start_date DESC, id`)
	if err != nil {
		return nil, mapError(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}
