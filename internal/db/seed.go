package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var seedStatuses = []string{"draft", "WAITING_FOR_APPROVAL", "APPROVED", "REJECTED"}

// Seed inserts demo campaigns so the library has assignment targets on a
// fresh database. Rows use fixed ids and are skipped when already present,
// so running it twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC().Truncate(24 * time.Hour)

	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("demo-campaign-%d", i)
		name := fmt.Sprintf("Demo campaign %d", i)
		start := now.AddDate(0, 0, -r.Intn(14))
		end := start.AddDate(0, 1, r.Intn(30))
		status := seedStatuses[(i-1)%len(seedStatuses)]
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, start_date, end_date, notes, org_id, user_id, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,'demo','demo',$6,now(),now()) ON CONFLICT DO NOTHING`,
			id, name, start, end, "Seeded for local development", status)
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", id, err)
		}
	}
	return nil
}
