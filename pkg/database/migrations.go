package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Startup lease recovery scans only held leases.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS jobs_lease_owner_held
		ON jobs (lease_owner)
		WHERE lease_owner IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create lease_owner index: %w", err)
	}

	// The reaper scans only leased jobs.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS jobs_leased_deadline
		ON jobs (lease_deadline)
		WHERE state = 'leased'`)
	if err != nil {
		return fmt.Errorf("failed to create lease_deadline index: %w", err)
	}

	return nil
}
