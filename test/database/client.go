// Package database provides shared database setup for integration tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/database"
	"github.com/maestroworks/maestro/test/util"
)

// NewTestClient creates a test database client backed by a dedicated
// PostgreSQL schema. In CI (CI_DATABASE_URL set) it connects to the
// external service container; locally it starts a shared testcontainer.
// Cleanup is registered on the test automatically.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// Partial indexes the Ent migration cannot express.
	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreatePartialIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
