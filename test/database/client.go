package database

import (
	stdsql "database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/pkg/database"
)

// NewTestClient returns a migrated database client on a private schema.
// Connections and the schema are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	connStr := NewSchema(t)
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	require.NoError(t, database.Migrate(db, "opsagent_test"))

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})

	return database.NewClientFromEnt(entClient, db)
}
