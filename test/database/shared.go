// Package database provides the PostgreSQL harness for integration
// tests. A single pgvector container is shared across the test binary;
// every test gets its own schema so tests stay independent.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// postgresImage must ship the pgvector extension; the migrations create
// a vector(1024) column and an ivfflat index.
const postgresImage = "pgvector/pgvector:pg16"

var (
	containerOnce sync.Once
	baseConnStr   string
	containerErr  error
)

// BaseConnectionString returns a connection string to the shared test
// database. In CI (CI_DATABASE_URL set) it points at the external
// service container; locally it lazily starts one pgvector container
// for the whole test binary. The container is reaped by testcontainers
// when the process exits.
func BaseConnectionString(t *testing.T) string {
	t.Helper()

	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		container, err := tcpostgres.Run(ctx, postgresImage,
			tcpostgres.WithDatabase("opsagent_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		baseConnStr, containerErr = container.ConnectionString(ctx, "sslmode=disable")
	})
	require.NoError(t, containerErr)
	return baseConnStr
}

// NewSchema creates an isolated schema on the shared database and
// returns a connection string scoped to it. The schema is dropped when
// the test finishes. public stays on the search path so the vector
// extension's types resolve.
func NewSchema(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	base := BaseConnectionString(t)
	schemaName := "test_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	db, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	_ = db.Close()

	t.Cleanup(func() {
		cleanDB, err := stdsql.Open("pgx", base)
		if err != nil {
			t.Logf("could not connect to drop schema %s: %v", schemaName, err)
			return
		}
		defer func() { _ = cleanDB.Close() }()
		if _, err := cleanDB.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("failed to drop schema %s: %v", schemaName, err)
		}
	})

	separator := "?"
	if strings.Contains(base, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%ssearch_path=%s,public", base, separator, schemaName)
}
