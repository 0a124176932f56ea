// Package storagetest hands tests a migrated PostgreSQL schema of their own.
package storagetest

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/homefood/internal/storage"
)

// DSNEnv names the variable holding a postgres:// URL of a database tests may write to.
const DSNEnv = "HOMEFOOD_TEST_DSN"

// Pool returns an empty, migrated pool whose search_path is the schema homefood_test_<name>.
// Packages pass distinct names so `go test ./...` can run them in parallel.
// The test is skipped when DSNEnv is unset.
func Pool(t testing.TB, name string) *pgxpool.Pool {
	t.Helper()
	base := os.Getenv(DSNEnv)
	if base == "" {
		t.Skipf("%s not set", DSNEnv)
	}
	ctx := context.Background()
	schema := "homefood_test_" + name

	admin, err := storage.Connect(ctx, base)
	require.NoError(t, err)
	_, err = admin.Exec(ctx, `CREATE SCHEMA IF NOT EXISTS `+pgx.Identifier{schema}.Sanitize())
	admin.Close()
	require.NoError(t, err)

	dsn, err := withSearchPath(base, schema)
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(dsn))

	pool, err := storage.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	Reset(t, pool)
	return pool
}

// Reset empties every table and restarts the id sequences.
func Reset(t testing.TB, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		TRUNCATE order_items, payments, orders, products, users, admins, business_info
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}

func withSearchPath(dsn, schema string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("%s must be a postgres:// URL", DSNEnv)
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
