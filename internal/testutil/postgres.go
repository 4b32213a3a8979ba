// Package testutil provides PostgreSQL-backed test fixtures. Every helper
// carves out a throwaway schema per test, so parallel packages share one
// database without interfering. Tests fail fast when no DSN is configured:
// the approval core's locking semantics only exist on PostgreSQL.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/enttest"
)

var nonIdentChars = regexp.MustCompile(`[^a-z0-9_]+`)

// OpenEntPostgres opens an Ent test client on a fresh isolated schema and
// runs the schema migration. Set TEST_DATABASE_URL (or DATABASE_URL).
func OpenEntPostgres(t *testing.T, prefix string) *ent.Client {
	t.Helper()
	schema := createTestSchema(t, prefix)
	return openEntOnSchema(t, schema)
}

// OpenPGXPool opens a pgxpool on a fresh isolated schema. The schema is
// empty; callers that need migrated tables want OpenApprovalStore instead.
func OpenPGXPool(t *testing.T, prefix string) *pgxpool.Pool {
	t.Helper()
	schema := createTestSchema(t, prefix)
	return openPoolOnSchema(t, schema)
}

// OpenApprovalStore opens an Ent client and a pgx pool sharing one isolated
// schema. The Ent client runs the migration; the pool sees the migrated
// tables. This is the fixture for the serialized write paths, which speak
// SQL through pgx against Ent-managed tables.
func OpenApprovalStore(t *testing.T, prefix string) (*ent.Client, *pgxpool.Pool) {
	t.Helper()
	schema := createTestSchema(t, prefix)
	client := openEntOnSchema(t, schema)
	pool := openPoolOnSchema(t, schema)
	return client, pool
}

func testDSN(t *testing.T) string {
	t.Helper()
	dsn := strings.TrimSpace(os.Getenv("TEST_DATABASE_URL"))
	if dsn == "" {
		dsn = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if dsn == "" {
		t.Fatalf("PostgreSQL test DSN is required: set TEST_DATABASE_URL or DATABASE_URL")
	}
	return dsn
}

// createTestSchema creates a uniquely named schema and registers its drop.
func createTestSchema(t *testing.T, prefix string) string {
	t.Helper()

	dsn := testDSN(t)
	schema := newSchemaName(prefix)

	adminDB, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open postgres admin connection: %v", err)
	}
	t.Cleanup(func() { _ = adminDB.Close() })

	ctx := context.Background()
	if err := adminDB.PingContext(ctx); err != nil {
		t.Fatalf("ping postgres: %v", err)
	}
	if _, err := adminDB.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA "%s"`, schema)); err != nil {
		t.Fatalf("create test schema %q: %v", schema, err)
	}
	t.Cleanup(func() {
		_, _ = adminDB.ExecContext(context.Background(), fmt.Sprintf(`DROP SCHEMA IF EXISTS "%s" CASCADE`, schema))
	})
	return schema
}

func openEntOnSchema(t *testing.T, schema string) *ent.Client {
	t.Helper()

	schemaDSN, err := dsnWithSearchPath(testDSN(t), schema)
	if err != nil {
		t.Fatalf("build postgres DSN with search_path: %v", err)
	}

	testDB, err := sql.Open("pgx", schemaDSN)
	if err != nil {
		t.Fatalf("open postgres test connection: %v", err)
	}
	t.Cleanup(func() { _ = testDB.Close() })

	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(entsql.OpenDB(dialect.Postgres, testDB))))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func openPoolOnSchema(t *testing.T, schema string) *pgxpool.Pool {
	t.Helper()

	schemaDSN, err := dsnWithSearchPath(testDSN(t), schema)
	if err != nil {
		t.Fatalf("build postgres DSN with search_path: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), schemaDSN)
	if err != nil {
		t.Fatalf("open postgres test pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping postgres test pool: %v", err)
	}
	return pool
}

func dsnWithSearchPath(dsn, schema string) (string, error) {
	if strings.Contains(dsn, "://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse DSN: %w", err)
		}
		q := u.Query()
		q.Set("search_path", schema)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	if strings.Contains(dsn, "search_path=") {
		re := regexp.MustCompile(`search_path=\S+`)
		return re.ReplaceAllString(dsn, "search_path="+schema), nil
	}
	return dsn + " search_path=" + schema, nil
}

func newSchemaName(prefix string) string {
	base := strings.ToLower(prefix)
	base = strings.ReplaceAll(base, "-", "_")
	base = nonIdentChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "test"
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	const maxPostgresIdentLen = 63
	maxBaseLen := maxPostgresIdentLen - len("t__") - len(suffix)
	if maxBaseLen < 1 {
		maxBaseLen = 1
	}
	if len(base) > maxBaseLen {
		base = base[:maxBaseLen]
	}
	return fmt.Sprintf("t_%s_%s", base, suffix)
}
