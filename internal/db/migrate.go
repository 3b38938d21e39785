package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version text PRIMARY KEY)`)
	if err != nil {
		return err
	}

	for _, f := range files {
		name := f.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		var exists bool
		if err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version=$1)`, name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		b, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return err
		}

		if _, err := pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, `INSERT INTO schema_migrations(version) VALUES($1)`, name); err != nil {
			return err
		}
	}
	return nil
}

// VerifyTransactionKey confirms the unique constraint on
// transactions.transaction_id exists before the server takes traffic. The
// constraint is the sole mechanism preventing double-processing, so its
// absence is a fatal startup condition rather than a runtime surprise.
func VerifyTransactionKey(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1
			  FROM pg_index i
			  JOIN pg_class t ON t.oid = i.indrelid
			  JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(i.indkey)
			 WHERE t.relname = 'transactions'
			   AND i.indisunique
			   AND a.attname = 'transaction_id'
		)`).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("transactions.transaction_id has no unique constraint")
	}
	return nil
}
