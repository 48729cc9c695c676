package remote

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend mirrors into a Postgres database through a pgx pool.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgresBackend connects to cfg.URL and verifies the connection.
func NewPostgresBackend(ctx context.Context, cfg Config) (*PostgresBackend, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresBackend{pool: pool}, nil
}

func (b *PostgresBackend) Upsert(ctx context.Context, table string, record map[string]any, conflict ...string) error {
	query, args := buildUpsert(dialect.Postgres, table, record, conflict)
	if _, err := b.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func (b *PostgresBackend) Select(ctx context.Context, table string, filters map[string]any) ([]map[string]any, error) {
	query, args := buildSelect(dialect.Postgres, table, filters)
	rows, err := b.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", table, err)
	}
	return out, nil
}

func (b *PostgresBackend) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_progress (
			profile_id TEXT NOT NULL,
			date DATE NOT NULL,
			schema_version INTEGER NOT NULL DEFAULT 1,
			math_count INTEGER NOT NULL DEFAULT 0,
			word_level INTEGER NOT NULL DEFAULT 1,
			faith_done BOOLEAN NOT NULL DEFAULT FALSE,
			mazes_solved INTEGER NOT NULL DEFAULT 0,
			puzzles_solved INTEGER NOT NULL DEFAULT 0,
			word_search_solved INTEGER NOT NULL DEFAULT 0,
			shadow_solved INTEGER NOT NULL DEFAULT 0,
			arcade_unlocked BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (profile_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS child_profiles (
			owner_id TEXT NOT NULL,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			gender TEXT NOT NULL DEFAULT '',
			hair_color TEXT NOT NULL DEFAULT '',
			hair_style TEXT NOT NULL DEFAULT '',
			eye_color TEXT NOT NULL DEFAULT '',
			skin_tone TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (owner_id, id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := b.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
	}
	return nil
}

func (b *PostgresBackend) Close() error {
	b.pool.Close()
	return nil
}
