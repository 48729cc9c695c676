// Package remote mirrors daily progress and child profiles to an optional
// remote backend. Every remote call is best-effort: the local store stays
// authoritative for gameplay and remote failures never reach the child.
package remote

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Remote table names.
const (
	ProgressTable = "daily_progress"
	ProfilesTable = "child_profiles"
)

// Backend kinds accepted by NewBackend.
const (
	KindNone     = "none"
	KindPostgres = "postgres"
	KindMySQL    = "mysql"
	KindREST     = "rest"
)

var (
	ErrUnsupportedBackend = errors.New("remote: unsupported backend")
	ErrTokenExpired       = errors.New("remote: access token expired")
)

// Backend is a table-oriented remote store.
type Backend interface {
	// Upsert inserts record, or updates the existing row matching the
	// conflict columns.
	Upsert(ctx context.Context, table string, record map[string]any, conflict ...string) error

	// Select returns rows whose columns equal every filter value.
	Select(ctx context.Context, table string, filters map[string]any) ([]map[string]any, error)

	Close() error
}

// Migrator is implemented by backends that can create the remote tables.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// Config selects and configures a backend.
type Config struct {
	Backend     string
	URL         string
	APIKey      string
	AccessToken string
	OwnerID     string
	MaxConns    int32
	Timeout     time.Duration
}

// NewBackend builds the configured backend. The "none" kind, or an empty
// one, returns a nil Backend: the app runs offline.
func NewBackend(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Backend {
	case "", KindNone:
		return nil, nil
	case KindPostgres:
		return NewPostgresBackend(ctx, cfg)
	case KindMySQL:
		return NewMySQLBackend(cfg)
	case KindREST:
		return NewRESTBackend(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}

// sortedColumns returns the record's columns in a stable order.
func sortedColumns(record map[string]any) []string {
	cols := make([]string, 0, len(record))
	for c := range record {
		cols = append(cols, c)
	}
	slices.Sort(cols)
	return cols
}

// buildUpsert renders an upsert statement for the given SQL dialect.
func buildUpsert(dialectName, table string, record map[string]any, conflict []string) (string, []any) {
	cols := sortedColumns(record)
	vals := make([]any, len(cols))
	for i, c := range cols {
		vals[i] = record[c]
	}
	return entsql.Dialect(dialectName).
		Insert(table).
		Columns(cols...).
		Values(vals...).
		OnConflict(
			entsql.ConflictColumns(conflict...),
			entsql.ResolveWithNewValues(),
		).
		Query()
}

// buildSelect renders an equality-filtered select for the given SQL dialect.
func buildSelect(dialectName, table string, filters map[string]any) (string, []any) {
	sel := entsql.Dialect(dialectName).Select().From(entsql.Table(table))
	cols := sortedColumns(filters)
	if len(cols) > 0 {
		preds := make([]*entsql.Predicate, len(cols))
		for i, c := range cols {
			preds[i] = entsql.EQ(c, filters[c])
		}
		sel.Where(entsql.And(preds...))
	}
	return sel.Query()
}
