package remote

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-sql-driver/mysql"
)

// MySQLBackend mirrors into a MySQL database.
type MySQLBackend struct {
	drv *entsql.Driver
}

// NewMySQLBackend opens a MySQL connection from the DSN in cfg.URL.
func NewMySQLBackend(cfg Config) (*MySQLBackend, error) {
	dsn, err := mysql.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	dsn.ParseTime = true
	if cfg.Timeout > 0 {
		dsn.Timeout = cfg.Timeout
	}

	connector, err := mysql.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(int(cfg.MaxConns))
	}
	return &MySQLBackend{drv: entsql.OpenDB(dialect.MySQL, db)}, nil
}

func (b *MySQLBackend) Upsert(ctx context.Context, table string, record map[string]any, conflict ...string) error {
	query, args := buildUpsert(dialect.MySQL, table, record, conflict)
	if err := b.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func (b *MySQLBackend) Select(ctx context.Context, table string, filters map[string]any) ([]map[string]any, error) {
	query, args := buildSelect(dialect.MySQL, table, filters)
	rows := &entsql.Rows{}
	if err := b.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			if raw, ok := vals[i].([]byte); ok {
				row[c] = string(raw)
				continue
			}
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (b *MySQLBackend) Migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS daily_progress (" +
			"profile_id VARCHAR(64) NOT NULL," +
			"date DATE NOT NULL," +
			"schema_version INT NOT NULL DEFAULT 1," +
			"math_count INT NOT NULL DEFAULT 0," +
			"word_level INT NOT NULL DEFAULT 1," +
			"faith_done BOOLEAN NOT NULL DEFAULT FALSE," +
			"mazes_solved INT NOT NULL DEFAULT 0," +
			"puzzles_solved INT NOT NULL DEFAULT 0," +
			"word_search_solved INT NOT NULL DEFAULT 0," +
			"shadow_solved INT NOT NULL DEFAULT 0," +
			"arcade_unlocked BOOLEAN NOT NULL DEFAULT FALSE," +
			"PRIMARY KEY (profile_id, date))",
		"CREATE TABLE IF NOT EXISTS child_profiles (" +
			"owner_id VARCHAR(64) NOT NULL," +
			"id VARCHAR(64) NOT NULL," +
			"name VARCHAR(255) NOT NULL," +
			"age INT NOT NULL," +
			"gender VARCHAR(32) NOT NULL DEFAULT ''," +
			"hair_color VARCHAR(32) NOT NULL DEFAULT ''," +
			"hair_style VARCHAR(32) NOT NULL DEFAULT ''," +
			"eye_color VARCHAR(32) NOT NULL DEFAULT ''," +
			"skin_tone VARCHAR(32) NOT NULL DEFAULT ''," +
			"created_at DATETIME NOT NULL," +
			"PRIMARY KEY (owner_id, id))",
	}
	for _, stmt := range stmts {
		if err := b.drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("migrate mysql: %w", err)
		}
	}
	return nil
}

func (b *MySQLBackend) Close() error {
	return b.drv.Close()
}
