package migration

import (
	"context"

	"github.com/muhammadchandra19/public-api/pkg/postgresql"
	"github.com/muhammadchandra19/public-api/pkg/questdb"
)

// Executor is the database a Runner applies migrations to.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) error
	AppliedIDs(ctx context.Context) (map[string]bool, error)
	Dialect() Dialect
}

// Dialect holds the bookkeeping statements for one database flavour.
type Dialect struct {
	CreateTable string
	Insert      string
	Delete      string
	SelectIDs   string
}

// QuestDBDialect keeps the history in a designated-timestamp table.
// QuestDB has no row deletes, so its migrations can not be reverted.
var QuestDBDialect = Dialect{
	CreateTable: `CREATE TABLE IF NOT EXISTS schema_migrations (
		id SYMBOL,
		name STRING,
		applied_at TIMESTAMP
	) TIMESTAMP(applied_at) PARTITION BY YEAR`,
	Insert:    `INSERT INTO schema_migrations (id, name, applied_at) VALUES ($1, $2, now())`,
	SelectIDs: `SELECT id FROM schema_migrations`,
}

// PostgreSQLDialect keeps the history in a plain table keyed by id.
var PostgreSQLDialect = Dialect{
	CreateTable: `CREATE TABLE IF NOT EXISTS schema_migrations (
		id VARCHAR(255) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,
	Insert:    `INSERT INTO schema_migrations (id, name) VALUES ($1, $2)`,
	Delete:    `DELETE FROM schema_migrations WHERE id = $1`,
	SelectIDs: `SELECT id FROM schema_migrations`,
}

type questdbExecutor struct {
	client questdb.QuestDBClient
}

// QuestDB adapts a QuestDB client to Executor.
func QuestDB(client questdb.QuestDBClient) Executor {
	return &questdbExecutor{client: client}
}

func (e *questdbExecutor) Exec(ctx context.Context, sql string, args ...any) error {
	return e.client.Exec(ctx, sql, args...)
}

func (e *questdbExecutor) AppliedIDs(ctx context.Context) (map[string]bool, error) {
	rows, err := e.client.Query(ctx, QuestDBDialect.SelectIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (e *questdbExecutor) Dialect() Dialect {
	return QuestDBDialect
}

type postgresqlExecutor struct {
	client postgresql.PostgreSQLClient
}

// PostgreSQL adapts a PostgreSQL client to Executor.
func PostgreSQL(client postgresql.PostgreSQLClient) Executor {
	return &postgresqlExecutor{client: client}
}

func (e *postgresqlExecutor) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := e.client.Exec(ctx, sql, args...)
	return err
}

func (e *postgresqlExecutor) AppliedIDs(ctx context.Context) (map[string]bool, error) {
	rows, err := e.client.Query(ctx, PostgreSQLDialect.SelectIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (e *postgresqlExecutor) Dialect() Dialect {
	return PostgreSQLDialect
}

type idRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanIDs(rows idRows) (map[string]bool, error) {
	applied := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}
	return applied, rows.Err()
}
