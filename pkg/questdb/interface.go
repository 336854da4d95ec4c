package questdb

import (
	"context"

	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// RowsInterface is the subset of pgx.Rows the readers iterate over.
// pgx.Rows satisfies it as is.
type RowsInterface interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

var _ RowsInterface = (pgx.Rows)(nil)

// QuestDBClient is QuestDB over its PostgreSQL wire endpoint.
// Reads serve the API, Exec is only used by migrations.
type QuestDBClient interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (RowsInterface, error)
	Exec(ctx context.Context, sql string, args ...any) error

	Ping(ctx context.Context) error
	Close()
}
