package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// RowsInterface is the subset of pgx.Rows the repositories iterate over.
type RowsInterface interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

var _ RowsInterface = (pgx.Rows)(nil)

// PostgreSQLClient is the reference data database.
type PostgreSQLClient interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (RowsInterface, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	// CheckHealth pings and probes the pool, for readiness.
	CheckHealth(ctx context.Context) *HealthCheck
	Ping(ctx context.Context) error
	Close()
}
