package migration

import (
	"context"
	"fmt"

	"github.com/muhammadchandra19/public-api/pkg/logger"
)

// Runner applies and reverts migrations from one directory against one database.
type Runner struct {
	executor     Executor
	logger       logger.Interface
	migrationDir string
}

// NewRunner creates a new migration runner
func NewRunner(executor Executor, logger logger.Interface, migrationDir string) *Runner {
	return &Runner{
		executor:     executor,
		logger:       logger,
		migrationDir: migrationDir,
	}
}

// Up applies pending migrations in order. steps <= 0 applies all of them.
// It returns the ids that were applied.
func (r *Runner) Up(ctx context.Context, steps int) ([]string, error) {
	if err := r.executor.Exec(ctx, r.executor.Dialect().CreateTable); err != nil {
		return nil, fmt.Errorf("failed to ensure migration table: %w", err)
	}

	migrations, err := Load(r.migrationDir)
	if err != nil {
		return nil, err
	}

	applied, err := r.executor.AppliedIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	var done []string
	for _, m := range migrations {
		if applied[m.ID] {
			continue
		}
		if steps > 0 && len(done) == steps {
			break
		}

		if m.UpSQL == "" {
			r.logger.Warn("migration has no up statement", logger.NewField("id", m.ID))
			continue
		}

		if err := r.executor.Exec(ctx, m.UpSQL); err != nil {
			return done, fmt.Errorf("failed to apply migration %s: %w", m.ID, err)
		}
		if err := r.executor.Exec(ctx, r.executor.Dialect().Insert, m.ID, m.Name); err != nil {
			return done, fmt.Errorf("failed to record migration %s: %w", m.ID, err)
		}

		r.logger.Info("applied migration", logger.NewField("id", m.ID))
		done = append(done, m.ID)
	}

	return done, nil
}

// Down reverts the last steps applied migrations, newest first.
func (r *Runner) Down(ctx context.Context, steps int) ([]string, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps must be greater than 0 for down migrations")
	}

	if r.executor.Dialect().Delete == "" {
		return nil, fmt.Errorf("down migrations are not supported by this database")
	}

	migrations, err := Load(r.migrationDir)
	if err != nil {
		return nil, err
	}

	applied, err := r.executor.AppliedIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	var done []string
	for i := len(migrations) - 1; i >= 0 && len(done) < steps; i-- {
		m := migrations[i]
		if !applied[m.ID] {
			continue
		}

		if m.DownSQL == "" {
			return done, fmt.Errorf("no down statement for migration %s", m.ID)
		}

		if err := r.executor.Exec(ctx, m.DownSQL); err != nil {
			return done, fmt.Errorf("failed to revert migration %s: %w", m.ID, err)
		}
		if err := r.executor.Exec(ctx, r.executor.Dialect().Delete, m.ID); err != nil {
			return done, fmt.Errorf("failed to remove migration record %s: %w", m.ID, err)
		}

		r.logger.Info("reverted migration", logger.NewField("id", m.ID))
		done = append(done, m.ID)
	}

	return done, nil
}
