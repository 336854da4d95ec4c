package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/muhammadchandra19/public-api/pkg/config"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/migration"
	"github.com/muhammadchandra19/public-api/pkg/postgresql"
	"github.com/muhammadchandra19/public-api/pkg/questdb"
)

func main() {
	var (
		target    = flag.String("target", "all", "Database to migrate: questdb, postgres or all")
		direction = flag.String("direction", "up", "Migration direction: up or down")
		steps     = flag.Int("steps", 0, "Number of steps to migrate (0 = all)")
		dir       = flag.String("dir", "migrations", "Directory holding the questdb and postgres migration folders")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	if *target == "all" || *target == "postgres" {
		pgClient, err := postgresql.NewClient(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
		}
		defer pgClient.Close()

		run(ctx, migration.NewRunner(migration.PostgreSQL(pgClient), lg, filepath.Join(*dir, "postgres")), *direction, *steps)
	}

	if *target == "all" || *target == "questdb" {
		questdbClient, err := questdb.NewClient(ctx, cfg.QuestDB)
		if err != nil {
			log.Fatalf("Failed to initialize QuestDB client: %v", err)
		}
		defer questdbClient.Close()

		run(ctx, migration.NewRunner(migration.QuestDB(questdbClient), lg, filepath.Join(*dir, "questdb")), *direction, *steps)
	}

	log.Printf("Migration %s completed successfully", *direction)
}

func run(ctx context.Context, runner *migration.Runner, direction string, steps int) {
	var (
		ids []string
		err error
	)

	switch direction {
	case "up":
		ids, err = runner.Up(ctx, steps)
	case "down":
		ids, err = runner.Down(ctx, steps)
	default:
		log.Fatalf("Invalid direction: %s. Use 'up' or 'down'", direction)
	}
	if err != nil {
		log.Fatalf("Failed to migrate %s: %v", direction, err)
	}

	log.Printf("Migrated %s: %v", direction, ids)
}
