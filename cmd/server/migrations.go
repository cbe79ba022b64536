package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/platform/postgres"
)

// handleMigrations executes one goose command against db.
func handleMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger, command string) error {
	logger.Info("Executing migrations", "command", command)

	var err error
	switch command {
	case "up":
		err = postgres.Migrate(ctx, db, logger)
	case "down":
		err = postgres.MigrateDown(ctx, db, logger)
	case "status":
		err = postgres.MigrationStatus(ctx, db, logger)
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("Migrations finished", "command", command)
	return nil
}
