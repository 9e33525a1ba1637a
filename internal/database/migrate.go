package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Varun5711/todolist/internal/database/migrations"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/pressly/goose/v3"
)

var ErrMigrationLocked = errors.New("another instance is running migrations")

// Locker serializes migrations across instances. A nil Locker means the
// caller is the only migrator.
type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// gooseUp is swapped out in tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// RunMigrations applies every pending embedded migration to db.
func RunMigrations(ctx context.Context, db *sql.DB, lock Locker, log *logger.Logger) error {
	if lock != nil {
		acquired, err := lock.Acquire(ctx)
		if err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		if !acquired {
			return ErrMigrationLocked
		}
		defer func() {
			if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
				log.Warn("Failed to release migration lock: %v", err)
			}
		}()
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(log)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := gooseUp(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Migrations applied")
	return nil
}
