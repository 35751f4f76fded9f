package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndsweep/ndsweep-server/internal/config"
)

func Connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := config.NewPgxpoolConfig()
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, poolConfig)
}

// MigrateUp applies every pending migration from the given filesystem.
// An already up-to-date schema is not an error.
func MigrateUp(migrations fs.FS) error {
	url, err := config.DatabaseURL()
	if err != nil {
		return err
	}
	source, err := iofs.New(migrations, ".")
	if err != nil {
		return fmt.Errorf("unable to create migrations source: %w", err)
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return fmt.Errorf("unable to create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func ConnectAndMigrate(ctx context.Context, migrations fs.FS) (*pgxpool.Pool, error) {
	db, err := Connect(ctx)
	if err != nil {
		return nil, err
	}
	if err := MigrateUp(migrations); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
