package system

import (
	"fmt"
	"io/fs"

	"github.com/mkessler-dev/habitkit/internal/cli"
	"github.com/mkessler-dev/habitkit/internal/migration"
	"github.com/mkessler-dev/habitkit/internal/storage/sqlite"
	"github.com/mkessler-dev/habitkit/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrate command only supports SQLite storage, PostgreSQL migrates on init")
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	migrationFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}

	count, err := migration.NewRunner(db, migrationFS).ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
