package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies embedded SQL migrations via goose. If database is nil, it's a no-op.
// databaseURL selects the goose dialect so the same migrations run on Postgres and SQLite.
func RunMigrations(ctx context.Context, database *sql.DB, databaseURL string) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationFiles)
	dialect := "postgres"
	if driver, _ := DriverFor(databaseURL); driver == "sqlite" {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, "migrations")
}
