package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/pageza/alchemorsel-v2/scaler/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// RunMigrations brings the schema up to date. SQLite databases are migrated
// with GORM because the SQL migrations use PostgreSQL types.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		if err := db.WithContext(ctx).AutoMigrate(&model.Recipe{}, &model.Ingredient{}); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return Migrate(ctx, sqlDB, "up")
}

// Migrate runs a goose command ("up", "down", "status", "version", ...)
// against the embedded PostgreSQL migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, db, migrationsDir, args...); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
