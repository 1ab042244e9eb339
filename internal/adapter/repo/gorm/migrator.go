package gormrepo

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"farmstead/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var builtinMigrations embed.FS

// AutoMigrate creates the journal schema from the row models.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.FarmEvent{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Migrations returns the SQL migrations in dir, or the built-in set when dir
// is empty.
func Migrations(dir string) fs.FS {
	if strings.TrimSpace(dir) == "" {
		sub, err := fs.Sub(builtinMigrations, "migrations")
		if err != nil {
			panic(err)
		}
		return sub
	}
	return os.DirFS(dir)
}

type schemaMigration struct {
	Version   string    `gorm:"column:version;primaryKey"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

// ApplyMigrations runs each *.sql file of migrations not yet recorded in
// schema_migrations, in name order. A file and its record commit together.
func ApplyMigrations(ctx context.Context, db *gorm.DB, migrations fs.FS) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	pending, err := pendingMigrations(db, migrations)
	if err != nil {
		return err
	}
	for _, name := range pending {
		script, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		version := strings.TrimSuffix(name, ".sql")
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(script)).Error; err != nil {
				return fmt.Errorf("apply migration %s: %w", version, err)
			}
			return tx.Create(&schemaMigration{Version: version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func pendingMigrations(db *gorm.DB, migrations fs.FS) ([]string, error) {
	names, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	var applied []string
	if err := db.Model(&schemaMigration{}).Pluck("version", &applied).Error; err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}
	out := names[:0]
	for _, name := range names {
		if !done[strings.TrimSuffix(path.Base(name), ".sql")] {
			out = append(out, name)
		}
	}
	return out, nil
}
