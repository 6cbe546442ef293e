package db

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

// Migration is one versioned schema change. Up runs inside a transaction together with
// the bookkeeping insert, so a version is recorded only if its change succeeded.
type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

type SchemaMigration struct {
	Version   int    `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"not null"`
	AppliedAt string `gorm:"not null"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrate applies, in version order, every migration not yet recorded in
// schema_migrations and returns the versions it applied.
func (f *GormDB) Migrate(ctx context.Context, migrations ...Migration) ([]int, error) {
	ordered := make([]Migration, len(migrations))
	copy(ordered, migrations)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Version < ordered[j].Version
	})

	applied := []int{}
	err := f.Conn(ctx, func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&SchemaMigration{}); err != nil {
			return fmt.Errorf("create schema_migrations: %w", err)
		}

		var done []SchemaMigration
		if err := tx.Find(&done).Error; err != nil {
			return fmt.Errorf("read schema_migrations: %w", err)
		}

		seen := make(map[int]struct{}, len(done))
		for _, m := range done {
			seen[m.Version] = struct{}{}
		}

		for _, m := range ordered {
			if _, ok := seen[m.Version]; ok {
				continue
			}

			err := tx.Transaction(func(mtx *gorm.DB) error {
				if err := m.Up(mtx); err != nil {
					return err
				}
				return mtx.Create(&SchemaMigration{
					Version:   m.Version,
					Name:      m.Name,
					AppliedAt: time.Now().UTC().Format(time.RFC3339),
				}).Error
			})
			if err != nil {
				return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
			}

			seen[m.Version] = struct{}{}
			applied = append(applied, m.Version)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return applied, nil
}
