package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := m.Executor(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

func migrateUp(db *gorm.DB, migrations []Migration) error {
	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	for _, m := range migrationsToRun(db, migrations) {
		if err := m.execute(db); err != nil {
			return fmt.Errorf("migration %q: %w", m.Key, err)
		}

		// There was no error, so create a record for the migration
		if err := createMigrationRecord(db, m.Key); err != nil {
			return err
		}
	}

	return nil
}

func ensureMigrationsTable(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
}

type migrationKeyCol struct {
	Key string
}

func migrationsToRun(db *gorm.DB, allMigrations []Migration) []Migration {
	ranMigrations := []migrationKeyCol{}
	db.Raw("SELECT key FROM migrations;").Scan(&ranMigrations)

	if len(ranMigrations) == 0 {
		return allMigrations
	}

	ran := make(map[string]bool, len(ranMigrations))
	for _, m := range ranMigrations {
		ran[m.Key] = true
	}

	toRun := []Migration{}
	for _, m := range allMigrations {
		if !ran[m.Key] {
			toRun = append(toRun, m)
		}
	}

	return toRun
}

func createMigrationRecord(db *gorm.DB, key string) error {
	return db.Exec(`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`, key, time.Now().Unix()).Error
}
