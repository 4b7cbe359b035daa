package infra

import (
	"fmt"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres pool through GORM's pgx-backed driver and,
// when autoMigrate is set, brings the schema up to date.
func NewDatabase(dsn string, autoMigrate bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates every table, then applies the idempotent
// patches AutoMigrate cannot express. It is also used by test databases.
func Migrate(db *gorm.DB) error {
	if err := renameUserInviter(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// renameUserInviter moves users.created_by to invited_by on databases built
// before the rename, dropping the creator constraints that were attached to it.
func renameUserInviter(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	err := db.Exec(`DO $$ BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns
				WHERE table_name = 'users' AND column_name = 'created_by') THEN
			ALTER TABLE users DROP CONSTRAINT IF EXISTS fk_stands_creator;
			ALTER TABLE users DROP CONSTRAINT IF EXISTS fk_purchases_creator;
			ALTER TABLE users RENAME COLUMN created_by TO invited_by;
		END IF;
	END $$`).Error
	if err != nil {
		return fmt.Errorf("rename users.created_by: %w", err)
	}
	return nil
}

// applySchemaPatches only runs on Postgres. Each statement is safe to re-run.
func applySchemaPatches(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	patches := []struct{ descr, sql string }{
		{
			"stand status values",
			`DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_stands_status') THEN
					ALTER TABLE stands ADD CONSTRAINT chk_stands_status
						CHECK (status IN ('draft','validated_logistics','validated_finance','approved'));
				END IF;
			END $$`,
		},
		{
			"invoice status values",
			`DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_invoices_status') THEN
					ALTER TABLE invoices ADD CONSTRAINT chk_invoices_status
						CHECK (status IN ('devis','facture','paid','cancelled'));
				END IF;
			END $$`,
		},
		{
			"contact name lookup index",
			`CREATE INDEX IF NOT EXISTS idx_contacts_name ON contacts (name)`,
		},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("%s: %w", p.descr, err)
		}
	}
	return nil
}
