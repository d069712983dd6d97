// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"silvacollect/entities"
)

// OpenSQLite opens the local replica. Failure here is fatal: without the
// store there is no offline capture and no sync, so the app cannot run.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the sync-column migration BEFORE AutoMigrate so rows captured by
	// pre-sync app versions get a deterministic status first.
	if err := migrateApontamentosSyncColumns(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Apontamento{},
		&entities.OrdemServico{},
		&entities.Fazenda{},
		&entities.Frota{},
		&entities.Colaborador{},
		&entities.Atividade{},
		&entities.Insumo{},
		&entities.Viveiro{},
		&entities.Clone{},
		&entities.Parada{},
		&entities.Usuario{},
		&entities.WeatherSnapshot{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := seedLocalOnly(db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	return db
}

// migrateApontamentosSyncColumns backfills sync bookkeeping on databases
// written by app versions that predate offline upload. Legacy rows were only
// ever written while connected, so they are marked synced rather than queued
// for a duplicate upload.
func migrateApontamentosSyncColumns(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='apontamentos'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(apontamentos)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	have := map[string]bool{}
	for _, c := range cols {
		have[strings.ToLower(c.Name)] = true
	}
	if have["sync_status"] {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		adds := []string{
			`ALTER TABLE apontamentos ADD COLUMN sync_status TEXT DEFAULT 'pending'`,
			`ALTER TABLE apontamentos ADD COLUMN synced_at DATETIME`,
			`ALTER TABLE apontamentos ADD COLUMN client_ref TEXT`,
		}
		for _, stmt := range adds {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return tx.Exec(`UPDATE apontamentos SET sync_status = 'synced'`).Error
	})
}

// seedLocalOnly fills the collections that have no remote endpoint and are
// therefore never touched by the cache synchronizer.
func seedLocalOnly(db *gorm.DB) error {
	var n int64
	if err := db.Model(&entities.Viveiro{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		viveiros := []entities.Viveiro{
			{Nome: "Viveiro Central"},
			{Nome: "Viveiro Norte"},
			{Nome: "Viveiro Sul"},
		}
		if err := db.Create(&viveiros).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&entities.Clone{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		clones := []entities.Clone{
			{Codigo: "CL-001", Nome: "Eucalyptus Urograndis"},
			{Codigo: "CL-002", Nome: "Eucalyptus Saligna"},
			{Codigo: "CL-003", Nome: "Eucalyptus Grandis"},
		}
		if err := db.Create(&clones).Error; err != nil {
			return err
		}
	}
	return nil
}
