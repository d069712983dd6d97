package database_test

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"silvacollect/database"
	"silvacollect/entities"
)

func TestOpenCreatesSchemaAndSeeds(t *testing.T) {
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))

	for _, table := range []string{
		"apontamentos", "ordem_servicos", "fazendas", "frotas", "colaboradors",
		"atividades", "insumos", "viveiros", "clones", "paradas", "usuarios",
		"weather_snapshots",
	} {
		require.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	var n int64
	require.NoError(t, db.Model(&entities.Viveiro{}).Count(&n).Error)
	require.EqualValues(t, 3, n)
	require.NoError(t, db.Model(&entities.Clone{}).Count(&n).Error)
	require.EqualValues(t, 3, n)
}

func TestReopenKeepsCapturedData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db := database.OpenSQLite(path)
	require.NoError(t, db.Create(&entities.Apontamento{
		ClientRef:  "ref-1",
		Tipo:       entities.TipoAvulso,
		Data:       "2026-08-30",
		Operador:   "João",
		SyncStatus: entities.SyncPending,
	}).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db = database.OpenSQLite(path)
	var got entities.Apontamento
	require.NoError(t, db.First(&got, "client_ref = ?", "ref-1").Error)
	require.Equal(t, entities.SyncPending, got.SyncStatus)
}

// Databases written before upload bookkeeping existed get the sync columns
// added, with existing rows backfilled as synced so they are not re-sent.
func TestLegacyRowsBackfilledAsSynced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, legacy.Exec(`CREATE TABLE apontamentos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tipo TEXT, data TEXT, operador TEXT
	)`).Error)
	require.NoError(t, legacy.Exec(
		`INSERT INTO apontamentos (tipo, data, operador) VALUES ('Avulso','2026-08-01','João')`,
	).Error)
	sqlDB, err := legacy.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db := database.OpenSQLite(path)

	var got entities.Apontamento
	require.NoError(t, db.First(&got).Error)
	require.Equal(t, entities.SyncSynced, got.SyncStatus)

	// new rows still default to pending
	require.NoError(t, db.Create(&entities.Apontamento{
		ClientRef:  "ref-new",
		Tipo:       entities.TipoAvulso,
		Data:       "2026-08-30",
		SyncStatus: entities.SyncPending,
	}).Error)
	pending := int64(0)
	require.NoError(t, db.Model(&entities.Apontamento{}).
		Where("sync_status = ?", entities.SyncPending).Count(&pending).Error)
	require.EqualValues(t, 1, pending)
}
