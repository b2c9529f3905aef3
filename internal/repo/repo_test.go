package repo

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// newTestDB поднимает SQLite (modernc.org/sqlite) во временном каталоге и
// прогоняет все миграции через InitDB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	db, err := InitDB(dsn)
	if err != nil {
		t.Fatalf("failed to init sqlite (modernc): %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}
