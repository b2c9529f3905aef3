package repo

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД по строке подключения и применяет миграции.
// Postgres — по умолчанию; SQLite (modernc.org/sqlite) выбирается по префиксу
// "sqlite://", "file:" или расширению .db/.sqlite.
func InitDB(dsn string) (*gorm.DB, error) {
	return openDB(dsn, Migrate)
}

// openDB открывает БД и прогоняет migrate. При любой ошибке после открытия
// пул закрывается.
func openDB(dsn string, migrate func(*gorm.DB) error) (*gorm.DB, error) {
	dial, isSQLite := dialectorFor(dsn)

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if isSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			_ = Close(db)
			return nil, fmt.Errorf("get sql pool: %w", err)
		}
		// SQLite не любит параллельных писателей
		sqlDB.SetMaxOpenConns(1)
	}

	if err := migrate(db); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// Close закрывает пул соединений gorm.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(dsn string) (gorm.Dialector, bool) {
	path := ""
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		path = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"),
		strings.HasSuffix(dsn, ".db"),
		strings.HasSuffix(dsn, ".sqlite"):
		path = dsn
	default:
		return postgres.Open(dsn), false
	}

	// внешние ключи в SQLite включаются на каждое соединение
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: path + sep + "_pragma=foreign_keys(1)"}, true
}
