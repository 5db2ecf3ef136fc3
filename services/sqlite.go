package services

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func sqliteDSN() string {
	return getEnv("DB_DATABASE", "fluentify.db")
}

func openSqlite(dsn string, config *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// A single writer keeps SQLite from returning SQLITE_BUSY on concurrent
	// transactions.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func classifySqliteError(err error) (int, string) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return 409, "UNIQUE_CONSTRAINT"
	case strings.Contains(msg, "no such table"):
		return 500, "SCHEMA_ERROR"
	}
	return 500, "INTERNAL_ERROR"
}
