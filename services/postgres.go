package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	postgresMaxRetries    = 10
	postgresMaxRetryDelay = 10 * time.Second
)

func postgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "fluentify")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone)
}

// openPostgres retries the connection with exponential backoff, since the
// database container often comes up after the API.
func openPostgres(dsn string, config *gorm.Config) (db *gorm.DB, err error) {
	retryDelay := time.Second

	for attempt := 1; attempt <= postgresMaxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, postgresMaxRetries)

		db, err = gorm.Open(postgres.Open(dsn), config)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					return db, nil
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == postgresMaxRetries {
			break
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > postgresMaxRetryDelay {
			retryDelay = postgresMaxRetryDelay
		}
	}

	log.Printf("Failed to connect to database after %d attempts: %v", postgresMaxRetries, err)
	return nil, err
}

func classifyPostgresError(err error) (int, string) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key value violates unique constraint"):
		return 409, "UNIQUE_CONSTRAINT"
	case strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"):
		return 500, "SCHEMA_ERROR"
	case strings.Contains(msg, "connection refused"):
		return 503, "DATABASE_CONNECTION_ERROR"
	}
	return 500, "INTERNAL_ERROR"
}
