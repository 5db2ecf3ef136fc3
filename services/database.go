package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// DatabaseService owns the GORM connection. DB_DRIVER selects postgres
// (default) or sqlite for local development.
type DatabaseService struct {
	context.DefaultService
	db *gorm.DB

	driver string
	dsn    string
}

const DATABASE_SVC = "database_svc"

func (ds DatabaseService) Id() string {
	return DATABASE_SVC
}

func (ds DatabaseService) Db() *gorm.DB {
	return ds.db
}

func (ds *DatabaseService) Configure(ctx *context.Context) error {
	ds.driver = getEnv("DB_DRIVER", DriverPostgres)
	switch ds.driver {
	case DriverPostgres:
		ds.dsn = postgresDSN()
	case DriverSqlite:
		ds.dsn = sqliteDSN()
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", ds.driver)
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *DatabaseService) Start() (err error) {
	ds.db, err = OpenDatabase(ds.driver, ds.dsn)
	if err != nil {
		return err
	}

	if err = Migrate(ds.db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *DatabaseService) Shutdown() {
	if ds.db == nil {
		return
	}
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// OpenDatabase connects with the given driver. It is shared by the API and
// the seed command. An empty driver means postgres and an empty dsn is read
// from the environment.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	}

	switch driver {
	case DriverPostgres, "":
		if dsn == "" {
			dsn = postgresDSN()
		}
		return openPostgres(dsn, config)
	case DriverSqlite:
		if dsn == "" {
			dsn = sqliteDSN()
		}
		return openSqlite(dsn, config)
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Conversation{},
		&model.Message{},
		&model.ConversationFeedback{},
	)
}

// HandleError logs a database failure and classifies it. Conflicts come back
// as AppErrors, everything else is wrapped with its class.
func (ds *DatabaseService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest
		errorType = "FOREIGN_KEY_VIOLATION"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		statusCode = http.StatusInternalServerError
		errorType = "TRANSACTION_ERROR"
	case ds.driver == DriverSqlite:
		statusCode, errorType = classifySqliteError(err)
	default:
		statusCode, errorType = classifyPostgresError(err)
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	if statusCode == http.StatusConflict {
		return shared.NewConflictError(err)
	}
	return fmt.Errorf("%s: %w", errorType, err)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
