package storage

import (
	"os"
	"strings"
	"sync"

	"builderspace-backend/internal/config"
	"builderspace-backend/internal/util/errs"
	"builderspace-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the process-wide database handle. In test mode a shared
// in-memory SQLite database is used so the suite needs no external server.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	gormConfig := &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	}

	var err error
	if config.GetEnv().IsTesting {
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormConfig)
	} else {
		db, err = gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), gormConfig)
	}

	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
}

// Migrate applies the schema for the given models. Called once from main
// (and lazily by feature testing helpers).
func Migrate(models ...any) error {
	return GetDb().AutoMigrate(models...)
}

// TranslateError converts a storage-layer error into the typed taxonomy.
// This is the only place where driver error text is inspected; everything
// above works with error kinds.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if err == gorm.ErrRecordNotFound {
		return errs.Wrap(errs.KindNotFound, "record not found", err)
	}

	if err == gorm.ErrDuplicatedKey {
		return errs.Wrap(errs.KindConflict, "duplicate record", err)
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "constraint failed"):
		return errs.Wrap(errs.KindConflict, "duplicate record", err)
	case strings.Contains(msg, "locked"),
		strings.Contains(msg, "busy"),
		strings.Contains(msg, "deadlock"),
		strings.Contains(msg, "lock timeout"):
		return errs.Wrap(errs.KindTransient, "storage contention", err)
	}

	return err
}
