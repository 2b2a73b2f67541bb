package postgres

import (
	"errors"
	"fmt"

	"github.com/VitaminP8/board/internal/config"
	"github.com/VitaminP8/board/internal/storage"
	"github.com/VitaminP8/board/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

// Open connects to the database selected by cfg.Storage and migrates the
// schema. Only the postgres and sqlite backends are SQL backed.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		db, err = gorm.Open("postgres", cfg.DB.DSN())
	case config.StorageSQLite:
		db, err = gorm.Open("sqlite3", cfg.SQLitePath)
		if err == nil {
			// sqlite serialises writers anyway
			db.DB().SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("storage %q is not a SQL backend", cfg.Storage)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	UseLogger(db, log)

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Info("connected to the database", zap.String("storage", cfg.Storage))
	return db, nil
}

// Migrate creates or extends the tables of every row type.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(models.All()...).Error
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	err := db.Close()
	if err != nil {
		return fmt.Errorf("failed to close the database connection: %w", err)
	}
	return nil
}

// UseLogger routes gorm's statement log to log at debug level. Statements are
// only logged when log has debug enabled.
func UseLogger(db *gorm.DB, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	db.SetLogger(gormLogger{log: log.Named("sql").Sugar()})
	db.LogMode(log.Core().Enabled(zap.DebugLevel))
}

type gormLogger struct {
	log *zap.SugaredLogger
}

func (l gormLogger) Print(v ...interface{}) {
	l.log.Debug(v...)
}

// lookupError turns gorm's missing-record error into a NotFoundError.
func lookupError(err error, entity string, id int64) error {
	if gorm.IsRecordNotFoundError(err) {
		return storage.NotFound(entity, id)
	}
	return fmt.Errorf("could not get %s by id: %w", entity, err)
}

func deleteError(err error, entity string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return fmt.Errorf("could not delete %s: %w", entity, err)
}

func updateError(err error, entity string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return fmt.Errorf("could not update %s: %w", entity, err)
}
