// Package sqlite contains the concrete implementation of the persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"vibecart/config"
	"vibecart/internal/domain/lifecycle"
	"vibecart/internal/errors"
	"vibecart/internal/infra/persistence/model"

	"go.uber.org/fx"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the SQLite-backed GORM client.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.SQLite.Path, newGormSlogLogger(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open opens the database file at path and migrates the schema. It is shared
// by the fx provider above and by tests running against ":memory:".
func Open(path string, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlitedriver.Open(path), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})

	if err := db.AutoMigrate(
		&model.ProductModel{},
		&model.CartItemModel{},
		&model.ReceiptModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate SQLite schema")
	}

	return db, nil
}
