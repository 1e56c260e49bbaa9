package db

import (
	"context"

	"github.com/garagekit/garagekit/internal/config"
	"github.com/garagekit/garagekit/internal/observability/logger"
	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Open opens the local SQLite database that backs device storage.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.NewGormLogger(log, logger.DefaultGormLoggerConfig()),
	})
	if err != nil {
		return nil, err
	}

	// Single local writer; WAL keeps reads cheap while a save is in
	// flight and busy_timeout covers overlapping opens.
	conn.Exec("PRAGMA journal_mode = WAL")
	conn.Exec("PRAGMA busy_timeout = 5000")

	return conn, nil
}

var Module = fx.Module("db",
	fx.Provide(Open),
	fx.Invoke(registerClose),
)

func registerClose(lc fx.Lifecycle, conn *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}
