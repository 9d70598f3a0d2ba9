package db

import (
	"context"

	"github.com/glebarez/sqlite"
	"github.com/vivekrupapara/chalan/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open opens the sqlite database at the given path. The file is created on
// first use; schema creation is handled by the migration module.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func newFromConfig(cfg config.Config) (*gorm.DB, error) {
	return Open(cfg.DBPath)
}

func registerHooks(lc fx.Lifecycle, conn *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = ctx
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

// Module provides the shared gorm handle.
var Module = fx.Module("db",
	fx.Provide(newFromConfig),
	fx.Invoke(registerHooks),
)
