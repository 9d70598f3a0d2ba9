package main

import (
	"github.com/vivekrupapara/chalan/internal/config"
	"github.com/vivekrupapara/chalan/internal/logger"
	"github.com/vivekrupapara/chalan/internal/migration"
	"github.com/vivekrupapara/chalan/internal/observability"
	"github.com/vivekrupapara/chalan/internal/server"
	"github.com/vivekrupapara/chalan/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}
