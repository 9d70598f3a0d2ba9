package migration

import (
	"context"

	metadomain "github.com/vivekrupapara/chalan/internal/meta/domain"
	"github.com/vivekrupapara/chalan/internal/settings"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(func(conn *gorm.DB, metaRepo metadomain.Repository) error {
		if err := Run(conn); err != nil {
			return err
		}
		return settings.Seed(context.Background(), conn, metaRepo)
	}),
)
