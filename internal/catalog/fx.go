package catalog

import (
	"github.com/vivekrupapara/chalan/internal/catalog/repository"
	"github.com/vivekrupapara/chalan/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
