package invoice

import (
	"github.com/vivekrupapara/chalan/internal/invoice/repository"
	"github.com/vivekrupapara/chalan/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
