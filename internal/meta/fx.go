package meta

import (
	"github.com/vivekrupapara/chalan/internal/meta/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("meta.repository",
	fx.Provide(repository.Provide),
)
