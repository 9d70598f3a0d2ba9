package observability

import (
	"github.com/vivekrupapara/chalan/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(metrics.New),
)
