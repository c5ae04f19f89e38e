package bootstrap

import (
	"highway-booking/internal/pkg/metrics"
	"highway-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewMetrics,
		func(m *metrics.Metrics) commands.ReservationObserver { return m },
	),
)
