package bootstrap

import (
	"booking-registry/internal/pkg/config"
	"booking-registry/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Invoke(RegisterMetrics),
)

// RegisterMetrics creates the collectors up front so /metrics lists them before the first request.
func RegisterMetrics(cfg config.Config) {
	if !cfg.Metrics.Enabled {
		return
	}
	metrics.Enable()
	metrics.HTTP()
	metrics.Booking()
}
