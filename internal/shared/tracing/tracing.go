package tracing

import (
	"log/slog"
	"net/http"

	"swapi-server/internal/shared/config"

	instana "github.com/instana/go-sensor"
)

// Init starts the Instana collector and returns its sensor, or nil when tracing is disabled.
func Init(cfg config.TracingConfig) *instana.Sensor {
	logger := slog.With("component", "tracing", "operation", "init")

	if !cfg.Enabled {
		logger.Info("Tracing disabled")
		return nil
	}

	collector := instana.InitCollector(&instana.Options{
		Service:   cfg.ServiceName,
		AgentHost: cfg.AgentHost,
		AgentPort: cfg.AgentPort,
	})

	logger.Info("Instana collector initialized",
		"service", cfg.ServiceName,
		"agent_host", cfg.AgentHost,
		"agent_port", cfg.AgentPort,
	)

	return collector.LegacySensor()
}

// Handler wraps h in an entry span named after routeID. A nil sensor leaves h untouched.
func Handler(sensor *instana.Sensor, routeID, pathTemplate string, h http.HandlerFunc) http.HandlerFunc {
	if sensor == nil {
		return h
	}
	return instana.TracingNamedHandlerFunc(sensor, routeID, pathTemplate, h)
}
