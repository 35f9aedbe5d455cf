package server

import (
	"log/slog"
	"net/http"
	"strings"

	"swapi-server/internal/middleware"
	"swapi-server/internal/people"
	peopleHandlers "swapi-server/internal/people/handlers"
	"swapi-server/internal/planet"
	planetHandlers "swapi-server/internal/planet/handlers"
	serverHandlers "swapi-server/internal/server/handlers"
	"swapi-server/internal/shared/config"
	"swapi-server/internal/shared/tracing"
	trainingHandlers "swapi-server/internal/training/handlers"

	instana "github.com/instana/go-sensor"
)

type Routes struct {
	db            serverHandlers.Pinger
	peopleService *people.Service
	planetService *planet.Service
	config        *config.Config
	sensor        *instana.Sensor
	rateLimiter   *middleware.RateLimiter
	logger        *slog.Logger
}

// NewRoutes wires the HTTP surface. sensor may be nil when tracing is off.
func NewRoutes(db serverHandlers.Pinger, peopleService *people.Service, planetService *planet.Service, cfg *config.Config, sensor *instana.Sensor, logger *slog.Logger) *Routes {
	return &Routes{
		db:            db,
		peopleService: peopleService,
		planetService: planetService,
		config:        cfg,
		sensor:        sensor,
		rateLimiter:   middleware.NewRateLimiter(cfg.RateLimit),
		logger:        logger,
	}
}

// Setup builds the mux and wraps it in the middleware chain.
func (r *Routes) Setup() http.Handler {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	peopleHandler := peopleHandlers.NewPeopleHandler(r.peopleService)
	planetHandler := planetHandlers.NewPlanetHandler(r.planetService)
	trainingHandler := trainingHandlers.NewTrainingHandler(r.logger)

	protect := middleware.RequireWriteAccess(r.config.Auth)
	resource := func(name, pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, protect(r.traced(name, pattern, h)))
	}

	mux.Handle("/health/{$}", r.traced("health", "/health/{$}", healthHandler.ServeHTTP))

	resource("people_collection", "/people/{$}", peopleHandler.Collection)
	resource("people_detail", "/people/{id}/{$}", peopleHandler.Detail)
	resource("people_sample", "/people/sample/{$}", peopleHandler.Sample)
	resource("people_samples", "/people/samples/{$}", peopleHandler.Samples)

	resource("planet_collection", "/planets/{$}", planetHandler.Collection)
	resource("planet_detail", "/planets/{id}/{$}", planetHandler.Detail)

	trainingHandler.Register(mux, "/training/", r.traced)

	logger.Info("Routes configured successfully",
		"resource_endpoints", []string{"/people/", "/people/{id}/", "/planets/", "/planets/{id}/"},
		"fixture_endpoints", []string{"/people/sample/", "/people/samples/"},
		"training_prefix", "/training/",
		"write_auth", r.config.Auth.Enabled,
		"tracing", r.sensor != nil,
	)

	var handler http.Handler = mux
	handler = r.rateLimiter.Middleware(handler)
	handler = middleware.NewCORS(r.config.Frontend).Middleware(handler)
	handler = middleware.Logging(r.logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// Close stops background work started by Setup's middleware.
func (r *Routes) Close() {
	r.rateLimiter.Stop()
}

func (r *Routes) traced(name, pattern string, h http.HandlerFunc) http.HandlerFunc {
	return tracing.Handler(r.sensor, name, strings.TrimSuffix(pattern, "{$}"), h)
}
