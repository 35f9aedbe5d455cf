package planet

import (
	"context"
	"log/slog"
	"time"

	"swapi-server/internal/shared/errors"
	"swapi-server/internal/shared/validation"
)

type Store interface {
	Create(ctx context.Context, planet Planet) (*Planet, error)
	GetByID(ctx context.Context, id int) (*Planet, error)
	GetAll(ctx context.Context) ([]Planet, error)
}

type Service struct {
	repo   Store
	cache  Cache
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds the planet service. cache may be nil.
func NewService(repo Store, cache Cache, logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service", "cache_enabled", cache != nil)

	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]Planet, error) {
	planets, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.WrapInternal("failed to list planets", err)
	}
	return planets, nil
}

// GetByID resolves a planet, consulting the cache first when one is configured.
func (s *Service) GetByID(ctx context.Context, id int) (*Planet, error) {
	logger := s.logger.With("component", "planet_service", "operation", "get_planet", "planet_id", id)

	if s.cache != nil {
		if planet, ok := s.cache.Get(ctx, id); ok {
			logger.Debug("Planet served from cache")
			return planet, nil
		}
	}

	planet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.WrapInternal("failed to get planet", err)
	}
	if planet == nil {
		return nil, errors.NotFoundf("Could not find planet with id: %d", id)
	}

	if s.cache != nil {
		s.cache.Set(ctx, planet)
	}

	return planet, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Planet, error) {
	logger := s.logger.With("component", "planet_service", "operation", "create_planet", "name", req.Name)

	if err := validation.Struct(req, "Provided payload is not valid"); err != nil {
		return nil, err
	}

	created := req.Created
	if created == "" {
		created = s.now().UTC().Format(time.RFC3339)
	}

	planet, err := s.repo.Create(ctx, Planet{
		Name:       req.Name,
		Climate:    req.Climate,
		Terrain:    req.Terrain,
		Population: req.Population,
		Created:    created,
	})
	if err != nil {
		return nil, errors.WrapInternal("failed to create planet", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, planet)
	}

	logger.Info("Planet created", "planet_id", planet.ID)
	return planet, nil
}
