package people

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"swapi-server/internal/planet"
	"swapi-server/internal/shared/errors"
	"swapi-server/internal/shared/validation"
)

type Store interface {
	Create(ctx context.Context, p People) (*People, error)
	GetByID(ctx context.Context, id int) (*People, error)
	GetAll(ctx context.Context) ([]People, error)
	Update(ctx context.Context, p People) (*People, error)
	Delete(ctx context.Context, id int) (*People, error)
}

// PlanetLookup resolves homeworld references. It must return a not_found
// AppError for unknown ids.
type PlanetLookup interface {
	GetByID(ctx context.Context, id int) (*planet.Planet, error)
}

type Service struct {
	repo    Store
	planets PlanetLookup
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(repo Store, planets PlanetLookup, logger *slog.Logger) *Service {
	logger.Debug("Initializing people service")

	return &Service{
		repo:    repo,
		planets: planets,
		logger:  logger,
		now:     time.Now,
	}
}

// notFound is reported as a client error rather than 404 on /people/{id}/.
func notFound(id int) error {
	return &errors.AppError{
		Type:    errors.ErrorTypeValidation,
		Message: "ID does not exist",
		Err:     fmt.Errorf("people %d not found", id),
	}
}

func (s *Service) List(ctx context.Context) ([]People, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.WrapInternal("failed to list people", err)
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, id int) (*People, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.WrapInternal("failed to get people", err)
	}
	if p == nil {
		return nil, notFound(id)
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*People, error) {
	logger := s.logger.With("component", "people_service", "operation", "create_people")

	if err := validation.Struct(req, msgInvalidPayload); err != nil {
		return nil, err
	}

	homeworldID, err := s.resolveHomeworld(ctx, *req.Homeworld)
	if err != nil {
		return nil, err
	}

	created := s.now().UTC().Format(time.RFC3339)
	if req.Created != nil && *req.Created != "" {
		created = *req.Created
	}

	p, err := s.repo.Create(ctx, People{
		Name:        *req.Name,
		HomeworldID: homeworldID,
		Height:      *req.Height,
		Mass:        *req.Mass,
		HairColor:   *req.HairColor,
		Created:     created,
	})
	if err != nil {
		return nil, errors.WrapInternal("failed to create people", err)
	}

	logger.Info("People created", "people_id", p.ID, "name", p.Name)
	return p, nil
}

// Update applies the fields present in req to the stored record and
// persists the result in a single write.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*People, error) {
	logger := s.logger.With("component", "people_service", "operation", "update_people", "people_id", id)

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var homeworldID int
	if req.Homeworld != nil {
		if homeworldID, err = s.resolveHomeworld(ctx, *req.Homeworld); err != nil {
			return nil, err
		}
	}

	if err := validation.Struct(req, msgInvalidPayload); err != nil {
		return nil, err
	}

	for _, f := range req.Fields() {
		switch f {
		case FieldName:
			p.Name = *req.Name
		case FieldHomeworld:
			p.HomeworldID = homeworldID
		case FieldHeight:
			p.Height = *req.Height
		case FieldMass:
			p.Mass = *req.Mass
		case FieldHairColor:
			p.HairColor = *req.HairColor
		}
	}

	updated, err := s.repo.Update(ctx, *p)
	if err != nil {
		return nil, errors.WrapInternal("failed to update people", err)
	}
	if updated == nil {
		return nil, notFound(id)
	}

	logger.Info("People updated", "fields", req.Fields())
	return updated, nil
}

// Delete removes a record and returns what was deleted.
func (s *Service) Delete(ctx context.Context, id int) (*People, error) {
	logger := s.logger.With("component", "people_service", "operation", "delete_people", "people_id", id)

	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, errors.WrapInternal("failed to delete people", err)
	}
	if p == nil {
		return nil, notFound(id)
	}

	logger.Info("People deleted", "name", p.Name)
	return p, nil
}

func (s *Service) resolveHomeworld(ctx context.Context, ref string) (int, error) {
	id, err := planet.IDFromURL(ref)
	if err != nil {
		return 0, errors.WrapValidation(fmt.Sprintf("Invalid homeworld reference: %s", ref), err)
	}

	if _, err := s.planets.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}
