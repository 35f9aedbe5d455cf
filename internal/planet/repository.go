package planet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"swapi-server/internal/shared/database"
)

type Repository struct {
	db     database.Executor
	logger *slog.Logger
}

func NewRepository(db database.Executor, logger *slog.Logger) *Repository {
	logger.Debug("Initializing planet repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

const planetColumns = `id, name, climate, terrain, population, created`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlanet(row rowScanner, planet *Planet) error {
	return row.Scan(
		&planet.ID,
		&planet.Name,
		&planet.Climate,
		&planet.Terrain,
		&planet.Population,
		&planet.Created,
	)
}

func (r *Repository) Create(ctx context.Context, planet Planet) (*Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "create_planet", "name", planet.Name)
	logger.Debug("Creating planet")

	query := `
		INSERT INTO planets (name, climate, terrain, population, created)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + planetColumns

	var created Planet
	err := scanPlanet(r.db.QueryRowContext(ctx, query,
		planet.Name, planet.Climate, planet.Terrain, planet.Population, planet.Created,
	), &created)
	if err != nil {
		logger.Error("Failed to create planet", "error", err)
		return nil, fmt.Errorf("failed to create planet: %w", err)
	}

	logger.Debug("Planet created successfully", "planet_id", created.ID)
	return &created, nil
}

// GetByID returns nil, nil when the planet does not exist.
func (r *Repository) GetByID(ctx context.Context, id int) (*Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_planet", "planet_id", id)

	query := `SELECT ` + planetColumns + ` FROM planets WHERE id = $1`

	var planet Planet
	err := scanPlanet(r.db.QueryRowContext(ctx, query, id), &planet)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("Planet not found")
			return nil, nil
		}
		logger.Error("Database error getting planet", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &planet, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_all_planets")
	logger.Debug("Getting all planets")

	query := `SELECT ` + planetColumns + ` FROM planets ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query planets", "error", err)
		return nil, fmt.Errorf("failed to query planets: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var planets []Planet
	for rows.Next() {
		var planet Planet
		if err := scanPlanet(rows, &planet); err != nil {
			logger.Error("Failed to scan planet row", "error", err)
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		planets = append(planets, planet)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating planets: %w", err)
	}

	logger.Debug("Planets retrieved", "count", len(planets))
	return planets, nil
}
