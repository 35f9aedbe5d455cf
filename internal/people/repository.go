package people

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

// NewRepository accepts a *database.DB or a *database.Tx.
func NewRepository(db database.Executor, logger *slog.Logger) *Repository {
	logger.Debug("Initializing people repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

const peopleColumns = `id, name, homeworld_id, height, mass, hair_color, created`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPeople(row rowScanner, p *People) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.HomeworldID,
		&p.Height,
		&p.Mass,
		&p.HairColor,
		&p.Created,
	)
}

// scanOne scans a single-row result, returning nil, nil on sql.ErrNoRows.
func scanOne(row rowScanner) (*People, error) {
	var p People
	if err := scanPeople(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p People) (*People, error) {
	logger := r.logger.With("component", "people_repository", "operation", "create_people", "name", p.Name)
	logger.Debug("Creating people")

	query := `
		INSERT INTO people (name, homeworld_id, height, mass, hair_color, created)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + peopleColumns

	var created People
	err := scanPeople(r.db.QueryRowContext(ctx, query,
		p.Name, p.HomeworldID, p.Height, p.Mass, p.HairColor, p.Created,
	), &created)
	if err != nil {
		logger.Error("Failed to create people", "error", err)
		return nil, fmt.Errorf("failed to create people: %w", err)
	}

	logger.Debug("People created successfully", "people_id", created.ID)
	return &created, nil
}

// GetByID returns nil, nil when the record does not exist.
func (r *Repository) GetByID(ctx context.Context, id int) (*People, error) {
	logger := r.logger.With("component", "people_repository", "operation", "get_people", "people_id", id)

	query := `SELECT ` + peopleColumns + ` FROM people WHERE id = $1`

	p, err := scanOne(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		logger.Error("Database error getting people", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}
	if p == nil {
		logger.Debug("People not found")
	}

	return p, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]People, error) {
	logger := r.logger.With("component", "people_repository", "operation", "get_all_people")
	logger.Debug("Getting all people")

	query := `SELECT ` + peopleColumns + ` FROM people ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query people", "error", err)
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var all []People
	for rows.Next() {
		var p People
		if err := scanPeople(rows, &p); err != nil {
			logger.Error("Failed to scan people row", "error", err)
			return nil, fmt.Errorf("failed to scan people: %w", err)
		}
		all = append(all, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating people: %w", err)
	}

	logger.Debug("People retrieved", "count", len(all))
	return all, nil
}

// Update writes every mutable column of p in one statement. It returns
// nil, nil when the record no longer exists.
func (r *Repository) Update(ctx context.Context, p People) (*People, error) {
	logger := r.logger.With("component", "people_repository", "operation", "update_people", "people_id", p.ID)
	logger.Debug("Updating people")

	query := `
		UPDATE people
		SET name = $1, homeworld_id = $2, height = $3, mass = $4, hair_color = $5
		WHERE id = $6
		RETURNING ` + peopleColumns

	updated, err := scanOne(r.db.QueryRowContext(ctx, query,
		p.Name, p.HomeworldID, p.Height, p.Mass, p.HairColor, p.ID,
	))
	if err != nil {
		logger.Error("Failed to update people", "error", err)
		return nil, fmt.Errorf("failed to update people: %w", err)
	}

	return updated, nil
}

// Delete removes the record and returns it, or nil, nil if it was absent.
func (r *Repository) Delete(ctx context.Context, id int) (*People, error) {
	logger := r.logger.With("component", "people_repository", "operation", "delete_people", "people_id", id)
	logger.Debug("Deleting people")

	query := `DELETE FROM people WHERE id = $1 RETURNING ` + peopleColumns

	deleted, err := scanOne(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		logger.Error("Failed to delete people", "error", err)
		return nil, fmt.Errorf("failed to delete people: %w", err)
	}

	return deleted, nil
}
