// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/pkg/pagination"
)

// # Location Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new saved location into the core.location table.

Parameters:
  - context: context.Context
  - location: *Location (Entity to persist)

Returns:
  - error: Connectivity or execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, location *Location) error {
	const query = `
		INSERT INTO core.location (
			id, userid, name, country, latitude, longitude, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if location.CreatedAt.IsZero() {
		location.CreatedAt = now
	}
	location.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		location.ID,
		location.UserID,
		location.Name,
		location.Country,
		location.Latitude,
		location.Longitude,
		location.CreatedAt,
		location.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_location_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a saved location by its unique ID.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Location: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Location, error) {
	const query = `
		SELECT id, userid, name, country, latitude, longitude, createdat, updatedat
		FROM core.location
		WHERE id = $1`

	location := &Location{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&location.ID,
		&location.UserID,
		&location.Name,
		&location.Country,
		&location.Latitude,
		&location.Longitude,
		&location.CreatedAt,
		&location.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Location")
		}
		return nil, fmt.Errorf("postgres_location_repo_find_by_id_failed: %w", err)
	}

	return location, nil
}

/*
ListByUser retrieves one page of the user's locations, newest first.

Description: The owner predicate is part of the SQL query, so rows of other
accounts are filtered inside the database rather than in application code.

Parameters:
  - context: context.Context
  - userID: string
  - params: pagination.Params

Returns:
  - []Location: The requested page
  - int: Total count for the user
  - error: Execution errors
*/
func (repository *PostgresRepository) ListByUser(context context.Context, userID string, params pagination.Params) ([]Location, int, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM core.location
		WHERE userid = $1`

	var total int
	if err := repository.pool.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_location_repo_count_failed: %w", err)
	}

	const listQuery = `
		SELECT id, userid, name, country, latitude, longitude, createdat, updatedat
		FROM core.location
		WHERE userid = $1
		ORDER BY createdat DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, listQuery, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_location_repo_list_failed: %w", err)
	}
	defer rows.Close()

	locations := make([]Location, 0, params.Limit)
	for rows.Next() {
		var location Location
		if err := rows.Scan(
			&location.ID,
			&location.UserID,
			&location.Name,
			&location.Country,
			&location.Latitude,
			&location.Longitude,
			&location.CreatedAt,
			&location.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_location_repo_scan_failed: %w", err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_location_repo_rows_failed: %w", err)
	}

	return locations, total, nil
}

/*
Update persists changes to an existing location row.

Parameters:
  - context: context.Context
  - location: *Location

Returns:
  - error: apperr.NotFound if the row no longer exists, or execution errors
*/
func (repository *PostgresRepository) Update(context context.Context, location *Location) error {
	const query = `
		UPDATE core.location
		SET name = $2, country = $3, latitude = $4, longitude = $5, updatedat = $6
		WHERE id = $1`

	location.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		location.ID,
		location.Name,
		location.Country,
		location.Latitude,
		location.Longitude,
		location.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_location_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Location")
	}

	return nil
}

/*
Delete removes a location row by ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound if no row matched, or execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM core.location WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_location_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Location")
	}

	return nil
}
