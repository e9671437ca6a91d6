// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package weather

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardgroup/stratus/pkg/pagination"
)

// # History Data Access

// HistoryRepository defines the data access contract for search history.
type HistoryRepository interface {

	/*
		Record persists one search history entry.

		Parameters:
		  - context: context.Context
		  - record: *SearchRecord

		Returns:
		  - error: Persistence failures
	*/
	Record(context context.Context, record *SearchRecord) error

	/*
		ListByUser returns one page of the user's search history plus the
		total count, newest first. The owner filter is applied in SQL.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - params: pagination.Params

		Returns:
		  - []SearchRecord: The requested page
		  - int: Total count for the user
		  - error: Database retrieval failures
	*/
	ListByUser(context context.Context, userID string, params pagination.Params) ([]SearchRecord, int, error)
}

// PostgresHistoryRepository implements HistoryRepository using pgx.
type PostgresHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new PostgreSQL implementation of the HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{pool: pool}
}

// Record inserts one row into the weather.search_history table.
func (repository *PostgresHistoryRepository) Record(context context.Context, record *SearchRecord) error {
	const query = `
		INSERT INTO weather.search_history (
			id, userid, query, searchedat
		) VALUES ($1, $2, $3, $4)`

	_, err := repository.pool.Exec(context, query,
		record.ID,
		record.UserID,
		record.Query,
		record.SearchedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_history_repo_record_failed: %w", err)
	}

	return nil
}

// ListByUser retrieves one page of the user's search history, newest first.
func (repository *PostgresHistoryRepository) ListByUser(context context.Context, userID string, params pagination.Params) ([]SearchRecord, int, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM weather.search_history
		WHERE userid = $1`

	var total int
	if err := repository.pool.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_history_repo_count_failed: %w", err)
	}

	const listQuery = `
		SELECT id, userid, query, searchedat
		FROM weather.search_history
		WHERE userid = $1
		ORDER BY searchedat DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, listQuery, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_history_repo_list_failed: %w", err)
	}
	defer rows.Close()

	records := make([]SearchRecord, 0, params.Limit)
	for rows.Next() {
		var record SearchRecord
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Query,
			&record.SearchedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_history_repo_scan_failed: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_history_repo_rows_failed: %w", err)
	}

	return records, total, nil
}
