// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ardgroup/stratus/internal/platform/apperr"
)

// ErrNotFound is a standard error returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Unique violations become client-facing duplicates. The account email
	// index is the only unique constraint in the schema, so the atomic insert
	// is what ultimately closes the read-then-write registration race.
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
		return apperr.Duplicate("Email already exists")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
