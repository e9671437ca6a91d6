// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package location

import (
	"context"

	"github.com/ardgroup/stratus/pkg/pagination"
)

// # Location Data Access

// Repository defines the data access contract for saved locations.
type Repository interface {

	/*
		Create persists a new saved location.

		Parameters:
		  - context: context.Context
		  - location: *Location

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, location *Location) error

	/*
		FindByID returns the location with the given ID regardless of owner.

		Ownership is the service layer's responsibility: the repository
		returns the row so the service can distinguish "not found" from
		"owned by someone else".

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Location: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Location, error)

	/*
		ListByUser returns one page of the user's locations plus the total count.

		The owner filter is applied in SQL; rows belonging to other accounts
		never leave the database.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - params: pagination.Params

		Returns:
		  - []Location: The requested page, newest first
		  - int: Total count of the user's locations
		  - error: Database retrieval failures
	*/
	ListByUser(context context.Context, userID string, params pagination.Params) ([]Location, int, error)

	/*
		Update persists changes to an existing location.

		Parameters:
		  - context: context.Context
		  - location: *Location

		Returns:
		  - error: apperr.NotFound if the row vanished, or persistence failures
	*/
	Update(context context.Context, location *Location) error

	/*
		Delete removes the location with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound if no row was deleted, or persistence failures
	*/
	Delete(context context.Context, id string) error
}
