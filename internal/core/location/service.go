// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package location

import (
	"context"

	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/pkg/pagination"
	"github.com/ardgroup/stratus/pkg/uuid"
)

// # Service

// Service implements saved-location use cases with ownership enforcement.
//
// # Ownership Model
//
// Every single-record operation resolves the row first and compares its
// owner against the requesting account:
//   - Row absent        -> 404 NOT_FOUND
//   - Row owned by other -> 403 FORBIDDEN
//
// The two cases are deliberately distinguishable: location IDs are opaque
// UUIDs, so confirming existence leaks nothing actionable.
type Service struct {
	locationRepository Repository
}

// NewService constructs a new location [Service].
func NewService(repo Repository) *Service {
	return &Service{locationRepository: repo}
}

// CreateInput holds the data for saving a new location.
type CreateInput struct {
	Name      string
	Country   *string
	Latitude  *float64
	Longitude *float64
}

// UpdateInput holds the data for modifying a saved location.
type UpdateInput struct {
	Name      string
	Country   *string
	Latitude  *float64
	Longitude *float64
}

/*
Create saves a new location for the given account.

Description: The owner is always the authenticated account; the client
cannot save a location on behalf of another user.

Parameters:
  - context: context.Context
  - userID: string (Owner account ID)
  - input: CreateInput

Returns:
  - *Location: The persisted entity
  - error: Persistence failures
*/
func (service *Service) Create(context context.Context, userID string, input CreateInput) (*Location, error) {
	location := &Location{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Country:   input.Country,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	if err := service.locationRepository.Create(context, location); err != nil {
		return nil, err
	}

	return location, nil
}

/*
Get returns a single saved location owned by the given account.

Parameters:
  - context: context.Context
  - userID: string (Requesting account ID)
  - id: string (Location ID)

Returns:
  - *Location: The owned entity
  - error: apperr.NotFound, apperr.Forbidden, or storage failures
*/
func (service *Service) Get(context context.Context, userID, id string) (*Location, error) {
	return service.getOwned(context, userID, id)
}

/*
List returns one page of the account's saved locations plus pagination metadata.

Parameters:
  - context: context.Context
  - userID: string (Requesting account ID)
  - params: pagination.Params

Returns:
  - []Location: The requested page, newest first
  - pagination.Meta: Page metadata
  - error: Storage failures
*/
func (service *Service) List(context context.Context, userID string, params pagination.Params) ([]Location, pagination.Meta, error) {
	locations, total, err := service.locationRepository.ListByUser(context, userID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return locations, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
Update modifies a saved location after verifying ownership.

Parameters:
  - context: context.Context
  - userID: string (Requesting account ID)
  - id: string (Location ID)
  - input: UpdateInput

Returns:
  - *Location: The updated entity
  - error: apperr.NotFound, apperr.Forbidden, or storage failures
*/
func (service *Service) Update(context context.Context, userID, id string, input UpdateInput) (*Location, error) {
	location, err := service.getOwned(context, userID, id)
	if err != nil {
		return nil, err
	}

	location.Name = input.Name
	location.Country = input.Country
	location.Latitude = input.Latitude
	location.Longitude = input.Longitude

	if err := service.locationRepository.Update(context, location); err != nil {
		return nil, err
	}

	return location, nil
}

/*
Delete removes a saved location after verifying ownership.

Parameters:
  - context: context.Context
  - userID: string (Requesting account ID)
  - id: string (Location ID)

Returns:
  - error: apperr.NotFound, apperr.Forbidden, or storage failures
*/
func (service *Service) Delete(context context.Context, userID, id string) error {
	if _, err := service.getOwned(context, userID, id); err != nil {
		return err
	}

	return service.locationRepository.Delete(context, id)
}

// getOwned resolves a location and enforces the ownership invariant.
//
// An absent row yields 404; a row owned by a different account yields 403.
func (service *Service) getOwned(context context.Context, userID, id string) (*Location, error) {
	location, err := service.locationRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if location.UserID != userID {
		return nil, apperr.Forbidden("You do not have access to this location")
	}

	return location, nil
}
