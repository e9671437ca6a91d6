// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package location

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/ardgroup/stratus/internal/platform/request"
	"github.com/ardgroup/stratus/internal/platform/respond"
	"github.com/ardgroup/stratus/internal/platform/validate"
	"github.com/ardgroup/stratus/pkg/pagination"
)

// # HTTP Delivery

// Handler implements the saved-location HTTP endpoints.
//
// All routes are mounted behind the auth guard; every request carries a
// resolved account identity.
type Handler struct {
	locationService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{locationService: service}
}

// Routes returns a [chi.Router] configured with location-specific routes.
//
// # Endpoints
//   - POST   /     : Saves a new location.
//   - GET    /     : Lists the account's locations (paginated).
//   - GET    /{id} : Returns one owned location.
//   - PUT    /{id} : Updates one owned location.
//   - DELETE /{id} : Removes one owned location.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

// # Request Payloads

type locationRequest struct {
	Name      string   `json:"name"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lon"`
}

// validateLocationPayload applies the shared rules for create and update.
func validateLocationPayload(input locationRequest) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLength).
		Latitude(FieldLatitude, input.Latitude).
		Longitude(FieldLongitude, input.Longitude)

	return validator.Err()
}

/*
Create saves a new location on the authenticated user's dashboard.

POST /locations

Request:
  - Body: locationRequest (Name, Country?, Lat?, Lon?)

Response:
  - 201: Location: The saved entity
  - 400: VALIDATION_ERROR: Bad input
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input locationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateLocationPayload(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.locationService.Create(request.Context(), userID, CreateInput{
		Name:      input.Name,
		Country:   input.Country,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
List returns a page of the authenticated user's saved locations.

GET /locations?page=1&limit=20

Response:
  - 200: PaginatedEnvelope: Locations newest first plus metadata
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	locations, metadata, err := handler.locationService.List(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, locations, metadata)
}

/*
Get returns a single owned location.

GET /locations/{id}

Response:
  - 200: Location
  - 403: FORBIDDEN: Owned by another account
  - 404: NOT_FOUND: No such location
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.locationService.Get(request.Context(), userID, requestutil.ID(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

/*
Update modifies a single owned location.

PUT /locations/{id}

Request:
  - Body: locationRequest (Name, Country?, Lat?, Lon?)

Response:
  - 200: Location: The updated entity
  - 400: VALIDATION_ERROR: Bad input
  - 403: FORBIDDEN: Owned by another account
  - 404: NOT_FOUND: No such location
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input locationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateLocationPayload(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.locationService.Update(request.Context(), userID, requestutil.ID(request, FieldID), UpdateInput{
		Name:      input.Name,
		Country:   input.Country,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
Delete removes a single owned location.

DELETE /locations/{id}

Response:
  - 204: No Content
  - 403: FORBIDDEN: Owned by another account
  - 404: NOT_FOUND: No such location
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.locationService.Delete(request.Context(), userID, requestutil.ID(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
