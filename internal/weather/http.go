// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package weather

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/ardgroup/stratus/internal/platform/request"
	"github.com/ardgroup/stratus/internal/platform/respond"
	"github.com/ardgroup/stratus/pkg/pagination"
)

// # HTTP Delivery

// Handler implements the weather lookup HTTP endpoints.
//
// All routes are mounted behind the auth guard; every lookup is attributed
// to the authenticated account for search history.
type Handler struct {
	weatherService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{weatherService: service}
}

// Routes returns a [chi.Router] configured with weather-specific routes.
//
// # Endpoints
//   - GET /          : Current conditions for a place or coordinate pair.
//   - GET /forecast  : Multi-day forecast.
//   - GET /history   : The caller's search history (paginated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.current)
	router.Get("/forecast", handler.forecast)
	router.Get("/history", handler.history)

	return router
}

/*
Current returns the observed conditions for a place or coordinate pair.

GET /weather?location=Hanoi
GET /weather?lat=0&lon=-78.5

Response:
  - 200: CurrentReport
  - 400: VALIDATION_ERROR: Missing/invalid query, or provider rejected it
  - 502: UPSTREAM_FAILURE: Provider outage
*/
func (handler *Handler) current(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	queryParams := request.URL.Query()
	query, err := handler.weatherService.ResolveQuery(
		queryParams.Get(FieldQuery),
		queryParams.Get(FieldLatitude),
		queryParams.Get(FieldLongitude),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.weatherService.Current(request.Context(), userID, query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}

/*
Forecast returns a multi-day forecast for a place or coordinate pair.

GET /weather/forecast?location=Hanoi&days=3

Description: The days parameter defaults to 5 and is clamped into [1, 10].

Response:
  - 200: ForecastReport
  - 400: VALIDATION_ERROR: Missing/invalid query, or provider rejected it
  - 502: UPSTREAM_FAILURE: Provider outage
*/
func (handler *Handler) forecast(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	queryParams := request.URL.Query()
	query, err := handler.weatherService.ResolveQuery(
		queryParams.Get(FieldQuery),
		queryParams.Get(FieldLatitude),
		queryParams.Get(FieldLongitude),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	days := ClampDays(queryParams.Get(FieldDays))

	report, err := handler.weatherService.Forecast(request.Context(), userID, query, days)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}

/*
History returns a page of the caller's weather search history.

GET /weather/history?page=1&limit=20

Response:
  - 200: PaginatedEnvelope: SearchRecords newest first plus metadata
*/
func (handler *Handler) history(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	records, metadata, err := handler.weatherService.History(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, metadata)
}
