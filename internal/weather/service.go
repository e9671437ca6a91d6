// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package weather

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/ardgroup/stratus/internal/platform/constants"
	"github.com/ardgroup/stratus/internal/platform/validate"
	"github.com/ardgroup/stratus/pkg/pagination"
	"github.com/ardgroup/stratus/pkg/uuid"
)

// # Service

// ResponseCache is the payload cache contract consumed by the service.
//
// Defined here (rather than using [*Cache] directly) so unit tests can
// inject an in-memory implementation.
type ResponseCache interface {
	GetCurrent(context context.Context, query string) *CurrentReport
	SetCurrent(context context.Context, query string, report *CurrentReport)
	GetForecast(context context.Context, query string, days int) *ForecastReport
	SetForecast(context context.Context, query string, days int, report *ForecastReport)
}

// Service orchestrates weather lookups: query resolution, caching,
// provider calls, and search history recording.
type Service struct {
	provider          Provider
	cache             ResponseCache
	historyRepository HistoryRepository
	logger            *slog.Logger
}

// NewService constructs a new weather [Service].
func NewService(provider Provider, cache ResponseCache, historyRepo HistoryRepository, logger *slog.Logger) *Service {
	return &Service{
		provider:          provider,
		cache:             cache,
		historyRepository: historyRepo,
		logger:            logger,
	}
}

// # Query Resolution

/*
ResolveQuery turns the request's raw query parameters into a provider query.

Description: The client supplies either a place name ("location") or a
coordinate pair ("lat" and "lon"). Presence is decided on the RAW parameter
strings: "lat=0" is a present, valid equatorial coordinate, never a missing
one. Coordinates must parse as floats and fall inside the valid ranges.

Parameters:
  - locationParam: string (Raw "location" query parameter)
  - latParam: string (Raw "lat" query parameter)
  - lonParam: string (Raw "lon" query parameter)

Returns:
  - string: The provider query ("name" or "lat,lon")
  - error: apperr.ValidationError when neither form is usable
*/
func (service *Service) ResolveQuery(locationParam, latParam, lonParam string) (string, error) {
	if locationParam != "" {
		return locationParam, nil
	}

	if latParam == "" || lonParam == "" {
		return "", validate.RequiredError(FieldQuery,
			"Provide a location name, or both lat and lon")
	}

	latitude, latErr := strconv.ParseFloat(latParam, 64)
	longitude, lonErr := strconv.ParseFloat(lonParam, 64)

	validator := &validate.Validator{}
	validator.Custom(FieldLatitude, latErr != nil, "Must be a number").
		Custom(FieldLongitude, lonErr != nil, "Must be a number")
	if latErr == nil {
		validator.Latitude(FieldLatitude, &latitude)
	}
	if lonErr == nil {
		validator.Longitude(FieldLongitude, &longitude)
	}

	if err := validator.Err(); err != nil {
		return "", err
	}

	return latParam + "," + lonParam, nil
}

// ClampDays normalizes the forecast length: default when absent or
// unparsable, then clamped into [1, MaxForecastDays].
func ClampDays(daysParam string) int {
	if daysParam == "" {
		return constants.DefaultForecastDays
	}

	days, err := strconv.Atoi(daysParam)
	if err != nil {
		return constants.DefaultForecastDays
	}

	if days < 1 {
		return 1
	}
	if days > constants.MaxForecastDays {
		return constants.MaxForecastDays
	}
	return days
}

// # Lookups

/*
Current returns the observed conditions for a resolved query.

Description: Checks the cache first; on a miss, calls the provider, caches
the payload, and records the search in the caller's history. History
recording is best-effort and never fails the lookup.

Parameters:
  - context: context.Context
  - userID: string (Caller account ID, for history)
  - query: string (Resolved provider query)

Returns:
  - *CurrentReport: The weather payload
  - error: Provider taxonomy errors (400 validation / 502 upstream)
*/
func (service *Service) Current(context context.Context, userID, query string) (*CurrentReport, error) {
	if cached := service.cache.GetCurrent(context, query); cached != nil {
		return cached, nil
	}

	report, err := service.provider.Current(context, query)
	if err != nil {
		return nil, err
	}

	service.cache.SetCurrent(context, query, report)
	service.recordSearch(context, userID, query)

	return report, nil
}

/*
Forecast returns a multi-day forecast for a resolved query.

Parameters:
  - context: context.Context
  - userID: string (Caller account ID, for history)
  - query: string (Resolved provider query)
  - days: int (Already clamped forecast length)

Returns:
  - *ForecastReport: The weather payload
  - error: Provider taxonomy errors (400 validation / 502 upstream)
*/
func (service *Service) Forecast(context context.Context, userID, query string, days int) (*ForecastReport, error) {
	if cached := service.cache.GetForecast(context, query, days); cached != nil {
		return cached, nil
	}

	report, err := service.provider.Forecast(context, query, days)
	if err != nil {
		return nil, err
	}

	service.cache.SetForecast(context, query, days, report)
	service.recordSearch(context, userID, query)

	return report, nil
}

/*
History returns one page of the caller's search history plus metadata.

Parameters:
  - context: context.Context
  - userID: string (Caller account ID)
  - params: pagination.Params

Returns:
  - []SearchRecord: The requested page, newest first
  - pagination.Meta: Page metadata
  - error: Storage failures
*/
func (service *Service) History(context context.Context, userID string, params pagination.Params) ([]SearchRecord, pagination.Meta, error) {
	records, total, err := service.historyRepository.ListByUser(context, userID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return records, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// recordSearch appends a history entry. Failures are logged, never surfaced:
// a full history table must not break weather lookups.
func (service *Service) recordSearch(context context.Context, userID, query string) {
	record := &SearchRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Query:      query,
		SearchedAt: time.Now(),
	}

	if err := service.historyRepository.Record(context, record); err != nil {
		service.logger.WarnContext(context, "weather_history_record_failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}
