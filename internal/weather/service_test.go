// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package weather_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/internal/weather"
	"github.com/ardgroup/stratus/pkg/pagination"
)

// countingProvider wraps the mock provider and counts upstream calls.
type countingProvider struct {
	inner        weather.Provider
	currentCalls int
	forecastCall int
}

func (provider *countingProvider) Current(ctx context.Context, query string) (*weather.CurrentReport, error) {
	provider.currentCalls++
	return provider.inner.Current(ctx, query)
}

func (provider *countingProvider) Forecast(ctx context.Context, query string, days int) (*weather.ForecastReport, error) {
	provider.forecastCall++
	return provider.inner.Forecast(ctx, query, days)
}

// memoryCache is an in-memory ResponseCache.
type memoryCache struct {
	current  map[string]*weather.CurrentReport
	forecast map[string]*weather.ForecastReport
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		current:  make(map[string]*weather.CurrentReport),
		forecast: make(map[string]*weather.ForecastReport),
	}
}

func (cache *memoryCache) GetCurrent(_ context.Context, query string) *weather.CurrentReport {
	return cache.current[query]
}

func (cache *memoryCache) SetCurrent(_ context.Context, query string, report *weather.CurrentReport) {
	cache.current[query] = report
}

func (cache *memoryCache) GetForecast(_ context.Context, query string, days int) *weather.ForecastReport {
	return cache.forecast[fmt.Sprintf("%s:%d", query, days)]
}

func (cache *memoryCache) SetForecast(_ context.Context, query string, days int, report *weather.ForecastReport) {
	cache.forecast[fmt.Sprintf("%s:%d", query, days)] = report
}

// memoryHistory is an in-memory HistoryRepository.
type memoryHistory struct {
	records []weather.SearchRecord
	failing bool
}

func (history *memoryHistory) Record(_ context.Context, record *weather.SearchRecord) error {
	if history.failing {
		return fmt.Errorf("history unavailable")
	}
	history.records = append(history.records, *record)
	return nil
}

func (history *memoryHistory) ListByUser(_ context.Context, userID string, params pagination.Params) ([]weather.SearchRecord, int, error) {
	owned := make([]weather.SearchRecord, 0)
	for _, record := range history.records {
		if record.UserID == userID {
			owned = append(owned, record)
		}
	}
	return owned, len(owned), nil
}

func newTestWeatherService() (*weather.Service, *countingProvider, *memoryCache, *memoryHistory) {
	provider := &countingProvider{inner: weather.NewMockProvider()}
	cache := newMemoryCache()
	history := &memoryHistory{}
	service := weather.NewService(provider, cache, history, slog.Default())
	return service, provider, cache, history
}

/*
TestResolveQuery covers query resolution: place name, coordinate pair, the
zero-coordinate edge, and the missing-input rejection.
*/
func TestResolveQuery(t *testing.T) {
	service, _, _, _ := newTestWeatherService()

	tests := []struct {
		name     string
		location string
		lat      string
		lon      string
		want     string
		wantErr  bool
	}{
		{"place_name", "Hanoi", "", "", "Hanoi", false},
		{"coordinates", "", "21.03", "105.85", "21.03,105.85", false},
		// A raw "0" is a present, valid coordinate.
		{"zero_latitude", "", "0", "-78.5", "0,-78.5", false},
		{"zero_both", "", "0", "0", "0,0", false},
		{"location_wins", "Hanoi", "21.03", "105.85", "Hanoi", false},
		{"nothing", "", "", "", "", true},
		{"lat_only", "", "21.03", "", "", true},
		{"lon_only", "", "", "105.85", "", true},
		{"not_numbers", "", "abc", "def", "", true},
		{"lat_out_of_range", "", "95", "0", "", true},
		{"lon_out_of_range", "", "0", "181", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := service.ResolveQuery(tt.location, tt.lat, tt.lon)

			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
		})
	}
}

/*
TestClampDays covers default, lower, and upper bounds of the days parameter.
*/
func TestClampDays(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"absent", "", 5},
		{"not_a_number", "many", 5},
		{"in_range", "3", 3},
		{"lower_clamp", "0", 1},
		{"negative", "-4", 1},
		{"upper_clamp", "14", 10},
		{"at_max", "10", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weather.ClampDays(tt.input))
		})
	}
}

/*
TestService_Current_CacheAndHistory verifies the lookup pipeline: first call
hits the provider and records history, second call is served from cache.
*/
func TestService_Current_CacheAndHistory(t *testing.T) {
	service, provider, _, history := newTestWeatherService()

	first, err := service.Current(context.Background(), "user-1", "Hanoi")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, provider.currentCalls)
	assert.Len(t, history.records, 1)
	assert.Equal(t, "user-1", history.records[0].UserID)
	assert.Equal(t, "Hanoi", history.records[0].Query)

	// Cached: no second provider call, no second history entry.
	second, err := service.Current(context.Background(), "user-1", "Hanoi")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.currentCalls)
	assert.Len(t, history.records, 1)
}

/*
TestService_Current_HistoryBestEffort verifies a failing history store never
fails the lookup itself.
*/
func TestService_Current_HistoryBestEffort(t *testing.T) {
	service, _, _, history := newTestWeatherService()
	history.failing = true

	report, err := service.Current(context.Background(), "user-1", "Hanoi")
	require.NoError(t, err)
	assert.NotNil(t, report)
}

/*
TestService_Forecast verifies forecast lookups honor the days argument and cache
per (query, days) pair.
*/
func TestService_Forecast(t *testing.T) {
	service, provider, _, _ := newTestWeatherService()

	threeDay, err := service.Forecast(context.Background(), "user-1", "Hanoi", 3)
	require.NoError(t, err)
	assert.Len(t, threeDay.Forecast.ForecastDay, 3)

	fiveDay, err := service.Forecast(context.Background(), "user-1", "Hanoi", 5)
	require.NoError(t, err)
	assert.Len(t, fiveDay.Forecast.ForecastDay, 5)

	// Distinct day counts are distinct cache entries.
	assert.Equal(t, 2, provider.forecastCall)

	_, err = service.Forecast(context.Background(), "user-1", "Hanoi", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, provider.forecastCall)
}

/*
TestService_History verifies history listing is scoped to the requesting user.
*/
func TestService_History(t *testing.T) {
	service, _, _, _ := newTestWeatherService()

	_, err := service.Current(context.Background(), "user-1", "Hanoi")
	require.NoError(t, err)
	_, err = service.Current(context.Background(), "user-1", "Quito")
	require.NoError(t, err)
	_, err = service.Current(context.Background(), "user-2", "Lima")
	require.NoError(t, err)

	params := pagination.Params{Page: 1, Limit: 10}

	records, meta, err := service.History(context.Background(), "user-1", params)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 2, meta.Total)

	for _, record := range records {
		assert.Equal(t, "user-1", record.UserID)
	}
}

/*
TestMockProvider_Deterministic verifies the mock yields stable data per query.
*/
func TestMockProvider_Deterministic(t *testing.T) {
	provider := weather.NewMockProvider()

	first, err := provider.Current(context.Background(), "Hanoi")
	require.NoError(t, err)
	second, err := provider.Current(context.Background(), "Hanoi")
	require.NoError(t, err)

	assert.Equal(t, first.Current.TempC, second.Current.TempC)
	assert.Equal(t, first.Current.Condition, second.Current.Condition)
	assert.Equal(t, "Hanoi", first.Location.Name)

	other, err := provider.Current(context.Background(), "Quito")
	require.NoError(t, err)
	assert.Equal(t, "Quito", other.Location.Name)
}
