// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/internal/weather"
)

// stubProvider starts an httptest server that plays the weatherapi.com role.
func stubProvider(t *testing.T, status int, body string) *weather.APIClient {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// Every provider call must carry the configured key.
		assert.Equal(t, "test-key", request.URL.Query().Get("key"))

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return weather.NewAPIClient(server.URL, "test-key")
}

/*
TestAPIClient_Current verifies a successful current-conditions round-trip.
*/
func TestAPIClient_Current(t *testing.T) {
	client := stubProvider(t, http.StatusOK, `{
		"location": {"name": "Hanoi", "country": "Vietnam", "lat": 21.03, "lon": 105.85},
		"current": {"temp_c": 28.5, "humidity": 74, "condition": {"text": "Partly cloudy", "code": 1003}}
	}`)

	report, err := client.Current(context.Background(), "Hanoi")
	require.NoError(t, err)

	assert.Equal(t, "Hanoi", report.Location.Name)
	assert.Equal(t, 28.5, report.Current.TempC)
	assert.Equal(t, "Partly cloudy", report.Current.Condition.Text)
}

/*
TestAPIClient_Forecast verifies a successful forecast round-trip including
the days parameter on the wire.
*/
func TestAPIClient_Forecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/forecast.json", request.URL.Path)
		assert.Equal(t, "3", request.URL.Query().Get("days"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"location": {"name": "Hanoi"},
			"current": {"temp_c": 28.5},
			"forecast": {"forecastday": [
				{"date": "2026-08-31", "day": {"maxtemp_c": 33, "mintemp_c": 25}},
				{"date": "2026-09-01", "day": {"maxtemp_c": 32, "mintemp_c": 25}},
				{"date": "2026-09-02", "day": {"maxtemp_c": 31, "mintemp_c": 24}}
			]}
		}`))
	}))
	t.Cleanup(server.Close)

	client := weather.NewAPIClient(server.URL, "test-key")

	report, err := client.Forecast(context.Background(), "Hanoi", 3)
	require.NoError(t, err)

	require.Len(t, report.Forecast.ForecastDay, 3)
	assert.Equal(t, 33.0, report.Forecast.ForecastDay[0].Day.MaxTempC)
}

/*
TestAPIClient_BadRequest verifies a provider 400 surfaces as a 400 validation
error carrying the provider's message.
*/
func TestAPIClient_BadRequest(t *testing.T) {
	client := stubProvider(t, http.StatusBadRequest,
		`{"error": {"code": 1006, "message": "No matching location found."}}`)

	_, err := client.Current(context.Background(), "xyzzy")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, 400, ae.HTTPStatus)
	assert.Equal(t, "No matching location found.", ae.Message)
}

/*
TestAPIClient_KeyRejected verifies provider 401/403 surface as 400 with a
stable message that never echoes provider details.
*/
func TestAPIClient_KeyRejected(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := stubProvider(t, tt.status,
				`{"error": {"code": 2006, "message": "API key sk-123456 is invalid."}}`)

			_, err := client.Current(context.Background(), "Hanoi")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 400, ae.HTTPStatus)
			assert.NotContains(t, ae.Message, "sk-123456")
		})
	}
}

/*
TestAPIClient_Outage verifies 5xx and unreachable providers surface as 502
UPSTREAM_FAILURE.
*/
func TestAPIClient_Outage(t *testing.T) {
	t.Run("server_error", func(t *testing.T) {
		client := stubProvider(t, http.StatusInternalServerError, `{"error": {"message": "boom"}}`)

		_, err := client.Current(context.Background(), "Hanoi")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UPSTREAM_FAILURE", ae.Code)
		assert.Equal(t, 502, ae.HTTPStatus)
	})

	t.Run("unreachable", func(t *testing.T) {
		client := weather.NewAPIClient("http://127.0.0.1:1", "test-key")

		_, err := client.Current(context.Background(), "Hanoi")
		require.Error(t, err)
		assert.Equal(t, "UPSTREAM_FAILURE", apperr.As(err).Code)
	})

	t.Run("malformed_payload", func(t *testing.T) {
		client := stubProvider(t, http.StatusOK, `{not json`)

		_, err := client.Current(context.Background(), "Hanoi")
		require.Error(t, err)
		assert.Equal(t, "UPSTREAM_FAILURE", apperr.As(err).Code)
	})
}
