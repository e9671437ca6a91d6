// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ardgroup/stratus/internal/platform/apperr"
)

// # Provider Contract

// Provider is the upstream weather data contract.
type Provider interface {

	/*
		Current returns the observed conditions for a free-form query.

		Parameters:
		  - context: context.Context
		  - query: string (City name or "lat,lon" pair)

		Returns:
		  - *CurrentReport: Resolved place and current conditions
		  - error: apperr.ValidationError for client-side query problems,
		    apperr.Upstream for provider outages
	*/
	Current(context context.Context, query string) (*CurrentReport, error)

	/*
		Forecast returns a multi-day forecast for a free-form query.

		Parameters:
		  - context: context.Context
		  - query: string (City name or "lat,lon" pair)
		  - days: int (Forecast length, already clamped by the caller)

		Returns:
		  - *ForecastReport: Resolved place, current conditions, and forecast
		  - error: apperr.ValidationError or apperr.Upstream
	*/
	Forecast(context context.Context, query string, days int) (*ForecastReport, error)
}

// # Live Provider

// providerError mirrors the weatherapi.com error body.
type providerError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIClient is the live weatherapi.com implementation of [Provider].
type APIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAPIClient constructs a live provider client.
//
// The HTTP client carries its own timeout so a slow provider cannot consume
// the whole request budget.
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current implements [Provider] against the /current.json endpoint.
func (client *APIClient) Current(context context.Context, query string) (*CurrentReport, error) {
	report := &CurrentReport{}
	if err := client.call(context, "/current.json", url.Values{"q": {query}}, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Forecast implements [Provider] against the /forecast.json endpoint.
func (client *APIClient) Forecast(context context.Context, query string, days int) (*ForecastReport, error) {
	report := &ForecastReport{}
	params := url.Values{
		"q":    {query},
		"days": {strconv.Itoa(days)},
	}
	if err := client.call(context, "/forecast.json", params, report); err != nil {
		return nil, err
	}
	return report, nil
}

/*
call performs one provider round-trip and decodes the payload.

Description: Non-2xx responses are translated into the API error taxonomy:

  - 400: The query itself is bad (unknown place, malformed coordinates).
    Surfaced as a 400 validation error carrying the provider's message.
  - 401/403: The configured API key is rejected. This is an operator
    problem, not a user problem, but it is still a client-side failure of
    this deployment, so it surfaces as 400 with a stable message.
  - Anything else: The provider is unhealthy. Surfaced as 502
    UPSTREAM_FAILURE with the raw cause kept server-side.
*/
func (client *APIClient) call(context context.Context, path string, params url.Values, target interface{}) error {
	params.Set("key", client.apiKey)
	endpoint := client.baseURL + path + "?" + params.Encode()

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("weather_client_build_request_failed: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return apperr.Upstream("Weather provider is unreachable", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return apperr.Upstream("Weather provider response could not be read", err)
	}

	if response.StatusCode != http.StatusOK {
		return client.mapErrorResponse(response.StatusCode, body)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return apperr.Upstream("Weather provider returned a malformed payload", err)
	}

	return nil
}

// mapErrorResponse translates a provider error status into an [apperr.AppError].
func (client *APIClient) mapErrorResponse(statusCode int, body []byte) error {
	var payload providerError
	_ = json.Unmarshal(body, &payload)

	switch statusCode {
	case http.StatusBadRequest:
		message := payload.Error.Message
		if message == "" {
			message = "Invalid weather query"
		}
		return apperr.ValidationError(message)

	case http.StatusUnauthorized, http.StatusForbidden:
		// Misconfigured or exhausted key. Never echo the provider message
		// here, it may include key fragments.
		return apperr.ValidationError("API key error. Check the weather provider configuration")

	default:
		return apperr.Upstream(
			"Weather provider request failed",
			fmt.Errorf("weather_client_status_%d: %s", statusCode, payload.Error.Message),
		)
	}
}
