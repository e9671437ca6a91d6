// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

/*
Package weather implements current-conditions and forecast lookups.

It talks to the weatherapi.com HTTP provider (or a deterministic mock),
caches provider payloads in Redis, and records each successful lookup in
the caller's search history.

# Architecture

  - Provider: The upstream contract, satisfied by APIClient and MockProvider.
  - Cache: Redis-backed payload cache with a short TTL.
  - HistoryRepository: PostgreSQL persistence of per-user searches.
  - Service: Query resolution, cache orchestration, history recording.
  - Handler: RESTful JSON delivery mounted behind the auth guard.
*/
package weather

import "time"

// # Provider Payloads
//
// The types below mirror the subset of the weatherapi.com response schema
// the dashboard consumes. Field tags match the provider's JSON exactly so
// payloads can be cached and replayed without transformation.

// Place identifies the resolved place of a weather report.
type Place struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	LocalTime string  `json:"localtime"`
}

// Condition describes a weather state in human and icon form.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// Current holds the observed conditions at a place.
type Current struct {
	TempC      float64   `json:"temp_c"`
	TempF      float64   `json:"temp_f"`
	Condition  Condition `json:"condition"`
	WindKph    float64   `json:"wind_kph"`
	Humidity   int       `json:"humidity"`
	FeelsLikeC float64   `json:"feelslike_c"`
	UV         float64   `json:"uv"`
}

// Day aggregates forecast values for a single calendar day.
type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c"`
	MaxWindKph        float64   `json:"maxwind_kph"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	Condition         Condition `json:"condition"`
}

// ForecastDay pairs a date with its aggregated forecast.
type ForecastDay struct {
	Date string `json:"date"`
	Day  Day    `json:"day"`
}

// Forecast wraps the list of forecast days, matching the provider shape.
type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

// CurrentReport is the payload of a current-conditions lookup.
type CurrentReport struct {
	Location Place   `json:"location"`
	Current  Current `json:"current"`
}

// ForecastReport is the payload of a forecast lookup.
type ForecastReport struct {
	Location Place    `json:"location"`
	Current  Current  `json:"current"`
	Forecast Forecast `json:"forecast"`
}

// # Search History

// SearchRecord is one entry in a user's weather search history.
type SearchRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Query      string    `json:"query"`
	SearchedAt time.Time `json:"searched_at"`
}

// # Field Identifiers

// Field names for query parameter validation.
const (
	FieldQuery     = "location"
	FieldLatitude  = "lat"
	FieldLongitude = "lon"
	FieldDays      = "days"
)
