// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package weather

import (
	"context"
	"hash/fnv"
	"time"
)

// # Mock Provider

// MockProvider is a deterministic in-process implementation of [Provider].
//
// It fabricates stable, query-dependent data so local development and demos
// work without a provider API key. The same query always produces the same
// report (modulo timestamps).
type MockProvider struct{}

// NewMockProvider constructs the mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// conditions is the rotation of fabricated weather states.
var conditions = []Condition{
	{Text: "Sunny", Icon: "//cdn.weatherapi.com/weather/64x64/day/113.png", Code: 1000},
	{Text: "Partly cloudy", Icon: "//cdn.weatherapi.com/weather/64x64/day/116.png", Code: 1003},
	{Text: "Overcast", Icon: "//cdn.weatherapi.com/weather/64x64/day/122.png", Code: 1009},
	{Text: "Light rain", Icon: "//cdn.weatherapi.com/weather/64x64/day/296.png", Code: 1183},
}

// Current implements [Provider] with fabricated observed conditions.
func (provider *MockProvider) Current(_ context.Context, query string) (*CurrentReport, error) {
	seed := querySeed(query)
	tempC := fabricatedTempC(seed)

	return &CurrentReport{
		Location: fabricatedPlace(query, seed),
		Current:  fabricatedCurrent(seed, tempC),
	}, nil
}

// Forecast implements [Provider] with a fabricated multi-day forecast.
func (provider *MockProvider) Forecast(_ context.Context, query string, days int) (*ForecastReport, error) {
	seed := querySeed(query)
	tempC := fabricatedTempC(seed)

	forecastDays := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		daySeed := seed + uint32(i)
		dayTemp := fabricatedTempC(daySeed)

		forecastDays = append(forecastDays, ForecastDay{
			Date: time.Now().AddDate(0, 0, i).Format("2006-01-02"),
			Day: Day{
				MaxTempC:          dayTemp + 4,
				MinTempC:          dayTemp - 5,
				AvgTempC:          dayTemp,
				MaxWindKph:        float64(daySeed%40) + 5,
				DailyChanceOfRain: int(daySeed % 101),
				Condition:         conditions[daySeed%uint32(len(conditions))],
			},
		})
	}

	return &ForecastReport{
		Location: fabricatedPlace(query, seed),
		Current:  fabricatedCurrent(seed, tempC),
		Forecast: Forecast{ForecastDay: forecastDays},
	}, nil
}

// querySeed derives a stable seed from the query string.
func querySeed(query string) uint32 {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(query))
	return hasher.Sum32()
}

// fabricatedTempC maps a seed into a plausible Celsius range [-10, 35).
func fabricatedTempC(seed uint32) float64 {
	return float64(seed%45) - 10
}

func fabricatedPlace(query string, seed uint32) Place {
	return Place{
		Name:      query,
		Region:    "Mockland",
		Country:   "Mockrovia",
		Latitude:  float64(seed%180) - 90,
		Longitude: float64(seed%360) - 180,
		LocalTime: time.Now().Format("2006-01-02 15:04"),
	}
}

func fabricatedCurrent(seed uint32, tempC float64) Current {
	return Current{
		TempC:      tempC,
		TempF:      tempC*9/5 + 32,
		Condition:  conditions[seed%uint32(len(conditions))],
		WindKph:    float64(seed%40) + 5,
		Humidity:   int(seed%70) + 30,
		FeelsLikeC: tempC - 1,
		UV:         float64(seed % 11),
	}
}
