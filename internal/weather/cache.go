// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/ardgroup/stratus/internal/platform/constants"
)

// # Response Cache

// Cache stores provider payloads in Redis for a short TTL.
//
// # Degradation
//
// The cache is strictly an optimization. Every failure (connectivity,
// serialization, corrupt entry) is logged and treated as a miss; the
// lookup falls through to the provider.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCache constructs a Redis-backed weather response cache.
func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

// currentKey builds the cache key for a current-conditions payload.
func currentKey(query string) string {
	return constants.RedisPrefixCurrent + query
}

// forecastKey builds the cache key for a forecast payload.
func forecastKey(query string, days int) string {
	return constants.RedisPrefixForecast + query + ":" + strconv.Itoa(days)
}

// GetCurrent returns the cached current-conditions report, or nil on a miss.
func (cache *Cache) GetCurrent(context context.Context, query string) *CurrentReport {
	report := &CurrentReport{}
	if !cache.get(context, currentKey(query), report) {
		return nil
	}
	return report
}

// SetCurrent stores a current-conditions report with the standard TTL.
func (cache *Cache) SetCurrent(context context.Context, query string, report *CurrentReport) {
	cache.set(context, currentKey(query), report)
}

// GetForecast returns the cached forecast report, or nil on a miss.
func (cache *Cache) GetForecast(context context.Context, query string, days int) *ForecastReport {
	report := &ForecastReport{}
	if !cache.get(context, forecastKey(query, days), report) {
		return nil
	}
	return report
}

// SetForecast stores a forecast report with the standard TTL.
func (cache *Cache) SetForecast(context context.Context, query string, days int, report *ForecastReport) {
	cache.set(context, forecastKey(query, days), report)
}

// get loads and decodes a cached payload. Returns false on any miss or failure.
func (cache *Cache) get(context context.Context, key string, target interface{}) bool {
	raw, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.WarnContext(context, "weather_cache_get_failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		cache.logger.WarnContext(context, "weather_cache_corrupt_entry",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}

	return true
}

// set encodes and stores a payload. Failures are logged and swallowed.
func (cache *Cache) set(context context.Context, key string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		cache.logger.WarnContext(context, "weather_cache_marshal_failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := cache.client.Set(context, key, raw, constants.WeatherCacheTTL).Err(); err != nil {
		cache.logger.WarnContext(context, "weather_cache_set_failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
