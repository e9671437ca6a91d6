// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only. The signing secret
    and provider API key are established here at startup and never mutated.
  - DI-Friendly: Passed to core components (DB, Redis, TokenService) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Stratus API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// JWTSecret is the HMAC signing secret for access tokens.
	// Rotating it invalidates every previously issued token.
	JWTSecret string `env:"JWT_SECRET,required"`

	// JWTTTL is the access token lifetime.
	JWTTTL time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Weather provider (weatherapi.com)
	WeatherAPIKey  string `env:"WEATHER_API_KEY"`
	WeatherAPIURL  string `env:"WEATHER_API_URL" envDefault:"https://api.weatherapi.com/v1"`
	UseMockWeather bool   `env:"USE_MOCK_WEATHER" envDefault:"false"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// The live provider needs a key; the mock provider does not.
	if !cfg.UseMockWeather && cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("config: WEATHER_API_KEY is required unless USE_MOCK_WEATHER=true")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
