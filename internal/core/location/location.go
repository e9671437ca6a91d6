// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

/*
Package location implements per-user saved weather locations.

Each location belongs to exactly one account. Every read, update, and
delete verifies that the requesting account owns the record; list queries
are scoped to the owner at the data-access layer so other users' rows are
never materialized.

# Architecture

  - Entity: Location, the persisted saved-place record.
  - Service: Ownership enforcement and use-case orchestration.
  - Repository: PostgreSQL persistence under the core schema.
  - Handler: RESTful JSON delivery mounted behind the auth guard.
*/
package location

import "time"

// # Domain Entities

// Location represents a saved place on a user's dashboard.
//
// Latitude and Longitude are pointers: both are optional, and a stored zero
// is a legitimate equatorial/meridian coordinate, distinct from absent.
type Location struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Country   *string   `json:"country,omitempty"`
	Latitude  *float64  `json:"lat,omitempty"`
	Longitude *float64  `json:"lon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

// Field names for validation and URL parameter extraction.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldCountry   = "country"
	FieldLatitude  = "lat"
	FieldLongitude = "lon"
)

// MaxNameLength bounds the display name of a saved location.
const MaxNameLength = 120
