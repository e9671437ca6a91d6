// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

/*
Package auth implements the user identity layer of the weather dashboard.

It defines the core domain entity (User) and the logic for registration,
login, and bearer-token identity resolution.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
external dependencies and encapsulates all business rules related to
user identity.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the dashboard.
//
// Accounts are created by registration and read by login and token
// resolution. There is no profile management: users are never updated or
// deleted through this core.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6
