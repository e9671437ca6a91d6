// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/internal/platform/ctxutil"
	"github.com/ardgroup/stratus/internal/platform/sec"
	"github.com/ardgroup/stratus/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Account extracts the resolved account identity from the request context.

Returns nil if the request did not pass through the auth guard.
*/
func Account(request *http.Request) *sec.Identity {
	return ctxutil.GetAccount(request.Context())
}

/*
RequiredAccount ensures the request carries a resolved identity and returns it.

Returns:
  - *sec.Identity: The authenticated account
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredAccount(request *http.Request) (*sec.Identity, error) {

	// Get the resolved identity attached by the auth guard
	account := ctxutil.GetAccount(request.Context())

	// If the user is not authenticated, return an error
	if account == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return account, nil
}

/*
RequiredUserID returns the User ID of the currently logged-in user.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {

	// Get the resolved identity
	account, err := RequiredAccount(request)

	// If the user is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return account.ID, nil
}
