// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/ardgroup/stratus/internal/platform/ctxkey"
	"github.com/ardgroup/stratus/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithClaims returns a new context with the verified token claims attached.
func WithClaims(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyClaims, claims)
}

// GetClaims retrieves the [*sec.AuthClaims] from the [context.Context].
// Returns nil for anonymous requests.
func GetClaims(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyClaims).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// WithAccount returns a new context with the resolved account identity attached.
//
// The identity is attached once by the auth guard after the token subject
// has been resolved against storage; downstream code never mutates it.
func WithAccount(ctx context.Context, account *sec.Identity) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAccount, account)
}

// GetAccount retrieves the [*sec.Identity] from the [context.Context].
// Returns nil if the request did not pass through the auth guard.
func GetAccount(ctx context.Context) *sec.Identity {
	account, ok := ctx.Value(ctxkey.KeyAccount).(*sec.Identity)
	if !ok {
		return nil
	}
	return account
}
