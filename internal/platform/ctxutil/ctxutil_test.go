// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardgroup/stratus/internal/platform/ctxutil"
	"github.com/ardgroup/stratus/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Claims verifies that AuthClaims can be stored in context.
*/
func TestContext_Claims(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		UserID: "user-123",
		Email:  "tai@example.com",
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetClaims(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithClaims(ctx, claims)
	retrieved := ctxutil.GetClaims(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.UserID)
	assert.Equal(t, "tai@example.com", retrieved.Email)
}

/*
TestContext_Account verifies that a resolved identity can be stored in context.
*/
func TestContext_Account(t *testing.T) {
	ctx := context.Background()
	account := &sec.Identity{ID: "user-123", Name: "Tai", Email: "tai@example.com"}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAccount(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAccount(ctx, account)
	retrieved := ctxutil.GetAccount(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.ID)
	assert.Equal(t, "Tai", retrieved.Name)
}
