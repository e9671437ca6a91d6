// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

// Package middleware provides the HTTP middleware chain for the Stratus API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthZ/AuthN, Rate Limiting, and CORS.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/internal/platform/ctxutil"
	"github.com/ardgroup/stratus/internal/platform/respond"
	"github.com/ardgroup/stratus/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the `sec`
// TokenService implementation, allowing us to easily inject mocks during
// unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// AccountResolver resolves a token subject to a live account identity.
//
// # Why resolve at all?
//
// Tokens are stateless, so a token minted for a since-deleted account would
// otherwise keep working until its expiry. Resolving the subject against
// storage on every protected request closes that window.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, userID string) (*sec.Identity, error)
}

// unauthenticated is the uniform 401 returned by the guard.
//
// The response is deliberately identical whether the token was missing,
// malformed, expired, unsigned, or minted for a deleted account.
var unauthenticated = apperr.Unauthorized("Invalid or missing authentication token")

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// # Parameters
//   - verifier: The TokenVerifier instance.
//
// # Returns
//   - An [http.Handler] middleware.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, unauthenticated)
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, unauthenticated)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithClaims(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAccount blocks requests that are not authenticated and resolves
// the token subject to a live account.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.AuthClaims] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
//  3. Resolve the subject ID via [AccountResolver]; a stale token whose
//     account no longer exists also aborts with 401.
//  4. Attach the resolved [*sec.Identity] to the request context.
func RequireAccount(resolver AccountResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetClaims(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, unauthenticated)
				return
			}

			// ── 2. Account Resolution ─────────────────────────────────────────
			account, err := resolver.ResolveAccount(request.Context(), claims.UserID)
			if err != nil || account == nil {
				respond.Error(writer, request, unauthenticated)
				return
			}

			// ── 3. Identity Injection ─────────────────────────────────────────
			ctx := ctxutil.WithAccount(request.Context(), account)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
