// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces (TokenProvider, TokenVerifier).
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// # Why custom claims?
//
// By embedding the UserID and Email directly inside the JWT, the auth
// middleware can identify the caller WITHOUT querying the database for the
// claims themselves. Protected routes still resolve the full account record
// once per request to reject tokens minted for since-deleted accounts.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID string `json:"uid"`
	Email  string `json:"eml"`
}

// Identity is the resolved account attached to the request context after
// the bearer token subject has been looked up in storage.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret is process-wide configuration loaded once at startup.
// Rotating it invalidates all previously issued tokens; there is no grace
// period and no server-side revocation list.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
}

// NewTokenService creates a new TokenService with a shared HMAC secret.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}
	if timeToLive <= 0 {
		return nil, fmt.Errorf("sec: token TTL must be positive, got %s", timeToLive)
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
	}, nil
}

// GenerateAccessToken creates a new signed JWT access token for a user.
//
// The expiry is computed at issuance (now + configured TTL) and enforced
// again at verification time.
func (service *TokenService) GenerateAccessToken(userID, email string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// It fails closed: a bad signature, a malformed payload, an unexpected
// signing algorithm, or an elapsed expiry all return an error. Malformed
// input never panics.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
