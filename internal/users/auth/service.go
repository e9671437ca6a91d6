// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/internal/platform/sec"
	"github.com/ardgroup/stratus/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account (token subject).
	//   - email: The email of the account (auxiliary claim).
	//
	// # Returns
	//   - A signed JWT string, or an error if signing fails.
	GenerateAccessToken(userID, email string) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// Credentials is the result of a successful registration or login.
type Credentials struct {
	User        *User
	AccessToken string
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Checks email uniqueness, hashes the password, persists the
account, and issues an access token for the new identity.

The uniqueness pre-check is a read-then-write and can race with a concurrent
registration; the unique index on the account table closes that race at the
insert, which the repository also reports as DUPLICATE_ACCOUNT.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Credentials: Created user plus access token
  - error: DUPLICATE_ACCOUNT if the email is taken, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Credentials, error) {

	// Verify email uniqueness. Return a client-safe Duplicate error.
	// No side effects happen on this path.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Duplicate("Email already exists")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	// Issue the access token for the freshly minted identity
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Credentials{User: user, AccessToken: accessToken}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and issues an access token.

Description: Verifies identity with a constant-time password comparison and
returns a fresh bearer token. Login never writes to storage.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Credentials: User profile plus access token
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Credentials, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)

	// If (err != nil) the user does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Verify password hash. bcrypt compares in constant time, and the failure
	// is indistinguishable from the unknown-email path above.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Issue the access token
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Credentials{User: user, AccessToken: accessToken}, nil
}

// # Identity Resolution

/*
ResolveAccount resolves a verified token subject to a live account identity.

Description: Implements the middleware.AccountResolver contract. A token
whose subject no longer exists resolves to an error, which the guard turns
into a uniform 401.

Parameters:
  - context: context.Context
  - userID: string (token subject)

Returns:
  - *sec.Identity: Resolved account identity
  - error: apperr.NotFound or storage failures
*/
func (service *Service) ResolveAccount(context context.Context, userID string) (*sec.Identity, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		var appError *apperr.AppError
		if errors.As(err, &appError) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_resolve_account_failed: %w", err)
	}

	return &sec.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
