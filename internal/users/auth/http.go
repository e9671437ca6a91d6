// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

/*
Package auth provides the HTTP delivery layer for user identity management.

It implements the gateway for the authentication lifecycle: account creation
and login.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Orchestrates JWT issuance through [Service].
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/ardgroup/stratus/internal/platform/request"
	"github.com/ardgroup/stratus/internal/platform/respond"
	"github.com/ardgroup/stratus/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and returns a JWT.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// credentialsResponse is the wire shape shared by register and login.
type credentialsResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

/*
Register handles the creation of a new user account.

POST /auth/register

Description: Validates input, checks for identity conflicts, persists a new
user profile, and returns the profile together with a fresh access token.

Request:
  - Body: registerRequest (Name, Email, Password)

Response:
  - 201: credentialsResponse: Created user profile and access token
  - 400: VALIDATION_ERROR: Bad input or validation failure
  - 400: DUPLICATE_ACCOUNT: Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	credentials, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, credentialsResponse{
		User:        credentials.User,
		AccessToken: credentials.AccessToken,
	})
}

/*
Login authenticates a user and issues an access token.

POST /auth/login

Description: Verifies credentials and generates a JWT access token. The
failure response is identical for unknown emails and wrong passwords.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: credentialsResponse: User profile and access token
  - 401: UNAUTHORIZED: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	credentials, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, credentialsResponse{
		User:        credentials.User,
		AccessToken: credentials.AccessToken,
	})
}
