// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Success payloads are written as-is (the dashboard frontend consumes raw
// resources), while every error — expected or not — is recovered here into
// one uniform JSON envelope. This is the single boundary translator for the
// whole error taxonomy.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/internal/platform/ctxkey"
	"github.com/ardgroup/stratus/pkg/pagination"
)

// PaginatedEnvelope is the JSON envelope for paginated list responses.
type PaginatedEnvelope struct {
	Data interface{}     `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// ErrorEnvelope is the uniform JSON envelope for error responses.
//
// Every expected failure (validation, auth, ownership, upstream) and every
// unexpected internal error is rendered in this exact shape.
type ErrorEnvelope struct {
	StatusCode int                 `json:"statusCode"`
	Timestamp  string              `json:"timestamp"`
	Path       string              `json:"path"`
	Method     string              `json:"method"`
	Message    string              `json:"message"`
	Code       string              `json:"code"`
	Details    []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the raw payload.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, data)
}

// Created writes a 201 Created response with the raw payload.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, data)
}

// Paginated writes a 200 OK response with paginated data and a metadata block.
func Paginated(writer http.ResponseWriter, data interface{}, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, PaginatedEnvelope{Data: data, Meta: metadata})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into the standardized JSON API error envelope.
//
// Unexpected (non-AppError) failures are logged with full detail server-side
// and surface to the caller as a generic 500 with no internals leaked.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", getRequestIDFromContext(request)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side or upstream issues.
	if appError.HTTPStatus >= 500 {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", getRequestIDFromContext(request)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		StatusCode: appError.HTTPStatus,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       request.URL.Path,
		Method:     request.Method,
		Message:    appError.Message,
		Code:       appError.Code,
		Details:    appError.Details,
	})
}

// getLoggerFromContext extracts the per-request logger.
func getLoggerFromContext(request *http.Request) *slog.Logger {
	if logger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// getRequestIDFromContext extracts the X-Request-ID for log correlation.
func getRequestIDFromContext(request *http.Request) string {
	if id, ok := request.Context().Value(ctxkey.KeyRequestID).(string); ok {
		return id
	}
	return ""
}
