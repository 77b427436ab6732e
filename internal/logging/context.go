// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// contextKey is the private type for logging context keys.
type contextKey string

const (
	// requestIDKey is the context key for HTTP request IDs.
	requestIDKey contextKey = "request_id"

	// visitorIDKey is the context key for the visitor identity resolved
	// by the API layer.
	visitorIDKey contextKey = "visitor_id"
)

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a new context carrying the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithVisitorID returns a new context carrying the visitor ID.
func ContextWithVisitorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorIDKey, id)
}

// VisitorIDFromContext retrieves the visitor ID from context.
// Returns empty string if not present.
func VisitorIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(visitorIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns a logger with request_id and visitor_id fields added when
// present in the context. This is the recommended way to log in handlers.
//
//	logging.Ctx(ctx).Info().Msg("Request processed")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := Logger()

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logger = logger.With().Str("request_id", requestID).Logger()
	}
	if visitorID := VisitorIDFromContext(ctx); visitorID != "" {
		logger = logger.With().Str("visitor_id", visitorID).Logger()
	}

	return &logger
}

// WithComponent creates a child logger with a component field.
//
//	trackLogger := logging.WithComponent("tracker")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
