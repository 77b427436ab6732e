// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	"github.com/sofra-kitchen/sofra/internal/logging"
	"github.com/sofra-kitchen/sofra/internal/metrics"
)

// VisitorCookie is the cookie carrying the anonymous visitor identifier.
const VisitorCookie = "sofra_visitor"

// visitorHeader lets API clients without cookie support supply their own
// visitor identifier. It takes precedence over the cookie.
const visitorHeader = "X-Visitor-ID"

// visitorCookieMaxAge keeps the identifier for a year of inactivity.
const visitorCookieMaxAge = 365 * 24 * 60 * 60

// MiddlewareConfig holds configuration for the middleware stack.
type MiddlewareConfig struct {
	CORSAllowedOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// Middleware provides the Chi-compatible middleware stack built from the
// production-hardened Chi ecosystem packages.
type Middleware struct {
	config *MiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewMiddleware creates the middleware stack for the given configuration.
func NewMiddleware(config *MiddlewareConfig) *Middleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", visitorHeader},
		ExposedHeaders: []string{"X-Request-ID"},
		// Credentials stay off: the visitor cookie is same-site only.
		AllowCredentials: false,
		MaxAge:           86400,
	})

	return &Middleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns the go-chi/cors middleware. It must run globally so that
// OPTIONS preflight requests are answered on every route.
func (m *Middleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns an IP-keyed rate limiting middleware using
// go-chi/httprate, or a pass-through when rate limiting is disabled.
func (m *Middleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			NewResponseWriter(w, r).Error(http.StatusTooManyRequests, ErrCodeTooManyRequests, "Rate limit exceeded")
		}),
	)
}

// RequestIDWithLogging returns a middleware that assigns each request an
// identifier, exposes it via the X-Request-ID header, and seeds the
// logging context so every log line of the request carries it.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
			}
			w.Header().Set("X-Request-ID", requestID)

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VisitorIdentity returns a middleware that resolves the anonymous
// visitor identifier for the request. The X-Visitor-ID header wins;
// otherwise the sofra_visitor cookie is used, minted on first contact.
// The identifier lands in the request context for handlers and logging.
func VisitorIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitorID := r.Header.Get(visitorHeader)

			if visitorID == "" {
				if c, err := r.Cookie(VisitorCookie); err == nil && c.Value != "" {
					visitorID = c.Value
				}
			}

			if visitorID == "" {
				visitorID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    visitorID,
					Path:     "/",
					MaxAge:   visitorCookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := logging.ContextWithVisitorID(r.Context(), visitorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APISecurityHeaders returns a middleware adding standard security
// headers to API responses. Content-Security-Policy is omitted: these
// endpoints never serve HTML.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// statusResponseWriter captures the status code for request metrics.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// PrometheusMetrics returns a middleware recording request count and
// duration per route pattern and status code.
func PrometheusMetrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			metrics.RecordAPIRequest(r.Method, r.URL.Path, ww.statusCode, time.Since(start))
		})
	}
}
