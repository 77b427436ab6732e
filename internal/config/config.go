// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

// Package config defines the service configuration and its layered
// loading: built-in defaults, an optional YAML file, then environment
// variables.
package config

import (
	"fmt"
	"time"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig        `koanf:"server"`
	Catalog   CatalogConfig       `koanf:"catalog"`
	Storage   StorageConfig       `koanf:"storage"`
	Recommend RecommendConfig     `koanf:"recommend"`
	Hours     map[string][]string `koanf:"hours"`
	Security  SecurityConfig      `koanf:"security"`
	Logging   LoggingConfig       `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// CatalogConfig points at the static menu catalog document.
type CatalogConfig struct {
	// Path is the menu catalog JSON file, loaded once at startup.
	Path string `koanf:"path"`
}

// StorageConfig configures the visitor preference store.
type StorageConfig struct {
	// Path is the BadgerDB directory for preference records.
	Path string `koanf:"path"`

	// InMemory keeps preference records in process memory only.
	// Intended for development; records are lost on restart.
	InMemory bool `koanf:"in_memory"`
}

// RecommendConfig bounds the recommendation endpoint.
type RecommendConfig struct {
	// DefaultCount is the number of items returned when the request
	// does not specify one.
	DefaultCount int `koanf:"default_count"`

	// MaxCount caps the requested count.
	MaxCount int `koanf:"max_count"`
}

// SecurityConfig covers CORS and rate limiting. The service carries no
// authentication: the menu is public content.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values the service cannot start
// with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required unless storage.in_memory is set")
	}
	if c.Recommend.DefaultCount < 1 {
		return fmt.Errorf("recommend.default_count must be at least 1")
	}
	if c.Recommend.MaxCount < c.Recommend.DefaultCount {
		return fmt.Errorf("recommend.max_count must be at least recommend.default_count")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive")
		}
	}
	return nil
}
