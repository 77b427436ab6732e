// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package prefs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/sofra-kitchen/sofra/internal/logging"
)

// ErrNotFound is returned by a Backend when no record exists for a key.
var ErrNotFound = errors.New("prefs: record not found")

// Backend is the raw key-value storage behind the preference store.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Get returns the stored blob for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the blob for key.
	Set(ctx context.Context, key string, data []byte) error
}

// prefsKeyPrefix namespaces preference records in the shared KV store.
const prefsKeyPrefix = "prefs:"

// BadgerBackend stores preference records in BadgerDB, one JSON blob per
// visitor, durable across restarts.
type BadgerBackend struct {
	db *badger.DB
}

// NewBadgerBackend creates a BadgerDB-backed storage backend.
func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

// Get returns the blob stored for key.
func (b *BadgerBackend) Get(_ context.Context, key string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefsKeyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get prefs: %w", err)
		}
		return item.Value(func(val []byte) error {
			data = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set overwrites the blob stored for key.
func (b *BadgerBackend) Set(_ context.Context, key string, data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefsKeyPrefix+key), data)
	})
}

// MemoryBackend is an in-memory Backend for tests and for running
// without durable storage. FailWrites and FailReads force errors to
// exercise the fail-open paths.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte

	FailWrites bool
	FailReads  bool
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get returns the blob stored for key.
func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads {
		return nil, errors.New("prefs: read failure injected")
	}
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Set overwrites the blob stored for key.
func (m *MemoryBackend) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("prefs: write failure injected")
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}

// Store reads and writes UserPrefs records through a Backend.
type Store struct {
	backend Backend
}

// NewStore creates a preference store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Read returns the persisted record for the visitor, or the all-empty
// default. Read never fails: missing records, storage errors, and
// corrupt blobs are all treated identically to "absent".
func (s *Store) Read(ctx context.Context, visitorID string) UserPrefs {
	data, err := s.backend.Get(ctx, visitorID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logging.Ctx(ctx).Debug().Err(err).Msg("Preference read failed, using defaults")
		}
		return Default()
	}

	var p UserPrefs
	if err := json.Unmarshal(data, &p); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Corrupt preference record, using defaults")
		return Default()
	}
	p.normalize()
	return p
}

// Write persists the record in full, overwriting any previous blob.
func (s *Store) Write(ctx context.Context, visitorID string, p UserPrefs) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := s.backend.Set(ctx, visitorID, data); err != nil {
		return fmt.Errorf("persist prefs: %w", err)
	}
	return nil
}
