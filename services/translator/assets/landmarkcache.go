// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// LandmarkCache is a BadgerDB-backed cache of letter landmark payloads.
//
// # Description
//
// Landmark JSON files are small but read on every spelled token; fetching
// them from the media store per request is wasteful. The cache keeps them
// in embedded local storage with low-latency access (~100µs) and warms
// itself from a directory at startup.
//
// License: BadgerDB is Apache 2.0 licensed (github.com/dgraph-io/badger).
//
// # Thread Safety
//
// Safe for concurrent use; BadgerDB transactions handle the locking.
type LandmarkCache struct {
	db  *badger.DB
	ttl time.Duration
}

// CacheConfig holds configuration for the landmark cache.
type CacheConfig struct {
	// Path is the directory for BadgerDB files.
	// Ignored when InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence).
	// Useful for testing.
	InMemory bool

	// TTL is how long cached payloads live. Zero means no expiry.
	TTL time.Duration

	// Logger is the logger for BadgerDB operations.
	// If nil, BadgerDB's internal logging is disabled.
	Logger *slog.Logger
}

// ErrCacheMiss is returned when a unit has no cached payload.
var ErrCacheMiss = errors.New("assets: landmark cache miss")

// keyPrefix namespaces cache keys so the database can be shared later.
const keyPrefix = "landmark:"

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenLandmarkCache opens the cache at the configured path, or in memory.
// The caller must Close() it when done.
func OpenLandmarkCache(cfg CacheConfig) (*LandmarkCache, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for a persistent cache")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open landmark cache: %w", err)
	}
	return &LandmarkCache{db: db, ttl: cfg.TTL}, nil
}

// Get returns the cached payload for a unit, or ErrCacheMiss.
func (c *LandmarkCache) Get(unit string) ([]byte, error) {
	var payload []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + unit))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read landmark cache: %w", err)
	}
	return payload, nil
}

// Put stores a unit's payload, applying the configured TTL.
func (c *LandmarkCache) Put(unit string, payload []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(keyPrefix+unit), payload)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// WarmFromDir loads every landmark JSON file under dir into the cache and
// returns the number loaded. A missing directory warms nothing.
func (c *LandmarkCache) WarmFromDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("scan landmark directory: %w", err)
	}

	loaded := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		payload, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return loaded, fmt.Errorf("read landmark file %s: %w", e.Name(), err)
		}
		unit := strings.TrimSuffix(e.Name(), ".json")
		if err := c.Put(unit, payload); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// Close releases the underlying database.
func (c *LandmarkCache) Close() error {
	return c.db.Close()
}

// CachedStore layers the landmark cache over another store. Availability,
// media URLs and unit lookups pass through; landmark payloads are answered
// from the cache first and written back on a miss.
type CachedStore struct {
	Store
	cache *LandmarkCache
}

// NewCachedStore wraps inner with the landmark cache.
func NewCachedStore(inner Store, cache *LandmarkCache) *CachedStore {
	return &CachedStore{Store: inner, cache: cache}
}

// Landmarks serves the unit's payload from the cache, falling through to
// the inner store on a miss and caching what it returns.
func (s *CachedStore) Landmarks(ctx context.Context, unit string) ([]byte, error) {
	if payload, err := s.cache.Get(unit); err == nil {
		return payload, nil
	}
	payload, err := s.Store.Landmarks(ctx, unit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(unit, payload); err != nil {
		slog.Warn("failed to cache landmark payload", "unit", unit, "error", err)
	}
	return payload, nil
}
