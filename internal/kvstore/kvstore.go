// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kvstore provides the durable key-value storage favorites are
// persisted in. Each backend stores opaque string values under string keys.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a durable string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open returns the backend selected by cfg. An empty backend means sqlite.
func Open(ctx context.Context, cfg types.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "", types.StorageSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite storage requires a path")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("creating storage directory: %w", err)
		}
		return OpenSQLite(cfg.Path)
	case types.StorageRedis:
		return OpenRedis(ctx, cfg.RedisURL)
	case types.StorageMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
