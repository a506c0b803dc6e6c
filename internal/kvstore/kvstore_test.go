// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "rs_favorites", `["1"]`))
	v, err := s.Get(ctx, "rs_favorites")
	require.NoError(t, err)
	assert.Equal(t, `["1"]`, v)

	require.NoError(t, s.Set(ctx, "rs_favorites", `["1","2"]`))
	v, err = s.Get(ctx, "rs_favorites")
	require.NoError(t, err)
	assert.Equal(t, `["1","2"]`, v)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

// TestRedis needs a running server; set RECIPE_FINDER_TEST_REDIS to a
// redis:// URL to enable it.
func TestRedis(t *testing.T) {
	url := os.Getenv("RECIPE_FINDER_TEST_REDIS")
	if url == "" {
		t.Skip("RECIPE_FINDER_TEST_REDIS not set")
	}
	s, err := OpenRedis(context.Background(), url)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.client.Del(context.Background(), "missing", "rs_favorites").Err())
	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.StorageConfig
		wantErr string
	}{
		{"memory", types.StorageConfig{Backend: types.StorageMemory}, ""},
		{"sqlite default backend", types.StorageConfig{Path: filepath.Join(t.TempDir(), "nested", "kv.db")}, ""},
		{"sqlite without path", types.StorageConfig{Backend: types.StorageSQLite}, "requires a path"},
		{"redis without url", types.StorageConfig{Backend: types.StorageRedis}, "requires a redis_url"},
		{"unknown", types.StorageConfig{Backend: "etcd"}, "unknown storage backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(context.Background(), tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, s.Close())
		})
	}
}
