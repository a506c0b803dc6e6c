// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-finder/internal/favorites"
	"github.com/pdiddy/recipe-finder/internal/kvstore"
	"github.com/pdiddy/recipe-finder/internal/recipes"
	"github.com/pdiddy/recipe-finder/internal/secrets"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

func setDefaults() {
	viper.SetDefault("sources.primary_base", recipes.DefaultPrimaryBase)
	viper.SetDefault("sources.fallback_base", recipes.DefaultFallbackBase)
	viper.SetDefault("sources.max_results", recipes.DefaultMaxResults)
	viper.SetDefault("sources.max_retries", 3)
	viper.SetDefault("http.timeout", "15s")
	viper.SetDefault("http.user_agent", recipes.DefaultUserAgent)
	viper.SetDefault("storage.backend", string(types.StorageSQLite))
	viper.SetDefault("storage.path", defaultStoragePath())
	viper.SetDefault("storage.redis_url", "redis://localhost:6379/0")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("log.level", "warn")
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "favorites.db"
	}
	return filepath.Join(home, ".config", "recipe-finder", "favorites.db")
}

// expandHome replaces a leading "~/" with the home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// loadConfig assembles the settings from viper. The Spoonacular key comes
// from --api-key or RECIPE_FINDER_API_KEY, then from the secrets directory.
func loadConfig() types.Config {
	return types.Config{
		Sources: types.SourceConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("http.timeout"),
				UserAgent: viper.GetString("http.user_agent"),
			},
			PrimaryBase:  viper.GetString("sources.primary_base"),
			FallbackBase: viper.GetString("sources.fallback_base"),
			APIKey:       loadedSecrets.Value(secrets.SpoonacularKey, viper.GetString("api_key")),
			MaxResults:   viper.GetInt("sources.max_results"),
			MaxRetries:   viper.GetInt("sources.max_retries"),
		},
		Storage: types.StorageConfig{
			Backend:  types.StorageBackend(viper.GetString("storage.backend")),
			Path:     expandHome(viper.GetString("storage.path")),
			RedisURL: viper.GetString("storage.redis_url"),
		},
		Server:   types.ServerConfig{Addr: viper.GetString("server.addr")},
		LogLevel: viper.GetString("log.level"),
	}
}

func newFinder(cfg types.Config) *recipes.Finder {
	if !cfg.Sources.PrimaryConfigured() {
		logrus.Debug("no Spoonacular key configured, searches use TheMealDB")
	}
	return recipes.NewFinder(nil, cfg.Sources, logrus.StandardLogger())
}

// openFavorites opens the configured store and loads the favorites from
// it. The returned close function releases the store.
func openFavorites(ctx context.Context, cfg types.StorageConfig) (*favorites.Store, func(), error) {
	kv, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening favorites storage: %w", err)
	}
	favs, err := favorites.Load(ctx, kv)
	if err != nil {
		kv.Close()
		return nil, nil, err
	}
	return favs, func() {
		if err := kv.Close(); err != nil {
			logrus.WithError(err).Warn("closing favorites storage")
		}
	}, nil
}
