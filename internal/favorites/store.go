// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package favorites keeps the set of favorite recipe ids and persists it
// to a kvstore.Store as a JSON list under a fixed key.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdiddy/recipe-finder/internal/kvstore"
)

// StorageKey is the key the favorites list is persisted under.
const StorageKey = "rs_favorites"

// Store is the favorites set. Ids are compared by exact string equality
// and kept in insertion order.
type Store struct {
	kv  kvstore.Store
	ids []string
}

// Load reads the persisted favorites. A missing or malformed value yields
// an empty set; only a failure of the storage backend itself is returned.
func Load(ctx context.Context, kv kvstore.Store) (*Store, error) {
	s := &Store{kv: kv, ids: []string{}}

	raw, err := kv.Get(ctx, StorageKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}

	s.ids = decode(raw)
	return s, nil
}

// decode parses a stored list, dropping duplicates. Anything that is not
// a JSON list of strings decodes to an empty set.
func decode(raw string) []string {
	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return []string{}
	}
	ids := make([]string, 0, len(stored))
	seen := make(map[string]bool, len(stored))
	for _, id := range stored {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// IsFavorite reports whether id is in the set.
func (s *Store) IsFavorite(id string) bool {
	return s.indexOf(id) >= 0
}

// Toggle removes id if present and adds it otherwise, then persists the
// whole set. It returns whether id is a favorite afterwards. Persistence
// errors are returned as-is; the in-memory set keeps the new state.
func (s *Store) Toggle(ctx context.Context, id string) (bool, error) {
	now := false
	if i := s.indexOf(id); i >= 0 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
	} else {
		s.ids = append(s.ids, id)
		now = true
	}
	return now, s.save(ctx)
}

// List returns the favorite ids in insertion order.
func (s *Store) List() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of favorites.
func (s *Store) Len() int { return len(s.ids) }

func (s *Store) save(ctx context.Context) error {
	data, err := json.Marshal(s.ids)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("saving favorites: %w", err)
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, f := range s.ids {
		if f == id {
			return i
		}
	}
	return -1
}
