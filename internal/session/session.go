// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the state of one user's recipe search: the
// ingredient list, the favorites and the last results. Everything a
// front end needs goes through a Session so no state is global.
package session

import (
	"context"
	"sync"

	"github.com/pdiddy/recipe-finder/internal/favorites"
	"github.com/pdiddy/recipe-finder/internal/ingredients"
	"github.com/pdiddy/recipe-finder/internal/recipes"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

// Finder is the recipe source a session searches.
type Finder interface {
	Search(ctx context.Context, ingredients []string, exactOnly bool) recipes.Result
	FetchDetail(ctx context.Context, item types.RecipeSummary) types.RecipeDetail
}

// Session is safe for concurrent use. Network calls run without the lock
// held; a search that finishes after a newer one still replaces Last.
type Session struct {
	mu     sync.Mutex
	list   *ingredients.List
	favs   *favorites.Store
	finder Finder
	last   recipes.Result
	exact  bool
}

// New returns a session with an empty ingredient list. onChange, if not
// nil, is called with the ingredients after every list mutation.
func New(finder Finder, favs *favorites.Store, onChange func(items []string)) *Session {
	return &Session{
		list:   ingredients.NewList(onChange),
		favs:   favs,
		finder: finder,
	}
}

// AddIngredients parses text into the list and returns how many were new.
func (s *Session) AddIngredients(text string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Add(text)
}

// RemoveIngredient removes the ingredient at index; out of range is a no-op.
func (s *Session) RemoveIngredient(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.RemoveAt(index)
}

// ClearIngredients empties the list.
func (s *Session) ClearIngredients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Clear()
}

// Ingredients returns the current list.
func (s *Session) Ingredients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Items()
}

// Submit adds any typed text to the list, then searches with the whole
// list. This is the search form's submit action.
func (s *Session) Submit(ctx context.Context, typed string, exactOnly bool) recipes.Result {
	s.mu.Lock()
	if typed != "" {
		s.list.Add(typed)
	}
	items := s.list.Items()
	s.exact = exactOnly
	s.mu.Unlock()

	res := s.finder.Search(ctx, items, exactOnly)

	s.mu.Lock()
	s.last = res
	s.mu.Unlock()
	return res
}

// Find searches for items without touching the session's list or last
// result.
func (s *Session) Find(ctx context.Context, items []string, exactOnly bool) recipes.Result {
	return s.finder.Search(ctx, items, exactOnly)
}

// Last returns the most recent search result and its exact-only setting.
func (s *Session) Last() (recipes.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.exact
}

// Detail fetches the detail of item.
func (s *Session) Detail(ctx context.Context, item types.RecipeSummary) types.RecipeDetail {
	return s.finder.FetchDetail(ctx, item)
}

// DetailByID fetches a detail by id. The summary from the last results is
// used when present so the detail comes from the same source; otherwise
// source (which may be empty) is used as given.
func (s *Session) DetailByID(ctx context.Context, id, source string) types.RecipeDetail {
	item := types.RecipeSummary{ID: id, Source: source}
	s.mu.Lock()
	for _, sum := range s.last.Summaries {
		if sum.ID == id && (source == "" || sum.Source == source) {
			item = sum
			break
		}
	}
	s.mu.Unlock()
	return s.finder.FetchDetail(ctx, item)
}

// IsFavorite reports whether id is a favorite.
func (s *Session) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favs.IsFavorite(id)
}

// ToggleFavorite flips id's favorite status and persists it.
func (s *Session) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favs.Toggle(ctx, id)
}

// Favorites lists the favorite ids.
func (s *Session) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favs.List()
}
