// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recipe-finder/internal/favorites"
	"github.com/pdiddy/recipe-finder/internal/kvstore"
	"github.com/pdiddy/recipe-finder/internal/recipes"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

// stubFinder records calls and returns canned answers.
type stubFinder struct {
	result      recipes.Result
	detail      types.RecipeDetail
	searched    [][]string
	exact       []bool
	detailItems []types.RecipeSummary
}

func (f *stubFinder) Search(_ context.Context, ings []string, exactOnly bool) recipes.Result {
	f.searched = append(f.searched, ings)
	f.exact = append(f.exact, exactOnly)
	return f.result
}

func (f *stubFinder) FetchDetail(_ context.Context, item types.RecipeSummary) types.RecipeDetail {
	f.detailItems = append(f.detailItems, item)
	return f.detail
}

func newSession(t *testing.T, f *stubFinder, onChange func([]string)) *Session {
	t.Helper()
	favs, err := favorites.Load(context.Background(), kvstore.NewMemory())
	require.NoError(t, err)
	return New(f, favs, onChange)
}

func TestSubmitAddsTypedTextThenSearches(t *testing.T) {
	f := &stubFinder{result: recipes.Result{Status: "Found 1 recipes (Spoonacular)."}}
	var chips [][]string
	s := newSession(t, f, func(items []string) { chips = append(chips, items) })

	s.AddIngredients("chicken")
	res := s.Submit(context.Background(), "rice; chicken", true)

	assert.Equal(t, "Found 1 recipes (Spoonacular).", res.Status)
	require.Len(t, f.searched, 1)
	assert.Equal(t, []string{"chicken", "rice"}, f.searched[0])
	assert.Equal(t, []bool{true}, f.exact)
	assert.Equal(t, [][]string{{"chicken"}, {"chicken", "rice"}}, chips)

	last, exact := s.Last()
	assert.Equal(t, res, last)
	assert.True(t, exact)
}

func TestSubmitWithEmptyListStillAsksFinder(t *testing.T) {
	f := &stubFinder{result: recipes.Result{Outcome: recipes.OutcomeEmpty, Status: recipes.StatusNoIngredients}}
	s := newSession(t, f, nil)

	res := s.Submit(context.Background(), "", false)
	assert.Equal(t, recipes.StatusNoIngredients, res.Status)
	assert.Equal(t, []string{}, f.searched[0])
}

func TestRemoveIngredient(t *testing.T) {
	s := newSession(t, &stubFinder{}, nil)
	s.AddIngredients("a, b, c")
	s.RemoveIngredient(1)
	s.RemoveIngredient(10)
	assert.Equal(t, []string{"a", "c"}, s.Ingredients())

	s.ClearIngredients()
	assert.Empty(t, s.Ingredients())
}

func TestDetailByIDUsesLastSummary(t *testing.T) {
	meal := types.RecipeSummary{ID: "52772", Title: "Teriyaki", Source: types.SourceMealDB}
	f := &stubFinder{
		result: recipes.Result{Summaries: []types.RecipeSummary{meal}},
		detail: types.RecipeDetail{Title: "Teriyaki", Available: true},
	}
	s := newSession(t, f, nil)
	s.Submit(context.Background(), "chicken", false)

	d := s.DetailByID(context.Background(), "52772", "")
	assert.Equal(t, "Teriyaki", d.Title)
	require.Len(t, f.detailItems, 1)
	assert.Equal(t, meal, f.detailItems[0])

	s.DetailByID(context.Background(), "716429", types.SourceSpoonacular)
	assert.Equal(t, types.RecipeSummary{ID: "716429", Source: types.SourceSpoonacular}, f.detailItems[1])
}

func TestToggleFavorite(t *testing.T) {
	s := newSession(t, &stubFinder{}, nil)
	ctx := context.Background()

	on, err := s.ToggleFavorite(ctx, "52772")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, s.IsFavorite("52772"))
	assert.Equal(t, []string{"52772"}, s.Favorites())

	on, err = s.ToggleFavorite(ctx, "52772")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, s.Favorites())
}

func TestFindLeavesStateAlone(t *testing.T) {
	f := &stubFinder{result: recipes.Result{Status: "x"}}
	s := newSession(t, f, nil)

	res := s.Find(context.Background(), []string{"egg"}, false)
	assert.Equal(t, "x", res.Status)
	assert.Empty(t, s.Ingredients())
	last, _ := s.Last()
	assert.Empty(t, last.Status)
}
