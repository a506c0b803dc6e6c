// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipes

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/recipe-finder/internal/httputil"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

// mealPageBase is the public TheMealDB page for a meal id.
const mealPageBase = "https://www.themealdb.com/meal.php?c="

// mealSlots is the number of numbered ingredient/measure pairs a
// TheMealDB record carries.
const mealSlots = 20

// filterByIngredient queries TheMealDB's filter endpoint. The API filters
// by a single ingredient only.
func (f *Finder) filterByIngredient(ctx context.Context, ingredient string) ([]types.RecipeSummary, error) {
	reqURL := strings.TrimRight(f.cfg.FallbackBase, "/") + "/filter.php?" + url.Values{"i": {ingredient}}.Encode()

	var body mealList
	if err := httputil.GetJSON(ctx, f.client, reqURL, f.cfg.UserAgent, f.cfg.MaxRetries, &body); err != nil {
		return nil, fmt.Errorf("TheMealDB filter: %w", err)
	}

	meals := body.Meals
	if len(meals) > f.cfg.MaxResults {
		meals = meals[:f.cfg.MaxResults]
	}
	out := make([]types.RecipeSummary, 0, len(meals))
	for _, m := range meals {
		out = append(out, mealSummary(m))
	}
	return out, nil
}

// mealSummary maps a filter hit to a summary. TheMealDB reports no
// ingredient matching, so the counts stay nil.
func mealSummary(m meal) types.RecipeSummary {
	id := m.str("idMeal")
	return types.RecipeSummary{
		ID:        id,
		Title:     m.str("strMeal"),
		Image:     m.str("strMealThumb"),
		Source:    types.SourceMealDB,
		SourceURL: mealPageBase + url.QueryEscape(id),
	}
}

// lookupMeal fetches a meal by id. ok is false when TheMealDB has no
// record for id or the request failed.
func (f *Finder) lookupMeal(ctx context.Context, id string) (d types.RecipeDetail, ok bool, err error) {
	reqURL := strings.TrimRight(f.cfg.FallbackBase, "/") + "/lookup.php?" + url.Values{"i": {id}}.Encode()

	var body mealList
	if err := httputil.GetJSON(ctx, f.client, reqURL, f.cfg.UserAgent, f.cfg.MaxRetries, &body); err != nil {
		return types.RecipeDetail{}, false, fmt.Errorf("TheMealDB lookup: %w", err)
	}
	if len(body.Meals) == 0 || body.Meals[0] == nil {
		return types.RecipeDetail{}, false, nil
	}
	return mealDetail(body.Meals[0], id), true, nil
}

// mealDetail maps a lookup record to a detail. Ingredient slots 1..20
// with a blank ingredient are skipped.
func mealDetail(m meal, id string) types.RecipeDetail {
	d := types.RecipeDetail{
		Title:           m.str("strMeal"),
		Image:           m.str("strMealThumb"),
		Category:        m.str("strCategory"),
		IngredientLines: []string{},
		Instructions:    m.str("strInstructions"),
		Source:          types.SourceMealDB,
		Available:       true,
	}
	if mid := m.str("idMeal"); mid != "" {
		id = mid
	}
	if id != "" {
		d.SourceURL = mealPageBase + url.QueryEscape(id)
	}

	for i := 1; i <= mealSlots; i++ {
		ing := strings.TrimSpace(m.str(fmt.Sprintf("strIngredient%d", i)))
		if ing == "" {
			continue
		}
		line := ing
		if measure := strings.TrimSpace(m.str(fmt.Sprintf("strMeasure%d", i))); measure != "" {
			line += " — " + measure
		}
		d.IngredientLines = append(d.IngredientLines, line)
	}
	return d
}

// TheMealDB API JSON structures. A meal is a flat object whose
// ingredient and measure fields are numbered, so it is kept as a map.
type mealList struct {
	Meals []meal `json:"meals"`
}

type meal map[string]any

// str returns the string field key, or "" when absent, null or not a string.
func (m meal) str(key string) string {
	s, _ := m[key].(string)
	return s
}
