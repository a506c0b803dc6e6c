// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipes

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/recipe-finder/internal/httputil"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

// findByIngredients queries Spoonacular's findByIngredients endpoint,
// ranking by most used ingredients and ignoring pantry staples.
func (f *Finder) findByIngredients(ctx context.Context, ingredients []string) ([]types.RecipeSummary, error) {
	params := url.Values{
		"ingredients":  {strings.Join(ingredients, ",")},
		"number":       {strconv.Itoa(f.cfg.MaxResults)},
		"ranking":      {"1"},
		"ignorePantry": {"true"},
		"apiKey":       {f.cfg.APIKey},
	}
	reqURL := strings.TrimRight(f.cfg.PrimaryBase, "/") + "/recipes/findByIngredients?" + params.Encode()

	var hits []spoonHit
	if err := httputil.GetJSON(ctx, f.client, reqURL, f.cfg.UserAgent, searchRetries, &hits); err != nil {
		return nil, fmt.Errorf("Spoonacular findByIngredients: %w", err)
	}

	if len(hits) > f.cfg.MaxResults {
		hits = hits[:f.cfg.MaxResults]
	}
	out := make([]types.RecipeSummary, 0, len(hits))
	for _, h := range hits {
		out = append(out, spoonSummary(h))
	}
	return out, nil
}

// spoonSummary maps a findByIngredients hit to a summary. Absent counts
// are treated as zero.
func spoonSummary(h spoonHit) types.RecipeSummary {
	s := types.RecipeSummary{
		ID:          strconv.Itoa(h.ID),
		Title:       h.Title,
		Image:       h.Image,
		UsedCount:   intPtr(h.UsedIngredientCount),
		MissedCount: intPtr(h.MissedIngredientCount),
		Source:      types.SourceSpoonacular,
	}
	for _, ing := range h.UsedIngredients {
		s.UsedIngredients = append(s.UsedIngredients, ing.Name)
	}
	for _, ing := range h.MissedIngredients {
		s.MissedIngredients = append(s.MissedIngredients, ing.Name)
	}
	return s
}

// recipeInformation fetches a recipe with nutrition from Spoonacular.
func (f *Finder) recipeInformation(ctx context.Context, id string) (types.RecipeDetail, error) {
	params := url.Values{
		"includeNutrition": {"true"},
		"apiKey":           {f.cfg.APIKey},
	}
	reqURL := strings.TrimRight(f.cfg.PrimaryBase, "/") + "/recipes/" + url.PathEscape(id) + "/information?" + params.Encode()

	var info spoonInformation
	if err := httputil.GetJSON(ctx, f.client, reqURL, f.cfg.UserAgent, f.cfg.MaxRetries, &info); err != nil {
		return types.RecipeDetail{}, fmt.Errorf("Spoonacular information: %w", err)
	}
	return spoonDetail(info), nil
}

// spoonDetail maps a recipe information payload to a detail.
func spoonDetail(info spoonInformation) types.RecipeDetail {
	d := types.RecipeDetail{
		Title:           info.Title,
		Image:           info.Image,
		IngredientLines: []string{},
		Instructions:    info.Instructions,
		SourceURL:       info.SourceURL,
		Source:          types.SourceSpoonacular,
		Available:       true,
	}
	if info.ReadyInMinutes > 0 {
		d.ReadyMinutes = intPtr(info.ReadyInMinutes)
	}
	if info.Servings > 0 {
		d.Servings = intPtr(info.Servings)
	}
	for _, ing := range info.ExtendedIngredients {
		if line := strings.TrimSpace(ing.Original); line != "" {
			d.IngredientLines = append(d.IngredientLines, line)
		}
	}
	if info.Nutrition != nil {
		for _, n := range info.Nutrition.Nutrients {
			name := n.Title
			if name == "" {
				name = n.Name
			}
			d.Nutrients = append(d.Nutrients, types.Nutrient{Name: name, Amount: n.Amount, Unit: n.Unit})
		}
	}
	return d
}

// Spoonacular API JSON structures.
type spoonHit struct {
	ID                    int               `json:"id"`
	Title                 string            `json:"title"`
	Image                 string            `json:"image"`
	UsedIngredientCount   int               `json:"usedIngredientCount"`
	MissedIngredientCount int               `json:"missedIngredientCount"`
	UsedIngredients       []spoonIngredient `json:"usedIngredients"`
	MissedIngredients     []spoonIngredient `json:"missedIngredients"`
}

type spoonIngredient struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

type spoonInformation struct {
	Title               string            `json:"title"`
	Image               string            `json:"image"`
	ReadyInMinutes      int               `json:"readyInMinutes"`
	Servings            int               `json:"servings"`
	ExtendedIngredients []spoonIngredient `json:"extendedIngredients"`
	Instructions        string            `json:"instructions"`
	Nutrition           *spoonNutrition   `json:"nutrition"`
	SourceURL           string            `json:"sourceUrl"`
}

type spoonNutrition struct {
	Nutrients []spoonNutrient `json:"nutrients"`
}

// spoonNutrient carries both title and name; the API has used each.
type spoonNutrient struct {
	Title  string  `json:"title"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}
