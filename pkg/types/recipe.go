// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for recipe-finder.
// Summaries and details are the common shapes every recipe source is
// normalized into; renderers only ever see these.
package types

// Source names identify which API produced a summary or detail.
const (
	SourceSpoonacular = "spoonacular"
	SourceMealDB      = "themealdb"
)

// RecipeSummary is one search hit, as shown on a result card.
type RecipeSummary struct {
	// ID is the source identifier as a string (numeric for Spoonacular,
	// e.g. "52772" for TheMealDB).
	ID string `json:"id" yaml:"id"`

	Title string `json:"title" yaml:"title"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`

	// UsedCount and MissedCount are nil when the source provides no
	// ingredient matching metadata (the fallback source).
	UsedCount   *int `json:"used_count,omitempty" yaml:"used_count,omitempty"`
	MissedCount *int `json:"missed_count,omitempty" yaml:"missed_count,omitempty"`

	// UsedIngredients and MissedIngredients name the matched and missing
	// ingredients when the source reports them.
	UsedIngredients   []string `json:"used_ingredients,omitempty" yaml:"used_ingredients,omitempty"`
	MissedIngredients []string `json:"missed_ingredients,omitempty" yaml:"missed_ingredients,omitempty"`

	// Source is the API that produced this summary. Details are fetched
	// from the same source.
	Source string `json:"source" yaml:"source"`

	// SourceURL links to the recipe page when the source provides one.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// HasMatchCounts reports whether ingredient match counts are known.
func (s RecipeSummary) HasMatchCounts() bool {
	return s.MissedCount != nil
}

// Nutrient is one line of nutrition information.
type Nutrient struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// RecipeDetail is the full view of a recipe. Optional fields are left
// zero or nil when the producing source does not carry them.
type RecipeDetail struct {
	Title    string `json:"title" yaml:"title"`
	Image    string `json:"image,omitempty" yaml:"image,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	ReadyMinutes *int `json:"ready_minutes,omitempty" yaml:"ready_minutes,omitempty"`
	Servings     *int `json:"servings,omitempty" yaml:"servings,omitempty"`

	IngredientLines []string `json:"ingredient_lines" yaml:"ingredient_lines"`

	// Instructions may contain HTML markup.
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`

	Nutrients []Nutrient `json:"nutrients,omitempty" yaml:"nutrients,omitempty"`
	SourceURL string     `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	Source    string     `json:"source,omitempty" yaml:"source,omitempty"`

	// Available is false for the placeholder returned when no source
	// could provide the recipe.
	Available bool `json:"available" yaml:"available"`
}

// PlaceholderTitle is the title of the detail returned when no source
// has the recipe.
const PlaceholderTitle = "Details not available"

// PlaceholderDetail returns the minimal detail used when every source fails.
func PlaceholderDetail() RecipeDetail {
	return RecipeDetail{Title: PlaceholderTitle, IngredientLines: []string{}}
}
