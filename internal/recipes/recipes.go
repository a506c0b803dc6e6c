// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recipes finds recipes for a list of ingredients and fetches
// their details. Spoonacular is the primary source; TheMealDB is consulted
// when the primary is unconfigured, fails, or has nothing. Both payload
// shapes are normalized into types.RecipeSummary and types.RecipeDetail.
package recipes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

const (
	DefaultPrimaryBase  = "https://api.spoonacular.com"
	DefaultFallbackBase = "https://www.themealdb.com/api/json/v1/1"
	DefaultMaxResults   = 18
	DefaultUserAgent    = "recipe-finder/0.1"
	defaultTimeout      = 15 * time.Second

	// searchRetries caps 429 retries on the primary search so a rate
	// limited primary hands over to the fallback quickly.
	searchRetries = 1
)

// Status lines shown to the user.
const (
	StatusNoIngredients    = "Please add at least one ingredient."
	StatusKeyMissing       = "Spoonacular API key missing — using fallback."
	StatusPrimaryFailed    = "Spoonacular API failed — using fallback."
	StatusPrimaryEmpty     = "No recipes found from Spoonacular, trying fallback…"
	StatusClosestMatches   = "No exact matches — showing closest matches."
	StatusNoResults        = "No results found."
	StatusAllSourcesFailed = "All sources failed. Check logs for details."
)

// Outcome tags how a search ended.
type Outcome int

const (
	// OutcomeSuccess means Summaries is non-empty.
	OutcomeSuccess Outcome = iota
	// OutcomeEmpty means every consulted source answered with nothing.
	OutcomeEmpty
	// OutcomeFailed means the last source consulted errored.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is the outcome of a search. Search never returns an error;
// failures are folded into Outcome and Status.
type Result struct {
	Summaries []types.RecipeSummary `json:"summaries" yaml:"summaries"`
	Outcome   Outcome               `json:"outcome" yaml:"outcome"`
	Status    string                `json:"status" yaml:"status"`

	// Source is the API the summaries came from, empty when none did.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Trail lists the intermediate status lines of the sources tried
	// before the final one.
	Trail []string `json:"trail,omitempty" yaml:"trail,omitempty"`
}

// Finder queries the recipe sources. It holds no per-search state and is
// safe for concurrent use.
type Finder struct {
	client *http.Client
	cfg    types.SourceConfig
	log    logrus.FieldLogger
}

// NewFinder returns a Finder with cfg's zero fields set to defaults. A nil
// client gets one with cfg's timeout; a nil log uses the standard logger.
func NewFinder(client *http.Client, cfg types.SourceConfig, log logrus.FieldLogger) *Finder {
	if cfg.PrimaryBase == "" {
		cfg.PrimaryBase = DefaultPrimaryBase
	}
	if cfg.FallbackBase == "" {
		cfg.FallbackBase = DefaultFallbackBase
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Finder{client: client, cfg: cfg, log: log}
}

// PrimaryConfigured reports whether the Spoonacular key is usable.
func (f *Finder) PrimaryConfigured() bool {
	return f.cfg.PrimaryConfigured()
}

// Search returns summaries for ingredients. With a usable key it asks
// Spoonacular first and, when that yields results, never consults the
// fallback. Otherwise TheMealDB is searched by the first ingredient only.
//
// With exactOnly, summaries missing any ingredient are dropped unless
// that would drop all of them, in which case the full list is returned
// with StatusClosestMatches.
func (f *Finder) Search(ctx context.Context, ingredients []string, exactOnly bool) Result {
	if len(ingredients) == 0 {
		return Result{Outcome: OutcomeEmpty, Status: StatusNoIngredients, Summaries: []types.RecipeSummary{}}
	}

	var trail []string
	if f.PrimaryConfigured() {
		res := f.searchPrimary(ctx, ingredients, exactOnly)
		if res.Outcome == OutcomeSuccess {
			return res
		}
		trail = append(trail, res.Status)
	} else {
		trail = append(trail, StatusKeyMissing)
	}

	res := f.searchFallback(ctx, ingredients[0])
	res.Trail = trail
	return res
}

// searchPrimary asks Spoonacular. The whole attempt, retries included,
// is bounded by the HTTP timeout.
func (f *Finder) searchPrimary(ctx context.Context, ingredients []string, exactOnly bool) Result {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	all, err := f.findByIngredients(ctx, ingredients)
	if err != nil {
		f.log.WithFields(logrus.Fields{"source": types.SourceSpoonacular, "op": "search"}).
			WithError(err).Warn("primary search failed")
		return Result{Outcome: OutcomeFailed, Status: StatusPrimaryFailed}
	}
	if len(all) == 0 {
		return Result{Outcome: OutcomeEmpty, Status: StatusPrimaryEmpty}
	}

	if exactOnly {
		exact := filterExact(all)
		if len(exact) == 0 {
			return Result{Outcome: OutcomeSuccess, Status: StatusClosestMatches, Summaries: all, Source: types.SourceSpoonacular}
		}
		all = exact
	}
	return Result{
		Outcome:   OutcomeSuccess,
		Status:    fmt.Sprintf("Found %d recipes (Spoonacular).", len(all)),
		Summaries: all,
		Source:    types.SourceSpoonacular,
	}
}

func (f *Finder) searchFallback(ctx context.Context, ingredient string) Result {
	meals, err := f.filterByIngredient(ctx, ingredient)
	if err != nil {
		f.log.WithFields(logrus.Fields{"source": types.SourceMealDB, "op": "search"}).
			WithError(err).Error("fallback search failed")
		return Result{Outcome: OutcomeFailed, Status: StatusAllSourcesFailed, Summaries: []types.RecipeSummary{}}
	}
	if len(meals) == 0 {
		return Result{Outcome: OutcomeEmpty, Status: StatusNoResults, Summaries: []types.RecipeSummary{}}
	}
	return Result{
		Outcome:   OutcomeSuccess,
		Status:    fmt.Sprintf("Showing %d recipes from TheMealDB (fallback).", len(meals)),
		Summaries: meals,
		Source:    types.SourceMealDB,
	}
}

// filterExact keeps summaries with no missing ingredients.
func filterExact(all []types.RecipeSummary) []types.RecipeSummary {
	var out []types.RecipeSummary
	for _, s := range all {
		if s.MissedCount != nil && *s.MissedCount == 0 {
			out = append(out, s)
		}
	}
	return out
}

// FetchDetail returns the full recipe for item. Spoonacular is asked when
// the key is usable, the id is numeric and the summary did not come from
// TheMealDB; TheMealDB is asked otherwise or when that fails. When neither
// has the recipe the placeholder detail is returned.
func (f *Finder) FetchDetail(ctx context.Context, item types.RecipeSummary) types.RecipeDetail {
	if f.PrimaryConfigured() && isNumericID(item.ID) && item.Source != types.SourceMealDB {
		d, err := f.recipeInformation(ctx, item.ID)
		if err == nil {
			return d
		}
		f.log.WithFields(logrus.Fields{"source": types.SourceSpoonacular, "op": "detail", "id": item.ID}).
			WithError(err).Warn("primary detail failed")
	}

	d, ok, err := f.lookupMeal(ctx, item.ID)
	if err != nil {
		f.log.WithFields(logrus.Fields{"source": types.SourceMealDB, "op": "detail", "id": item.ID}).
			WithError(err).Warn("fallback detail failed")
	}
	if ok {
		return d
	}
	return types.PlaceholderDetail()
}

// isNumericID reports whether id is a positive integer.
func isNumericID(id string) bool {
	n, err := strconv.ParseUint(id, 10, 64)
	return err == nil && n > 0
}

func intPtr(n int) *int { return &n }
