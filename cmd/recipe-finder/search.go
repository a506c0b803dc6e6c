// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/recipes"
	"github.com/pdiddy/recipe-finder/internal/render"
	"github.com/pdiddy/recipe-finder/internal/session"
)

var searchCmd = &cobra.Command{
	Use:   "search [ingredient...]",
	Short: "Find recipes that use the given ingredients",
	Long: `Search adds each argument and the --ingredients text to the ingredient
list (commas, semicolons and newlines separate ingredients), then looks up
recipes for the whole list.

Spoonacular is asked first when a key is configured. TheMealDB is used
when it is not, when Spoonacular fails, or when it finds nothing; the
fallback matches on the first ingredient only.

With --exact, only recipes that need no other ingredients are shown,
unless none do, in which case the closest matches are shown instead.`,
	Example: `  recipe-finder search chicken rice
  recipe-finder search --ingredients "chicken, rice; garlic" --exact
  recipe-finder search egg --format json`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	typed, _ := cmd.Flags().GetString("ingredients")
	exact, _ := cmd.Flags().GetBool("exact")
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	cfg := loadConfig()
	favs, closeStore, err := openFavorites(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	out := cmd.OutOrStdout()
	var onChange func([]string)
	if format == render.FormatTable {
		onChange = func(items []string) { render.Chips(out, items) }
	}

	sess := session.New(newFinder(cfg), favs, onChange)
	for _, a := range args {
		sess.AddIngredients(a)
	}
	res := sess.Submit(ctx, typed, exact)

	if format == render.FormatTable {
		for _, line := range res.Trail {
			fmt.Fprintln(out, line)
		}
	}
	if err := render.Results(out, res.Status, render.Cards(res.Summaries, sess), format); err != nil {
		return err
	}
	if res.Outcome == recipes.OutcomeFailed {
		return fmt.Errorf("search failed: %s", res.Status)
	}
	return nil
}

func init() {
	searchCmd.Flags().String("ingredients", "", "ingredients separated by commas, semicolons or newlines")
	searchCmd.Flags().Bool("exact", false, "only show recipes with no missing ingredients")
	searchCmd.Flags().String("format", "table", "output format: table, json or yaml")

	rootCmd.AddCommand(searchCmd)
}
