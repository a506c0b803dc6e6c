// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/render"
	"github.com/pdiddy/recipe-finder/internal/session"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

var detailCmd = &cobra.Command{
	Use:   "detail <id>",
	Short: "Show the full recipe for an id from a search",
	Long: `Detail fetches a recipe's ingredients, instructions, timing and
nutrition. Pass --source with the source shown in the search results so
the recipe is looked up where it was found.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetail,
}

func runDetail(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")
	switch source {
	case "", types.SourceSpoonacular, types.SourceMealDB:
	default:
		return fmt.Errorf("unknown source %q: use %s or %s", source, types.SourceSpoonacular, types.SourceMealDB)
	}
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

	sess := session.New(newFinder(cfg), favs, nil)
	id := args[0]
	d := sess.DetailByID(ctx, id, source)
	return render.Detail(cmd.OutOrStdout(), d, sess.IsFavorite(id), format)
}

func init() {
	detailCmd.Flags().String("source", "", "source the id came from: spoonacular or themealdb")
	detailCmd.Flags().String("format", "table", "output format: table, json or yaml")

	rootCmd.AddCommand(detailCmd)
}
