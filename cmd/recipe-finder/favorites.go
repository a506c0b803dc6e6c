// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/render"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List, toggle or export favorite recipes",
	Long: `Favorites manages the set of favorite recipe ids. The set is stored
under one key in the configured storage backend (storage.backend) and
survives restarts.`,
}

// --- list subcommand ---

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print favorite recipe ids",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	favs, closeStore, err := openFavorites(cmd.Context(), loadConfig().Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	out := cmd.OutOrStdout()
	if favs.Len() == 0 {
		fmt.Fprintln(out, "No favorites yet.")
		return nil
	}
	for _, id := range favs.List() {
		fmt.Fprintln(out, id)
	}
	return nil
}

// --- toggle subcommand ---

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Add or remove a recipe id from favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesToggle,
}

func runFavoritesToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	favs, closeStore, err := openFavorites(ctx, loadConfig().Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	id := args[0]
	on, err := favs.Toggle(ctx, id)
	if err != nil {
		return err
	}
	if on {
		fmt.Fprintf(cmd.OutOrStdout(), "♥ %s added to favorites\n", id)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "♡ %s removed from favorites\n", id)
	}
	return nil
}

// --- export subcommand ---

var favoritesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the favorites as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesExport,
}

func runFavoritesExport(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	if format == render.FormatTable {
		return fmt.Errorf("export supports json or yaml")
	}

	favs, closeStore, err := openFavorites(cmd.Context(), loadConfig().Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	return render.Favorites(cmd.OutOrStdout(), favs.List(), format)
}

func init() {
	favoritesExportCmd.Flags().String("format", "yaml", "output format: json or yaml")

	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)
	favoritesCmd.AddCommand(favoritesExportCmd)
	rootCmd.AddCommand(favoritesCmd)
}
