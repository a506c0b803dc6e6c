// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/session"
	"github.com/pdiddy/recipe-finder/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI",
	Long: `Serve starts the web UI: an ingredient form with removable chips,
result cards, a detail view and favorite toggles. A JSON API is served
under /api. The server keeps one session for the whole process and stops
on interrupt.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	favs, closeStore, err := openFavorites(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	sess := session.New(newFinder(cfg), favs, nil)
	srv := web.New(sess, logrus.StandardLogger())
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default: server.addr, :8080)")

	rootCmd.AddCommand(serveCmd)
}
