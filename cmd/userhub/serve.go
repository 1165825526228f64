package main

import (
	"fmt"
	"os"

	"github.com/artpar/userhub/bootstrap"
	"github.com/artpar/userhub/config"
	"github.com/spf13/cobra"
)

var hotReload bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the user API server",
	Long: `Start the userhub HTTP server.

The server will:
  - Load configuration from userhub.yaml (or --config)
  - Or load configuration from USERHUB_* environment variables
  - Serve the /users/ REST API from an in-memory store

Environment variables:
  USERHUB_SERVER_HOST     - Listen host (default: 127.0.0.1)
  USERHUB_SERVER_PORT     - Listen port (default: 8080)
  USERHUB_LOG_LEVEL       - Log level: debug, info, warn, error
  USERHUB_LOG_FORMAT      - Log format: json or console
  USERHUB_METRICS_ENABLED - Enable the /metrics endpoint

Examples:
  userhub serve
  userhub serve --config /etc/userhub/config.yaml
  userhub serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	var app *bootstrap.App
	var err error

	if hasConfigFile && hotReload {
		// Hot reload only works with a config file
		app, err = bootstrap.NewWithHotReload(cfgFile)
	} else {
		cfg, loadErr := config.LoadWithFallback(cfgFile)
		if loadErr != nil {
			return fmt.Errorf("error loading config: %w", loadErr)
		}

		if !hasConfigFile {
			fmt.Println("Running with environment variables (no config file)")
		}

		app, err = bootstrap.New(cfg)
	}

	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	// Run (blocks until shutdown)
	return app.Run()
}
