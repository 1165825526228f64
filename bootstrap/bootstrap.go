// Package bootstrap wires all dependencies and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	apihttp "github.com/artpar/userhub/adapters/http"
	"github.com/artpar/userhub/adapters/memory"
	"github.com/artpar/userhub/adapters/metrics"
	"github.com/artpar/userhub/app"
	"github.com/artpar/userhub/config"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Config
	HTTPServer *http.Server
	Metrics    *metrics.Collector
	Users      *app.UserService

	holder *config.Holder
}

// New creates and initializes the application from the given configuration.
func New(cfg *config.Config) (*App, error) {
	logger := setupLogger(cfg.Logging)

	logger.Info().Msg("initializing userhub")

	a := &App{
		Logger: logger,
		Config: cfg,
	}

	store := memory.NewUserStore()
	a.Users = app.NewUserService(store, logger)

	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New()
		a.Metrics.ObserveUsers(func() int {
			return a.Users.Count(context.Background())
		})
		logger.Info().Str("path", cfg.Metrics.Path).Msg("prometheus metrics enabled")
	}

	a.initHTTPServer()
	return a, nil
}

// NewWithHotReload creates the application with config file watching.
// Logging and CORS changes apply without restart; a changed listen address
// requires one.
func NewWithHotReload(path string) (*App, error) {
	bootLogger := setupLogger(config.LoggingConfig{Level: "info", Format: "json"})

	holder, err := config.NewHolder(path, bootLogger)
	if err != nil {
		return nil, err
	}

	a, err := New(holder.Get())
	if err != nil {
		return nil, err
	}
	a.holder = holder

	holder.OnChange(func(cfg *config.Config) {
		applyLogLevel(cfg.Logging.Level)
	})

	if err := holder.WatchFile(); err != nil {
		a.Logger.Warn().Err(err).Msg("config file watch unavailable")
	}
	holder.WatchSignals()

	return a, nil
}

func (a *App) initHTTPServer() {
	api := apihttp.NewHandler(apihttp.Deps{
		Users:   a.Users,
		Logger:  a.Logger,
		Metrics: a.Metrics,
		CORS:    a.Config.CORS.Enabled,
	})

	r := chi.NewRouter()
	r.Get("/healthz", a.handleHealth)
	if a.Metrics != nil {
		r.Method(http.MethodGet, a.Config.Metrics.Path, a.Metrics.Handler())
	}
	r.Mount("/", api.Router())

	a.HTTPServer = &http.Server{
		Addr:         a.Config.Server.Addr(),
		Handler:      r,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := []byte(`{"status":"ok"}`)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", a.HTTPServer.Addr).
			Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.holder != nil {
		a.holder.Stop()
	}

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error().Err(err).Msg("http server shutdown error")
			return err
		}
	}

	a.Logger.Info().Msg("shutdown complete")
	return nil
}

// setupLogger builds the root logger from logging configuration.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	applyLogLevel(cfg.Level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// applyLogLevel sets the global log level; unknown levels fall back to info.
func applyLogLevel(levelStr string) {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
