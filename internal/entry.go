// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/rajrishis/portfolio/internal/api"
	"github.com/rajrishis/portfolio/internal/content"
	"github.com/rajrishis/portfolio/internal/sse"
	"github.com/rajrishis/portfolio/internal/view"
)

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	c, err := app.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer c.Close()
	logger := c.logger

	watching := cfg.Content.Watch && c.fs != nil

	// SSE broker.
	broker := sse.NewBroker(
		sse.WithReloadThrottle(cfg.Site.ReloadThrottle),
		sse.WithVersion(c.store.Snapshot().Version),
	)
	defer broker.Close()

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           newRouter(c, broker, cfg.Site.LiveReload && watching),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start content watcher; each reload rebuilds the index and notifies
	// SSE clients.
	if watching {
		g.Go(func() error {
			return content.Watch(gCtx, c.store, logger, func(path string) {
				if err := c.svc.Reindex(gCtx); err != nil {
					logger.Warn("reindex after reload failed", slog.String("error", err.Error()))
				}
				broker.PublishContentEvent(path, c.store.Snapshot().Version)
			})
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		// Close SSE streams first so Shutdown does not wait on them.
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.HTTP.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// errShutdown cancels the group's context so the watcher stops along with
// the server.
var errShutdown = errors.New("shutdown")

// newRouter builds the root chi router: health checks, the JSON API under
// /api and the page routes.
func newRouter(c *components, broker *sse.Broker, liveReload bool) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := c.db.Version(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", api.NewRouter(c.svc, broker))

	page := api.NewPageHandler(c.store, c.renderer, view.Options{
		LiveReload: liveReload,
		EventsURL:  "/api/events",
		ScriptURL:  "/static/" + view.ScriptName,
	})
	var assets *api.AssetHandler
	if c.fs != nil {
		assets = api.NewAssetHandler(c.fs)
	}
	r.Mount("/", api.NewSiteRouter(page, assets, view.Static()))

	return r
}
