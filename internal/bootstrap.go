package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rajrishis/portfolio/internal/content"
	"github.com/rajrishis/portfolio/internal/index"
	"github.com/rajrishis/portfolio/internal/portfolioservice"
	"github.com/rajrishis/portfolio/internal/storage"
	"github.com/rajrishis/portfolio/internal/view"
)

// components are the services shared by every command.
type components struct {
	logger   *slog.Logger
	dir      *storage.FS
	fs       storage.Provider
	store    *content.Store
	db       *index.DB
	svc      *portfolioservice.Service
	renderer *view.Renderer
}

func (c *components) Close() {
	if err := c.db.Close(); err != nil {
		c.logger.Warn("close index failed", slog.String("error", err.Error()))
	}
	if c.dir != nil {
		if err := c.dir.Close(); err != nil {
			c.logger.Warn("close content dir failed", slog.String("error", err.Error()))
		}
	}
}

func newApplication(opts []Option) (*application, error) {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, errors.New("config is required")
	}
	if app.logOutput == nil {
		app.logOutput = os.Stdout
	}
	return app, nil
}

// bootstrap initialises logging, content, the search index and the renderer.
func (a *application) bootstrap(ctx context.Context) (*components, error) {
	cfg := a.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(a.logOutput, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("content_path", cfg.Content.Path),
		slog.Bool("content_watch", cfg.Content.Watch),
		slog.String("index_path", cfg.Index.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Initialize storage; without a content directory the built-in
	// portfolio is served.
	var (
		dir *storage.FS
		fs  storage.Provider
	)
	if cfg.Content.Path != "" {
		d, err := storage.NewFS(cfg.Content.Path)
		if err != nil {
			return nil, fmt.Errorf("init storage: %w", err)
		}
		dir, fs = d, d
	}
	closeDir := func() {
		if dir != nil {
			_ = dir.Close()
		}
	}

	store, err := content.NewStore(fs, logger)
	if err != nil {
		closeDir()
		return nil, fmt.Errorf("load content: %w", err)
	}

	// Initialize SQLite index.
	db, err := index.Open(cfg.Index.Path)
	if err != nil {
		closeDir()
		return nil, fmt.Errorf("init index: %w", err)
	}

	svc := portfolioservice.NewService(store, db, logger)
	if err := svc.Reindex(ctx); err != nil {
		logger.Warn("initial index build failed", slog.String("error", err.Error()))
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		db.Close()
		closeDir()
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	return &components{
		logger:   logger,
		dir:      dir,
		fs:       fs,
		store:    store,
		db:       db,
		svc:      svc,
		renderer: renderer,
	}, nil
}
