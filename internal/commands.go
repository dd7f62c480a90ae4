package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/rajrishis/portfolio/internal/content"
	"github.com/rajrishis/portfolio/internal/mcpserver"
	"github.com/rajrishis/portfolio/internal/state"
	"github.com/rajrishis/portfolio/internal/tui"
	"github.com/rajrishis/portfolio/internal/view"
)

// Version is reported by the MCP server.
var Version = "dev"

// Output formats for Render.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// RenderOptions select what Render writes.
type RenderOptions struct {
	// Light renders the page after one theme toggle.
	Light  bool
	Format string
}

// Render writes the page in its initial state to w as a standalone HTML
// document (client script inlined) or as Markdown. Logs go to stderr unless
// another output is configured.
func Render(ctx context.Context, w io.Writer, ro RenderOptions, opts ...Option) error {
	app, err := newApplication(append([]Option{WithLogOutput(os.Stderr)}, opts...))
	if err != nil {
		return err
	}
	c, err := app.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	bus := state.NewBus()
	defer bus.Close()
	v, err := view.Mount(bus, c.renderer, c.store, view.Options{})
	if err != nil {
		return err
	}
	defer v.Close()

	if ro.Light {
		v.State().ToggleTheme()
	}

	switch ro.Format {
	case "", FormatHTML:
		return v.Render(w)
	case FormatMarkdown:
		md, err := v.Markdown()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	default:
		return fmt.Errorf("unknown format %q", ro.Format)
	}
}

// Preview runs the terminal preview until the user quits or ctx is
// cancelled. With a watched content directory the preview refreshes on
// every reload.
func Preview(ctx context.Context, opts ...Option) error {
	app, err := newApplication(append([]Option{WithLogOutput(io.Discard)}, opts...))
	if err != nil {
		return err
	}
	cfg := app.config

	c, err := app.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	m, err := tui.New(c.store)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	updates := make(chan string, 1)

	if cfg.Content.Watch && c.fs != nil {
		g.Go(func() error {
			return content.Watch(gCtx, c.store, c.logger, func(string) {
				select {
				case updates <- c.store.Snapshot().Version:
				default:
				}
			})
		})
	}

	g.Go(func() error {
		if err := tui.Run(gCtx, m, updates); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		// Quitting the preview stops the watcher too.
		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		return err
	}
	return nil
}

// ServeMCP serves the MCP tools on stdin/stdout. Logs go to stderr unless
// another output is configured.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(append([]Option{WithLogOutput(os.Stderr)}, opts...))
	if err != nil {
		return err
	}
	c, err := app.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := mcpserver.New(c.svc, c.renderer, c.fs, Version)
	c.logger.Info("MCP server starting on stdio")
	if err := srv.ServeStdio(); err != nil {
		c.logger.Error("MCP server error", slog.String("error", err.Error()))
		return err
	}
	return nil
}
