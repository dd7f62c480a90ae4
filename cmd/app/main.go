package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/rajrishis/portfolio/internal"
	pkgconfig "github.com/rajrishis/portfolio/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func render(ctx context.Context, cmd *cli.Command) error {
	theme := cmd.String("theme")
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme %q", theme)
	}
	format := cmd.String("format")
	if format != internal.FormatHTML && format != internal.FormatMarkdown {
		return fmt.Errorf("unknown format %q", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Render fully before touching the output so a failure never leaves a
	// truncated file behind.
	var buf bytes.Buffer
	ro := internal.RenderOptions{
		Light:  theme == "light",
		Format: format,
	}
	if err := internal.Render(ctx, &buf, ro, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("render error: %w", err)
	}

	path := cmd.String("output")
	if path == "" || path == "-" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck // no-op after a successful rename

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func preview(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.Preview(ctx, internal.WithConfig(cfg))
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.ServeMCP(ctx, internal.WithConfig(cfg))
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "portfolio",
		Usage:  "Personal portfolio site with live content reload, search API, terminal preview and MCP tools",
		Action: serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (missing file means defaults)",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the page, JSON API and live reload events over HTTP",
				Action: serve,
			},
			{
				Name:   "render",
				Usage:  "Write the page to a file or stdout",
				Action: render,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (- for stdout)",
						Value:   "-",
					},
					&cli.StringFlag{
						Name:  "theme",
						Usage: "Initial theme: dark or light",
						Value: "dark",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: html or markdown",
						Value: internal.FormatHTML,
					},
				},
			},
			{
				Name:   "preview",
				Usage:  "Preview the page in the terminal",
				Action: preview,
			},
			{
				Name:   "mcp",
				Usage:  "Serve MCP tools on stdin/stdout",
				Action: serveMCP,
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
