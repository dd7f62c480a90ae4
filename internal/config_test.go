package internal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	pkgconfig "github.com/rajrishis/portfolio/pkg/config"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.Index.Path != InMemoryIndex {
		t.Errorf("index path = %q, want in-memory", cfg.Index.Path)
	}
	if cfg.Content.Path != "" {
		t.Errorf("content path = %q, want builtin", cfg.Content.Path)
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port, ShutdownTimeout: time.Second}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 9000, ShutdownTimeout: time.Second}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid http config: %v", err)
	}
	if cfg.Address() != ":9000" {
		t.Errorf("address = %q", cfg.Address())
	}
	cfg.Host = "127.0.0.1"
	if cfg.Address() != "127.0.0.1:9000" {
		t.Errorf("address = %q", cfg.Address())
	}
	cfg.ShutdownTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero shutdown timeout should fail validation")
	}
}

func TestContentConfig_WatchRequiresPath(t *testing.T) {
	cfg := ContentConfig{Watch: true}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("watch without path should fail")
	}
	if !strings.Contains(err.Error(), "required when watch is enabled") {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Path = "./content"
	if err := cfg.Validate(); err != nil {
		t.Errorf("watch with path should pass: %v", err)
	}
}

func TestIndexConfig_PathRequired(t *testing.T) {
	cfg := IndexConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty index path should fail")
	}
}

func TestSiteConfig_NegativeThrottle(t *testing.T) {
	cfg := SiteConfig{ReloadThrottle: -time.Second}
	if err := cfg.Validate(); err == nil {
		t.Error("negative throttle should fail")
	}
}

func TestFullConfig_ContentValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Content.Watch = true
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch content error")
	}
}

func TestShippedConfigFile(t *testing.T) {
	cfg := NewDefaultConfig()
	found, err := pkgconfig.LoadOptional("../config/config.yaml", cfg)
	if err != nil {
		t.Fatalf("shipped config: %v", err)
	}
	if !found {
		t.Fatal("config/config.yaml not found")
	}
	if cfg.App.LogLevel != slog.LevelInfo || cfg.App.HTTP.Address() != ":8080" {
		t.Errorf("app config = %+v", cfg.App)
	}

	// The shipped config must start without any content directory.
	var buf bytes.Buffer
	if err := Render(context.Background(), &buf, RenderOptions{}, WithConfig(cfg), WithLogOutput(io.Discard)); err != nil {
		t.Fatalf("render with shipped config: %v", err)
	}
	if !strings.Contains(buf.String(), "Rajrishi Sharma") {
		t.Error("shipped config should serve the built-in portfolio")
	}
}
