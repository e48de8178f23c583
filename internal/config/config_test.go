package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nsgo-dev/nsgo/pkg/manifest"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Inspect.Addr != DefaultInspectAddr {
		t.Errorf("Inspect.Addr = %q, want %q", cfg.Inspect.Addr, DefaultInspectAddr)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultNamespace)
	}
	if !cfg.AnimationsEnabled() {
		t.Error("animations should default to enabled")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if err == nil {
		t.Fatal("Expected error for missing config")
	}
	if !strings.Contains(err.Error(), "No nsgo.json") {
		t.Errorf("unexpected error: %v", err)
	}

	configJSON := `{
  "log": {"level": "debug", "format": "json"},
  "inspect": {"addr": ":8080"},
  "animations": false,
  "elements": [{"name": "Card", "extends": "StackLayout"}],
  "manifests": ["elements.yaml", "s3://ui/elements.yaml", "/abs/x.yaml"]
}
`
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Inspect.Addr != ":8080" {
		t.Errorf("Inspect.Addr = %q", cfg.Inspect.Addr)
	}
	if cfg.AnimationsEnabled() {
		t.Error("animations should be disabled")
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace default not applied: %q", cfg.Metrics.Namespace)
	}
	if diff := cmp.Diff([]manifest.Element{{Name: "Card", Extends: "StackLayout"}}, cfg.Elements); diff != "" {
		t.Errorf("Elements mismatch (-want +got):\n%s", diff)
	}

	wantSources := []string{
		filepath.Join(tmpDir, "elements.yaml"),
		"s3://ui/elements.yaml",
		"/abs/x.yaml",
	}
	if diff := cmp.Diff(wantSources, cfg.ManifestSources()); diff != "" {
		t.Errorf("ManifestSources mismatch (-want +got):\n%s", diff)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	_ = os.WriteFile(path, []byte("{not json"), 0644)

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "Failed to parse") {
		t.Errorf("err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad element", func(c *Config) { c.Elements = []manifest.Element{{Name: "X"}} }, "inline elements"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestValidate_ElementErrorIsManifestError(t *testing.T) {
	cfg := New()
	cfg.Elements = []manifest.Element{{Name: "X"}}
	if err := cfg.Validate(); !errors.Is(err, manifest.ErrInvalid) {
		t.Errorf("err = %v, want wrapped manifest.ErrInvalid", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := New()
	cfg.Manifests = []string{"a.yaml"}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Path() != path {
		t.Errorf("Path = %q", loaded.Path())
	}
	if diff := cmp.Diff(cfg.Manifests, loaded.Manifests); diff != "" {
		t.Errorf("Manifests mismatch:\n%s", diff)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}
