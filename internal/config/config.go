package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nsgo-dev/nsgo/internal/errors"
	"github.com/nsgo-dev/nsgo/pkg/manifest"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "nsgo.json"

	// DefaultInspectAddr is the default inspector listen address.
	DefaultInspectAddr = "localhost:9191"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "nsgo"

	// DefaultRegion is the default S3 region for manifest sources.
	DefaultRegion = "us-east-1"
)

// Config represents the complete nsgo.json configuration.
type Config struct {
	// Log contains logging configuration.
	Log LogConfig `json:"log"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics"`

	// Inspect contains inspector server configuration.
	Inspect InspectConfig `json:"inspect"`

	// Animations installs the native animation providers. Default true.
	Animations *bool `json:"animations,omitempty"`

	// Elements are custom elements declared inline.
	Elements []manifest.Element `json:"elements,omitempty"`

	// Manifests are element manifest sources: file paths, relative to the
	// config file, or s3://bucket/key URLs.
	Manifests []string `json:"manifests,omitempty"`

	// S3 configures the client used for s3:// manifests.
	S3 S3Config `json:"s3"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// InspectConfig contains inspector server settings.
type InspectConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty"`
}

// S3Config contains S3 client settings.
type S3Config struct {
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
// It looks for nsgo.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithSubject(path).
				WithDetail("No nsgo.json found in " + filepath.Dir(path))
		}
		return nil, errors.New("E120").WithSubject(path).Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithSubject(path).
			WithDetail("Failed to parse nsgo.json: " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Inspect.Addr == "" {
		c.Inspect.Addr = DefaultInspectAddr
	}
	if c.Animations == nil {
		on := true
		c.Animations = &on
	}
	if c.S3.Region == "" {
		c.S3.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E122").
			WithDetail("log.level must be one of debug, info, warn, error, got " + c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E122").
			WithDetail("log.format must be text or json, got " + c.Log.Format)
	}
	m := manifest.Manifest{Source: ConfigFileName, Elements: c.Elements}
	if err := m.Validate(); err != nil {
		return errors.New("E122").WithDetail("Invalid inline elements.").Wrap(err)
	}
	return nil
}

// AnimationsEnabled reports whether animation providers are installed.
func (c *Config) AnimationsEnabled() bool {
	return c.Animations == nil || *c.Animations
}

// ManifestSources returns manifest sources with relative paths resolved
// against the config directory.
func (c *Config) ManifestSources() []string {
	out := make([]string, len(c.Manifests))
	for i, src := range c.Manifests {
		if strings.HasPrefix(src, "s3://") || filepath.IsAbs(src) || c.configPath == "" {
			out[i] = src
			continue
		}
		out[i] = filepath.Join(c.Dir(), src)
	}
	return out
}

// Logger builds a slog.Logger writing to w per the log settings.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
