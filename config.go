package nsgo

import "github.com/nsgo-dev/nsgo/internal/config"

// Config is the nsgo.json configuration.
type Config = config.Config

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return config.New()
}

// LoadConfig reads nsgo.json from dir.
func LoadConfig(dir string) (*Config, error) {
	return config.Load(dir)
}
