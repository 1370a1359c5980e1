package config

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultArchive is the archive listed when no path is given.
const DefaultArchive = "android/gradle/wrapper/gradle-wrapper.jar"

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"`
}

type Config struct {
	Archive string    `yaml:"archive"`
	Limit   int       `yaml:"limit"`
	NoColor bool      `yaml:"no_color"`
	Log     LogConfig `yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Archive: DefaultArchive,
		Limit:   50,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".jarls", "config.yaml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, eris.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, eris.Wrapf(err, "parsing config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that yaml decoding cannot.
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return eris.Errorf("limit must be zero or greater, got %d", c.Limit)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means warn.
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(err, "invalid log level %q", c.Log.Level)
	}
	return level, nil
}

func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return eris.Wrap(err, "creating config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return eris.Wrap(err, "encoding config")
	}

	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unexpanded if home unavailable
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
