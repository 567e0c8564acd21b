package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HAZEPITO_"

type Config struct {
	ContentDir        string        `koanf:"content_dir"`
	ContentDB         string        `koanf:"content_db"`
	PluginsDir        string        `koanf:"plugins_dir"`
	DefaultTopic      string        `koanf:"default_topic"`
	SearchEngine      string        `koanf:"search_engine"`
	PhotoProbeTimeout time.Duration `koanf:"photo_probe_timeout"`
	LogFile           string        `koanf:"log_file"`
	LogLevel          string        `koanf:"log_level"`
	LogJSON           bool          `koanf:"log_json"`
	Mouse             bool          `koanf:"mouse"`
	GlamourStyle      string        `koanf:"glamour_style"`
}

func Default() Config {
	return Config{
		SearchEngine:      "https://www.bing.com",
		PhotoProbeTimeout: 4 * time.Second,
		LogLevel:          "info",
		Mouse:             true,
		GlamourStyle:      "dark",
	}
}

// DefaultPath is the per-user config file consulted when --config is unset.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hazepito", "config.yaml")
}

// Load layers defaults, the YAML file at path (optional) and HAZEPITO_* env
// overrides, then validates the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	u, err := url.Parse(c.SearchEngine)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid search engine url %q", c.SearchEngine)
	}
	c.SearchEngine = strings.TrimRight(c.SearchEngine, "/")
	if c.PhotoProbeTimeout <= 0 {
		c.PhotoProbeTimeout = 4 * time.Second
	}
	if c.GlamourStyle == "" {
		c.GlamourStyle = "dark"
	}
	return nil
}
