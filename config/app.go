package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrInvalidConfig is returned when a configuration file holds unusable values.
	ErrInvalidConfig = errors.New("invalid config value")
)

// Default locations, relative to the site root.
const (
	DefaultContentDir   = "app/guide/posts"
	DefaultIndexPath    = "public/search/guide-index.json"
	DefaultPort         = "8080"
	DefaultMaxLimit     = 100
	DefaultRateBurst    = 10
	DefaultEndpoint     = "http://localhost:8080/api/guide/search"
	DefaultSiteURL      = "http://localhost:3000"
	DefaultDebounceMs   = 300
	DefaultWatchDelayMs = 500
)

// ContentConfig points at the guide sources.
type ContentConfig struct {
	Dir          string `toml:"dir"`
	WatchDelayMs int    `toml:"watch_delay_ms"`
}

// IndexConfig points at the built artifact.
type IndexConfig struct {
	Path string `toml:"path"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Port      string  `toml:"port"`
	MaxLimit  int     `toml:"max_limit"`
	RateLimit float64 `toml:"rate_limit"` // requests per second per client IP, 0 disables
	RateBurst int     `toml:"rate_burst"`
}

// ClientConfig holds options for the interactive search client.
type ClientConfig struct {
	Endpoint   string `toml:"endpoint"`
	SiteURL    string `toml:"site_url"`
	DebounceMs int    `toml:"debounce_ms"`
}

// AppConfig is the on-disk configuration for the guide_search binary.
type AppConfig struct {
	Content ContentConfig `toml:"content"`
	Index   IndexConfig   `toml:"index"`
	Server  ServerConfig  `toml:"server"`
	Client  ClientConfig  `toml:"client"`
}

// DefaultAppConfig returns the configuration used when no file is present.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Content: ContentConfig{Dir: DefaultContentDir, WatchDelayMs: DefaultWatchDelayMs},
		Index:   IndexConfig{Path: DefaultIndexPath},
		Server: ServerConfig{
			Port:      DefaultPort,
			MaxLimit:  DefaultMaxLimit,
			RateBurst: DefaultRateBurst,
		},
		Client: ClientConfig{
			Endpoint:   DefaultEndpoint,
			SiteURL:    DefaultSiteURL,
			DebounceMs: DefaultDebounceMs,
		},
	}
}

// LoadAppConfig reads a TOML file on top of the defaults.
// A missing file is not an error; the defaults are returned as is.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyDefaults fills empty values left by a partial file.
func (c *AppConfig) ApplyDefaults() {
	d := DefaultAppConfig()
	if c.Content.Dir == "" {
		c.Content.Dir = d.Content.Dir
	}
	if c.Content.WatchDelayMs == 0 {
		c.Content.WatchDelayMs = d.Content.WatchDelayMs
	}
	if c.Index.Path == "" {
		c.Index.Path = d.Index.Path
	}
	if c.Server.Port == "" {
		c.Server.Port = d.Server.Port
	}
	if c.Server.MaxLimit == 0 {
		c.Server.MaxLimit = d.Server.MaxLimit
	}
	if c.Server.RateBurst == 0 {
		c.Server.RateBurst = d.Server.RateBurst
	}
	if c.Client.Endpoint == "" {
		c.Client.Endpoint = d.Client.Endpoint
	}
	if c.Client.SiteURL == "" {
		c.Client.SiteURL = d.Client.SiteURL
	}
	if c.Client.DebounceMs == 0 {
		c.Client.DebounceMs = d.Client.DebounceMs
	}
}

// Validate rejects values that cannot work.
func (c *AppConfig) Validate() error {
	var problems []string
	if c.Server.MaxLimit < 1 {
		problems = append(problems, "server.max_limit must be at least 1")
	}
	if c.Server.RateLimit < 0 {
		problems = append(problems, "server.rate_limit cannot be negative")
	}
	if c.Server.RateBurst < 1 {
		problems = append(problems, "server.rate_burst must be at least 1")
	}
	if c.Client.DebounceMs < 0 {
		problems = append(problems, "client.debounce_ms cannot be negative")
	}
	if c.Content.WatchDelayMs < 0 {
		problems = append(problems, "content.watch_delay_ms cannot be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Debounce returns the client debounce delay.
func (c *AppConfig) Debounce() time.Duration {
	return time.Duration(c.Client.DebounceMs) * time.Millisecond
}

// WatchDelay returns the rebuild coalescing delay for watch mode.
func (c *AppConfig) WatchDelay() time.Duration {
	return time.Duration(c.Content.WatchDelayMs) * time.Millisecond
}

// Save writes the configuration as TOML.
func (c *AppConfig) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
