// Package config holds the CLI configuration: data service endpoints,
// cache and snapshot store settings, poll intervals, and logging.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the root configuration
type Config struct {
	Service ServiceConfig `mapstructure:"service" yaml:"service"`
	Proxy   ProxyConfig   `mapstructure:"proxy" yaml:"proxy"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Poll    PollConfig    `mapstructure:"poll" yaml:"poll"`
	Logging LogConfig     `mapstructure:"logging" yaml:"logging"`
	Debug   DebugConfig   `mapstructure:"debug" yaml:"debug"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
}

// ServiceConfig points at the NBA data service
type ServiceConfig struct {
	URL            string   `mapstructure:"url" yaml:"url"`
	FallbackURLs   []string `mapstructure:"fallback_urls" yaml:"fallback_urls"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// Timeout returns the per-request timeout
func (s ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ProxyConfig holds outbound proxy settings
type ProxyConfig struct {
	// SOCKS is a host:port SOCKS5 proxy address; empty means direct.
	SOCKS string `mapstructure:"socks" yaml:"socks"`
}

// CacheConfig selects and tunes the odds/social cache
type CacheConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend"` // memory, redis
	Addr       string `mapstructure:"addr" yaml:"addr"`
	Password   string `mapstructure:"password" yaml:"password"`
	DB         int    `mapstructure:"db" yaml:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds" yaml:"ttl_seconds"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
}

// TTL returns the default cache entry lifetime
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// StoreConfig tunes the snapshot database
type StoreConfig struct {
	Path          string `mapstructure:"path" yaml:"path"` // empty = default data dir
	RetentionDays int    `mapstructure:"retention_days" yaml:"retention_days"`
}

// PollConfig holds refresh intervals in seconds
type PollConfig struct {
	GamesSeconds     int `mapstructure:"games_seconds" yaml:"games_seconds"`
	OddsSeconds      int `mapstructure:"odds_seconds" yaml:"odds_seconds"`
	SocialSeconds    int `mapstructure:"social_seconds" yaml:"social_seconds"`
	StandingsSeconds int `mapstructure:"standings_seconds" yaml:"standings_seconds"`
}

// Games returns the game list poll interval
func (p PollConfig) Games() time.Duration {
	return time.Duration(p.GamesSeconds) * time.Second
}

// Odds returns the odds poll interval
func (p PollConfig) Odds() time.Duration {
	return time.Duration(p.OddsSeconds) * time.Second
}

// Social returns the social heat poll interval
func (p PollConfig) Social() time.Duration {
	return time.Duration(p.SocialSeconds) * time.Second
}

// Standings returns the standings poll interval
func (p PollConfig) Standings() time.Duration {
	return time.Duration(p.StandingsSeconds) * time.Second
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`
	File     string `mapstructure:"file" yaml:"file"`
	MaxSize  int    `mapstructure:"max_size" yaml:"max_size"`
	MaxFiles int    `mapstructure:"max_files" yaml:"max_files"`
}

// DebugConfig controls the optional local debug endpoint
type DebugConfig struct {
	// Addr is a listen address for /metrics and /healthz; empty disables it.
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"` // dark, light
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			URL:            "http://localhost:8765",
			TimeoutSeconds: 10,
		},
		Cache: CacheConfig{
			Backend:    "memory",
			Addr:       "localhost:6379",
			TTLSeconds: 300,
			MaxSize:    10000,
		},
		Store: StoreConfig{
			RetentionDays: 7,
		},
		Poll: PollConfig{
			GamesSeconds:     30,
			OddsSeconds:      300,
			SocialSeconds:    300,
			StandingsSeconds: 600,
		},
		Logging: LogConfig{
			Level:    "warn",
			MaxSize:  10,
			MaxFiles: 5,
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []string

	if c.Service.URL == "" {
		errs = append(errs, "service.url is required")
	} else if _, err := url.Parse(c.Service.URL); err != nil {
		errs = append(errs, fmt.Sprintf("service.url: %v", err))
	}
	for _, fu := range c.Service.FallbackURLs {
		if _, err := url.Parse(fu); err != nil {
			errs = append(errs, fmt.Sprintf("service.fallback_urls %q: %v", fu, err))
		}
	}
	if c.Service.TimeoutSeconds <= 0 {
		errs = append(errs, "service.timeout_seconds must be positive")
	}

	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Sprintf("cache.backend %q: must be memory or redis", c.Cache.Backend))
	}
	if c.Cache.Backend == "redis" && c.Cache.Addr == "" {
		errs = append(errs, "cache.addr is required for the redis backend")
	}

	for key, secs := range map[string]int{
		"poll.games_seconds":     c.Poll.GamesSeconds,
		"poll.odds_seconds":      c.Poll.OddsSeconds,
		"poll.social_seconds":    c.Poll.SocialSeconds,
		"poll.standings_seconds": c.Poll.StandingsSeconds,
	} {
		if secs <= 0 {
			errs = append(errs, key+" must be positive")
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q: must be debug, info, warn or error", c.Logging.Level))
	}

	switch c.UI.Theme {
	case "", "dark", "light":
	default:
		errs = append(errs, fmt.Sprintf("ui.theme %q: must be dark or light", c.UI.Theme))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %d problem(s): %v", len(errs), errs)
	}
	return nil
}
