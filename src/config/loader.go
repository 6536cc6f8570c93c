package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration in precedence order: defaults, then the
// YAML config file (if present), then COURTSIDE_* environment
// variables. A non-empty path overrides the default file location.
func Load(path string) (*Config, error) {
	// .env files are a development convenience; absence is normal.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("COURTSIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if def := defaultFile(); def != "" {
		v.SetConfigFile(def)
		if err := v.ReadInConfig(); err != nil {
			// The default file is optional.
			if !os.IsNotExist(err) {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return nil, fmt.Errorf("config: read %s: %w", def, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("service.url", def.Service.URL)
	v.SetDefault("service.fallback_urls", def.Service.FallbackURLs)
	v.SetDefault("service.timeout_seconds", def.Service.TimeoutSeconds)

	v.SetDefault("proxy.socks", def.Proxy.SOCKS)

	v.SetDefault("cache.backend", def.Cache.Backend)
	v.SetDefault("cache.addr", def.Cache.Addr)
	v.SetDefault("cache.password", def.Cache.Password)
	v.SetDefault("cache.db", def.Cache.DB)
	v.SetDefault("cache.ttl_seconds", def.Cache.TTLSeconds)
	v.SetDefault("cache.max_size", def.Cache.MaxSize)

	v.SetDefault("store.path", def.Store.Path)
	v.SetDefault("store.retention_days", def.Store.RetentionDays)

	v.SetDefault("poll.games_seconds", def.Poll.GamesSeconds)
	v.SetDefault("poll.odds_seconds", def.Poll.OddsSeconds)
	v.SetDefault("poll.social_seconds", def.Poll.SocialSeconds)
	v.SetDefault("poll.standings_seconds", def.Poll.StandingsSeconds)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.max_size", def.Logging.MaxSize)
	v.SetDefault("logging.max_files", def.Logging.MaxFiles)

	v.SetDefault("debug.addr", def.Debug.Addr)

	v.SetDefault("ui.theme", def.UI.Theme)
}

// defaultFile locates the default config file, or "" when it does not
// exist yet.
func defaultFile() string {
	p := configFilePath()
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
