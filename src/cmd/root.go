// Package cmd implements the CLI commands. The root command is the
// dashboard itself; subcommands cover version, diagnostics, and
// config management.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/courtside/courtside/src/api"
	"github.com/courtside/courtside/src/cache"
	"github.com/courtside/courtside/src/config"
	"github.com/courtside/courtside/src/httputil"
	"github.com/courtside/courtside/src/logging"
	"github.com/courtside/courtside/src/metrics"
	"github.com/courtside/courtside/src/paths"
	"github.com/courtside/courtside/src/store"
	"github.com/courtside/courtside/src/terminal"
	"github.com/courtside/courtside/src/theme"
	"github.com/courtside/courtside/src/tui"
	"github.com/courtside/courtside/src/version"
)

var (
	cfgFile   string
	service   string
	themeName string
	debugAddr string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   getBinaryName(),
	Short: "Live NBA dashboard for your terminal",
	Long: `courtside draws the day's NBA slate onto an ASCII map of the US:
live scores, prediction-market odds, and fan chatter, refreshed in
place while games run.

Running without a subcommand starts the dashboard.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&service, "service", "s", "", "data service URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme: dark, light")
	rootCmd.Flags().StringVar(&debugAddr, "debug-addr", "", "serve /metrics and /healthz on this address")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads configuration and layers flag overrides on top,
// re-validating the result so a bad flag fails like a bad file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if service != "" {
		cfg.Service.URL = service
	}
	if themeName != "" {
		cfg.UI.Theme = themeName
	}
	if debugAddr != "" {
		cfg.Debug.Addr = debugAddr
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDashboard() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := paths.EnsureDirs(); err != nil {
		return err
	}
	if err := logging.Init(logging.Config{
		Level:    cfg.Logging.Level,
		File:     cfg.Logging.File,
		MaxSize:  cfg.Logging.MaxSize,
		MaxFiles: cfg.Logging.MaxFiles,
	}); err != nil {
		return err
	}

	if !terminal.IsInteractive() {
		return fmt.Errorf("the dashboard needs an interactive terminal (stdout is not a TTY)")
	}

	httpClient, err := httputil.NewClient(httputil.Options{
		Timeout: cfg.Service.Timeout(),
		SOCKS:   cfg.Proxy.SOCKS,
	})
	if err != nil {
		return err
	}
	client := api.New(cfg.Service.URL, cfg.Service.FallbackURLs, httpClient)

	c, err := cache.New(cache.Config{
		Backend:  cfg.Cache.Backend,
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL(),
		MaxSize:  cfg.Cache.MaxSize,
	})
	if err != nil {
		return err
	}
	defer c.Close()

	st, err := store.Open(storePath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	retention := time.Duration(cfg.Store.RetentionDays) * 24 * time.Hour
	if n, err := st.Prune(context.Background(), retention); err != nil {
		logging.Warn("snapshot prune failed", "error", err)
	} else if n > 0 {
		logging.Debug("pruned snapshots", "rows", n)
	}

	if cfg.Debug.Addr != "" {
		srv := metrics.Serve(cfg.Debug.Addr)
		defer metrics.Shutdown(srv)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("dashboard starting",
		"version", version.Get().Version,
		"service", cfg.Service.URL,
		"cache", cfg.Cache.Backend)

	return tui.Run(ctx, tui.Deps{
		Config: cfg,
		Client: client,
		Cache:  c,
		Store:  st,
		Theme:  theme.ByName(cfg.UI.Theme),
	})
}

// storePath resolves the snapshot database location.
func storePath(cfg *config.Config) string {
	if cfg.Store.Path != "" {
		return paths.Expand(cfg.Store.Path)
	}
	return paths.SnapshotDB()
}

func getBinaryName() string {
	return filepath.Base(os.Args[0])
}
