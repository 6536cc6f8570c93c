package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/courtside/courtside/src/api"
	"github.com/courtside/courtside/src/cache"
	"github.com/courtside/courtside/src/httputil"
	"github.com/courtside/courtside/src/mapgrid"
	"github.com/courtside/courtside/src/store"
	"github.com/courtside/courtside/src/terminal"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the data service, cache, and snapshot store",
	Long: `Check that everything the dashboard depends on is reachable.
Exits with code 0 when healthy, 1 when any check fails.

Examples:
  ` + getBinaryName() + ` doctor
  ` + getBinaryName() + ` doctor --service http://other-host:8765`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor()
	},
}

func runDoctor() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	healthy := true

	fmt.Printf("Service: %s\n", cfg.Service.URL)
	httpClient, err := httputil.NewClient(httputil.Options{
		Timeout: cfg.Service.Timeout(),
		SOCKS:   cfg.Proxy.SOCKS,
	})
	if err != nil {
		return err
	}
	client := api.New(cfg.Service.URL, cfg.Service.FallbackURLs, httpClient)

	start := time.Now()
	info, err := client.Health(ctx)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("  status: ERROR (%v)\n", err)
		healthy = false
	} else {
		fmt.Printf("  status: %s (%dms)\n", info.Status, elapsed.Milliseconds())
		if info.Version != "" {
			fmt.Printf("  version: %s\n", info.Version)
		}
		for name, status := range info.Checks {
			fmt.Printf("  %s: %s\n", name, status)
		}
		if info.Status != "ok" {
			healthy = false
		}

		if games, err := client.LiveGames(ctx); err == nil {
			fmt.Printf("  live games: %d\n", len(games))
		}
		if teams, err := client.Teams(ctx); err == nil {
			fmt.Printf("  teams: %d\n", len(teams))
		}
	}

	fmt.Printf("\nCache: %s\n", cfg.Cache.Backend)
	c, err := cache.New(cache.Config{
		Backend:  cfg.Cache.Backend,
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL(),
		MaxSize:  cfg.Cache.MaxSize,
	})
	if err != nil {
		fmt.Printf("  status: ERROR (%v)\n", err)
		healthy = false
	} else {
		defer c.Close()
		if err := c.Ping(ctx); err != nil {
			fmt.Printf("  status: ERROR (%v)\n", err)
			healthy = false
		} else {
			fmt.Printf("  status: ok\n")
			if stats, err := c.Stats(ctx); err == nil {
				fmt.Printf("  keys: %d\n", stats.Keys)
			}
		}
	}

	dbPath := storePath(cfg)
	fmt.Printf("\nSnapshots: %s\n", dbPath)
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Printf("  status: ERROR (%v)\n", err)
		healthy = false
	} else {
		defer st.Close()
		fmt.Printf("  status: ok\n")
		if rows, takenAt, err := st.LatestStandings(ctx); err == nil {
			fmt.Printf("  standings: %d rows, %s old\n", len(rows), time.Since(takenAt).Round(time.Minute))
		} else {
			fmt.Printf("  standings: none recorded\n")
		}
	}

	size := terminal.GetSize()
	fmt.Printf("\nTerminal: %dx%d (%s)\n", size.Cols, size.Rows, size.Mode)
	if !size.Fits(mapgrid.Width, mapgrid.Height+4) {
		fmt.Printf("  note: the map page needs %dx%d plus chrome\n", mapgrid.Width, mapgrid.Height)
	}

	if !healthy {
		os.Exit(1)
	}
	return nil
}
