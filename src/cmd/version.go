package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/courtside/courtside/src/api"
	"github.com/courtside/courtside/src/config"
	"github.com/courtside/courtside/src/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		fmt.Printf("%s v%s (%s) built %s\n", getBinaryName(), info.Version, info.Commit, info.BuildDate)

		// Report the data service version too when one is reachable,
		// quietly skipping when it is not.
		if cfg, err := config.Load(cfgFile); err == nil {
			url := cfg.Service.URL
			if service != "" {
				url = service
			}
			fmt.Printf("\nService: %s\n", url)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client := api.New(url, cfg.Service.FallbackURLs, nil)
			if health, err := client.Health(ctx); err == nil && health.Version != "" {
				fmt.Printf("Service Version: %s\n", health.Version)
			}
		}

		fmt.Printf("\nBuild Info:\n")
		fmt.Printf("  Go: %s\n", info.GoVersion)
		fmt.Printf("  OS/Arch: %s/%s\n", info.OS, info.Arch)
		fmt.Printf("  Commit: %s\n", info.Commit)
		fmt.Printf("  Date: %s\n", info.BuildDate)
		return nil
	},
}
