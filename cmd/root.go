package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/docfeed/internal/config"
	"github.com/Bitlatte/docfeed/internal/logging"
	"github.com/Bitlatte/docfeed/internal/model"
	"github.com/Bitlatte/docfeed/internal/store"
)

var (
	cfgFile   string
	appConfig config.Config
	siteData  *model.SiteData

	// globalData carries published build-time data (the latest feed) to renders.
	globalData = store.New()
)

var rootCmd = &cobra.Command{
	Use:   "docfeed",
	Short: "docfeed - documentation sites with a latest publications feed",
	Long: `docfeed takes your Markdown documentation, renders it to a static HTML
site and features the most recent complete publications on the homepage.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		slog.SetDefault(logging.New(cfg.LogLevel, os.Stderr))
		return nil
	},
}

// Execute runs the CLI against site, which main pre-populates with params.
func Execute(site *model.SiteData) {
	siteData = site
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}
