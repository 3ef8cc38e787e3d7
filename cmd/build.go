package cmd

import (
	"sync"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/docfeed/internal/config"
	"github.com/Bitlatte/docfeed/internal/model"
	"github.com/Bitlatte/docfeed/internal/site"
	"github.com/Bitlatte/docfeed/internal/store"
)

// buildMu keeps watcher-triggered rebuilds from overlapping.
var buildMu sync.Mutex

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, layouts, and static assets",
	Long: `The build command processes Markdown files from the content directory,
extracts front matter, publishes the latest publications feed, applies
templates from the layouts directory (including partials), copies static
assets and generates the site in the configured output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(appConfig, siteData, globalData)
	},
}

// runBuild starts a new content-load cycle and builds the site into it.
func runBuild(cfg config.Config, s *model.SiteData, st *store.Store) error {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.BeginCycle()
	return site.Build(cfg, s, st)
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
