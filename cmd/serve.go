package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const rebuildDebounce = 500 * time.Millisecond

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and watches for changes",
	Long: `The serve command performs an initial build of your site, then starts a local
web server for the output directory. It watches the content, layouts and static
directories and rebuilds the site, including the latest publications feed,
whenever they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("serve: performing initial build")
		if err := runBuild(appConfig, siteData, globalData); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		go watchAndRebuild(watcher)

		for _, root := range watchRoots() {
			addWatchTree(watcher, root)
		}

		addr := fmt.Sprintf(":%d", serverPort)
		slog.Info("serve: listening", "dir", appConfig.OutputDir, "url", "http://localhost"+addr)

		srv := &http.Server{
			Addr:              addr,
			Handler:           noCacheHandler(appConfig.OutputDir),
			ReadHeaderTimeout: 5 * time.Second,
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	},
}

func watchRoots() []string {
	return []string{
		appConfig.ContentDir,
		appConfig.VersionsDir,
		appConfig.LayoutsDir,
		appConfig.StaticDir,
	}
}

// watchAndRebuild debounces file events into rebuilds until the watcher closes.
func watchAndRebuild(watcher *fsnotify.Watcher) {
	var timer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Info("serve: change detected", "path", event.Name, "op", event.Op.String())

			// New sub-directories are not watched automatically.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					slog.Error("serve: could not watch new directory", "path", event.Name, "err", err)
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(rebuildDebounce, func() {
				if err := runBuild(appConfig, siteData, globalData); err != nil {
					slog.Error("serve: rebuild failed", "err", err)
					return
				}
				slog.Info("serve: site rebuilt")
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("serve: watcher error", "err", err)
		}
	}
}

func addWatchTree(watcher *fsnotify.Watcher, root string) {
	if root == "" || !isDir(root) {
		slog.Debug("serve: directory not found, not watching", "dir", root)
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("serve: error walking", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				slog.Warn("serve: failed to watch", "path", path, "err", err)
			}
		}
		return nil
	})
	if err != nil {
		slog.Warn("serve: error during initial walk", "dir", root, "err", err)
	}
}

// noCacheHandler serves dir without directory listings and with caching off.
func noCacheHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(r.URL.Path), "index.html")); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		files.ServeHTTP(w, r)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
