// Package site runs one full build: load content, publish the feed, render
// every page and the homepage into the output directory.
package site

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Bitlatte/docfeed/internal/config"
	"github.com/Bitlatte/docfeed/internal/content"
	"github.com/Bitlatte/docfeed/internal/feed"
	"github.com/Bitlatte/docfeed/internal/model"
	"github.com/Bitlatte/docfeed/internal/render"
	"github.com/Bitlatte/docfeed/internal/store"
)

const (
	baseLayout     = "base.html"
	singleLayout   = "single.html"
	homeLayout     = "home.html"
	postListLayout = "list-posts.html"
)

// HomeData is the template context for home.html.
type HomeData struct {
	SiteTitle string
	BaseURL   string
	Site      *model.SiteData
	Latest    render.Model
}

// Build renders the whole site for cfg. st receives the feed for this cycle;
// callers rebuilding in the same process call st.BeginCycle first.
func Build(cfg config.Config, site *model.SiteData, st *store.Store) error {
	slog.Info("build: starting", "output", cfg.OutputDir, "baseURL", cfg.BaseURL, "title", cfg.SiteTitle)

	if _, err := os.Stat(cfg.LayoutsDir); os.IsNotExist(err) {
		return fmt.Errorf("layouts directory '%s' not found, create it and add your .html layout files", cfg.LayoutsDir)
	}

	if err := prepareOutput(cfg); err != nil {
		return err
	}

	templates, err := parseLayouts(cfg.LayoutsDir)
	if err != nil {
		return err
	}

	loaded, err := content.Load(content.Options{
		ContentDir:     cfg.ContentDir,
		VersionsDir:    cfg.VersionsDir,
		CurrentVersion: cfg.Feed.Version,
	})
	if err != nil {
		return fmt.Errorf("error during content collection: %w", err)
	}
	collect(site, loaded)

	latest := feed.FromContent(loaded, cfg.Feed.Version, cfg.Feed.Limit)
	if err := feed.Publish(st, cfg.Feed.Key, latest); err != nil {
		return err
	}
	if _, ok := loaded.Partition(cfg.Feed.Version); !ok {
		slog.Info("feed: content partition missing, published empty feed", "version", cfg.Feed.Version)
	} else {
		slog.Info("feed: published", "key", cfg.Feed.Key, "items", latest.Len(), "limit", cfg.Feed.Limit)
	}

	for _, item := range site.Documents {
		if err := renderDocument(cfg, templates, site, item); err != nil {
			return err
		}
	}

	if err := renderHome(cfg, templates, site, st); err != nil {
		return err
	}
	if err := renderPostList(cfg, templates, site); err != nil {
		return err
	}

	slog.Info("build: completed", "documents", len(site.Documents))
	return nil
}

func prepareOutput(cfg config.Config) error {
	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); os.IsNotExist(err) {
		slog.Debug("build: no static directory, skipping copy", "dir", cfg.StaticDir)
		return nil
	}
	if err := copyDirContents(cfg.StaticDir, cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	return nil
}

// parseLayouts parses base.html with every partial first, then the remaining
// layouts, then home.html last so its blocks win.
func parseLayouts(layoutsDir string) (*template.Template, error) {
	var basePath, homePath string
	var partials, pages []string

	err := filepath.WalkDir(layoutsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		topLevel := filepath.Dir(path) == filepath.Clean(layoutsDir)
		switch {
		case topLevel && d.Name() == baseLayout:
			basePath = path
		case topLevel && d.Name() == homeLayout:
			homePath = path
		case strings.HasPrefix(filepath.Dir(path), filepath.Join(layoutsDir, "partials")):
			partials = append(partials, path)
		default:
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files in '%s': %w", layoutsDir, err)
	}
	if basePath == "" {
		return nil, fmt.Errorf("%s not found directly in layouts directory '%s'", baseLayout, layoutsDir)
	}

	templates := template.New(baseLayout).Funcs(template.FuncMap{
		"feedSection": render.SectionHTML,
	})
	templates, err = templates.ParseFiles(append([]string{basePath}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s and partials: %w", baseLayout, err)
	}
	if len(pages) > 0 {
		if templates, err = templates.ParseFiles(pages...); err != nil {
			return nil, fmt.Errorf("failed to parse page layouts: %w", err)
		}
	}
	if homePath != "" {
		if templates, err = templates.ParseFiles(homePath); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", homeLayout, err)
		}
	}
	return templates, nil
}

// collect fills the site-wide document indexes, newest first with undated
// documents last.
func collect(site *model.SiteData, loaded *model.LoadedContent) {
	docs := loaded.Documents()
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Date.IsZero() {
			return false
		}
		if docs[j].Date.IsZero() {
			return true
		}
		return docs[i].Date.After(docs[j].Date)
	})

	site.Documents = docs
	site.Posts = nil
	site.Projects = nil
	site.ContentByType = make(map[string][]*model.Document)
	for _, item := range docs {
		site.ContentByType[item.Type] = append(site.ContentByType[item.Type], item)
		switch item.Type {
		case "posts":
			site.Posts = append(site.Posts, item)
		case "project":
			site.Projects = append(site.Projects, item)
		}
	}
	slog.Debug("build: content collected", "documents", len(docs), "posts", len(site.Posts), "projects", len(site.Projects))
}

func layoutFor(templates *template.Template, item *model.Document) string {
	name := singleLayout
	if item.Type == "posts" && templates.Lookup("single-post.html") != nil {
		name = "single-post.html"
	}
	if item.Layout != "" {
		if templates.Lookup(item.Layout) != nil {
			name = item.Layout
		} else {
			slog.Warn("build: front matter layout not found", "layout", item.Layout, "path", item.SourcePath, "using", name)
		}
	}
	if templates.Lookup(name) == nil {
		name = baseLayout
	}
	return name
}

func renderDocument(cfg config.Config, templates *template.Template, site *model.SiteData, item *model.Document) error {
	name := layoutFor(templates, item)
	out := filepath.Join(cfg.OutputDir, filepath.FromSlash(item.Permalink), "index.html")
	data := model.PageData{SiteTitle: cfg.SiteTitle, BaseURL: cfg.BaseURL, Site: site, Item: item}
	if err := writeTemplate(templates, name, out, data); err != nil {
		return fmt.Errorf("render '%s': %w", item.SourcePath, err)
	}
	slog.Debug("build: generated page", "path", out, "layout", name)
	return nil
}

func renderHome(cfg config.Config, templates *template.Template, site *model.SiteData, st *store.Store) error {
	if templates.Lookup(homeLayout) == nil {
		return fmt.Errorf("homepage layout '%s' not found, create it in the layouts directory", homeLayout)
	}

	opts := render.Options{
		Heading:       cfg.Feed.Heading,
		EmptyMessage:  cfg.Feed.EmptyMessage,
		LinkLabel:     cfg.Feed.LinkLabel,
		FallbackImage: cfg.Feed.FallbackImage,
		BaseURL:       cfg.BaseURL,
		Resolver:      render.NewStaticResolver(os.DirFS(cfg.StaticDir), cfg.Feed.ImageDir, cfg.BaseURL),
	}
	data := HomeData{
		SiteTitle: cfg.SiteTitle,
		BaseURL:   cfg.BaseURL,
		Site:      site,
		Latest:    render.Present(feed.Lookup(st, cfg.Feed.Key), opts),
	}
	return writeTemplate(templates, homeLayout, filepath.Join(cfg.OutputDir, "index.html"), data)
}

func renderPostList(cfg config.Config, templates *template.Template, site *model.SiteData) error {
	if templates.Lookup(postListLayout) == nil {
		slog.Debug("build: no post list layout, skipping", "layout", postListLayout)
		return nil
	}
	data := model.PageData{SiteTitle: cfg.SiteTitle, BaseURL: cfg.BaseURL, Site: site}
	return writeTemplate(templates, postListLayout, filepath.Join(cfg.OutputDir, "posts", "index.html"), data)
}

func writeTemplate(templates *template.Template, name, out string, data any) error {
	if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(out), err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", out, err)
	}
	defer f.Close()

	if err := templates.ExecuteTemplate(f, name, data); err != nil {
		return fmt.Errorf("failed to execute template '%s' into '%s': %w", name, out, err)
	}
	return nil
}
