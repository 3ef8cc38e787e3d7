package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/docfeed/internal/config"
	"github.com/Bitlatte/docfeed/internal/feed"
	"github.com/Bitlatte/docfeed/internal/model"
	"github.com/Bitlatte/docfeed/internal/store"
)

func writeFile(t *testing.T, name, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(body), 0o644))
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(b)
}

// newProject lays out a minimal site under a temp dir and returns its config.
func newProject(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Config{
		SiteTitle:   "Revista",
		OutputDir:   filepath.Join(root, "public"),
		ContentDir:  filepath.Join(root, "content"),
		VersionsDir: filepath.Join(root, "versioned_content"),
		LayoutsDir:  filepath.Join(root, "layouts"),
		StaticDir:   filepath.Join(root, "static"),
		Feed: config.FeedConfig{
			Limit:         3,
			Key:           feed.GlobalDataKey,
			Version:       feed.CurrentVersion,
			ImageDir:      "img",
			FallbackImage: "/img/fondo_principal.png",
			Heading:       "Latest Publications",
			EmptyMessage:  "No recent publications found.",
			LinkLabel:     "Read more",
		},
	}

	writeFile(t, filepath.Join(cfg.LayoutsDir, "base.html"), `<html><body>{{ template "header" . }}</body></html>`)
	writeFile(t, filepath.Join(cfg.LayoutsDir, "partials", "header.html"), `{{ define "header" }}<header>{{ .SiteTitle }}</header>{{ end }}`)
	writeFile(t, filepath.Join(cfg.LayoutsDir, "single.html"), `<article><h1>{{ .Item.Title }}</h1>{{ .Item.ContentHTML }}</article>`)
	writeFile(t, filepath.Join(cfg.LayoutsDir, "home.html"), `{{ template "header" . }}<main>{{ feedSection .Latest }}</main>`)
	writeFile(t, filepath.Join(cfg.StaticDir, "img", "b.png"), "png")
	return cfg
}

func addDoc(t *testing.T, cfg config.Config, rel, frontMatter string) {
	t.Helper()
	writeFile(t, filepath.Join(cfg.ContentDir, rel), "---\n"+frontMatter+"\n---\nBody of "+rel+"\n")
}

func TestBuild_PublishesAndRendersFeed(t *testing.T) {
	cfg := newProject(t)
	addDoc(t, cfg, "docs/a.md", "title: A\ndate: 2024-01-01\ndescription: d1\nimage: a.png")
	addDoc(t, cfg, "docs/b.md", "title: B\ndate: 2024-03-01\ndescription: d2\nimage: b.png")
	addDoc(t, cfg, "docs/c.md", "title: C\ndate: 2024-02-01\nimage: c.png")

	st := store.New()
	site := &model.SiteData{}
	require.NoError(t, Build(cfg, site, st))

	items := feed.Lookup(st, cfg.Feed.Key).Items()
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Title)
	assert.Equal(t, "A", items[1].Title)

	home := readFile(t, filepath.Join(cfg.OutputDir, "index.html"))
	assert.Contains(t, home, "<header>Revista</header>")
	assert.Contains(t, home, `src="/img/b.png"`)
	assert.Contains(t, home, `src="/img/fondo_principal.png"`)
	assert.Less(t, strings.Index(home, "<h3>B</h3>"), strings.Index(home, "<h3>A</h3>"))
	assert.NotContains(t, home, "<h3>C</h3>")

	page := readFile(t, filepath.Join(cfg.OutputDir, "docs", "c", "index.html"))
	assert.Contains(t, page, "<h1>C</h1>")
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "img", "b.png"))
	assert.Len(t, site.Documents, 3)
}

func TestBuild_MissingContentPublishesEmptyFeed(t *testing.T) {
	cfg := newProject(t)

	st := store.New()
	require.NoError(t, Build(cfg, &model.SiteData{}, st))

	_, published := st.Get(cfg.Feed.Key)
	assert.True(t, published)
	assert.True(t, feed.Lookup(st, cfg.Feed.Key).IsEmpty())

	home := readFile(t, filepath.Join(cfg.OutputDir, "index.html"))
	assert.Contains(t, home, "No recent publications found.")
}

func TestBuild_RebuildNeedsNewCycle(t *testing.T) {
	cfg := newProject(t)
	addDoc(t, cfg, "docs/a.md", "title: A\ndate: 2024-01-01\ndescription: d1\nimage: a.png")

	st := store.New()
	require.NoError(t, Build(cfg, &model.SiteData{}, st))
	require.ErrorIs(t, Build(cfg, &model.SiteData{}, st), store.ErrAlreadyPublished)

	addDoc(t, cfg, "docs/z.md", "title: Z\ndate: 2025-01-01\ndescription: dz\nimage: z.png")
	st.BeginCycle()
	require.NoError(t, Build(cfg, &model.SiteData{}, st))
	assert.Equal(t, "Z", feed.Lookup(st, cfg.Feed.Key).Items()[0].Title)
}

func TestBuild_MissingLayouts(t *testing.T) {
	cfg := newProject(t)
	cfg.LayoutsDir = filepath.Join(t.TempDir(), "none")
	require.Error(t, Build(cfg, &model.SiteData{}, store.New()))
}

func TestCollect_SortsAndIndexes(t *testing.T) {
	loaded := &model.LoadedContent{Partitions: []*model.Partition{{
		Name: "current",
		Docs: []*model.Document{
			{Title: "undated", Type: "page"},
			{Title: "post", Type: "posts", Date: mustDate(t, "2024-01-01")},
			{Title: "project", Type: "project", Date: mustDate(t, "2024-05-01")},
		},
	}}}
	site := &model.SiteData{}
	collect(site, loaded)

	require.Len(t, site.Documents, 3)
	assert.Equal(t, "project", site.Documents[0].Title)
	assert.Equal(t, "undated", site.Documents[2].Title)
	assert.Len(t, site.Posts, 1)
	assert.Len(t, site.Projects, 1)
	assert.Len(t, site.ContentByType["page"], 1)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := model.ParseDate(s)
	require.True(t, ok)
	return d
}
