// Package content walks the content tree and turns Markdown files into
// model.Documents grouped by version.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/docfeed/internal/model"
)

// Options says where content lives.
type Options struct {
	// ContentDir holds the documents of the current version.
	ContentDir string
	// VersionsDir holds one sub-directory per older version. Optional.
	VersionsDir string
	// CurrentVersion names the partition loaded from ContentDir.
	CurrentVersion string
}

// Load reads every Markdown document under the configured directories. A
// missing ContentDir is not an error; the result then has no current
// partition.
func Load(opts Options) (*model.LoadedContent, error) {
	l := &loader{md: newMarkdown(), title: cases.Title(language.English)}
	loaded := &model.LoadedContent{}

	if isDir(opts.ContentDir) {
		p, err := l.loadPartition(opts.CurrentVersion, opts.ContentDir, "")
		if err != nil {
			return nil, err
		}
		loaded.Partitions = append(loaded.Partitions, p)
	} else {
		slog.Info("content: directory not found, no current documents", "dir", opts.ContentDir)
	}

	if opts.VersionsDir != "" && isDir(opts.VersionsDir) {
		entries, err := os.ReadDir(opts.VersionsDir)
		if err != nil {
			return nil, fmt.Errorf("read versions directory '%s': %w", opts.VersionsDir, err)
		}
		for _, e := range entries {
			if !e.IsDir() || e.Name() == opts.CurrentVersion {
				continue
			}
			p, err := l.loadPartition(e.Name(), filepath.Join(opts.VersionsDir, e.Name()), e.Name())
			if err != nil {
				return nil, err
			}
			loaded.Partitions = append(loaded.Partitions, p)
		}
	}
	return loaded, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
}

type loader struct {
	md    goldmark.Markdown
	title cases.Caser
}

func (l *loader) loadPartition(name, dir, prefix string) (*model.Partition, error) {
	p := &model.Partition{Name: name}
	err := filepath.WalkDir(dir, func(fpath string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", fpath, walkErr)
		}
		if d.IsDir() || !isMarkdown(d.Name()) {
			return nil
		}
		doc, err := l.loadDocument(dir, fpath, prefix)
		if err != nil {
			return err
		}
		doc.Version = name
		p.Docs = append(p.Docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load partition '%s': %w", name, err)
	}
	slog.Debug("content: partition loaded", "version", name, "dir", dir, "documents", len(p.Docs))
	return p, nil
}

func (l *loader) loadDocument(root, fpath, prefix string) (*model.Document, error) {
	raw, err := os.ReadFile(fpath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", fpath, err)
	}

	var fm map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		slog.Warn("content: could not parse front matter, treating as plain markdown", "path", fpath, "err", err)
		body = raw
		fm = nil
	}
	if fm == nil {
		fm = make(map[string]interface{})
	}

	var html bytes.Buffer
	if err := l.md.Convert(body, &html); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", fpath, err)
	}

	rel, err := filepath.Rel(root, fpath)
	if err != nil {
		return nil, fmt.Errorf("relative path for '%s': %w", fpath, err)
	}
	rel = filepath.ToSlash(rel)

	doc := &model.Document{
		Title:       l.documentTitle(fm, rel),
		Type:        documentType(fm, rel),
		SourcePath:  fpath,
		Permalink:   permalink(prefix, rel, fm),
		ContentHTML: template.HTML(html.String()),
		FrontMatter: fm,
	}
	if date, ok := model.ParseDate(fm["date"]); ok {
		doc.Date = date
	} else if _, present := fm["date"]; present {
		slog.Warn("content: unparseable date, use YYYY-MM-DD or RFC3339", "path", fpath, "date", fm["date"])
	}
	if s, ok := model.FrontMatterString(fm, "summary"); ok {
		doc.Summary = s
	} else if s, ok := model.FrontMatterString(fm, "description"); ok {
		doc.Summary = s
	}
	if s, ok := model.FrontMatterString(fm, "layout"); ok {
		doc.Layout = s
	}
	return doc, nil
}

// documentTitle prefers the front matter title and falls back to the file
// name, title cased.
func (l *loader) documentTitle(fm map[string]interface{}, rel string) string {
	if t, ok := model.FrontMatterString(fm, "title"); ok {
		return t
	}
	base := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	return l.title.String(strings.NewReplacer("-", " ", "_", " ").Replace(base))
}

// documentType is the top-level directory unless front matter overrides it.
func documentType(fm map[string]interface{}, rel string) string {
	if t, ok := model.FrontMatterString(fm, "type"); ok {
		return t
	}
	if dir := path.Dir(rel); dir != "." {
		return strings.Split(dir, "/")[0]
	}
	return "page"
}

// permalink builds "/<prefix>/<rel without extension>/". A slug in front
// matter replaces the last segment.
func permalink(prefix, rel string, fm map[string]interface{}) string {
	p := strings.TrimSuffix(rel, path.Ext(rel))
	if slug, ok := model.FrontMatterString(fm, "slug"); ok {
		p = path.Join(path.Dir(p), strings.Trim(slug, "/"))
	}
	p = path.Clean("/" + path.Join(prefix, p))
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

func isDir(p string) bool {
	if p == "" {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
