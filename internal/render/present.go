package render

import (
	"strings"

	"github.com/Bitlatte/docfeed/internal/model"
)

// Options controls how a feed is presented.
type Options struct {
	Heading       string
	EmptyMessage  string
	LinkLabel     string
	FallbackImage string
	BaseURL       string
	// Resolver maps an item's image reference to a displayable URL. When nil
	// references are used verbatim.
	Resolver ImageResolver
}

func DefaultOptions() Options {
	return Options{
		Heading:       "Latest Publications",
		EmptyMessage:  "No recent publications found.",
		LinkLabel:     "Read more",
		FallbackImage: "/img/fondo_principal.png",
	}
}

// Card is the display model for one feed item.
type Card struct {
	Key         string
	Title       string
	Description string
	Image       string
	Link        string
	LinkLabel   string
	Published   string
}

// Model is what the homepage template receives. Empty is set, with no cards,
// when there is nothing to show.
type Model struct {
	Heading string
	Empty   bool
	Message string
	Cards   []Card
}

// Present maps f into a Model, keeping feed order.
func Present(f model.Feed, opts Options) Model {
	m := Model{Heading: opts.Heading}
	if f.IsEmpty() {
		m.Empty = true
		m.Message = opts.EmptyMessage
		return m
	}

	items := f.Items()
	m.Cards = make([]Card, 0, len(items))
	for _, it := range items {
		m.Cards = append(m.Cards, Card{
			Key:         it.Permalink,
			Title:       it.Title,
			Description: it.Description,
			Image:       resolveImage(it.Image, opts),
			Link:        joinURL(opts.BaseURL, it.Permalink),
			LinkLabel:   opts.LinkLabel,
			Published:   it.PublishedAt.Format("2006-01-02"),
		})
	}
	return m
}

func resolveImage(ref string, opts Options) string {
	if opts.Resolver == nil {
		if ref != "" {
			return ref
		}
		return joinURL(opts.BaseURL, opts.FallbackImage)
	}
	if resolved, ok := opts.Resolver.Resolve(ref); ok {
		return resolved
	}
	return joinURL(opts.BaseURL, opts.FallbackImage)
}

// joinURL prefixes a site-rooted path with the base URL. Absolute URLs are
// returned unchanged.
func joinURL(base, p string) string {
	if isRemote(p) {
		return p
	}
	if base == "" {
		if !strings.HasPrefix(p, "/") {
			return "/" + p
		}
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
