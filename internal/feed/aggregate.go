package feed

import (
	"sort"

	"github.com/Bitlatte/docfeed/internal/model"
)

const (
	// DefaultLimit is how many items the homepage shows.
	DefaultLimit = 3

	// GlobalDataKey is the store key the feed is published under.
	GlobalDataKey = "docs-global-data"

	// CurrentVersion names the partition the feed is built from.
	CurrentVersion = "current"
)

// Aggregate returns the newest eligible documents as a Feed of at most limit
// items. Documents sharing a date keep their input order. records is not
// modified.
func Aggregate(records []*model.Document, limit int) model.Feed {
	if limit <= 0 || len(records) == 0 {
		return model.Feed{}
	}

	items := make([]model.FeedItem, 0, len(records))
	for _, rec := range records {
		if item, ok := toItem(rec); ok {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return model.NewFeed(items)
}

// FromContent aggregates the named partition. Missing content or a missing
// partition gives the empty feed.
func FromContent(loaded *model.LoadedContent, version string, limit int) model.Feed {
	p, ok := loaded.Partition(version)
	if !ok {
		return model.Feed{}
	}
	return Aggregate(p.Docs, limit)
}

// toItem maps an eligible document to a feed item.
func toItem(rec *model.Document) (model.FeedItem, bool) {
	if rec == nil || rec.FrontMatter == nil {
		return model.FeedItem{}, false
	}
	if rec.Title == "" {
		return model.FeedItem{}, false
	}
	published, ok := model.ParseDate(rec.FrontMatter["date"])
	if !ok {
		return model.FeedItem{}, false
	}
	description, ok := model.FrontMatterString(rec.FrontMatter, "description")
	if !ok {
		return model.FeedItem{}, false
	}
	image, ok := model.FrontMatterString(rec.FrontMatter, "image")
	if !ok {
		return model.FeedItem{}, false
	}
	return model.FeedItem{
		Title:       rec.Title,
		Permalink:   rec.Permalink,
		PublishedAt: published,
		Description: description,
		Image:       image,
	}, true
}
