package model

import "time"

// FeedItem is one entry of the latest-publications feed.
type FeedItem struct {
	Title       string
	Permalink   string
	PublishedAt time.Time
	Description string
	Image       string
}

// Feed is an ordered, immutable snapshot of feed items. The zero value is the
// empty feed.
type Feed struct {
	items []FeedItem
}

// NewFeed returns a Feed holding a copy of items in the given order.
func NewFeed(items []FeedItem) Feed {
	if len(items) == 0 {
		return Feed{}
	}
	cp := make([]FeedItem, len(items))
	copy(cp, items)
	return Feed{items: cp}
}

// Items returns a copy of the feed items.
func (f Feed) Items() []FeedItem {
	if len(f.items) == 0 {
		return nil
	}
	cp := make([]FeedItem, len(f.items))
	copy(cp, f.items)
	return cp
}

func (f Feed) Len() int { return len(f.items) }

func (f Feed) IsEmpty() bool { return len(f.items) == 0 }
