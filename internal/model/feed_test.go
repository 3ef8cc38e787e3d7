package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeed_ZeroValueIsEmpty(t *testing.T) {
	var f Feed
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Len())
	assert.Nil(t, f.Items())
}

func TestFeed_CopiesOnTheWayInAndOut(t *testing.T) {
	src := []FeedItem{{Title: "A", Permalink: "/a/"}, {Title: "B", Permalink: "/b/"}}
	f := NewFeed(src)

	src[0].Title = "changed"
	items := f.Items()
	assert.Equal(t, "A", items[0].Title)

	items[1].Title = "changed"
	assert.Equal(t, "B", f.Items()[1].Title)
	assert.Equal(t, 2, f.Len())
}

func TestLoadedContent_Partition(t *testing.T) {
	var nilContent *LoadedContent
	_, ok := nilContent.Partition("current")
	assert.False(t, ok)
	assert.Nil(t, nilContent.Documents())

	c := &LoadedContent{Partitions: []*Partition{
		{Name: "1.0", Docs: []*Document{{Title: "old"}}},
		nil,
		{Name: "current", Docs: []*Document{{Title: "new"}}},
	}}
	p, ok := c.Partition("current")
	assert.True(t, ok)
	assert.Equal(t, "new", p.Docs[0].Title)

	_, ok = c.Partition("2.0")
	assert.False(t, ok)
	assert.Len(t, c.Documents(), 2)
}
