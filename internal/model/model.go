package model

import (
	"html/template"
	"time"
)

// Document represents a single loaded piece of content (doc page, blog post, project page).
type Document struct {
	Title       string
	Date        time.Time
	Type        string
	Version     string
	SourcePath  string
	Permalink   string
	ContentHTML template.HTML
	FrontMatter map[string]interface{}
	Summary     string
	Layout      string
}

// Partition is one versioned instance of the content set.
type Partition struct {
	Name string
	Docs []*Document
}

// LoadedContent is everything the content loader produced for one cycle.
type LoadedContent struct {
	Partitions []*Partition
}

// Partition returns the partition with the given name. A nil LoadedContent has none.
func (c *LoadedContent) Partition(name string) (*Partition, bool) {
	if c == nil {
		return nil, false
	}
	for _, p := range c.Partitions {
		if p != nil && p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Documents returns the documents of every partition, in load order.
func (c *LoadedContent) Documents() []*Document {
	if c == nil {
		return nil
	}
	var docs []*Document
	for _, p := range c.Partitions {
		if p == nil {
			continue
		}
		docs = append(docs, p.Docs...)
	}
	return docs
}

// SiteData holds all site-wide data, including configuration and content.
type SiteData struct {
	Params        map[string]interface{}
	Documents     []*Document
	Posts         []*Document
	Projects      []*Document
	ContentByType map[string][]*Document
}
