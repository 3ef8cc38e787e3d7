package model

// PageData is the template context for a single document page.
type PageData struct {
	SiteTitle string
	BaseURL   string
	Site      *SiteData
	Item      *Document
}
