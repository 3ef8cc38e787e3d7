package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/feed.html
var sectionSource string

var sectionTemplate = template.Must(template.New("feed.html").Parse(sectionSource))

// FeedSection writes the default HTML fragment for m.
func FeedSection(w io.Writer, m Model) error {
	if err := sectionTemplate.Execute(w, m); err != nil {
		return fmt.Errorf("render feed section: %w", err)
	}
	return nil
}

// SectionHTML is FeedSection for use as a template function.
func SectionHTML(m Model) (template.HTML, error) {
	var buf bytes.Buffer
	if err := FeedSection(&buf, m); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
