package model

import (
	"strings"
	"time"
)

// dateFormats are tried in order when a date arrives as a string.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FrontMatterString returns the trimmed string value of key. ok is false when
// the map is nil, the key is absent, the value is not a string or it is blank.
func FrontMatterString(fm map[string]interface{}, key string) (string, bool) {
	if fm == nil {
		return "", false
	}
	s, isString := fm[key].(string)
	if !isString {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// ParseDate converts a front matter date value into a time. YAML and TOML
// decoders may already hand over a time.Time; strings are tried against the
// supported layouts.
func ParseDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateFormats {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
