package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrontMatterString(t *testing.T) {
	fm := map[string]interface{}{
		"description": "  hello  ",
		"image":       "",
		"blank":       "   ",
		"count":       3,
	}

	s, ok := FrontMatterString(fm, "description")
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	for _, key := range []string{"image", "blank", "count", "missing"} {
		_, ok := FrontMatterString(fm, key)
		assert.False(t, ok, key)
	}

	_, ok = FrontMatterString(nil, "description")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	got, ok := ParseDate("2024-03-01")
	assert.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = ParseDate("2024-03-01T00:00:00Z")
	assert.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = ParseDate("2024-03-01 10:30:00")
	assert.True(t, ok)
	assert.Equal(t, 10, got.Hour())

	got, ok = ParseDate(want)
	assert.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = ParseDate(&want)
	assert.True(t, ok)
	assert.True(t, want.Equal(got))
}

func TestParseDate_Rejects(t *testing.T) {
	var nilTime *time.Time
	for _, v := range []interface{}{nil, "", "  ", "yesterday", "01/03/2024", 20240301, time.Time{}, nilTime} {
		_, ok := ParseDate(v)
		assert.False(t, ok, "%#v", v)
	}
}
