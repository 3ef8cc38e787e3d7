package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "siteTitle: Revista ITR\n"))
	require.NoError(t, err)

	assert.Equal(t, "Revista ITR", cfg.SiteTitle)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Feed.Limit)
	assert.Equal(t, "docs-global-data", cfg.Feed.Key)
	assert.Equal(t, "current", cfg.Feed.Version)
	assert.Equal(t, "/img/fondo_principal.png", cfg.Feed.FallbackImage)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
outputDir: build
baseURL: https://example.org/revista/
feed:
  limit: 5
  heading: Últimas Publicaciones
`))
	require.NoError(t, err)

	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, "https://example.org/revista/", cfg.BaseURL)
	assert.Equal(t, 5, cfg.Feed.Limit)
	assert.Equal(t, "Últimas Publicaciones", cfg.Feed.Heading)
	assert.Equal(t, "Read more", cfg.Feed.LinkLabel)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DOCFEED_FEED_LIMIT", "1")
	t.Setenv("DOCFEED_SITETITLE", "From env")

	cfg, err := Load(writeConfig(t, "siteTitle: From file\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Feed.Limit)
	assert.Equal(t, "From env", cfg.SiteTitle)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_NegativeLimit(t *testing.T) {
	_, err := Load(writeConfig(t, "feed:\n  limit: -2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed.limit")
}
