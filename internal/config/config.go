// Package config resolves docfeed settings from config.yaml, DOCFEED_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. DOCFEED_FEED_LIMIT.
const EnvPrefix = "DOCFEED"

type Config struct {
	SiteTitle   string     `mapstructure:"siteTitle"`
	OutputDir   string     `mapstructure:"outputDir"`
	BaseURL     string     `mapstructure:"baseURL"`
	ContentDir  string     `mapstructure:"contentDir"`
	VersionsDir string     `mapstructure:"versionsDir"`
	LayoutsDir  string     `mapstructure:"layoutsDir"`
	StaticDir   string     `mapstructure:"staticDir"`
	LogLevel    string     `mapstructure:"logLevel"`
	Feed        FeedConfig `mapstructure:"feed"`
}

// FeedConfig controls the homepage's latest-publications section.
type FeedConfig struct {
	Limit         int    `mapstructure:"limit"`
	Key           string `mapstructure:"key"`
	Version       string `mapstructure:"version"`
	ImageDir      string `mapstructure:"imageDir"`
	FallbackImage string `mapstructure:"fallbackImage"`
	Heading       string `mapstructure:"heading"`
	EmptyMessage  string `mapstructure:"emptyMessage"`
	LinkLabel     string `mapstructure:"linkLabel"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("siteTitle", "My Documentation Site")
	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "")
	v.SetDefault("contentDir", "content")
	v.SetDefault("versionsDir", "versioned_content")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")
	v.SetDefault("logLevel", "info")

	v.SetDefault("feed.limit", 3)
	v.SetDefault("feed.key", "docs-global-data")
	v.SetDefault("feed.version", "current")
	v.SetDefault("feed.imageDir", "img")
	v.SetDefault("feed.fallbackImage", "/img/fondo_principal.png")
	v.SetDefault("feed.heading", "Latest Publications")
	v.SetDefault("feed.emptyMessage", "No recent publications found.")
	v.SetDefault("feed.linkLabel", "Read more")
}

// Load reads cfgFile, or ./config.yaml when cfgFile is empty. A missing
// default file is fine; a missing explicit file is an error.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && cfgFile == "":
			slog.Info("config: no config file found, using defaults and environment")
		case cfgFile != "":
			return Config{}, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		default:
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		slog.Info("config: using config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the build cannot work with.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("config: outputDir must not be empty")
	}
	if c.Feed.Limit < 0 {
		return fmt.Errorf("config: feed.limit must not be negative, got %d", c.Feed.Limit)
	}
	if c.Feed.Key == "" {
		return errors.New("config: feed.key must not be empty")
	}
	if c.Feed.Version == "" {
		return errors.New("config: feed.version must not be empty")
	}
	return nil
}
