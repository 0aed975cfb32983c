package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/folio-dev/folio"
)

// settings are the build and serve options that vary per checkout, as
// opposed to the compiled-in site identity.
type settings struct {
	Name     string `mapstructure:"name"`
	Author   string `mapstructure:"author"`
	BaseURL  string `mapstructure:"baseURL"`
	RSSTitle string `mapstructure:"rssTitle"`

	ContentDir    string        `mapstructure:"contentDir"`
	StaticDir     string        `mapstructure:"staticDir"`
	OutputDir     string        `mapstructure:"outputDir"`
	TalksFile     string        `mapstructure:"talksFile"`
	Database      string        `mapstructure:"database"`
	Addr          string        `mapstructure:"addr"`
	CacheTTL      time.Duration `mapstructure:"cacheTTL"`
	Workers       int           `mapstructure:"workers"`
	MaxImageWidth int           `mapstructure:"maxImageWidth"`
	Verbose       bool          `mapstructure:"verbose"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("contentDir", "content")
	v.SetDefault("staticDir", "static")
	v.SetDefault("outputDir", "public")
	v.SetDefault("addr", ":3000")
	v.SetDefault("cacheTTL", 5*time.Minute)
	v.SetDefault("workers", 4)
	v.SetDefault("maxImageWidth", 1600)

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadSettings reads cfgFile, or folio.yaml from the working directory when
// cfgFile is empty. A missing default file is not an error.
func loadSettings(v *viper.Viper, cfgFile string) (settings, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// siteConfig applies s on top of the compiled-in site.
func (s settings) siteConfig() folio.SiteConfig {
	site := defaultSite()
	if s.Name != "" {
		site.Name = s.Name
		site.Profile.Name = s.Name
	}
	if s.Author != "" {
		site.Author = s.Author
	}
	if s.BaseURL != "" {
		site.URL = strings.TrimSuffix(s.BaseURL, "/")
	}
	if s.RSSTitle != "" {
		site.RSSTitle = s.RSSTitle
	}
	site.ContentDir = s.ContentDir
	site.StaticDir = s.StaticDir
	site.OutputDir = s.OutputDir
	site.TalksFile = s.TalksFile
	site.Addr = s.Addr
	site.CacheTTL = s.CacheTTL
	site.Workers = s.Workers
	site.MaxImageWidth = s.MaxImageWidth
	return site
}

// source picks the SQLite store when a database is configured and the
// markdown tree otherwise.
func (s settings) source(site folio.SiteConfig, logger *log.Logger) (folio.ContentSource, error) {
	if s.Database == "" {
		return &folio.DirSource{Root: site.ContentDir, Sections: site.Sections, Logger: logger}, nil
	}
	store, err := folio.NewStore(s.Database)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Database, err)
	}
	return store, nil
}
