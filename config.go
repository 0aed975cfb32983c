package folio

import (
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name, appended to every page title
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Fallback description for meta tags
	Language    string // html lang attribute (default "en")
	ImagePath   string // Fallback social image, site-relative
	Author      string // Author name for meta and JSON-LD

	TwitterHandle  string   // twitter:site, e.g. "@fassko"
	TitleSeparator string   // Between page title and site name (default " | ")
	Stylesheets    []string // default ["/styles.css"]
	RSSFeedPath    string   // Empty disables the feed link
	RSSTitle       string   // Feed link title (default "Subscribe to <Name>")
	FaviconPath    string
	TouchIconPath  string
	FontURLs       []string // Web font stylesheets
	Preconnect     []string // Origins to preconnect to, e.g. https://fonts.gstatic.com

	Sections    []Section // Navigation order
	LegacySlugs []string  // default LegacySlugs
	Profile     Profile

	// Now is used for the footer copyright year. Defaults to time.Now.
	Now func() time.Time

	ContentDir    string        // default "content"
	TalksFile     string        // default "<ContentDir>/talks.yml"
	StaticDir     string        // default "static"
	OutputDir     string        // default "public"
	Addr          string        // Preview listen address (default ":3000")
	CacheTTL      time.Duration // Preview snapshot TTL (default 5min)
	Workers       int           // Build render workers (default 4)
	MaxImageWidth int           // Images wider than this are scaled down (default 1600)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Folio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.TitleSeparator == "" {
		c.TitleSeparator = " | "
	}
	if c.Stylesheets == nil {
		c.Stylesheets = []string{"/styles.css"}
	}
	if c.LegacySlugs == nil {
		c.LegacySlugs = LegacySlugs
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.TalksFile == "" {
		c.TalksFile = c.ContentDir + "/talks.yml"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.MaxImageWidth <= 0 {
		c.MaxImageWidth = 1600
	}
}

// Validate reports configuration errors that would make every page wrong.
func (c *SiteConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("folio: site name is required")
	}
	seen := make(map[SectionID]bool, len(c.Sections))
	for _, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("folio: section with empty id")
		}
		if seen[s.ID] {
			return fmt.Errorf("folio: duplicate section %q", s.ID)
		}
		seen[s.ID] = true
	}
	return c.Profile.Validate()
}

// Section returns the declared section with the given id.
func (c *SiteConfig) Section(id SectionID) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "static").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// NewLogger returns the logger shared by the builder, the talks loader and
// the preview server.
func NewLogger(verbose bool) *log.Logger {
	l := log.New("folio")
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	if verbose {
		l.SetLevel(log.DEBUG)
	} else {
		l.SetLevel(log.INFO)
	}
	return l
}
