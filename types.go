package folio

import (
	"errors"
	"fmt"
	"time"
)

// SectionID names a top-level content grouping such as "blog".
type SectionID string

// Tag is a free-text label attached to items. Tags compare and sort by their
// exact string value.
type Tag string

// String returns the tag text.
func (t Tag) String() string { return string(t) }

// Slug returns the URL segment used for the tag's detail page.
func (t Tag) Slug() string { return Slugify(string(t)) }

// Item is a dated, tagged content entry (a blog post). Body and Description
// hold markdown source; they are rendered during assembly.
type Item struct {
	Title       string
	Description string
	Body        string
	Date        time.Time
	Tags        []Tag
	Section     SectionID
	Slug        string
	ImagePath   string
}

// Path returns the item's URL path, e.g. "/blog/graphql-ios-swift".
func (i Item) Path() string {
	return "/" + string(i.Section) + "/" + i.Slug
}

// Location returns the metadata-bearing view of the item.
func (i Item) Location() Location {
	return Location{Path: i.Path(), Title: i.Title, Description: i.Description, ImagePath: i.ImagePath}
}

// HasTag reports whether the item carries tag t.
func (i Item) HasTag(t Tag) bool {
	for _, tag := range i.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// Page is an undated, untagged static content entry. Path is the bare
// slug ("about", "talks") the static page dispatch matches against.
type Page struct {
	Path        string
	Title       string
	Description string
	Body        string
	ImagePath   string
}

// Location returns the metadata-bearing view of the page.
func (p Page) Location() Location {
	return Location{Path: "/" + p.Path, Title: p.Title, Description: p.Description, ImagePath: p.ImagePath}
}

// Talk is a conference talk record loaded from the talks file.
type Talk struct {
	Date   time.Time `yaml:"date"`
	Title  string    `yaml:"title"`
	Event  string    `yaml:"event"`
	Video  string    `yaml:"video,omitempty"`
	Slides string    `yaml:"slides,omitempty"`
	Audio  string    `yaml:"audio,omitempty"`
	Image  string    `yaml:"image,omitempty"`
}

func (t Talk) validate() error {
	switch {
	case t.Date.IsZero():
		return errors.New("missing date")
	case t.Title == "":
		return errors.New("missing title")
	case t.Event == "":
		return errors.New("missing event")
	}
	return nil
}

// Project is a portfolio entry shown on the index page.
type Project struct {
	Title       string
	Description string
	Image       string // file name under /images/
	Link        string // optional store or product URL
	Badge       string // image shown on the link (default the App Store badge)
}

// Section is a declared top-level grouping with its own listing page.
type Section struct {
	ID          SectionID
	Title       string
	Description string
}

// Path returns the section listing path, e.g. "/blog".
func (s Section) Path() string { return "/" + string(s.ID) }

// Location returns the metadata-bearing view of the section.
func (s Section) Location() Location {
	return Location{Path: s.Path(), Title: s.Title, Description: s.Description}
}

// Location is anything that can be given head metadata: the site root, a
// section, an item, a page or a tag page.
type Location struct {
	Path        string
	Title       string
	Description string
	ImagePath   string
}

// Content is everything the content store provides for one build.
type Content struct {
	Index Page // site root metadata; Path is ignored
	Items []Item
	Pages []Page
	Talks []Talk

	// SectionMeta overrides section titles and descriptions, keyed by ID.
	SectionMeta map[SectionID]Section
}

// Page returns the page at path, if any.
func (c *Content) Page(path string) (Page, bool) {
	for _, p := range c.Pages {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

// SocialLink is one entry of the about section's contact row.
type SocialLink struct {
	Name string // icon name, rendered as /images/<name>.svg
	URL  string
	Text string
}

// Link is a plain labelled hyperlink.
type Link struct {
	Text     string
	URL      string
	External bool
}

// AboutPage is the content of the "about" static page.
type AboutPage struct {
	Title      string
	Paragraphs []string // markdown
	Email      string
	Pictures   []string
}

// Profile is the portfolio content compiled into the site: hero, about
// section, projects and the about page.
type Profile struct {
	Name        string
	Taglines    []string
	Picture     string
	About       []string // markdown paragraphs
	Social      []SocialLink
	Projects    []Project
	AboutPage   AboutPage
	FooterLinks []Link
}

// Validate checks the invariants of compiled-in profile data.
func (p Profile) Validate() error {
	for i, pr := range p.Projects {
		switch {
		case pr.Title == "":
			return fmt.Errorf("folio: project %d: missing title", i)
		case pr.Description == "":
			return fmt.Errorf("folio: project %q: missing description", pr.Title)
		case pr.Image == "":
			return fmt.Errorf("folio: project %q: missing image", pr.Title)
		}
	}
	return nil
}
