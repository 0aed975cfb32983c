package views

// These types mirror the folio domain types so views never import the root
// package.

// HeadData carries everything the <head> fragment prints.
type HeadData struct {
	SiteName      string
	Author        string
	TwitterHandle string

	Title       string
	Description string
	URL         string // canonical
	OGType      string // "website" or "article"
	ImageURL    string // absolute; empty omits social image tags
	LargeImage  bool
	Refresh     string // client-side redirect target, empty for none

	Stylesheets []string
	Preconnect  []string
	FontURLs    []string
	TouchIcon   string
	Favicon     string
	RSSURL      string
	RSSTitle    string
	JSONLD      string
}

// NavLink is one navigation entry in the header.
type NavLink struct {
	Text     string
	URL      string
	Selected bool
}

// HeaderData configures the page header. A nil Nav renders no navigation.
type HeaderData struct {
	SiteName string
	Nav      []NavLink
}

// TagLink is a tag rendered as a link to its detail page.
type TagLink struct {
	Text string
	URL  string
}

// Entry is one item in a listing or the single-item view. Content is
// markdown: the description in listings, the body in the item view.
type Entry struct {
	Title   string
	URL     string
	Tags    []TagLink
	Date    string
	Content string
}

// Hero is the index page introduction.
type Hero struct {
	Name     string
	Taglines []string
	Picture  string
}

// SocialLink is one contact link in the about section.
type SocialLink struct {
	Name string
	URL  string
	Text string
}

// About is the index page about section.
type About struct {
	Paragraphs []string // markdown
	Social     []SocialLink
}

// Project is one portfolio entry.
type Project struct {
	Title       string
	Description string
	ImageURL    string
	Link        string
	LinkBadge   string
}

// Talk is one talk on the talks page.
type Talk struct {
	Title  string
	Date   string
	Event  string
	Video  string
	Slides string
	Audio  string
	Image  string
}

// AboutPage is the "about" static page.
type AboutPage struct {
	Title      string
	Paragraphs []string // markdown
	Email      string
	Pictures   []string
}

// Link is a footer link.
type Link struct {
	Text     string
	URL      string
	External bool
}

// Footer is the page footer.
type Footer struct {
	Copyright string
	Links     []Link
}
