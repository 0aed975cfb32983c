package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the medium calendar format used for item and talk dates.
const DateLayout = "Jan 2, 2006"

// Slugify converts a title or tag to a URL-safe slug. Letters and digits
// from any script are kept; every other run of runes becomes one '-'.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsoluteURL resolves a site-relative file path (an image, a feed) against
// the base URL without adding a trailing slash. Absolute URLs pass through.
func AbsoluteURL(base, p string) string {
	if ref, err := url.Parse(p); err == nil && ref.IsAbs() {
		return p
	}
	u, err := url.Parse(base)
	if err != nil {
		return p
	}
	u.Path = path.Join("/", u.Path, p)
	return u.String()
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// TagPath returns the detail page path for tag t. Tags made only of
// punctuation have no slug and fall back to their escaped text.
func TagPath(t Tag) string {
	if slug := t.Slug(); slug != "" {
		return "/tags/" + slug
	}
	return "/tags/" + url.PathEscape(strings.TrimSpace(string(t)))
}

// TagListPath is the path of the page listing every tag.
const TagListPath = "/tags"

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(item Item, cfg SiteConfig) string {
	itemURL := BuildURL(cfg.URL, item.Path())
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      item.Title,
		"description":   item.Description,
		"datePublished": item.Date.Format("2006-01-02"),
		"url":           itemURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   itemURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if len(item.Tags) > 0 {
		tags := make([]string, len(item.Tags))
		for i, t := range item.Tags {
			tags[i] = string(t)
		}
		data["keywords"] = strings.Join(tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
