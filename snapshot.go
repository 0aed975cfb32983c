package folio

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Snapshot is one immutable view of the site: loaded content, its tag index
// and the assembler over both, plus every target the site publishes.
type Snapshot struct {
	Content   *Content
	Tags      *TagIndex
	Assembler *Assembler
	Loaded    time.Time

	targets []Target
	byPath  map[string]Target
}

// LoadSnapshot loads content from src, attaches talks and indexes the result.
func LoadSnapshot(ctx context.Context, site SiteConfig, src ContentSource, talks *TalksProvider) (*Snapshot, error) {
	content, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if talks != nil {
		content.Talks = talks.Talks()
	}
	return NewSnapshot(site, content), nil
}

// NewSnapshot indexes content and enumerates the site's targets. When two
// targets share a path the first registered wins; pages are registered
// before sections and tags so a page always beats a listing at its path.
func NewSnapshot(site SiteConfig, content *Content) *Snapshot {
	site.setDefaults()
	if content == nil {
		content = &Content{}
	}
	tags := BuildTagIndex(content.Items)
	s := &Snapshot{
		Content:   content,
		Tags:      tags,
		Assembler: NewAssembler(site, content, tags),
		Loaded:    site.Now(),
		byPath:    make(map[string]Target),
	}

	s.add(IndexTarget{})
	for _, p := range content.Pages {
		if p.Path != "" {
			s.add(PageTarget{Page: p})
		}
	}
	// Legacy slugs without content still get a page so the old URL
	// refreshes to its new location.
	for _, slug := range site.LegacySlugs {
		s.add(PageTarget{Page: Page{Path: slug}})
	}
	for _, sec := range site.Sections {
		s.add(SectionTarget{Section: sec})
	}
	for _, item := range content.Items {
		if _, ok := site.Section(item.Section); ok {
			s.add(ItemTarget{Item: item})
		}
	}
	s.add(TagListTarget{})
	for _, t := range tags.AllTags() {
		s.add(TagDetailsTarget{Tag: t})
	}
	return s
}

func (s *Snapshot) add(t Target) {
	p := NormalizePath(t.Path())
	if _, taken := s.byPath[p]; taken {
		return
	}
	s.byPath[p] = t
	s.targets = append(s.targets, t)
}

// Targets returns every target in registration order.
func (s *Snapshot) Targets() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// Lookup finds the target served at path. Trailing slashes and a trailing
// index.html are ignored.
func (s *Snapshot) Lookup(path string) (Target, bool) {
	t, ok := s.byPath[NormalizePath(path)]
	return t, ok
}

// NormalizePath maps request and file paths onto target paths:
// "/blog/x/", "/blog/x/index.html" and "blog/x" all become "/blog/x".
// Escaped paths are decoded so "/tags/%3F" and "/tags/?" meet.
func NormalizePath(p string) string {
	if u, err := url.PathUnescape(p); err == nil {
		p = u
	}
	if p == "index.html" || strings.HasSuffix(p, "/index.html") {
		p = strings.TrimSuffix(p, "index.html")
	}
	p = strings.Trim(p, "/")
	return "/" + p
}

// OutputPath returns the file a target is written to, relative to the
// output directory: "index.html" for the root, "<path>/index.html" otherwise.
func OutputPath(t Target) string {
	p := strings.Trim(NormalizePath(t.Path()), "/")
	if p == "" {
		return "index.html"
	}
	return p + "/index.html"
}
