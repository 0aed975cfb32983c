package folio

import (
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/folio-dev/folio/views"
)

// Target is one page the assembler can produce. The set of implementations
// is closed: IndexTarget, SectionTarget, ItemTarget, PageTarget,
// TagListTarget and TagDetailsTarget.
type Target interface {
	Path() string
	Kind() PageKind
	isTarget()
}

type IndexTarget struct{}

type SectionTarget struct{ Section Section }

type ItemTarget struct{ Item Item }

type PageTarget struct{ Page Page }

type TagListTarget struct{}

type TagDetailsTarget struct{ Tag Tag }

func (IndexTarget) Path() string        { return "/" }
func (t SectionTarget) Path() string    { return t.Section.Path() }
func (t ItemTarget) Path() string       { return t.Item.Path() }
func (t PageTarget) Path() string       { return "/" + t.Page.Path }
func (TagListTarget) Path() string      { return TagListPath }
func (t TagDetailsTarget) Path() string { return TagPath(t.Tag) }

func (IndexTarget) Kind() PageKind      { return KindIndex }
func (SectionTarget) Kind() PageKind    { return KindSection }
func (ItemTarget) Kind() PageKind       { return KindItem }
func (PageTarget) Kind() PageKind       { return KindPage }
func (TagListTarget) Kind() PageKind    { return KindTagList }
func (TagDetailsTarget) Kind() PageKind { return KindTagDetails }

func (IndexTarget) isTarget()      {}
func (SectionTarget) isTarget()    {}
func (ItemTarget) isTarget()       {}
func (PageTarget) isTarget()       {}
func (TagListTarget) isTarget()    {}
func (TagDetailsTarget) isTarget() {}

// staticPages maps a page path to the extra body block it gets. Pages at any
// other path render header and footer only.
var staticPages = map[string]func(*Assembler) templ.Component{
	"talks": (*Assembler).talks,
	"about": (*Assembler).aboutPage,
}

// Assembler turns targets into documents. It only reads its inputs, so one
// Assembler may be shared by concurrent renders.
type Assembler struct {
	site      SiteConfig
	content   *Content
	tags      *TagIndex
	redirects *Redirects
	bySection map[SectionID][]Item
}

// NewAssembler prepares an assembler over content. A nil tag index is built
// from content.Items.
func NewAssembler(site SiteConfig, content *Content, tags *TagIndex) *Assembler {
	site.setDefaults()
	if content == nil {
		content = &Content{}
	}
	if tags == nil {
		tags = BuildTagIndex(content.Items)
	}
	a := &Assembler{
		site:      site,
		content:   content,
		tags:      tags,
		redirects: NewRedirects(site.LegacySlugs),
		bySection: make(map[SectionID][]Item),
	}
	for _, item := range content.Items {
		a.bySection[item.Section] = append(a.bySection[item.Section], item)
	}
	for _, items := range a.bySection {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Date.After(items[j].Date)
		})
	}
	return a
}

// Site returns the finalized site configuration.
func (a *Assembler) Site() SiteConfig { return a.site }

// Assemble builds the document for t.
func (a *Assembler) Assemble(t Target) *Document {
	switch t := t.(type) {
	case IndexTarget:
		return a.index()
	case SectionTarget:
		return a.section(t.Section)
	case ItemTarget:
		return a.item(t.Item)
	case PageTarget:
		return a.page(t.Page)
	case TagListTarget:
		return a.tagList()
	case TagDetailsTarget:
		return a.tagDetails(t.Tag)
	}
	return a.NotFound("")
}

// NotFound builds the document served for unknown paths.
func (a *Assembler) NotFound(path string) *Document {
	d := a.newDocument(KindNotFound, Location{Path: path, Title: "Page not found"})
	d.add("header", a.header(""))
	d.add("not-found", views.NotFound("Nothing lives at "+path+"."))
	d.add("footer", a.footer())
	return d
}

func (a *Assembler) index() *Document {
	idx := a.content.Index
	d := a.newDocument(KindIndex, Location{
		Path:        "/",
		Title:       idx.Title,
		Description: idx.Description,
		ImagePath:   idx.ImagePath,
	})
	d.Head.JSONLD = WebsiteJsonLD(a.site)

	p := a.site.Profile
	name := p.Name
	if name == "" {
		name = a.site.Name
	}
	d.add("header", a.header(""))
	d.add("hero", views.HeroView(views.Hero{Name: name, Taglines: p.Taglines, Picture: p.Picture}))
	d.add("divider-about", views.Divider("about"))
	d.add("about", views.AboutView(views.About{Paragraphs: p.About, Social: socialViews(p.Social)}))
	d.add("divider-projects", views.Divider("projects"))
	d.add("projects", views.ProjectsView(projectViews(p.Projects)))
	d.add("footer", a.footer())
	return d
}

func (a *Assembler) section(s Section) *Document {
	s = a.sectionInfo(s)
	d := a.newDocument(KindSection, s.Location())
	d.add("header", a.header(s.ID))
	d.add("listing", views.Listing(s.Title, a.entries(a.bySection[s.ID], false)))
	d.add("footer", a.footer())
	return d
}

func (a *Assembler) item(item Item) *Document {
	d := a.newDocument(KindItem, item.Location())
	d.Head.OGType = "article"
	d.Head.JSONLD = BlogPostingJsonLD(item, a.site)
	d.add("header", a.header(item.Section))
	d.add("item", views.Article(a.entry(item, true)))
	d.add("footer", a.footer())
	return d
}

func (a *Assembler) page(p Page) *Document {
	d := a.newDocument(KindPage, p.Location())
	if target, ok := a.redirects.NeedsRedirect(p.Path); ok {
		d.Head.Refresh = target
	}
	d.add("header", a.header(""))
	if block, ok := staticPages[p.Path]; ok {
		d.add(p.Path, block(a))
	}
	d.add("footer", a.footer())
	return d
}

func (a *Assembler) tagList() *Document {
	d := a.newDocument(KindTagList, Location{Path: TagListPath, Title: "Tags"})
	tags := a.tags.AllTags()
	links := make([]views.TagLink, len(tags))
	for i, t := range tags {
		links[i] = tagLink(t)
	}
	d.add("header", a.header(""))
	d.add("tags", views.TagListView(links))
	d.add("footer", a.footer())
	return d
}

func (a *Assembler) tagDetails(t Tag) *Document {
	d := a.newDocument(KindTagDetails, Location{Path: TagPath(t), Title: string(t)})
	d.add("header", a.header(""))
	d.add("tag", views.TagDetailsView(string(t), TagListPath, a.entries(a.tags.ItemsForTag(t), false)))
	d.add("footer", a.footer())
	return d
}

func (a *Assembler) talks() templ.Component {
	talks := make([]views.Talk, len(a.content.Talks))
	for i, t := range a.content.Talks {
		talks[i] = views.Talk{
			Title:  t.Title,
			Date:   FormatDate(t.Date),
			Event:  t.Event,
			Video:  t.Video,
			Slides: t.Slides,
			Audio:  t.Audio,
			Image:  imageURL(t.Image),
		}
	}
	return views.TalksView(talks)
}

func (a *Assembler) aboutPage() templ.Component {
	p := a.site.Profile.AboutPage
	title := p.Title
	if title == "" {
		title = "About"
	}
	return views.AboutPageView(views.AboutPage{
		Title:      title,
		Paragraphs: p.Paragraphs,
		Email:      p.Email,
		Pictures:   p.Pictures,
	})
}

func (a *Assembler) newDocument(kind PageKind, loc Location) *Document {
	meta := ResolveMetadata(loc, a.site)
	d := &Document{
		Kind: kind,
		Path: loc.Path,
		Lang: a.site.Language,
		Meta: meta,
		Head: views.HeadData{
			SiteName:      a.site.Name,
			Author:        a.site.Author,
			TwitterHandle: a.site.TwitterHandle,
			Title:         meta.Title,
			Description:   meta.Description,
			URL:           meta.URL,
			OGType:        "website",
			LargeImage:    meta.LargeImage,
			Stylesheets:   a.site.Stylesheets,
			Preconnect:    a.site.Preconnect,
			FontURLs:      a.site.FontURLs,
			TouchIcon:     a.site.TouchIconPath,
			Favicon:       a.site.FaviconPath,
			RSSURL:        a.site.RSSFeedPath,
			RSSTitle:      a.site.RSSTitle,
		},
	}
	if meta.ImagePath != "" {
		d.Head.ImageURL = AbsoluteURL(a.site.URL, meta.ImagePath)
	}
	return d
}

// header renders the site header. Navigation is only emitted when more than
// one section is declared.
func (a *Assembler) header(selected SectionID) templ.Component {
	h := views.HeaderData{SiteName: a.site.Name}
	if len(a.site.Sections) > 1 {
		h.Nav = append(h.Nav, views.NavLink{Text: "home", URL: "/"})
		for _, s := range a.site.Sections {
			s = a.sectionInfo(s)
			h.Nav = append(h.Nav, views.NavLink{
				Text:     strings.ToLower(s.Title),
				URL:      s.Path(),
				Selected: s.ID == selected,
			})
		}
	}
	return views.Header(h)
}

func (a *Assembler) footer() templ.Component {
	owner := a.site.Author
	if owner == "" {
		owner = a.site.Name
	}
	year := strconv.Itoa(a.site.Now().Year())
	links := make([]views.Link, len(a.site.Profile.FooterLinks))
	for i, l := range a.site.Profile.FooterLinks {
		links[i] = views.Link{Text: l.Text, URL: l.URL, External: l.External}
	}
	return views.FooterView(views.Footer{
		Copyright: "Copyright © " + owner + ". " + year + ".",
		Links:     links,
	})
}

// sectionInfo merges content-provided metadata into a declared section and
// derives a title from the id when none is set.
func (a *Assembler) sectionInfo(s Section) Section {
	if meta, ok := a.content.SectionMeta[s.ID]; ok {
		if meta.Title != "" {
			s.Title = meta.Title
		}
		if meta.Description != "" {
			s.Description = meta.Description
		}
	}
	if s.Title == "" {
		s.Title = cases.Title(language.English).String(string(s.ID))
	}
	return s
}

func (a *Assembler) entries(items []Item, full bool) []views.Entry {
	out := make([]views.Entry, len(items))
	for i, item := range items {
		out[i] = a.entry(item, full)
	}
	return out
}

func (a *Assembler) entry(item Item, full bool) views.Entry {
	tags := make([]views.TagLink, len(item.Tags))
	for i, t := range item.Tags {
		tags[i] = tagLink(t)
	}
	content := item.Description
	if full {
		content = item.Body
	}
	return views.Entry{
		Title:   item.Title,
		URL:     item.Path(),
		Tags:    tags,
		Date:    FormatDate(item.Date),
		Content: content,
	}
}

func tagLink(t Tag) views.TagLink {
	return views.TagLink{Text: string(t), URL: TagPath(t)}
}

func socialViews(links []SocialLink) []views.SocialLink {
	out := make([]views.SocialLink, len(links))
	for i, l := range links {
		out[i] = views.SocialLink{Name: l.Name, URL: l.URL, Text: l.Text}
	}
	return out
}

func projectViews(projects []Project) []views.Project {
	out := make([]views.Project, len(projects))
	for i, p := range projects {
		out[i] = views.Project{
			Title:       p.Title,
			Description: p.Description,
			ImageURL:    imageURL(p.Image),
			Link:        p.Link,
			LinkBadge:   imageURL(p.Badge),
		}
	}
	return out
}

// imageURL maps a bare image file name to /images/<name>. Paths and absolute
// URLs are returned unchanged.
func imageURL(name string) string {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "://") {
		return name
	}
	return "/images/" + name
}
