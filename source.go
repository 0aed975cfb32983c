package folio

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/labstack/gommon/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentSource provides the content for one snapshot of the site.
type ContentSource interface {
	Load(ctx context.Context) (*Content, error)
}

// dateLayouts are tried in order for front matter dates.
var dateLayouts = []string{
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DirSource loads content from a directory of markdown files with YAML
// front matter:
//
//	index.md              site root metadata
//	<slug>.md             page
//	<section>/index.md    section metadata
//	<section>/<slug>.md   item
//
// Items in directories that are not declared sections are skipped.
type DirSource struct {
	Root     string
	Sections []Section
	Logger   *log.Logger
}

var _ ContentSource = (*DirSource)(nil)

// Load walks Root and parses every markdown file.
func (s *DirSource) Load(ctx context.Context) (*Content, error) {
	declared := make(map[SectionID]bool, len(s.Sections))
	for _, sec := range s.Sections {
		declared[sec.ID] = true
	}
	content := &Content{SectionMeta: make(map[SectionID]Section)}
	skipped := make(map[SectionID]bool)

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))

		doc, err := readDocument(path, d)
		if err != nil {
			return fmt.Errorf("folio: load %s: %w", rel, err)
		}

		parts := strings.SplitN(rel, "/", 2)
		if len(parts) == 1 {
			if rel == "index" {
				content.Index = doc.page("")
				return nil
			}
			p := doc.page(rel)
			if p.Title == "" {
				p.Title = titleFromName(rel)
			}
			content.Pages = append(content.Pages, p)
			return nil
		}

		section, slug := SectionID(parts[0]), parts[1]
		if !declared[section] {
			if !skipped[section] && s.Logger != nil {
				s.Logger.Warnf("content: skipping %q, not a declared section", section)
			}
			skipped[section] = true
			return nil
		}
		if slug == "index" {
			content.SectionMeta[section] = Section{ID: section, Title: doc.title, Description: doc.description}
			return nil
		}
		item := Item{
			Title:       doc.title,
			Description: doc.description,
			Body:        doc.body,
			Date:        doc.date,
			Tags:        doc.tags,
			Section:     section,
			Slug:        slug,
			ImagePath:   doc.image,
		}
		if item.Title == "" {
			item.Title = titleFromName(slug)
		}
		content.Items = append(content.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Debugf("content: %d items, %d pages from %s", len(content.Items), len(content.Pages), s.Root)
	}
	return content, nil
}

type document struct {
	title       string
	description string
	image       string
	date        time.Time
	tags        []Tag
	body        string
}

func (d document) page(path string) Page {
	return Page{Path: path, Title: d.title, Description: d.description, Body: d.body, ImagePath: d.image}
}

// readDocument parses one markdown file. A missing date falls back to the
// file's modification time.
func readDocument(path string, entry fs.DirEntry) (document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return document{}, err
	}
	var fm map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return document{}, fmt.Errorf("front matter: %w", err)
	}

	doc := document{
		title:       stringField(fm, "title"),
		description: stringField(fm, "description"),
		image:       stringField(fm, "image"),
		tags:        parseTags(fm["tags"]),
		body:        strings.TrimSpace(string(body)),
	}
	switch v := fm["date"].(type) {
	case nil:
		info, err := entry.Info()
		if err != nil {
			return document{}, err
		}
		doc.date = info.ModTime()
	case time.Time:
		doc.date = v
	default:
		doc.date, err = parseDate(fmt.Sprint(v))
		if err != nil {
			return document{}, err
		}
	}
	return doc, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseTags accepts both a YAML list and a comma separated string.
func parseTags(v interface{}) []Tag {
	var raw []string
	switch v := v.(type) {
	case string:
		raw = strings.Split(v, ",")
	case []interface{}:
		for _, t := range v {
			raw = append(raw, fmt.Sprint(t))
		}
	case []string:
		raw = v
	}
	var tags []Tag
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, Tag(t))
		}
	}
	return tags
}

func stringField(fm map[string]interface{}, key string) string {
	if v, ok := fm[key]; ok && v != nil {
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return ""
}

// titleFromName turns a file name such as "swiftui-launch-screen" into
// "Swiftui Launch Screen".
func titleFromName(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(name)
}
