package folio

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/folio-dev/folio/views"
)

// PageKind identifies which assembler produced a document.
type PageKind int

const (
	KindIndex PageKind = iota
	KindSection
	KindItem
	KindPage
	KindTagList
	KindTagDetails
	KindNotFound
)

var kindNames = [...]string{
	KindIndex:      "index",
	KindSection:    "section",
	KindItem:       "item",
	KindPage:       "page",
	KindTagList:    "tag-list",
	KindTagDetails: "tag-details",
	KindNotFound:   "not-found",
}

func (k PageKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Block is one named body section of a document.
type Block struct {
	Name      string
	Component templ.Component
}

// Document is one assembled output page: head metadata plus an ordered
// sequence of body blocks. It renders itself as a full HTML document.
type Document struct {
	Kind PageKind
	Path string
	Lang string
	Meta PageMeta
	Head views.HeadData
	Body []Block
}

var _ templ.Component = (*Document)(nil)

// Render writes the complete HTML document to w.
func (d *Document) Render(ctx context.Context, w io.Writer) error {
	body := make([]templ.Component, len(d.Body))
	for i, b := range d.Body {
		body[i] = b.Component
	}
	return views.Document(d.Lang, d.Head, body).Render(ctx, w)
}

// Names returns the body block names in order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Body))
	for i, b := range d.Body {
		names[i] = b.Name
	}
	return names
}

// Has reports whether the body contains a block called name.
func (d *Document) Has(name string) bool {
	for _, b := range d.Body {
		if b.Name == name {
			return true
		}
	}
	return false
}

// HTML renders the document into a byte slice.
func (d *Document) HTML(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) add(name string, c templ.Component) {
	d.Body = append(d.Body, Block{Name: name, Component: c})
}
