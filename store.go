package folio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database holding items and pages. It is the
// alternative to DirSource for sites imported into a single file.
type Store struct {
	db *sql.DB
}

var _ ContentSource = (*Store)(nil)

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the preview server read while an import writes.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS items (
    section TEXT NOT NULL,
    slug TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (section, slug)
);
CREATE TABLE IF NOT EXISTS pages (
    path TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS sections (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

const itemColumns = `section, slug, title, description, body, date, tags, image`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row scanner) (Item, error) {
	var section, date, tags string
	var it Item
	if err := row.Scan(&section, &it.Slug, &it.Title, &it.Description, &it.Body, &date, &tags, &it.ImagePath); err != nil {
		return Item{}, err
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return Item{}, fmt.Errorf("item %s/%s: %w", section, it.Slug, err)
	}
	it.Section = SectionID(section)
	it.Date = t
	it.Tags = ParseTags(tags)
	return it, nil
}

// ListItems returns the items ordered by date descending. If tag is
// non-empty, results are filtered to items carrying exactly that tag.
func (s *Store) ListItems(ctx context.Context, tag Tag) ([]Item, error) {
	var rows *sql.Rows
	var err error
	if tag == "" {
		rows, err = s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY date DESC, section, slug`)
	} else {
		rows, err = s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items WHERE instr(tags, ',' || ? || ',') > 0 ORDER BY date DESC, section, slug`, string(tag))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetItem returns one item. It returns ErrNotFound if there is none.
func (s *Store) GetItem(ctx context.Context, section SectionID, slug string) (Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE section = ? AND slug = ?`, string(section), slug)
	return scanItem(row)
}

// SaveItem upserts an item.
func (s *Store) SaveItem(ctx context.Context, it Item) error {
	return saveItem(ctx, s.db, it)
}

// DeleteItem removes an item.
func (s *Store) DeleteItem(ctx context.Context, section SectionID, slug string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE section = ? AND slug = ?`, string(section), slug)
	return err
}

// ListPages returns every page ordered by path. The row with an empty path
// holds the site root metadata and is not included.
func (s *Store) ListPages(ctx context.Context) ([]Page, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, title, description, body, image FROM pages WHERE path != '' ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		var p Page
		if err := rows.Scan(&p.Path, &p.Title, &p.Description, &p.Body, &p.ImagePath); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// GetPage returns the page at path ("" for the site root metadata).
func (s *Store) GetPage(ctx context.Context, path string) (Page, error) {
	p := Page{Path: path}
	err := s.db.QueryRowContext(ctx, `SELECT title, description, body, image FROM pages WHERE path = ?`, path).
		Scan(&p.Title, &p.Description, &p.Body, &p.ImagePath)
	if err != nil {
		return Page{}, err
	}
	return p, nil
}

// SavePage upserts a page.
func (s *Store) SavePage(ctx context.Context, p Page) error {
	return savePage(ctx, s.db, p)
}

// DeletePage removes a page.
func (s *Store) DeletePage(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE path = ?`, path)
	return err
}

// ListTags returns a sorted, deduplicated slice of all item tags.
func (s *Store) ListTags(ctx context.Context) ([]Tag, error) {
	items, err := s.ListItems(ctx, "")
	if err != nil {
		return nil, err
	}
	return BuildTagIndex(items).AllTags(), nil
}

// Load implements ContentSource.
func (s *Store) Load(ctx context.Context) (*Content, error) {
	items, err := s.ListItems(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("folio: load items: %w", err)
	}
	pages, err := s.ListPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("folio: load pages: %w", err)
	}
	index, err := s.GetPage(ctx, "")
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("folio: load index: %w", err)
	}
	meta, err := s.sectionMeta(ctx)
	if err != nil {
		return nil, fmt.Errorf("folio: load sections: %w", err)
	}
	return &Content{Index: index, Items: items, Pages: pages, SectionMeta: meta}, nil
}

func (s *Store) sectionMeta(ctx context.Context) (map[SectionID]Section, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description FROM sections`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meta := make(map[SectionID]Section)
	for rows.Next() {
		var id string
		var sec Section
		if err := rows.Scan(&id, &sec.Title, &sec.Description); err != nil {
			return nil, err
		}
		sec.ID = SectionID(id)
		meta[sec.ID] = sec
	}
	return meta, rows.Err()
}

// Import replaces the stored content with c in a single transaction.
func (s *Store) Import(ctx context.Context, c *Content) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"items", "pages", "sections"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}
	for _, it := range c.Items {
		if err := saveItem(ctx, tx, it); err != nil {
			return fmt.Errorf("item %s: %w", it.Path(), err)
		}
	}
	index := c.Index
	index.Path = ""
	if err := savePage(ctx, tx, index); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	for _, p := range c.Pages {
		if err := savePage(ctx, tx, p); err != nil {
			return fmt.Errorf("page %s: %w", p.Path, err)
		}
	}
	for id, sec := range c.SectionMeta {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO sections (id, title, description) VALUES (?, ?, ?)`,
			string(id), sec.Title, sec.Description); err != nil {
			return fmt.Errorf("section %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// SyncReport counts what Sync did.
type SyncReport struct {
	Saved     int // rows inserted or changed
	Unchanged int
	Deleted   int // rows removed by pruning
	Tags      int // distinct tags stored afterwards
}

// Sync upserts c into the store row by row, skipping items and pages that
// are already stored unchanged. With prune set, stored items and pages that
// c no longer contains are deleted. Unlike Import, a failure part way leaves
// the rows written so far in place.
func (s *Store) Sync(ctx context.Context, c *Content, prune bool) (SyncReport, error) {
	var r SyncReport

	items := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		items[it.Path()] = true
		old, err := s.GetItem(ctx, it.Section, it.Slug)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return r, fmt.Errorf("item %s: %w", it.Path(), err)
		}
		if err == nil && reflect.DeepEqual(itemRow(old), itemRow(it)) {
			r.Unchanged++
			continue
		}
		if err := s.SaveItem(ctx, it); err != nil {
			return r, fmt.Errorf("item %s: %w", it.Path(), err)
		}
		r.Saved++
	}

	index := c.Index
	index.Path = ""
	pages := map[string]bool{"": true}
	for _, p := range append([]Page{index}, c.Pages...) {
		pages[p.Path] = true
		old, err := s.GetPage(ctx, p.Path)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return r, fmt.Errorf("page %q: %w", p.Path, err)
		}
		if err == nil && old == p {
			r.Unchanged++
			continue
		}
		if err := s.SavePage(ctx, p); err != nil {
			return r, fmt.Errorf("page %q: %w", p.Path, err)
		}
		r.Saved++
	}

	for id, sec := range c.SectionMeta {
		if _, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO sections (id, title, description) VALUES (?, ?, ?)`,
			string(id), sec.Title, sec.Description); err != nil {
			return r, fmt.Errorf("section %s: %w", id, err)
		}
	}

	if prune {
		stored, err := s.ListItems(ctx, "")
		if err != nil {
			return r, err
		}
		for _, it := range stored {
			if items[it.Path()] {
				continue
			}
			if err := s.DeleteItem(ctx, it.Section, it.Slug); err != nil {
				return r, fmt.Errorf("item %s: %w", it.Path(), err)
			}
			r.Deleted++
		}
		storedPages, err := s.ListPages(ctx)
		if err != nil {
			return r, err
		}
		for _, p := range storedPages {
			if pages[p.Path] {
				continue
			}
			if err := s.DeletePage(ctx, p.Path); err != nil {
				return r, fmt.Errorf("page %q: %w", p.Path, err)
			}
			r.Deleted++
		}
	}

	tags, err := s.ListTags(ctx)
	if err != nil {
		return r, err
	}
	r.Tags = len(tags)
	return r, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func saveItem(ctx context.Context, db execer, it Item) error {
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, itemRow(it)...)
	return err
}

// itemRow returns the column values stored for it, in itemColumns order.
func itemRow(it Item) []interface{} {
	tags := make([]string, len(it.Tags))
	for i, t := range it.Tags {
		tags[i] = strings.TrimSpace(string(t))
	}
	return []interface{}{
		string(it.Section), it.Slug, it.Title, it.Description, it.Body,
		it.Date.UTC().Format(time.RFC3339), FormatTags(tags), it.ImagePath,
	}
}

func savePage(ctx context.Context, db execer, p Page) error {
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO pages (path, title, description, body, image) VALUES (?, ?, ?, ?, ?)`,
		p.Path, p.Title, p.Description, p.Body, p.ImagePath)
	return err
}

// FormatTags joins tags into the delimited column form (",swift,ios,").
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "," + strings.Join(tags, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",swift,ios,") into tags.
func ParseTags(tagString string) []Tag {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	tags := make([]Tag, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, Tag(p))
		}
	}
	return tags
}
