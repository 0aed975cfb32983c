package folio

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "site.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetItem(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	item := Item{
		Title:       "GraphQL on iOS",
		Description: "Apollo client",
		Body:        "# GraphQL",
		Date:        day(2020, 3, 4),
		Tags:        []Tag{"swift", "GraphQL"},
		Section:     "blog",
		Slug:        "graphql-ios-swift",
		ImagePath:   "/images/gql.png",
	}
	if err := s.SaveItem(ctx, item); err != nil {
		t.Fatalf("SaveItem failed: %v", err)
	}

	got, err := s.GetItem(ctx, "blog", "graphql-ios-swift")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if !reflect.DeepEqual(got, item) {
		t.Errorf("GetItem = %+v, want %+v", got, item)
	}

	if _, err := s.GetItem(ctx, "blog", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListItemsByTag(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	for _, it := range sampleItems() {
		if err := s.SaveItem(ctx, it); err != nil {
			t.Fatalf("SaveItem failed: %v", err)
		}
	}

	all, err := s.ListItems(ctx, "")
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(all) != 5 || all[0].Slug != "untagged" {
		t.Errorf("ListItems order = %v", slugs(all))
	}

	// Tags are case-sensitive.
	apple, err := s.ListItems(ctx, "Apple")
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if !reflect.DeepEqual(slugs(apple), []string{"wwdc-2019"}) {
		t.Errorf("Apple items = %v", slugs(apple))
	}
	if lower, _ := s.ListItems(ctx, "apple"); len(lower) != 0 {
		t.Errorf("lowercase tag matched %v", slugs(lower))
	}

	tags, err := s.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if !reflect.DeepEqual(tags, []Tag{"Apple", "graphql", "swift", "websockets"}) {
		t.Errorf("ListTags = %v", tags)
	}
}

func TestDeleteItem(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	item := sampleItems()[0]
	if err := s.SaveItem(ctx, item); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteItem(ctx, item.Section, item.Slug); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if _, err := s.GetItem(ctx, item.Section, item.Slug); !errors.Is(err, ErrNotFound) {
		t.Errorf("item still present: %v", err)
	}
}

func TestPages(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	for _, p := range []Page{{Path: "talks", Title: "Talks"}, {Path: "about", Title: "About", Body: "Hi"}} {
		if err := s.SavePage(ctx, p); err != nil {
			t.Fatalf("SavePage failed: %v", err)
		}
	}
	pages, err := s.ListPages(ctx)
	if err != nil {
		t.Fatalf("ListPages failed: %v", err)
	}
	if len(pages) != 2 || pages[0].Path != "about" || pages[0].Body != "Hi" {
		t.Errorf("ListPages = %+v", pages)
	}
	if err := s.DeletePage(ctx, "talks"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetPage(ctx, "talks"); !errors.Is(err, ErrNotFound) {
		t.Errorf("page still present: %v", err)
	}
}

func TestImportAndLoad(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// Stale rows are replaced by an import.
	if err := s.SavePage(ctx, Page{Path: "old"}); err != nil {
		t.Fatal(err)
	}

	in := sampleContent()
	in.SectionMeta = map[SectionID]Section{"blog": {ID: "blog", Title: "Writing"}}
	if err := s.Import(ctx, in); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.Index.Description != "Home of Kristaps" {
		t.Errorf("index = %+v", out.Index)
	}
	if len(out.Items) != len(in.Items) {
		t.Errorf("items = %d, want %d", len(out.Items), len(in.Items))
	}
	if len(out.Pages) != 2 {
		t.Errorf("pages = %+v", out.Pages)
	}
	if _, ok := out.Page("old"); ok {
		t.Error("import kept a stale page")
	}
	if out.SectionMeta["blog"].Title != "Writing" {
		t.Errorf("section meta = %+v", out.SectionMeta)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	s := setupTestStore(t)
	c, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c.Items) != 0 || len(c.Pages) != 0 {
		t.Errorf("empty store returned content: %+v", c)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input    string
		expected []Tag
	}{
		{",swift,ios,", []Tag{"swift", "ios"}},
		{"", nil},
		{",,", nil},
		{", Swift , iOS ,", []Tag{"Swift", "iOS"}},
	}
	for _, tt := range tests {
		if got := ParseTags(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestSync(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	if err := s.SavePage(ctx, Page{Path: "old"}); err != nil {
		t.Fatal(err)
	}

	in := sampleContent()
	r, err := s.Sync(ctx, in, false)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	// five items, the root page and two pages
	if r.Saved != 8 || r.Unchanged != 0 || r.Deleted != 0 {
		t.Errorf("first sync = %+v", r)
	}
	if r.Tags != 4 {
		t.Errorf("Tags = %d, want 4", r.Tags)
	}
	if _, err := s.GetPage(ctx, "old"); err != nil {
		t.Errorf("sync without prune removed a page: %v", err)
	}

	in.Items[0].Title = "Changed"
	in.Items = in.Items[:4]
	r, err = s.Sync(ctx, in, true)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if r.Saved != 1 || r.Unchanged != 6 || r.Deleted != 2 {
		t.Errorf("second sync = %+v", r)
	}
	got, err := s.GetItem(ctx, in.Items[0].Section, in.Items[0].Slug)
	if err != nil || got.Title != "Changed" {
		t.Errorf("changed item = %+v, %v", got, err)
	}
	if _, err := s.GetItem(ctx, "blog", "graphql-subscriptions"); !errors.Is(err, ErrNotFound) {
		t.Errorf("pruned item still present: %v", err)
	}
	if _, err := s.GetPage(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Errorf("pruned page still present: %v", err)
	}
	if _, err := s.GetPage(ctx, ""); err != nil {
		t.Errorf("prune removed the root page: %v", err)
	}
}
