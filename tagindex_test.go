package folio

import (
	"reflect"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleItems() []Item {
	return []Item{
		{Section: "blog", Slug: "websockets-swift", Date: day(2019, 6, 1), Tags: []Tag{"swift", "websockets"}},
		{Section: "blog", Slug: "graphql-ios-swift", Date: day(2020, 3, 4), Tags: []Tag{"swift", "graphql"}},
		{Section: "blog", Slug: "wwdc-2019", Date: day(2019, 6, 1), Tags: []Tag{"swift", "Apple"}},
		{Section: "blog", Slug: "untagged", Date: day(2021, 1, 1)},
		{Section: "blog", Slug: "graphql-subscriptions", Date: day(2018, 1, 1), Tags: []Tag{"graphql", "graphql"}},
	}
}

func slugs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Slug
	}
	return out
}

func TestBuildTagIndexAllTagsSorted(t *testing.T) {
	idx := BuildTagIndex(sampleItems())
	want := []Tag{"Apple", "graphql", "swift", "websockets"}
	if got := idx.AllTags(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllTags() = %v, want %v", got, want)
	}
	if idx.Len() != 4 {
		t.Errorf("Len() = %d, want 4", idx.Len())
	}
}

func TestItemsForTagOrder(t *testing.T) {
	idx := BuildTagIndex(sampleItems())
	tests := []struct {
		tag  Tag
		want []string
	}{
		// equal dates keep input order
		{"swift", []string{"graphql-ios-swift", "websockets-swift", "wwdc-2019"}},
		{"graphql", []string{"graphql-ios-swift", "graphql-subscriptions"}},
		{"Apple", []string{"wwdc-2019"}},
		{"apple", []string{}},
		{"unknown", []string{}},
	}
	for _, tt := range tests {
		if got := slugs(idx.ItemsForTag(tt.tag)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ItemsForTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestTagBucketsMatchItems(t *testing.T) {
	items := sampleItems()
	idx := BuildTagIndex(items)
	for _, tag := range idx.AllTags() {
		bucket := idx.ItemsForTag(tag)
		want := 0
		for _, it := range items {
			if it.HasTag(tag) {
				want++
			}
		}
		if len(bucket) != want {
			t.Errorf("tag %q: %d items, want %d", tag, len(bucket), want)
		}
		for i, it := range bucket {
			if !it.HasTag(tag) {
				t.Errorf("tag %q: item %q does not carry the tag", tag, it.Slug)
			}
			if i > 0 && it.Date.After(bucket[i-1].Date) {
				t.Errorf("tag %q: bucket not in descending date order at %d", tag, i)
			}
		}
	}
}

func TestBuildTagIndexDeterministic(t *testing.T) {
	a := BuildTagIndex(sampleItems())
	b := BuildTagIndex(sampleItems())
	if !reflect.DeepEqual(a.AllTags(), b.AllTags()) {
		t.Fatalf("AllTags differ between builds")
	}
	for _, tag := range a.AllTags() {
		if !reflect.DeepEqual(slugs(a.ItemsForTag(tag)), slugs(b.ItemsForTag(tag))) {
			t.Errorf("tag %q ordering differs between builds", tag)
		}
	}
}

func TestItemsForTagReturnsCopy(t *testing.T) {
	idx := BuildTagIndex(sampleItems())
	got := idx.ItemsForTag("swift")
	got[0].Title = "mutated"
	if idx.ItemsForTag("swift")[0].Title == "mutated" {
		t.Error("ItemsForTag exposed the internal bucket")
	}
}

func TestBuildTagIndexKeepsItemsWithoutSlugs(t *testing.T) {
	idx := BuildTagIndex([]Item{
		{Title: "first", Tags: []Tag{"x"}},
		{Title: "second", Tags: []Tag{"x", "x"}},
	})
	got := idx.ItemsForTag("x")
	if len(got) != 2 {
		t.Fatalf("ItemsForTag(x) = %d items, want 2", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Errorf("ItemsForTag(x) = %q, %q", got[0].Title, got[1].Title)
	}
}
