package folio

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSnapshotTargets(t *testing.T) {
	site := assemblerSite(threeSections...)
	site.LegacySlugs = []string{"wwdc-2019", "about"}
	snap := NewSnapshot(site, sampleContent())

	kinds := make(map[PageKind]int)
	for _, tgt := range snap.Targets() {
		kinds[tgt.Kind()]++
	}
	// talks and about pages, plus one legacy placeholder ("about" has content)
	if kinds[KindPage] != 3 {
		t.Errorf("pages = %d, want 3", kinds[KindPage])
	}
	// /talks and /about are pages, so only /blog remains a listing.
	if kinds[KindSection] != 1 {
		t.Errorf("sections = %d, want 1", kinds[KindSection])
	}
	if kinds[KindItem] != 5 || kinds[KindIndex] != 1 || kinds[KindTagList] != 1 || kinds[KindTagDetails] != 4 {
		t.Errorf("unexpected target counts: %v", kinds)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := NewSnapshot(assemblerSite(threeSections...), sampleContent())
	tests := []struct {
		path string
		kind PageKind
		ok   bool
	}{
		{"/", KindIndex, true},
		{"/index.html", KindIndex, true},
		{"/blog", KindSection, true},
		{"/blog/", KindSection, true},
		{"/blog/wwdc-2019/index.html", KindItem, true},
		{"/talks", KindPage, true},
		{"/tags", KindTagList, true},
		{"/tags/apple", KindTagDetails, true},
		{"/wwdc-2019", KindPage, true},
		{"/nope", 0, false},
		{"/blog/nope", 0, false},
	}
	for _, tt := range tests {
		tgt, ok := snap.Lookup(tt.path)
		if ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if ok && tgt.Kind() != tt.kind {
			t.Errorf("Lookup(%q) kind = %v, want %v", tt.path, tgt.Kind(), tt.kind)
		}
	}
}

func TestSnapshotOutputPathsUnique(t *testing.T) {
	content := sampleContent()
	content.Items = append(content.Items,
		Item{Section: "blog", Slug: "plus", Date: day(2022, 1, 1), Tags: []Tag{"++", "日本語"}},
		Item{Section: "blog", Slug: "sharp", Date: day(2022, 2, 1), Tags: []Tag{"C#", "c", "+"}},
	)
	snap := NewSnapshot(assemblerSite(threeSections...), content)

	seen := make(map[string]Target)
	for _, tgt := range snap.Targets() {
		out := OutputPath(tgt)
		if prev, dup := seen[out]; dup {
			t.Errorf("%s written by both %v and %v", out, prev, tgt)
		}
		seen[out] = tgt
	}
	if tgt, ok := seen["tags/index.html"]; !ok || tgt.Kind() != KindTagList {
		t.Errorf("tags/index.html = %v, want the tag list", tgt)
	}
	for path, tag := range map[string]Tag{"/tags/日本語": "日本語", "/tags/++": "++", "/tags/+": "+", "/tags/c": "C#", "/tags/%2B": "+"} {
		tgt, ok := snap.Lookup(path)
		if !ok {
			t.Errorf("Lookup(%q) found nothing", path)
			continue
		}
		if d, ok := tgt.(TagDetailsTarget); !ok || d.Tag != tag {
			t.Errorf("Lookup(%q) = %v, want tag %q", path, tgt, tag)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{IndexTarget{}, "index.html"},
		{SectionTarget{Section: Section{ID: "blog"}}, "blog/index.html"},
		{ItemTarget{Item: Item{Section: "blog", Slug: "wwdc-2019"}}, "blog/wwdc-2019/index.html"},
		{PageTarget{Page: Page{Path: "talks"}}, "talks/index.html"},
		{TagDetailsTarget{Tag: "Swift UI"}, "tags/swift-ui/index.html"},
		{TagDetailsTarget{Tag: "?"}, "tags/?/index.html"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.target); got != tt.want {
			t.Errorf("OutputPath(%v) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestSiteCache(t *testing.T) {
	var loads int32
	cache := NewSiteCache(func(ctx context.Context) (*Snapshot, error) {
		atomic.AddInt32(&loads, 1)
		return NewSnapshot(assemblerSite(), nil), nil
	}, time.Hour)

	ctx := context.Background()
	first, err := cache.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := cache.Snapshot(ctx)
	if first != second || atomic.LoadInt32(&loads) != 1 {
		t.Errorf("expected a cached snapshot, loads = %d", loads)
	}

	cache.Invalidate()
	third, _ := cache.Snapshot(ctx)
	if third == first || atomic.LoadInt32(&loads) != 2 {
		t.Errorf("Invalidate did not force a reload, loads = %d", loads)
	}
}

func TestSiteCacheError(t *testing.T) {
	boom := errors.New("boom")
	cache := NewSiteCache(func(ctx context.Context) (*Snapshot, error) {
		return nil, boom
	}, time.Hour)
	if _, err := cache.Snapshot(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected load error, got %v", err)
	}
}
