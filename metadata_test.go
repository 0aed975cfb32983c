package folio

import "testing"

func testSite() SiteConfig {
	return SiteConfig{
		Name:        "Kristaps Grinbergs",
		URL:         "https://kristaps.me",
		Description: "Mobile and fullstack developer",
		ImagePath:   "/images/card.png",
	}
}

func TestResolveMetadata(t *testing.T) {
	site := testSite()
	tests := []struct {
		name      string
		loc       Location
		wantTitle string
		wantDesc  string
		wantImage string
		wantLarge bool
		wantURL   string
	}{
		{
			name:      "location values win",
			loc:       Location{Path: "/talks", Title: "Talks", Description: "Conference talks", ImagePath: "/images/talk.png"},
			wantTitle: "Talks | Kristaps Grinbergs",
			wantDesc:  "Conference talks",
			wantImage: "/images/talk.png",
			wantLarge: true,
			wantURL:   "https://kristaps.me/talks/",
		},
		{
			name:      "empty location falls back to site",
			loc:       Location{Path: "/"},
			wantTitle: "Kristaps Grinbergs",
			wantDesc:  "Mobile and fullstack developer",
			wantImage: "/images/card.png",
			wantURL:   "https://kristaps.me/",
		},
		{
			name:      "title without description",
			loc:       Location{Path: "/blog/wwdc-2019", Title: "WWDC 2019"},
			wantTitle: "WWDC 2019 | Kristaps Grinbergs",
			wantDesc:  "Mobile and fullstack developer",
			wantImage: "/images/card.png",
			wantURL:   "https://kristaps.me/blog/wwdc-2019/",
		},
	}
	for _, tt := range tests {
		got := ResolveMetadata(tt.loc, site)
		if got.Title != tt.wantTitle {
			t.Errorf("%s: Title = %q, want %q", tt.name, got.Title, tt.wantTitle)
		}
		if got.Description != tt.wantDesc {
			t.Errorf("%s: Description = %q, want %q", tt.name, got.Description, tt.wantDesc)
		}
		if got.ImagePath != tt.wantImage {
			t.Errorf("%s: ImagePath = %q, want %q", tt.name, got.ImagePath, tt.wantImage)
		}
		if got.LargeImage != tt.wantLarge {
			t.Errorf("%s: LargeImage = %v, want %v", tt.name, got.LargeImage, tt.wantLarge)
		}
		if got.URL != tt.wantURL {
			t.Errorf("%s: URL = %q, want %q", tt.name, got.URL, tt.wantURL)
		}
	}
}

func TestResolveMetadataNoImage(t *testing.T) {
	site := testSite()
	site.ImagePath = ""
	got := ResolveMetadata(Location{Path: "/about", Title: "About"}, site)
	if got.ImagePath != "" {
		t.Errorf("ImagePath = %q, want empty", got.ImagePath)
	}
	if got.LargeImage {
		t.Error("LargeImage should be false without a location image")
	}
}

func TestResolveMetadataSeparator(t *testing.T) {
	site := testSite()
	site.TitleSeparator = " - "
	got := ResolveMetadata(Location{Title: "Blog"}, site)
	if got.Title != "Blog - Kristaps Grinbergs" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestResolveMetadataNeverEmptyTitle(t *testing.T) {
	site := testSite()
	for _, loc := range []Location{{}, {Path: "/x"}, {Description: "only description"}} {
		if got := ResolveMetadata(loc, site); got.Title == "" {
			t.Errorf("ResolveMetadata(%+v) returned an empty title", loc)
		}
	}
}
