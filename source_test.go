package folio

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/labstack/gommon/log"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func quietLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func TestDirSourceLoad(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"index.md":                  "---\ndescription: Home of Kristaps\n---\nWelcome\n",
		"about.md":                  "Plain page without front matter.\n",
		"blog/index.md":             "---\ntitle: Writing\ndescription: Notes on Swift\n---\n",
		"blog/graphql-ios-swift.md": "---\ntitle: GraphQL on iOS\ndate: 2020-03-04 10:00\ntags: swift, graphql\ndescription: Apollo client\n---\n# GraphQL\n",
		"blog/wwdc-2019.md":         "---\ntitle: WWDC 2019\ndate: 2019-06-10\ntags: [swift, apple]\nimage: /images/wwdc.png\n---\nSwiftUI!\n",
		"drafts/unfinished.md":      "---\ntitle: Draft\n---\n",
		"talks.yml":                 "- title: ignored\n",
	})

	src := &DirSource{Root: root, Sections: []Section{{ID: "blog"}}, Logger: quietLogger()}
	content, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if content.Index.Description != "Home of Kristaps" || content.Index.Title != "" {
		t.Errorf("index = %+v", content.Index)
	}
	if len(content.Pages) != 1 || content.Pages[0].Path != "about" || content.Pages[0].Title != "About" {
		t.Errorf("pages = %+v", content.Pages)
	}
	if meta := content.SectionMeta["blog"]; meta.Title != "Writing" || meta.Description != "Notes on Swift" {
		t.Errorf("section meta = %+v", meta)
	}
	if len(content.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(content.Items))
	}

	gql := content.Items[0]
	if gql.Slug != "graphql-ios-swift" || gql.Path() != "/blog/graphql-ios-swift" {
		t.Errorf("first item = %s", gql.Path())
	}
	if !reflect.DeepEqual(gql.Tags, []Tag{"swift", "graphql"}) {
		t.Errorf("comma tags = %v", gql.Tags)
	}
	if gql.Date.Year() != 2020 || gql.Date.Month() != 3 || gql.Date.Hour() != 10 {
		t.Errorf("date = %v", gql.Date)
	}
	if gql.Body != "# GraphQL" {
		t.Errorf("body = %q", gql.Body)
	}

	wwdc := content.Items[1]
	if !reflect.DeepEqual(wwdc.Tags, []Tag{"swift", "apple"}) {
		t.Errorf("list tags = %v", wwdc.Tags)
	}
	if wwdc.ImagePath != "/images/wwdc.png" {
		t.Errorf("image = %q", wwdc.ImagePath)
	}
	if wwdc.Date.Year() != 2019 || wwdc.Date.Day() != 10 {
		t.Errorf("date = %v", wwdc.Date)
	}
}

func TestDirSourceBadDate(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blog/post.md": "---\ntitle: Post\ndate: yesterday\n---\n",
	})
	src := &DirSource{Root: root, Sections: []Section{{ID: "blog"}}}
	_, err := src.Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "blog/post") {
		t.Errorf("expected an error naming the file, got %v", err)
	}
}

func TestDirSourceMissingDateUsesModTime(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blog/post.md": "---\ntitle: Post\n---\nBody\n",
	})
	src := &DirSource{Root: root, Sections: []Section{{ID: "blog"}}}
	content, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if content.Items[0].Date.IsZero() {
		t.Error("date should fall back to the file modification time")
	}
}

func TestDirSourceTitleFromName(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blog/swiftui-launch-screen.md": "---\ndate: 2020-01-01\n---\n",
	})
	src := &DirSource{Root: root, Sections: []Section{{ID: "blog"}}}
	content, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := content.Items[0].Title; got != "Swiftui Launch Screen" {
		t.Errorf("title = %q", got)
	}
}

func TestDirSourceMissingRoot(t *testing.T) {
	src := &DirSource{Root: filepath.Join(t.TempDir(), "nope")}
	if _, err := src.Load(context.Background()); err == nil {
		t.Error("expected an error for a missing content directory")
	}
}

func TestDirSourceCanceled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"about.md": "About\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &DirSource{Root: root}
	if _, err := src.Load(ctx); err == nil {
		t.Error("expected context error")
	}
}
