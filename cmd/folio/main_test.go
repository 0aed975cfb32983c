package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDefaultSiteIsValid(t *testing.T) {
	site := defaultSite()
	if err := site.Validate(); err != nil {
		t.Fatalf("compiled-in site is invalid: %v", err)
	}
	if len(site.Sections) != 3 {
		t.Errorf("sections = %d, want 3", len(site.Sections))
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "folio.yaml")
	yaml := "outputDir: dist\ncacheTTL: 2m\nbaseURL: https://example.com/\nrssTitle: Posts\n"
	if err := os.WriteFile(cfg, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_ADDR", ":8080")

	s, err := loadSettings(newViper(), cfg)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.OutputDir != "dist" || s.CacheTTL != 2*time.Minute {
		t.Errorf("file values not applied: %+v", s)
	}
	if s.Addr != ":8080" {
		t.Errorf("Addr = %q, want env override", s.Addr)
	}
	if s.ContentDir != "content" || s.Workers != 4 {
		t.Errorf("defaults not applied: %+v", s)
	}

	site := s.siteConfig()
	if site.URL != "https://example.com" {
		t.Errorf("URL = %q", site.URL)
	}
	if site.RSSTitle != "Posts" {
		t.Errorf("RSSTitle = %q", site.RSSTitle)
	}
	if site.Name != "Kristaps Grinbergs" {
		t.Errorf("Name = %q, want the compiled-in name", site.Name)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := loadSettings(newViper(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for an explicit missing config file")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "folio dev" {
		t.Errorf("version output = %q", out)
	}
}

func TestNewThenBuild(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-site")
	out, err := run(t, "new", dir, "--author", "Jane Doe")
	if err != nil {
		t.Fatalf("new: %v\n%s", err, out)
	}
	if !strings.Contains(out, "created") {
		t.Errorf("new printed no files:\n%s", out)
	}

	public := filepath.Join(dir, "public")
	out, err = run(t, "build",
		"--config", filepath.Join(dir, "folio.yaml"),
		"--content", filepath.Join(dir, "content"),
		"--static", filepath.Join(dir, "static"),
		"--out", public,
	)
	if err != nil {
		t.Fatalf("build: %v\n%s", err, out)
	}
	for _, f := range []string{"index.html", "blog/hello-world/index.html", "tags/meta/index.html", "styles.css"} {
		if _, err := os.Stat(filepath.Join(public, filepath.FromSlash(f))); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
}

func TestImportRequiresDB(t *testing.T) {
	if _, err := run(t, "import"); err == nil {
		t.Error("expected an error without --db")
	}
}

func TestImportThenTags(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-site")
	if out, err := run(t, "new", dir); err != nil {
		t.Fatalf("new: %v\n%s", err, out)
	}
	db := filepath.Join(dir, "data", "site.db")
	content := filepath.Join(dir, "content")

	out, err := run(t, "import", "--config", filepath.Join(dir, "folio.yaml"), "--content", content, "--db", db)
	if err != nil {
		t.Fatalf("import: %v\n%s", err, out)
	}
	if !strings.Contains(out, "0 unchanged") || !strings.Contains(out, "1 tags") {
		t.Errorf("first import output = %q", out)
	}

	out, err = run(t, "import", "--config", filepath.Join(dir, "folio.yaml"), "--content", content, "--db", db)
	if err != nil {
		t.Fatalf("second import: %v\n%s", err, out)
	}
	if !strings.Contains(out, " 0 saved") {
		t.Errorf("second import rewrote rows: %q", out)
	}

	out, err = run(t, "tags", "--config", filepath.Join(dir, "folio.yaml"), "--db", db)
	if err != nil {
		t.Fatalf("tags: %v\n%s", err, out)
	}
	if !strings.Contains(out, "meta") || !strings.Contains(out, "/tags/meta") {
		t.Errorf("tags output = %q", out)
	}

	out, err = run(t, "tags", "meta", "--config", filepath.Join(dir, "folio.yaml"), "--db", db)
	if err != nil {
		t.Fatalf("tags meta: %v\n%s", err, out)
	}
	if !strings.Contains(out, "/blog/hello-world") {
		t.Errorf("tags meta output = %q", out)
	}
}

func TestToTitle(t *testing.T) {
	if got := toTitle("my-site"); got != "My Site" {
		t.Errorf("toTitle = %q", got)
	}
}
