package scaffold

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mysite")
	data := Data{SiteName: "My Site", Author: "Kristaps", URL: "https://example.com", Date: "2024-03-01"}

	files, err := Create(dir, data)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sort.Strings(files)
	want := []string{
		".env.example",
		"content/about.md",
		"content/blog/hello-world.md",
		"content/blog/index.md",
		"content/index.md",
		"content/talks.md",
		"content/talks.yml",
		"folio.yaml",
		"static/images/.gitkeep",
	}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("created %v, want %v", files, want)
	}

	post, err := os.ReadFile(filepath.Join(dir, "content", "blog", "hello-world.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(post), "date: 2024-03-01") || !strings.Contains(string(post), "**My Site**") {
		t.Errorf("template not executed:\n%s", post)
	}

	cfg, err := os.ReadFile(filepath.Join(dir, "folio.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cfg), `baseURL: "https://example.com"`) {
		t.Errorf("folio.yaml missing base URL:\n%s", cfg)
	}
}

func TestCreateExistingDir(t *testing.T) {
	if _, err := Create(t.TempDir(), Data{}); err == nil {
		t.Error("expected an error for an existing directory")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"folio.yaml.tmpl", "folio.yaml"},
		{"dotenv", ".env.example"},
		{"static/images/.gitkeep", "static/images/.gitkeep"},
		{"content/blog/index.md.tmpl", "content/blog/index.md"},
	}
	for _, tt := range tests {
		if got := outputName(tt.in); got != tt.want {
			t.Errorf("outputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
