package folio

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func buildFixture(t *testing.T) SiteConfig {
	t.Helper()
	root := t.TempDir()
	content := filepath.Join(root, "content")
	static := filepath.Join(root, "static")
	writeFiles(t, content, map[string]string{
		"index.md":          "---\ndescription: Home\n---\n",
		"talks.md":          "---\ntitle: Talks\n---\n",
		"about.md":          "---\ntitle: About\n---\n",
		"blog/wwdc-2019.md": "---\ntitle: WWDC 2019\ndate: 2019-06-10\ntags: swift\n---\nSwiftUI\n",
		"talks.yml":         talksYAML,
	})
	writeFiles(t, static, map[string]string{
		"robots.txt":        "User-agent: *\n",
		"images/big.png":    string(pngBytes(t, 64, 8)),
		"images/small.png":  string(pngBytes(t, 16, 4)),
		"images/broken.png": "not an image",
	})

	site := assemblerSite(threeSections...)
	site.ContentDir = content
	site.TalksFile = filepath.Join(content, "talks.yml")
	site.StaticDir = static
	site.OutputDir = filepath.Join(root, "public")
	site.MaxImageWidth = 32
	site.Workers = 3
	return site
}

func TestBuild(t *testing.T) {
	site := buildFixture(t)
	src := &DirSource{Root: site.ContentDir, Sections: site.Sections}
	b := NewBuilder(site, src, quietLogger())

	report, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := site.OutputDir
	for _, f := range []string{
		"index.html",
		"blog/index.html",
		"blog/wwdc-2019/index.html",
		"talks/index.html",
		"about/index.html",
		"tags/index.html",
		"tags/swift/index.html",
		"graphql-ios-swift/index.html",
		"styles.css",
		"robots.txt",
		"images/small.png",
		"images/broken.png",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(f))); err != nil {
			t.Errorf("missing output %s: %v", f, err)
		}
	}

	talks, err := os.ReadFile(filepath.Join(out, "talks", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(talks), `class="talk-item"`); got != 2 {
		t.Errorf("talk items = %d, want 2", got)
	}

	legacy, err := os.ReadFile(filepath.Join(out, "graphql-ios-swift", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(legacy), `content="0; url=/blog/graphql-ios-swift"`) {
		t.Errorf("legacy page has no refresh")
	}

	f, err := os.Open(filepath.Join(out, "images", "big.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("optimized image unreadable: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 4 {
		t.Errorf("big.png = %dx%d, want 32x4", cfg.Width, cfg.Height)
	}

	if report.Optimized != 1 {
		t.Errorf("Optimized = %d, want 1", report.Optimized)
	}
	if report.Talks != 2 {
		t.Errorf("Talks = %d, want 2", report.Talks)
	}
	if report.Pages < 8 {
		t.Errorf("Pages = %d, expected at least 8", report.Pages)
	}
}

func TestBuildWithBrokenTalks(t *testing.T) {
	site := buildFixture(t)
	if err := os.WriteFile(site.TalksFile, []byte("- title: [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b := NewBuilder(site, &DirSource{Root: site.ContentDir, Sections: site.Sections}, quietLogger())
	report, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if report.Talks != 0 {
		t.Errorf("Talks = %d, want 0", report.Talks)
	}
	html, err := os.ReadFile(filepath.Join(site.OutputDir, "talks", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(html), "talk-item") {
		t.Errorf("talks page rendered items from a broken file")
	}
}

func TestBuildFailsOnMissingContent(t *testing.T) {
	site := buildFixture(t)
	src := &DirSource{Root: filepath.Join(t.TempDir(), "missing"), Sections: site.Sections}
	if _, err := NewBuilder(site, src, quietLogger()).Build(context.Background()); err == nil {
		t.Error("expected an error for missing content")
	}
}

func TestBuildRejectsInvalidProfile(t *testing.T) {
	site := buildFixture(t)
	site.Profile.Projects = append(site.Profile.Projects, Project{Title: "No image", Description: "x"})
	src := &DirSource{Root: site.ContentDir, Sections: site.Sections}
	if _, err := NewBuilder(site, src, quietLogger()).Build(context.Background()); err == nil {
		t.Error("expected a validation error")
	}
}

func TestOptimizeImage(t *testing.T) {
	data, ok, err := optimizeImage(bytes.NewReader(pngBytes(t, 100, 50)), 40)
	if err != nil || !ok {
		t.Fatalf("optimizeImage = %v, %v", ok, err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("scaled to %dx%d, want 40x20", cfg.Width, cfg.Height)
	}

	if _, ok, err := optimizeImage(bytes.NewReader(pngBytes(t, 30, 10)), 40); ok || err != nil {
		t.Errorf("narrow image should be left alone: ok=%v err=%v", ok, err)
	}
	if _, _, err := optimizeImage(strings.NewReader("nope"), 40); err == nil {
		t.Error("expected a decode error")
	}
}

func TestBuildRejectsUnsafeOutputDir(t *testing.T) {
	site := buildFixture(t)
	root := filepath.Dir(site.ContentDir)
	tests := []struct {
		name string
		out  string
	}{
		{"working directory", "."},
		{"parent of content", root},
		{"content itself", site.ContentDir},
		{"static itself", site.StaticDir},
		{"filesystem root", string(filepath.Separator)},
	}
	t.Chdir(root)
	for _, tt := range tests {
		cfg := site
		cfg.OutputDir = tt.out
		src := &DirSource{Root: cfg.ContentDir, Sections: cfg.Sections}
		if _, err := NewBuilder(cfg, src, quietLogger()).Build(context.Background()); err == nil {
			t.Errorf("%s: expected Build to refuse output %q", tt.name, tt.out)
		}
	}
	for _, f := range []string{"content/index.md", "static/robots.txt"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
			t.Errorf("%s removed: %v", f, err)
		}
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		dir, path string
		want      bool
	}{
		{"/site", "/site", true},
		{"/site", "/site/content", true},
		{"/site/public", "/site/content", false},
		{"/site", "/site-old/content", false},
		{"/site", "/site/..content", true},
	}
	for _, tt := range tests {
		if got := within(filepath.FromSlash(tt.dir), filepath.FromSlash(tt.path)); got != tt.want {
			t.Errorf("within(%q, %q) = %v, want %v", tt.dir, tt.path, got, tt.want)
		}
	}
}
