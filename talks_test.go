package folio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/gommon/log"
)

const talksYAML = `
- date: 2019-05-10
  title: GraphQL with Swift
  event: AppBuilders
  video: https://www.youtube.com/embed/abc
  slides: 0a1b2c
- date: 2020-02-01
  title: WebSockets
  event: Mobile Era
  audio: https://example.com/ws.mp3
`

func TestLoadTalks(t *testing.T) {
	talks, err := LoadTalks(strings.NewReader(talksYAML))
	if err != nil {
		t.Fatalf("LoadTalks: %v", err)
	}
	if len(talks) != 2 {
		t.Fatalf("got %d talks, want 2", len(talks))
	}
	first := talks[0]
	if first.Title != "GraphQL with Swift" || first.Event != "AppBuilders" || first.Slides != "0a1b2c" {
		t.Errorf("unexpected first talk: %+v", first)
	}
	if !first.Date.Equal(day(2019, 5, 10)) {
		t.Errorf("date = %v", first.Date)
	}
	if talks[1].Audio != "https://example.com/ws.mp3" || talks[1].Video != "" {
		t.Errorf("unexpected second talk: %+v", talks[1])
	}
}

func TestLoadTalksRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing event", "- date: 2019-05-10\n  title: Talk\n"},
		{"missing title", "- date: 2019-05-10\n  event: Conf\n"},
		{"missing date", "- title: Talk\n  event: Conf\n"},
		{"not a list", "title: Talk\n"},
		{"bad date", "- date: yesterday\n  title: Talk\n  event: Conf\n"},
	}
	for _, tt := range tests {
		if _, err := LoadTalks(strings.NewReader(tt.input)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestLoadTalksEmpty(t *testing.T) {
	talks, err := LoadTalks(strings.NewReader(""))
	if err != nil || len(talks) != 0 {
		t.Errorf("LoadTalks(\"\") = %v, %v", talks, err)
	}
}

func TestTalksProviderDegrades(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "talks.yml")
	if err := os.WriteFile(bad, []byte("- date: 2019-05-10\n  title: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	logger := log.New("test")
	logger.SetOutput(&out)

	for _, path := range []string{bad, filepath.Join(dir, "missing.yml")} {
		out.Reset()
		p := &TalksProvider{Path: path, Logger: logger}
		if talks := p.Talks(); talks != nil {
			t.Errorf("%s: expected no talks, got %d", path, len(talks))
		}
		if !strings.Contains(out.String(), "talks:") {
			t.Errorf("%s: expected a warning, got %q", path, out.String())
		}
	}
}

func TestTalksProviderReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talks.yml")
	if err := os.WriteFile(path, []byte(talksYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	p := &TalksProvider{Path: path}
	if got := len(p.Talks()); got != 2 {
		t.Errorf("got %d talks, want 2", got)
	}
}
