package folio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setupTestApp(t *testing.T) *App {
	t.Helper()
	site := buildFixture(t)
	a := New(site, &DirSource{Root: site.ContentDir, Sections: site.Sections}, WithLogger(quietLogger()))
	if err := a.setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return a
}

func serve(a *App, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHandlePage(t *testing.T) {
	a := setupTestApp(t)
	tests := []struct {
		path string
		code int
		want string
	}{
		{"/", http.StatusOK, `class="name-title"`},
		{"/blog/", http.StatusOK, "WWDC 2019"},
		{"/blog/wwdc-2019/", http.StatusOK, "SwiftUI"},
		{"/blog/wwdc-2019/index.html", http.StatusOK, "SwiftUI"},
		{"/talks/", http.StatusOK, `class="talk-item"`},
		{"/tags/swift/", http.StatusOK, "WWDC 2019"},
		{"/graphql-ios-swift/", http.StatusOK, `url=/blog/graphql-ios-swift`},
		{"/nope/", http.StatusNotFound, `class="not-found"`},
		{"/blog/nope/", http.StatusNotFound, "Nothing lives at /blog/nope/."},
	}
	for _, tt := range tests {
		rec := serve(a, http.MethodGet, tt.path)
		if rec.Code != tt.code {
			t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.code)
			continue
		}
		if !strings.Contains(rec.Body.String(), tt.want) {
			t.Errorf("GET %s: body does not contain %q", tt.path, tt.want)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s: Content-Type = %q", tt.path, ct)
		}
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := setupTestApp(t)
	rec := serve(a, http.MethodGet, "/blog")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("GET /blog = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/blog/" {
		t.Errorf("Location = %q, want /blog/", loc)
	}
}

func TestServeAssets(t *testing.T) {
	a := setupTestApp(t)

	rec := serve(a, http.MethodGet, "/styles.css")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ".talk-item") {
		t.Errorf("GET /styles.css = %d", rec.Code)
	}

	rec = serve(a, http.MethodGet, "/robots.txt")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "User-agent") {
		t.Errorf("GET /robots.txt = %d %q", rec.Code, rec.Body.String())
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("asset Cache-Control = %q", cc)
	}

	rec = serve(a, http.MethodGet, "/about/")
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("page Cache-Control = %q", cc)
	}
}

func TestInvalidatePicksUpNewContent(t *testing.T) {
	a := setupTestApp(t)
	if rec := serve(a, http.MethodGet, "/blog/websockets/"); rec.Code != http.StatusNotFound {
		t.Fatalf("GET before write = %d", rec.Code)
	}

	writeFiles(t, a.Config.ContentDir, map[string]string{
		"blog/websockets.md": "---\ntitle: WebSockets\ndate: 2020-02-01\n---\nHello\n",
	})
	if rec := serve(a, http.MethodGet, "/blog/websockets/"); rec.Code != http.StatusNotFound {
		t.Errorf("cached snapshot should still be served, got %d", rec.Code)
	}

	a.Cache.Invalidate()
	if rec := serve(a, http.MethodGet, "/blog/websockets/"); rec.Code != http.StatusOK {
		t.Errorf("GET after invalidate = %d, want 200", rec.Code)
	}
}

type failingSource struct{}

func (failingSource) Load(context.Context) (*Content, error) {
	return nil, errors.New("disk on fire")
}

func TestLoadErrorIsServerError(t *testing.T) {
	a := New(assemblerSite(threeSections...), failingSource{}, WithLogger(quietLogger()))
	if err := a.setup(); err != nil {
		t.Fatal(err)
	}
	if rec := serve(a, http.MethodGet, "/"); rec.Code != http.StatusInternalServerError {
		t.Errorf("GET / = %d, want 500", rec.Code)
	}
}

func TestSetupValidates(t *testing.T) {
	a := New(assemblerSite(Section{ID: "blog"}, Section{ID: "blog"}), failingSource{}, WithLogger(quietLogger()))
	if err := a.setup(); err == nil {
		t.Error("expected duplicate section error")
	}
	if err := New(assemblerSite(), nil).setup(); err == nil {
		t.Error("expected missing source error")
	}
}

func TestWatchRoots(t *testing.T) {
	a := setupTestApp(t)
	roots := a.watchRoots()
	if len(roots) != 2 {
		t.Fatalf("roots = %v, want content and static", roots)
	}

	a.Config.TalksFile = filepath.Join(t.TempDir(), "talks.yml")
	if roots := a.watchRoots(); len(roots) != 3 {
		t.Errorf("talks outside content should be watched, got %v", roots)
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	a := setupTestApp(t)
	before, err := a.Cache.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := before.Lookup("/blog/websockets"); ok {
		t.Fatal("post exists before it was written")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Watch(ctx) }()

	// The watcher registers its directories asynchronously, so keep
	// touching the file until a reload shows it.
	deadline := time.Now().Add(5 * time.Second)
	for {
		writeFiles(t, a.Config.ContentDir, map[string]string{
			"blog/websockets.md": "---\ntitle: WebSockets\ndate: 2020-02-01\n---\nHello\n",
		})
		time.Sleep(50 * time.Millisecond)
		snap, err := a.Cache.Snapshot(context.Background())
		if err == nil && snap != before {
			if _, ok := snap.Lookup("/blog/websockets"); ok {
				break
			}
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("watcher did not reload the cache after a content change")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("Watch did not stop after cancel")
	}
}
