package folio

import "testing"

func TestNeedsRedirect(t *testing.T) {
	r := NewRedirects(LegacySlugs)
	tests := []struct {
		path   string
		target string
		ok     bool
	}{
		{"graphql-ios-swift", "/blog/graphql-ios-swift", true},
		{"wwdc-2019", "/blog/wwdc-2019", true},
		{"graphql-ios-swift-v2", "", false},
		{"graphql-ios", "", false},
		{"GraphQL-iOS-Swift", "", false},
		{"/graphql-ios-swift", "", false},
		{"about", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		target, ok := r.NeedsRedirect(tt.path)
		if ok != tt.ok || target != tt.target {
			t.Errorf("NeedsRedirect(%q) = (%q, %v), want (%q, %v)", tt.path, target, ok, tt.target, tt.ok)
		}
	}
}

func TestNeedsRedirectNil(t *testing.T) {
	var r *Redirects
	if _, ok := r.NeedsRedirect("wwdc-2019"); ok {
		t.Error("nil Redirects should never redirect")
	}
}

func TestLegacySlugsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range LegacySlugs {
		if seen[s] {
			t.Errorf("duplicate legacy slug %q", s)
		}
		seen[s] = true
	}
}
