package folio

// LegacySlugs are blog post identifiers that used to live at the site root
// before posts moved under /blog.
var LegacySlugs = []string{
	"animating-shapes-in-ios",
	"apple-passkit",
	"clearing-subscriptions",
	"custom-font-dynamic-type",
	"dark-side-appstore",
	"different-flavors-of-websockets-vapor",
	"embracing-dynamic-type",
	"graphql-advances-with-swift",
	"graphql-ios-swift",
	"graphql-subscriptions",
	"ignorance-of-cache",
	"index",
	"nstimer-vs-cadisplaylink",
	"swiftui-launch-screen",
	"swiftui-mapview",
	"swiftui-modal-view",
	"uiview-vs-calayer",
	"websockets-ios-13-swift",
	"websockets-swift",
	"what-is-animation-core-animation",
	"wwdc-2019",
}

// Redirects maps legacy page paths to their new location under /blog.
type Redirects struct {
	targets map[string]string
}

// NewRedirects builds the redirect table for the given slugs.
func NewRedirects(slugs []string) *Redirects {
	r := &Redirects{targets: make(map[string]string, len(slugs))}
	for _, s := range slugs {
		r.targets[s] = "/blog/" + s
	}
	return r
}

// NeedsRedirect returns the redirect target for path. Matching is exact and
// case-sensitive; prefixes never match.
func (r *Redirects) NeedsRedirect(path string) (string, bool) {
	if r == nil {
		return "", false
	}
	target, ok := r.targets[path]
	return target, ok
}

