package folio

// PageMeta carries the resolved per-page metadata into the <head> fragment.
type PageMeta struct {
	Title       string
	Description string
	ImagePath   string // empty when neither the location nor the site has one
	URL         string // canonical + og:url

	// LargeImage is set when the location itself carries an image, which
	// switches the twitter card to summary_large_image.
	LargeImage bool
}

// ResolveMetadata computes the effective title, description and social image
// for loc, falling back to site-wide values. It never fails and never
// returns an empty title for a site with a name.
func ResolveMetadata(loc Location, site SiteConfig) PageMeta {
	sep := site.TitleSeparator
	if sep == "" {
		sep = " | "
	}
	title := site.Name
	if loc.Title != "" {
		title = loc.Title + sep + site.Name
	}
	description := loc.Description
	if description == "" {
		description = site.Description
	}
	image := loc.ImagePath
	if image == "" {
		image = site.ImagePath
	}
	return PageMeta{
		Title:       title,
		Description: description,
		ImagePath:   image,
		URL:         BuildURL(site.URL, loc.Path),
		LargeImage:  loc.ImagePath != "",
	}
}
