package views

const appStoreBadge = "/images/download-appstore.svg"

func ogType(h HeadData) string {
	if h.OGType == "" {
		return "website"
	}
	return h.OGType
}

func twitterCard(h HeadData) string {
	if h.LargeImage {
		return "summary_large_image"
	}
	return "summary"
}

func rssTitle(h HeadData) string {
	if h.RSSTitle == "" {
		return "Subscribe to " + h.SiteName
	}
	return h.RSSTitle
}

// socialIcon is the bundled icon for a social network, named after it.
func socialIcon(s SocialLink) string {
	return "/images/" + s.Name + ".svg"
}

func projectBadge(p Project) string {
	if p.LinkBadge == "" {
		return appStoreBadge
	}
	return p.LinkBadge
}
