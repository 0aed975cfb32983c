package main

import "github.com/folio-dev/folio"

// defaultSite is the compiled-in identity and portfolio content. Settings
// from folio.yaml, the environment and flags are applied on top.
func defaultSite() folio.SiteConfig {
	return folio.SiteConfig{
		Name:          "Kristaps Grinbergs",
		URL:           "https://kristaps.me",
		Description:   "Kristaps Grinbergs - iOS and Apple technology developer. Startup founder. Conference speaker.",
		Language:      "en",
		TwitterHandle: "@fassko",
		RSSFeedPath:   "/feed.rss",
		TouchIconPath: "/apple-touch-icon-120x120.png",
		Preconnect:    []string{"https://fonts.gstatic.com"},
		FontURLs:      []string{"https://fonts.googleapis.com/css2?family=Source+Code+Pro&display=swap"},
		Sections: []folio.Section{
			{ID: "blog"},
			{ID: "talks"},
			{ID: "about"},
		},
		Profile: profile,
	}
}

var profile = folio.Profile{
	Name: "Kristaps Grinbergs",
	Taglines: []string{
		"Mobile and fullstack developer.",
		"Startup founder. Conference speaker. Mentor.",
		"Passionate about building products, sustainability and Web 3.0.",
	},
	Picture: "/images/kristaps.png",
	About: []string{
		"Executed as co-founder at global scale company [Qminder](https://www.qminder.com) that serviced companies like Bolt, Uber, Lyft, The Olympic Games, and more. Lead Apple technology efforts and worked on technical sales, integrations, and AppStore marketing.",
		"Extensive knowledge of how and what to build on all Apple platforms - iOS, iPadOS, watchOS, tvOS, and MacOS. Knows web frontend technologies like ReactJS.",
		"Active iOS community member. Running well-known newsletter [Swift Weekly Brief](https://swiftweekly.github.io/) that is read by thousands of developers. He writes a blog, speaking at conferences, teaching, and mentoring.",
		"His interests are in Web 3.0, sustainability, and automating old and clunky processes.",
	},
	Social: []folio.SocialLink{
		{Name: "email", URL: "mailto:kristaps@hey.com", Text: "kristaps@hey.com"},
		{Name: "linkedin", URL: "https://www.linkedin.com/in/kristapsgrinbergs/", Text: "kristapsgrinbergs"},
		{Name: "twitter", URL: "https://twitter.com/fassko", Text: "@fassko"},
		{Name: "github", URL: "https://github.com/fassko", Text: "fassko"},
		{Name: "instagram", URL: "https://www.instagram.com/ios_nomad/", Text: "ios_nomad"},
	},
	Projects: []folio.Project{
		{
			Title:       "Salto X",
			Description: "Token Incentive Plans for Remote Companies: mint your company token, distribute and manage on Salto X.",
			Image:       "salto-x-dashboard-nft.png",
		},
		{
			Title:       "Sharentic iOS app",
			Description: "Sharentic helps you to live lightly, without compromise. The app was built entirely with SwiftUI, and for backend was used Firebase. For payments - Stripe. Additionally, all the stock and orders were managed using an internal dashboard.",
			Image:       "sharentic.png",
		},
		{
			Title:       "Vaal Dashboard",
			Description: "Securitization made as easy as revenue-based financing. Securitization allows companies to attract financing based on asset quality rather than on the financial performance of the company. Saving a CFO or Head of Capital Markets one day a week, 52 days a year. It was built using ReactJS, Material UI and other fronend technologies. All the data came from the loan tape that was stored in the Google Sheets.",
			Image:       "vaal-dashboard.png",
		},
		{
			Title:       "Vibur iOS app",
			Description: "Unpleasant and pleasant events calendar. This app will help you to be aware of an unpleasant event at the time it is happening. You will find some simple questions about your feelings and emotions, use them to focus your awareness on the details of the experience as it is happening.",
			Image:       "vibur.png",
			Link:        "https://apps.apple.com/us/app/vibur/id1592169625",
		},
		{
			Title:       "Qminder Apple TV app",
			Description: "Qminder TV is native Apple TV app for the waiting list. It uses open sourced Qminder Swift API and latest Swift features such as codable and keypaths. App keeps active network connection using websockets and upates the UI using reactive approach and RxSwift.",
			Image:       "qminder-apple-tv.png",
		},
		{
			Title:       "Qminder iPad app",
			Description: "Qminder Sign-In provides self-service sign-in for customers. It uses native and web. Native side interacts with the server using in-house built JavaScript bridge. Background animations are fully native and use GPU.",
			Image:       "qminder-sign-in.png",
		},
		{
			Title:       "Dodies.lv iOS app",
			Description: "The idea behind Dodies.lv is to help plan one's outdoor activities in Latvia. In the map one can find Latvian nature trails, birdwatching towers, parks, campsites and picnic sites. Hiking trails in Latvia are usually shorter and marked, long distance trekking and hiking is not done on specific routes. Dodies.lv lists only marked hiking trails and paths, specifically targeted towards casual hikers.",
			Image:       "dodies.png",
			Link:        "https://itunes.apple.com/lv/app/dodies-lv/id1080800199?mt=8",
		},
		{
			Title:       "Augi & Draugi iOS app",
			Description: "Augi & Draugi app gives the answer to the question: “Where should I eat today”? The map in the application serves as a guide for anyone interested in eating delicious plant-based dishes. Each location on the map serves multiple plant-based dishes, making sure everyone has a choice!",
			Image:       "augidraugi.png",
			Link:        "https://apps.apple.com/lv/app/augi-draugi/id1475145259",
		},
		{
			Title:       "Weather Latvia iOS app",
			Description: "Weather Latvia shows current weather observations in Latvia. Data comes from Latvian Environment, Geology and Meteorology Centre and Latvian State Roads.",
			Image:       "weatherlatvia.png",
			Link:        "https://itunes.apple.com/lv/app/weather-latvia/id1350252673?mt=8",
		},
		{
			Title:       "Hashberg - easy hashtag manager",
			Description: "Manage your hashtags in one place. Copy and use hashtags wherever you want. Group your hashtags by topic. Sync between all your devices using iCloud.",
			Image:       "hashberg.png",
			Link:        "https://apps.apple.com/us/app/hashberg-easy-hashtag-manager/id1549468659",
		},
	},
	AboutPage: folio.AboutPage{
		Title: "About",
		Paragraphs: []string{
			"Kristaps has extensive knowledge of all Apple platforms - iOS, iPadOS, watchOS, tvOS, and MacOS. He is an active iOS community member.",
			"He is running a well-known newsletter [Swift Weekly Brief](https://swiftweekly.github.io) that is read by thousands of developers.",
			"He writes a mobile development blog, speaks at conferences, teaches and mentors.",
		},
		Email: "kristaps@hey.com",
		Pictures: []string{
			"/assets/speaking/kristaps-grinbergs-appbuilders.jpeg",
			"/assets/speaking/kristaps-grinbergs-mobile-era.jpg",
			"/assets/speaking/kristaps-grinbergs-shareit.jpg",
		},
	},
	FooterLinks: []folio.Link{
		{Text: "Twitter", URL: "https://twitter.com/fassko", External: true},
		{Text: "RSS", URL: "/feed.rss"},
		{Text: "Contact", URL: "/about"},
	},
}
