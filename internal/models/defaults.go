// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DefaultDocument synthesizes a fully-populated content document with
// displayable placeholder copy. Served when no backend holds any content,
// so the public site never renders from a partially-undefined document.
func DefaultDocument() *Document {
	return &Document{
		Logo: Logo{URL: ""},
		Hero: Hero{
			Title:          "A Taste of Liquid Gold",
			Subtitle:       "Experience coffee that transcends the ordinary. Crafted with passion, brewed to perfection.",
			CTA:            "Explore Our Menu",
			Video:          "",
			OverlayOpacity: 50,
			TextPosition:   TextPositionCenter,
			Slides:         []HeroSlide{},
		},
		About: About{
			Title:   "About Au Lait",
			Content: "We are passionate about delivering the finest coffee experience to our customers.",
			Image:   "",
		},
		Contact: Contact{
			Address: "123 Coffee Street, Bean City",
			Phone:   "+1 (555) 123-4567",
			Email:   "info@aulait.com",
			Hours:   "Mon-Fri: 7AM-8PM, Sat-Sun: 8AM-6PM",
		},
		Gallery: Gallery{
			Title:  "Our Gallery",
			Images: []string{},
		},
		Footer: Footer{
			BrandName:        "Au Lait",
			BrandDescription: "Crafting exceptional coffee experiences, one cup at a time.",
			Address:          "123 Coffee Street",
			City:             "Bean City",
			Phone:            "+1 (555) 123-4567",
			Email:            "info@aulait.com",
			Copyright:        "© 2025 Au Lait Coffee Shop. All Rights Reserved.",
			SocialLinks:      []SocialLink{},
		},
		Settings: Settings{
			SiteTitle: "Au Lait Coffee Shop",
			Favicon:   "",
		},
		Categories: []Category{},
		Products:   []Product{},
	}
}
