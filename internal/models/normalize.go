// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
)

// Hero text position values.
const (
	TextPositionLeft   = "left"
	TextPositionCenter = "center"
	TextPositionRight  = "right"
)

// ErrUnknownSection is returned when a section name does not match any
// top-level document field.
var ErrUnknownSection = errors.New("unknown content section")

// ValidationError reports a document that fails schema checks. It is
// raised before any storage backend is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Normalize brings a partial or older-shape document into the current
// shape without raising. Whole-missing sections are filled from defaults,
// collection fields become non-nil, and constrained fields are coerced
// into range. Fields the caller did supply are left alone.
func (d *Document) Normalize() {
	def := DefaultDocument()

	if d.Hero.Title == "" && d.Hero.Subtitle == "" && d.Hero.CTA == "" && len(d.Hero.Slides) == 0 {
		slides := d.Hero.Slides
		d.Hero = def.Hero
		if slides != nil {
			d.Hero.Slides = slides
		}
	}
	if d.About == (About{}) {
		d.About = def.About
	}
	if d.Contact == (Contact{}) {
		d.Contact = def.Contact
	}
	if d.Gallery.Title == "" && len(d.Gallery.Images) == 0 {
		images := d.Gallery.Images
		d.Gallery = def.Gallery
		if images != nil {
			d.Gallery.Images = images
		}
	}
	if d.Footer.BrandName == "" && d.Footer.Copyright == "" && len(d.Footer.SocialLinks) == 0 {
		links := d.Footer.SocialLinks
		d.Footer = def.Footer
		if links != nil {
			d.Footer.SocialLinks = links
		}
	}
	if d.Settings.SiteTitle == "" {
		d.Settings.SiteTitle = def.Settings.SiteTitle
	}

	// Collection fields must never marshal as null.
	if d.Hero.Slides == nil {
		d.Hero.Slides = []HeroSlide{}
	}
	if d.Gallery.Images == nil {
		d.Gallery.Images = []string{}
	}
	if d.Footer.SocialLinks == nil {
		d.Footer.SocialLinks = []SocialLink{}
	}
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	if d.Products == nil {
		d.Products = []Product{}
	}

	d.Hero.OverlayOpacity = clampOpacity(d.Hero.OverlayOpacity)
	d.Hero.TextPosition = coerceTextPosition(d.Hero.TextPosition)
	for i := range d.Hero.Slides {
		d.Hero.Slides[i].OverlayOpacity = clampOpacity(d.Hero.Slides[i].OverlayOpacity)
		d.Hero.Slides[i].TextPosition = coerceTextPosition(d.Hero.Slides[i].TextPosition)
	}
}

// Validate checks invariants the store refuses to persist: duplicate
// product or category IDs. Orphaned product→category references are
// deliberately tolerated; the menu renders such products without a
// resolvable category name.
func (d *Document) Validate() error {
	seen := make(map[string]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if _, dup := seen[c.ID]; dup {
			return &ValidationError{Field: "categories", Message: "duplicate category id " + c.ID}
		}
		seen[c.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(d.Products))
	for _, p := range d.Products {
		if _, dup := seen[p.ID]; dup {
			return &ValidationError{Field: "products", Message: "duplicate product id " + p.ID}
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func clampOpacity(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func coerceTextPosition(v string) string {
	switch v {
	case TextPositionLeft, TextPositionCenter, TextPositionRight:
		return v
	}
	return TextPositionCenter
}
