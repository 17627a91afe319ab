// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the site content document: the single JSON
// aggregate holding all editable copy and data for the storefront. The
// document is read by the public site on every page load and mutated only
// by the admin editor.
package models

import (
	"encoding/json"
	"strconv"
)

// Canonical section names. A section is one named top-level field of the
// content document.
const (
	SectionLogo       = "logo"
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionContact    = "contact"
	SectionGallery    = "gallery"
	SectionFooter     = "footer"
	SectionSettings   = "settings"
	SectionCategories = "categories"
	SectionProducts   = "products"
)

// SectionNames lists every valid section in display order.
var SectionNames = []string{
	SectionLogo, SectionHero, SectionAbout, SectionContact,
	SectionGallery, SectionFooter, SectionSettings,
	SectionCategories, SectionProducts,
}

// Document is the complete site content. Every field is defaultable;
// partial or older-shape documents are accepted and normalized rather
// than rejected.
type Document struct {
	Logo       Logo       `json:"logo"`
	Hero       Hero       `json:"hero"`
	About      About      `json:"about"`
	Contact    Contact    `json:"contact"`
	Gallery    Gallery    `json:"gallery"`
	Footer     Footer     `json:"footer"`
	Settings   Settings   `json:"settings"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

// Logo holds the site logo image URL.
type Logo struct {
	URL string `json:"url"`
}

// Hero is the landing banner. Either a single background (video or image)
// or an ordered slide carousel.
type Hero struct {
	Title           string      `json:"title"`
	Subtitle        string      `json:"subtitle"`
	CTA             string      `json:"cta"`
	Video           string      `json:"video"`
	BackgroundImage string      `json:"backgroundImage,omitempty"`
	OverlayOpacity  int         `json:"overlayOpacity,omitempty"`
	TextPosition    string      `json:"textPosition,omitempty"`
	Slides          []HeroSlide `json:"slides,omitempty"`
}

// HeroSlide is one slide in the hero carousel.
type HeroSlide struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	CTA            string `json:"cta"`
	BackgroundType string `json:"backgroundType"`
	BackgroundURL  string `json:"backgroundUrl"`
	OverlayOpacity int    `json:"overlayOpacity"`
	TextPosition   string `json:"textPosition"`
}

// About is the "our story" section.
type About struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

// Contact holds address and opening hours copy.
type Contact struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

// Gallery is an ordered list of image URLs. Order is display order.
type Gallery struct {
	Title  string   `json:"title"`
	Images []string `json:"images"`
}

// Footer holds brand copy and social links.
type Footer struct {
	BrandName        string       `json:"brandName"`
	BrandDescription string       `json:"brandDescription"`
	Address          string       `json:"address"`
	City             string       `json:"city"`
	Phone            string       `json:"phone"`
	Email            string       `json:"email"`
	Copyright        string       `json:"copyright"`
	SocialLinks      []SocialLink `json:"socialLinks"`
}

// SocialLink is one entry in the footer's social icon row.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// Settings holds site-wide configuration. PasscodeHash is the bcrypt hash
// of the admin passcode once it has been changed from the configured
// default; it is persisted with the document but stripped from API
// responses.
type Settings struct {
	SiteTitle    string `json:"siteTitle"`
	Favicon      string `json:"favicon"`
	PasscodeHash string `json:"passcodeHash,omitempty"`
}

// Category groups menu products. IDs are caller-assigned and unique
// within the document.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Product is one menu item. It carries either a legacy flat Price or a
// list of Sizes, never both required. Category references a Category.ID
// and may dangle; products with an orphaned category still render.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Price       string        `json:"price,omitempty"`
	Sizes       []ProductSize `json:"sizes,omitempty"`
}

// ProductSize is a size label with its price, e.g. {"12oz", "4.50"}.
type ProductSize struct {
	Size  string `json:"size"`
	Price string `json:"price"`
}

// DisplayPrice resolves the price shown on the menu: the cheapest size
// prefixed with "From" when sizes are present, else the flat price.
func (p Product) DisplayPrice() string {
	if len(p.Sizes) == 0 {
		return p.Price
	}
	best := p.Sizes[0]
	bestVal, bestOK := parsePrice(best.Price)
	for _, s := range p.Sizes[1:] {
		v, ok := parsePrice(s.Price)
		if !ok {
			continue
		}
		if !bestOK || v < bestVal {
			best, bestVal, bestOK = s, v, true
		}
	}
	return "From " + best.Price
}

// parsePrice reads a numeric price string ("4.50" gives 4.5).
func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Section returns the named top-level field. The second return is false
// for unknown section names.
func (d *Document) Section(name string) (any, bool) {
	switch name {
	case SectionLogo:
		return d.Logo, true
	case SectionHero:
		return d.Hero, true
	case SectionAbout:
		return d.About, true
	case SectionContact:
		return d.Contact, true
	case SectionGallery:
		return d.Gallery, true
	case SectionFooter:
		return d.Footer, true
	case SectionSettings:
		return d.Settings, true
	case SectionCategories:
		return d.Categories, true
	case SectionProducts:
		return d.Products, true
	}
	return nil, false
}

// MergeSection unmarshals a partial section payload onto the current
// section value. Because decoding overwrites only the fields present in
// the JSON, unsupplied fields keep their current values: a payload of
// {"title":"X"} never wipes the subtitle. Collection sections (gallery
// images, social links, categories, products) are replaced wholesale, as
// JSON arrays have no per-element merge.
func (d *Document) MergeSection(name string, raw json.RawMessage) error {
	var err error
	switch name {
	case SectionLogo:
		err = json.Unmarshal(raw, &d.Logo)
	case SectionHero:
		err = json.Unmarshal(raw, &d.Hero)
	case SectionAbout:
		err = json.Unmarshal(raw, &d.About)
	case SectionContact:
		err = json.Unmarshal(raw, &d.Contact)
	case SectionGallery:
		err = json.Unmarshal(raw, &d.Gallery)
	case SectionFooter:
		err = json.Unmarshal(raw, &d.Footer)
	case SectionSettings:
		err = json.Unmarshal(raw, &d.Settings)
	case SectionCategories:
		err = json.Unmarshal(raw, &d.Categories)
	case SectionProducts:
		err = json.Unmarshal(raw, &d.Products)
	default:
		return ErrUnknownSection
	}
	if err != nil {
		return &ValidationError{Field: name, Message: "malformed section payload: " + err.Error()}
	}
	return nil
}

// Clone returns a deep copy of the document. Used by the store's memory
// tier and by handlers that strip private fields before responding.
func (d *Document) Clone() *Document {
	c := *d
	c.Hero.Slides = cloneSlice(d.Hero.Slides)
	c.Gallery.Images = cloneSlice(d.Gallery.Images)
	c.Footer.SocialLinks = cloneSlice(d.Footer.SocialLinks)
	c.Categories = cloneSlice(d.Categories)
	c.Products = cloneSlice(d.Products)
	for i := range c.Products {
		c.Products[i].Sizes = cloneSlice(c.Products[i].Sizes)
	}
	return &c
}

// cloneSlice copies a slice, preserving nil vs empty so a normalized
// document stays normalized after cloning.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
