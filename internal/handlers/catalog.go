// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"

	"aulait/internal/models"
)

// Catalog endpoints mutate the collection sections of the document:
// categories, products, gallery images, and the settings key/value pairs.
// Each mutation is read-modify-write on the whole document; the store
// serializes writers, so concurrent edits resolve last-write-wins.

// ListCategories returns every category.
func (h *Content) ListCategories(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.store.Read(r.Context())
	respondData(w, doc.Categories)
}

// ListProducts returns every product.
func (h *Content) ListProducts(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.store.Read(r.Context())
	respondData(w, doc.Products)
}

// GetGallery returns the gallery section.
func (h *Content) GetGallery(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.store.Read(r.Context())
	respondData(w, doc.Gallery)
}

// GetSettings returns the site settings, minus the passcode hash.
func (h *Content) GetSettings(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.store.Read(r.Context())
	respondData(w, sanitize(doc).Settings)
}

// AddCategory appends a new category. Duplicate IDs are rejected.
func (h *Content) AddCategory(w http.ResponseWriter, r *http.Request) {
	var cat models.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category data", "")
		return
	}
	if cat.ID == "" || cat.Name == "" {
		respondError(w, http.StatusBadRequest, "Category id and name are required", "")
		return
	}

	doc, _ := h.store.Read(r.Context())
	if slices.ContainsFunc(doc.Categories, func(c models.Category) bool { return c.ID == cat.ID }) {
		respondError(w, http.StatusConflict,
			fmt.Sprintf("Category with id %q already exists", cat.ID), "")
		return
	}
	doc.Categories = append(doc.Categories, cat)

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusCreated, cat, report, "Category added successfully")
}

// UpdateCategory replaces the category with the given id.
func (h *Content) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var cat models.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category data", "")
		return
	}
	if cat.Name == "" {
		respondError(w, http.StatusBadRequest, "Category name is required", "")
		return
	}
	cat.ID = id

	doc, _ := h.store.Read(r.Context())
	i := slices.IndexFunc(doc.Categories, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		respondError(w, http.StatusNotFound,
			fmt.Sprintf("Category with id %q not found", id), "")
		return
	}
	doc.Categories[i] = cat

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusOK, cat, report, "Category updated successfully")
}

// DeleteCategory removes a category. Products referencing it are left in
// place; an orphaned category reference is tolerated by the menu.
func (h *Content) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, _ := h.store.Read(r.Context())
	i := slices.IndexFunc(doc.Categories, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		respondError(w, http.StatusNotFound,
			fmt.Sprintf("Category with id %q not found", id), "")
		return
	}
	doc.Categories = slices.Delete(doc.Categories, i, i+1)

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusOK, nil, report, "Category deleted successfully")
}

// AddProduct appends a new product. A product needs an id, a name, and a
// price: either the flat price field or at least one size.
func (h *Content) AddProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product data", "")
		return
	}
	if p.ID == "" || p.Name == "" {
		respondError(w, http.StatusBadRequest, "Product id and name are required", "")
		return
	}
	if p.Price == "" && len(p.Sizes) == 0 {
		respondError(w, http.StatusBadRequest, "Product price or sizes are required", "")
		return
	}

	doc, _ := h.store.Read(r.Context())
	if slices.ContainsFunc(doc.Products, func(x models.Product) bool { return x.ID == p.ID }) {
		respondError(w, http.StatusConflict,
			fmt.Sprintf("Product with id %q already exists", p.ID), "")
		return
	}
	doc.Products = append(doc.Products, p)

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusCreated, p, report, "Product added successfully")
}

// UpdateProduct replaces the product with the given id.
func (h *Content) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product data", "")
		return
	}
	if p.Name == "" {
		respondError(w, http.StatusBadRequest, "Product name is required", "")
		return
	}
	p.ID = id

	doc, _ := h.store.Read(r.Context())
	i := slices.IndexFunc(doc.Products, func(x models.Product) bool { return x.ID == id })
	if i < 0 {
		respondError(w, http.StatusNotFound,
			fmt.Sprintf("Product with id %q not found", id), "")
		return
	}
	doc.Products[i] = p

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusOK, p, report, "Product updated successfully")
}

// DeleteProduct removes a product by id.
func (h *Content) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, _ := h.store.Read(r.Context())
	i := slices.IndexFunc(doc.Products, func(x models.Product) bool { return x.ID == id })
	if i < 0 {
		respondError(w, http.StatusNotFound,
			fmt.Sprintf("Product with id %q not found", id), "")
		return
	}
	doc.Products = slices.Delete(doc.Products, i, i+1)

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusOK, nil, report, "Product deleted successfully")
}

// AddGalleryImage appends an image URL to the gallery.
func (h *Content) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
		respondError(w, http.StatusBadRequest, "Image url is required", "")
		return
	}

	doc, _ := h.store.Read(r.Context())
	doc.Gallery.Images = append(doc.Gallery.Images, body.URL)

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusCreated, doc.Gallery, report, "Image added to gallery")
}

// DeleteGalleryImage removes an image by its URL-escaped URL. Gallery
// images have no ids of their own, so the URL is the identifier.
func (h *Content) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	imageURL, err := url.PathUnescape(raw)
	if err != nil {
		imageURL = raw
	}

	doc, _ := h.store.Read(r.Context())
	i := slices.Index(doc.Gallery.Images, imageURL)
	if i < 0 {
		respondError(w, http.StatusNotFound, "Gallery image not found", "")
		return
	}
	doc.Gallery.Images = slices.Delete(doc.Gallery.Images, i, i+1)

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusOK, doc.Gallery, report, "Image removed from gallery")
}

// settingsKeys maps the mutable settings keys onto the document.
var settingsKeys = map[string]func(*models.Settings, string){
	"siteTitle": func(s *models.Settings, v string) { s.SiteTitle = v },
	"favicon":   func(s *models.Settings, v string) { s.Favicon = v },
}

// UpdateSetting sets one site-wide setting by key.
func (h *Content) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Key == "" {
		respondError(w, http.StatusBadRequest, "Setting key is required", "")
		return
	}
	set, ok := settingsKeys[body.Key]
	if !ok {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown setting key: %s", body.Key), "")
		return
	}

	doc, _ := h.store.Read(r.Context())
	set(&doc.Settings, body.Value)

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusOK, sanitize(doc).Settings, report, "Setting updated successfully")
}
