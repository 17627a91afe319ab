// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"aulait/internal/models"
	"aulait/internal/store"
)

// Content serves the content API. All reads and writes go through the
// tiered content store; partial payloads are merged and normalized here,
// so the store only ever sees complete documents.
type Content struct {
	store    *store.ContentStore
	passcode string // configured shared admin passcode
}

// NewContent creates the content handler group.
func NewContent(cs *store.ContentStore, passcode string) *Content {
	return &Content{store: cs, passcode: passcode}
}

// GetAll returns the whole content document, synthesized from defaults
// when no backend holds anything yet.
func (h *Content) GetAll(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.store.Read(r.Context())
	respondData(w, sanitize(doc))
}

// GetSection returns a single top-level section. Answers 404 when the
// section name is unknown or the document has never been initialized.
func (h *Content) GetSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "section")

	doc, tier := h.store.Read(r.Context())
	if tier == store.TierDefault {
		respondError(w, http.StatusNotFound, "Content not found",
			fmt.Sprintf("No content found for type: %s", name))
		return
	}

	section, ok := sanitize(doc).Section(name)
	if !ok {
		respondError(w, http.StatusNotFound, "Content not found",
			fmt.Sprintf("No content found for type: %s", name))
		return
	}
	respondData(w, section)
}

// UpdateSection merges a partial section payload onto the current
// document and persists the result. Registered for both POST and PUT.
func (h *Content) UpdateSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "section")

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || len(raw) == 0 {
		respondError(w, http.StatusBadRequest, "Content data is required", "")
		return
	}

	doc, _ := h.store.Read(r.Context())
	// Only the passcode endpoint may touch the stored hash.
	keepHash := doc.Settings.PasscodeHash
	if err := doc.MergeSection(name, raw); err != nil {
		if errors.Is(err, models.ErrUnknownSection) {
			respondError(w, http.StatusNotFound, "Content not found",
				fmt.Sprintf("No content found for type: %s", name))
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid content data", err.Error())
		return
	}
	doc.Settings.PasscodeHash = keepHash

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	section, _ := sanitize(doc).Section(name)
	respondWrite(w, http.StatusOK, section, report, "Content updated successfully")
}

// BulkUpdate merges multiple section payloads onto the current document
// in one write. Sections that fail to merge are reported individually;
// the remaining sections are still applied, matching the section-by-
// section behavior editors expect from the bulk endpoint.
func (h *Content) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var updates map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil || len(updates) == 0 {
		respondError(w, http.StatusBadRequest, "Bulk update data is required", "")
		return
	}

	doc, _ := h.store.Read(r.Context())
	keepHash := doc.Settings.PasscodeHash

	type sectionResult struct {
		ContentType string `json:"contentType"`
		Success     bool   `json:"success"`
		Error       string `json:"error,omitempty"`
	}

	results := make([]sectionResult, 0, len(updates))
	applied := 0
	// Iterate sections in canonical order so results are deterministic.
	for _, name := range models.SectionNames {
		raw, present := updates[name]
		if !present {
			continue
		}
		delete(updates, name)
		if err := doc.MergeSection(name, raw); err != nil {
			results = append(results, sectionResult{ContentType: name, Success: false, Error: err.Error()})
			continue
		}
		applied++
		results = append(results, sectionResult{ContentType: name, Success: true})
	}
	// Anything left over is not a known section. Sorted so the results
	// order stays deterministic.
	leftover := make([]string, 0, len(updates))
	for name := range updates {
		leftover = append(leftover, name)
	}
	slices.Sort(leftover)
	for _, name := range leftover {
		results = append(results, sectionResult{ContentType: name, Success: false, Error: models.ErrUnknownSection.Error()})
	}
	doc.Settings.PasscodeHash = keepHash

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}

	resp := response{
		Success: true,
		Message: fmt.Sprintf("Bulk update completed: %d/%d sections updated successfully", applied, len(results)),
		Results: results,
		Storage: report.Tier,
	}
	if report.Degraded() {
		resp.Degraded = true
	}
	writeJSON(w, http.StatusOK, resp)
}

// persist normalizes, validates, and writes the document, mapping store
// failures onto the API error contract. Returns false when a response
// has already been written.
func (h *Content) persist(w http.ResponseWriter, r *http.Request, doc *models.Document) (store.WriteReport, bool) {
	doc.Normalize()
	if err := doc.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid content data", err.Error())
		return store.WriteReport{}, false
	}

	report, err := h.store.Write(r.Context(), doc)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Failed to save content", err.Error())
		return store.WriteReport{}, false
	}
	return report, true
}

// sanitize strips fields that must never leave the server, currently
// only the stored passcode hash.
func sanitize(doc *models.Document) *models.Document {
	if doc.Settings.PasscodeHash == "" {
		return doc
	}
	c := doc.Clone()
	c.Settings.PasscodeHash = ""
	return c
}

// Health answers the liveness probe with the configured tier order.
func (h *Content) Health(w http.ResponseWriter, _ *http.Request) {
	respondData(w, map[string]any{
		"status": "ok",
		"tiers":  h.store.Tiers(),
	})
}
