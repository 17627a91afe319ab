// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// Verify checks a presented admin passcode. Once the passcode has been
// changed through the API the stored bcrypt hash is authoritative;
// before that, the configured passcode is compared in constant time.
func (h *Content) Verify(ctx context.Context, passcode string) bool {
	doc, _ := h.store.Read(ctx)
	if hash := doc.Settings.PasscodeHash; hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.passcode), []byte(passcode)) == 1
}

// VerifyPasscode answers whether the presented passcode is valid. Used
// by the admin editor's login screen.
func (h *Content) VerifyPasscode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Passcode string `json:"passcode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Passcode == "" {
		respondError(w, http.StatusBadRequest, "Passcode is required", "")
		return
	}
	if !h.Verify(r.Context(), body.Passcode) {
		respondError(w, http.StatusUnauthorized, "Invalid passcode", "")
		return
	}
	respondData(w, map[string]bool{"valid": true})
}

// ChangePasscode replaces the admin passcode. The new passcode is stored
// as a bcrypt hash in the document settings, so it survives restarts and
// follows the document through every storage tier.
func (h *Content) ChangePasscode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentPasscode string `json:"currentPasscode"`
		NewPasscode     string `json:"newPasscode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid passcode data", "")
		return
	}
	if len(body.NewPasscode) < 6 {
		respondError(w, http.StatusBadRequest, "New passcode must be at least 6 characters", "")
		return
	}
	if !h.Verify(r.Context(), body.CurrentPasscode) {
		respondError(w, http.StatusUnauthorized, "Current passcode is incorrect", "")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPasscode), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update passcode", "")
		return
	}

	doc, _ := h.store.Read(r.Context())
	doc.Settings.PasscodeHash = string(hash)

	report, ok := h.persist(w, r, doc)
	if !ok {
		return
	}
	respondWrite(w, http.StatusOK, nil, report, "Passcode updated successfully")
}
