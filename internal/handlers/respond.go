// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON content API: the HTTP facade over
// the content store, plus admin media upload and passcode management.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"aulait/internal/store"
)

// response is the envelope every API endpoint answers with.
type response struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     string     `json:"error,omitempty"`
	Message   string     `json:"message,omitempty"`
	Storage   store.Tier `json:"storage,omitempty"`
	Degraded  bool       `json:"degraded,omitempty"`
	Results   any        `json:"results,omitempty"`
	Timestamp string     `json:"timestamp"`
}

// writeJSON serializes the envelope, stamping the response time.
func writeJSON(w http.ResponseWriter, status int, resp response) {
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

// respondData answers 200 with a payload.
func respondData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

// respondError answers with a failure envelope.
func respondError(w http.ResponseWriter, status int, errMsg, message string) {
	writeJSON(w, status, response{Success: false, Error: errMsg, Message: message})
}

// respondWrite answers a successful write, always naming the tier that
// absorbed it. A write that degraded past the primary tier says so,
// never a bare success.
func respondWrite(w http.ResponseWriter, status int, data any, report store.WriteReport, message string) {
	resp := response{
		Success: true,
		Data:    data,
		Storage: report.Tier,
		Message: message,
	}
	if report.Degraded() {
		resp.Degraded = true
		resp.Message = "Content saved to " + string(report.Tier) + " tier only; primary storage unavailable"
	}
	writeJSON(w, status, resp)
}
