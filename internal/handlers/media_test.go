// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestMediaEndpointsAnswer501WhenUnconfigured(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/media", nil, true)
	if rec.Code != http.StatusNotImplemented {
		t.Errorf("upload status = %d, want 501", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/api/admin/media",
		map[string]string{"url": "https://cdn.example.com/x.jpg"}, true)
	if rec.Code != http.StatusNotImplemented {
		t.Errorf("delete status = %d, want 501", rec.Code)
	}
}

func TestMediaKeyShape(t *testing.T) {
	key := mediaKey("Latte Art.JPG")
	if !strings.HasPrefix(key, "media/") {
		t.Errorf("key = %q, want media/ prefix", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key = %q, want lowercased extension", key)
	}
	if strings.Contains(key, " ") {
		t.Errorf("key = %q, want no spaces", key)
	}
}
