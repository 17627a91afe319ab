// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Handlers are exercised through a chi router wired the same way as the
// real one, over a file plus memory tier store, so no external services
// are needed.
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"aulait/internal/middleware"
	"aulait/internal/models"
	"aulait/internal/store"
)

const testPasscode = "admin123"

// testEnv holds the handler stack under test.
type testEnv struct {
	router  chi.Router
	store   *store.ContentStore
	content *Content
}

// newTestEnv builds a content handler over a file+memory tier store
// rooted in a temp dir, with routes wired like the production router.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cs := store.New([]store.Adapter{
		store.NewFileAdapter(filepath.Join(t.TempDir(), "content.json")),
		store.NewMemoryAdapter(),
	})
	content := NewContent(cs, testPasscode)
	media := NewMedia(nil)

	r := chi.NewRouter()
	r.Get("/health", content.Health)
	r.Route("/api", func(r chi.Router) {
		r.Route("/content", func(r chi.Router) {
			r.Get("/", content.GetAll)
			r.Get("/categories/all", content.ListCategories)
			r.Get("/products/all", content.ListProducts)
			r.Get("/gallery/all", content.GetGallery)
			r.Get("/settings/all", content.GetSettings)
			r.Get("/{section}", content.GetSection)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePasscode(content))

				r.Post("/bulk", content.BulkUpdate)
				r.Post("/categories", content.AddCategory)
				r.Put("/categories/{id}", content.UpdateCategory)
				r.Delete("/categories/{id}", content.DeleteCategory)
				r.Post("/products", content.AddProduct)
				r.Put("/products/{id}", content.UpdateProduct)
				r.Delete("/products/{id}", content.DeleteProduct)
				r.Post("/gallery", content.AddGalleryImage)
				r.Delete("/gallery/{id}", content.DeleteGalleryImage)
				r.Post("/settings", content.UpdateSetting)
				r.Post("/{section}", content.UpdateSection)
				r.Put("/{section}", content.UpdateSection)
			})
		})
		r.Route("/admin", func(r chi.Router) {
			r.Post("/verify", content.VerifyPasscode)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePasscode(content))
				r.Post("/passcode", content.ChangePasscode)
				r.Post("/media", media.Upload)
				r.Delete("/media", media.Delete)
			})
		})
	})

	return &testEnv{router: r, store: cs, content: content}
}

// do performs a request against the test router. A non-nil body is JSON
// encoded; authed requests carry the test passcode header.
func (e *testEnv) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	passcode := ""
	if authed {
		passcode = testPasscode
	}
	return e.doWithPasscode(t, method, path, body, passcode)
}

// doWithPasscode performs a request with an explicit passcode header.
func (e *testEnv) doWithPasscode(t *testing.T, method, path string, body any, passcode string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if passcode != "" {
		req.Header.Set(middleware.PasscodeHeader, passcode)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response envelope.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return resp
}

// seedDocument writes a populated document straight into the store.
func (e *testEnv) seedDocument(t *testing.T) *models.Document {
	t.Helper()

	doc := models.DefaultDocument()
	doc.Hero.Title = "Morning Roast"
	doc.Hero.Subtitle = "Fresh every day"
	if _, err := e.store.Write(t.Context(), doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return doc
}
