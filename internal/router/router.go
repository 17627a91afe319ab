// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// content API. Reads are public; every mutating route requires the admin
// passcode and is rate limited.
package router

import (
	"github.com/go-chi/chi/v5"

	"aulait/internal/handlers"
	"aulait/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(content *handlers.Content, media *handlers.Media, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", content.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/content", func(r chi.Router) {
			// Public reads.
			r.Get("/", content.GetAll)
			r.Get("/categories/all", content.ListCategories)
			r.Get("/products/all", content.ListProducts)
			r.Get("/gallery/all", content.GetGallery)
			r.Get("/settings/all", content.GetSettings)
			r.Get("/{section}", content.GetSection)

			// Mutations require the passcode. The limiter wraps the
			// passcode check so failed guesses count against the
			// client's budget.
			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Use(middleware.RequirePasscode(content))

				r.Post("/bulk", content.BulkUpdate)

				// Static sub-resources must register before the
				// /{section} wildcard pair below.
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
			r.Use(limiter.Middleware)

			// Login probe carries the passcode in the body, not the header.
			r.Post("/verify", content.VerifyPasscode)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePasscode(content))

				r.Post("/passcode", content.ChangePasscode)
				r.Post("/media", media.Upload)
				r.Delete("/media", media.Delete)
			})
		})
	})

	return r
}
