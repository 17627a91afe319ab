// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
)

// PasscodeHeader carries the shared admin passcode on mutating requests.
const PasscodeHeader = "X-Admin-Passcode"

// PasscodeVerifier checks a presented admin passcode. Implemented by the
// handlers package, which knows both the configured passcode and any
// stored replacement hash.
type PasscodeVerifier interface {
	Verify(ctx context.Context, passcode string) bool
}

// RequirePasscode rejects requests whose passcode header is missing or
// wrong. Applied to every mutating content route and the media routes.
func RequirePasscode(v PasscodeVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passcode := r.Header.Get(PasscodeHeader)
			if passcode == "" || !v.Verify(r.Context(), passcode) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
