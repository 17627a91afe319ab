// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals an adapter holds no content document. Absence is
// an expected condition, not a failure; the store falls through to the
// next tier.
var ErrNotFound = errors.New("content not found")

// ErrorKind classifies adapter and store failures.
type ErrorKind string

const (
	// KindUnavailable means the adapter could not be reached at all:
	// not configured, connection refused, or timed out. Expected, and
	// handled by fallback.
	KindUnavailable ErrorKind = "unavailable"

	// KindWriteFailed means the adapter was reachable but rejected the
	// write.
	KindWriteFailed ErrorKind = "write_failed"

	// KindAllTiersExhausted means no adapter, including the last-resort
	// memory tier, could serve the operation. Fatal for that call.
	KindAllTiersExhausted ErrorKind = "all_tiers_exhausted"
)

// StoreError is the error type reported by adapters and by the store
// when every tier has been exhausted.
type StoreError struct {
	Kind      ErrorKind
	Tier      Tier
	Attempted []Tier
	Err       error
}

func (e *StoreError) Error() string {
	switch {
	case e.Kind == KindAllTiersExhausted:
		return fmt.Sprintf("content store: all tiers exhausted (attempted %s)", joinTiers(e.Attempted))
	case e.Err != nil:
		return fmt.Sprintf("content store: %s tier %s: %v", e.Tier, e.Kind, e.Err)
	default:
		return fmt.Sprintf("content store: %s tier %s", e.Tier, e.Kind)
	}
}

func (e *StoreError) Unwrap() error { return e.Err }

// classify converts a raw adapter error into a StoreError, mapping
// timeouts and cancellation to KindUnavailable. A timed-out adapter says
// nothing about whether the data exists.
func classify(tier Tier, err error) *StoreError {
	kind := KindWriteFailed
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		kind = KindUnavailable
	}
	return &StoreError{Kind: kind, Tier: tier, Err: err}
}

// unavailable wraps an error as a connection-level failure.
func unavailable(tier Tier, err error) *StoreError {
	return &StoreError{Kind: KindUnavailable, Tier: tier, Err: err}
}

func joinTiers(tiers []Tier) string {
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
