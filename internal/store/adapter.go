// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists the site content document across a chain of
// pluggable backend adapters with a fixed fallback order. Any adapter may
// be absent at runtime; reads degrade tier by tier down to the schema
// default, and writes fall through so an edit is never lost.
package store

import (
	"context"

	"aulait/internal/models"
)

// Tier identifies an adapter's position in the fallback priority order.
type Tier string

const (
	TierFile     Tier = "file"
	TierPostgres Tier = "postgres"
	TierValkey   Tier = "valkey"
	TierMemory   Tier = "memory"

	// TierDefault is reported when no adapter held a document and the
	// schema default was synthesized instead.
	TierDefault Tier = "default"
)

// Adapter is one pluggable content backend. Get returns ErrNotFound when
// the adapter is reachable but holds no document. Set either fully
// succeeds or reports a *StoreError; adapters never partially write.
type Adapter interface {
	Tier() Tier
	Get(ctx context.Context) (*models.Document, error)
	Set(ctx context.Context, doc *models.Document) error
}
