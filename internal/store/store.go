// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"aulait/internal/models"
)

// DefaultTimeout bounds each adapter call that may cross a process or
// network boundary. A hung backend must not stall the caller.
const DefaultTimeout = 3 * time.Second

// ContentStore orchestrates the adapter chain. Reads probe tiers in
// priority order and fall back silently; writes land on the first tier
// that accepts them and are mirrored into the memory tier so an edit is
// never lost from the editor's perspective.
type ContentStore struct {
	tiers   []Adapter
	timeout time.Duration
}

// Option configures a ContentStore.
type Option func(*ContentStore)

// WithTimeout overrides the per-adapter operation timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *ContentStore) { s.timeout = d }
}

// New builds a content store over the given adapters in priority order.
// The caller appends the memory adapter last; the store works with any
// non-empty chain, down to the memory tier alone.
func New(tiers []Adapter, opts ...Option) *ContentStore {
	s := &ContentStore{tiers: tiers, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WriteReport tells the caller what actually happened to a write: which
// tier absorbed it, whether the primary tier is healthy, and every tier
// that was attempted. The admin editor surfaces this, so a degraded
// write is never presented as a bare success.
type WriteReport struct {
	Tier           Tier   `json:"tier"`
	PrimaryHealthy bool   `json:"primaryHealthy"`
	Attempted      []Tier `json:"attempted"`
}

// Degraded reports whether the write missed the primary tier.
func (r WriteReport) Degraded() bool { return !r.PrimaryHealthy }

// Read probes the tiers in priority order and returns the first
// document that any adapter serves, normalized into the current shape.
// Adapter failures degrade silently to the next tier. When every tier is
// empty or unavailable the schema default is synthesized and TierDefault
// is reported, so callers always receive a complete document.
func (s *ContentStore) Read(ctx context.Context) (*models.Document, Tier) {
	for _, adapter := range s.tiers {
		doc, err := s.get(ctx, adapter)
		if err == nil {
			doc.Normalize()
			slog.Debug("content read", "tier", adapter.Tier())
			return doc, adapter.Tier()
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		slog.Warn("content tier degraded on read",
			"tier", adapter.Tier(),
			"error", err,
		)
	}

	slog.Info("content read served from schema default")
	return models.DefaultDocument(), TierDefault
}

// Write persists a complete, normalized document. Each configured tier
// is attempted at most once, in priority order, with a bounded timeout;
// no hidden retries that could reorder writes. The first accepting tier
// absorbs the write; the memory tier is then write-through updated
// regardless, so the document survives in-process even when every
// durable backend is down. Only when no tier at all accepts does Write
// fail, with KindAllTiersExhausted.
func (s *ContentStore) Write(ctx context.Context, doc *models.Document) (WriteReport, error) {
	report := WriteReport{Tier: "", Attempted: make([]Tier, 0, len(s.tiers))}

	var absorbed Adapter
	for i, adapter := range s.tiers {
		report.Attempted = append(report.Attempted, adapter.Tier())

		err := s.set(ctx, adapter, doc)
		if err == nil {
			absorbed = adapter
			report.Tier = adapter.Tier()
			report.PrimaryHealthy = i == 0
			break
		}

		slog.Warn("content tier rejected write",
			"tier", adapter.Tier(),
			"error", err,
		)
	}

	if absorbed == nil {
		err := &StoreError{Kind: KindAllTiersExhausted, Attempted: report.Attempted}
		slog.Error("content write failed on every tier", "attempted", joinTiers(report.Attempted))
		return report, err
	}

	// Mirror into the memory tier so a later fallback read still sees
	// this write even if the absorbing backend goes away.
	if mem := s.memoryTier(); mem != nil && mem != absorbed {
		if err := s.set(ctx, mem, doc); err != nil {
			slog.Warn("memory write-through failed", "error", err)
		}
	}

	if report.Degraded() {
		slog.Warn("content write degraded",
			"tier", report.Tier,
			"attempted", joinTiers(report.Attempted),
		)
	} else {
		slog.Debug("content write", "tier", report.Tier)
	}
	return report, nil
}

// get runs one adapter read under the operation timeout.
func (s *ContentStore) get(ctx context.Context, a Adapter) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return a.Get(ctx)
}

// set runs one adapter write under the operation timeout.
func (s *ContentStore) set(ctx context.Context, a Adapter, doc *models.Document) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return a.Set(ctx, doc)
}

// memoryTier returns the memory adapter in the chain, if present.
func (s *ContentStore) memoryTier() Adapter {
	for _, a := range s.tiers {
		if a.Tier() == TierMemory {
			return a
		}
	}
	return nil
}

// Tiers lists the configured tier order. Used for startup logging and
// the health endpoint.
func (s *ContentStore) Tiers() []Tier {
	out := make([]Tier, len(s.tiers))
	for i, a := range s.tiers {
		out[i] = a.Tier()
	}
	return out
}
