// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"aulait/internal/models"
)

const (
	// valkeyDocKey holds the whole serialized document, authoritative
	// for this tier.
	valkeyDocKey = "aulait:content"

	// valkeySectionPrefix namespaces the per-section replica keys.
	valkeySectionPrefix = "aulait:section:"
)

// ValkeyAdapter stores the document in a Valkey (Redis-compatible)
// key-value store: the whole document under one fixed key, replicated
// into per-section keys for independent retrieval. This tier is
// best-effort; no configured connection means degraded mode, not an
// error.
type ValkeyAdapter struct {
	client *redis.Client
}

// NewValkeyAdapter returns a key-value adapter backed by the given client.
func NewValkeyAdapter(client *redis.Client) *ValkeyAdapter {
	return &ValkeyAdapter{client: client}
}

func (a *ValkeyAdapter) Tier() Tier { return TierValkey }

// Get reads the whole-document key. Returns ErrNotFound on a missing key.
func (a *ValkeyAdapter) Get(ctx context.Context) (*models.Document, error) {
	raw, err := a.client.Get(ctx, valkeyDocKey).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable(TierValkey, err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode content key: %w", err)
	}
	return &doc, nil
}

// Set writes the whole-document key first, then replicates each section
// into its own key. Section replication is best-effort: the document key
// is authoritative, so a partial section failure is logged, not fatal.
func (a *ValkeyAdapter) Set(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return &StoreError{Kind: KindWriteFailed, Tier: TierValkey, Err: err}
	}

	if err := a.client.Set(ctx, valkeyDocKey, raw, 0).Err(); err != nil {
		return classify(TierValkey, err)
	}

	pipe := a.client.Pipeline()
	for _, name := range models.SectionNames {
		section, _ := doc.Section(name)
		sectionRaw, err := json.Marshal(section)
		if err != nil {
			return &StoreError{Kind: KindWriteFailed, Tier: TierValkey, Err: err}
		}
		pipe.Set(ctx, valkeySectionPrefix+name, sectionRaw, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("valkey section replication incomplete", "error", err)
	}
	return nil
}
