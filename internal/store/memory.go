// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"sync"

	"aulait/internal/models"
)

// MemoryAdapter is the last-resort in-process cache tier and the
// write-through safety net. It is synchronous, guarded by a single
// mutex per document, and never the system of record; its contents do
// not survive a restart.
type MemoryAdapter struct {
	mu  sync.Mutex
	doc *models.Document
}

// NewMemoryAdapter returns an empty memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (a *MemoryAdapter) Tier() Tier { return TierMemory }

// Get returns a deep copy of the cached document, or ErrNotFound when
// nothing has been written yet.
func (a *MemoryAdapter) Get(_ context.Context) (*models.Document, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.doc == nil {
		return nil, ErrNotFound
	}
	return a.doc.Clone(), nil
}

// Set stores a deep copy of the document. It cannot fail.
func (a *MemoryAdapter) Set(_ context.Context, doc *models.Document) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.doc = doc.Clone()
	return nil
}
