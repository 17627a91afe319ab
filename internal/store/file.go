// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aulait/internal/models"
)

// FileAdapter stores the whole document as one pretty-printed JSON file
// on a local persistent volume. It is the durable primary tier when no
// database is configured.
type FileAdapter struct {
	path string
}

// NewFileAdapter returns a file adapter writing to the given path. The
// parent directory is created on first write.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

func (a *FileAdapter) Tier() Tier { return TierFile }

// Get reads and decodes the content file. Returns ErrNotFound when the
// file does not exist yet.
func (a *FileAdapter) Get(_ context.Context) (*models.Document, error) {
	raw, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable(TierFile, err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode content file %s: %w", a.path, err)
	}
	return &doc, nil
}

// Set serializes the document and writes it atomically: the payload goes
// to a temp file in the same directory, then replaces the target with a
// rename so a crash never leaves a half-written document behind.
func (a *FileAdapter) Set(_ context.Context, doc *models.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StoreError{Kind: KindWriteFailed, Tier: TierFile, Err: err}
	}

	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return unavailable(TierFile, err)
	}

	tmp, err := os.CreateTemp(dir, ".content-*.json")
	if err != nil {
		return unavailable(TierFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StoreError{Kind: KindWriteFailed, Tier: TierFile, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StoreError{Kind: KindWriteFailed, Tier: TierFile, Err: err}
	}

	if err := os.Rename(tmpName, a.path); err != nil {
		os.Remove(tmpName)
		return &StoreError{Kind: KindWriteFailed, Tier: TierFile, Err: err}
	}
	return nil
}
