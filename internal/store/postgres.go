// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"aulait/internal/models"
)

// documentKey is the content_type row holding the whole serialized
// document. It is written first and is authoritative on read; per-section
// rows are replicas for inspection and legacy readers.
const documentKey = "__document"

// PostgresAdapter stores the document in the content table: one row per
// section plus the whole-document row, each keyed by a unique
// content_type string with upsert semantics.
type PostgresAdapter struct {
	db *sql.DB
}

// NewPostgresAdapter returns a row-store adapter backed by the given
// connection pool.
func NewPostgresAdapter(db *sql.DB) *PostgresAdapter {
	return &PostgresAdapter{db: db}
}

func (a *PostgresAdapter) Tier() Tier { return TierPostgres }

// Get reads the authoritative whole-document row. Returns ErrNotFound
// when the table holds no document yet.
func (a *PostgresAdapter) Get(ctx context.Context) (*models.Document, error) {
	var raw []byte
	err := a.db.QueryRowContext(ctx,
		`SELECT content_data FROM content WHERE content_type = $1`, documentKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable(TierPostgres, err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode content row: %w", err)
	}
	return &doc, nil
}

// Set upserts the whole-document row and every section row in one
// transaction, so a failed replication never leaves section rows newer
// than the document row.
func (a *PostgresAdapter) Set(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return &StoreError{Kind: KindWriteFailed, Tier: TierPostgres, Err: err}
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return classify(TierPostgres, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO content (content_type, content_data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (content_type)
		DO UPDATE SET content_data = EXCLUDED.content_data, updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return classify(TierPostgres, err)
	}
	defer stmt.Close()

	// Whole document first; it is what Get trusts.
	if _, err := stmt.ExecContext(ctx, documentKey, raw); err != nil {
		return classify(TierPostgres, err)
	}

	for _, name := range models.SectionNames {
		section, _ := doc.Section(name)
		sectionRaw, err := json.Marshal(section)
		if err != nil {
			return &StoreError{Kind: KindWriteFailed, Tier: TierPostgres, Err: err}
		}
		if _, err := stmt.ExecContext(ctx, name, sectionRaw); err != nil {
			return classify(TierPostgres, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return classify(TierPostgres, err)
	}
	return nil
}
