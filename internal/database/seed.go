package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"aulait/internal/models"
)

// Seed populates the database with initial development data: the default
// content document, inserted only when the content table is empty so the
// admin editor always has something to edit locally.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM content").Scan(&count); err != nil {
		return fmt.Errorf("seed check content: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	doc := models.DefaultDocument()
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("seed marshal document: %w", err)
	}

	if _, err := db.Exec(`
		INSERT INTO content (content_type, content_data)
		VALUES ($1, $2)
		ON CONFLICT (content_type) DO NOTHING
	`, "__document", raw); err != nil {
		return fmt.Errorf("seed insert document: %w", err)
	}

	slog.Info("database seeded with default content document")
	return nil
}
