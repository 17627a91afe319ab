// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"aulait/internal/models"
)

func TestFileAdapterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	a := NewFileAdapter(path)
	ctx := context.Background()

	in := testDoc("file round trip")
	if err := a.Set(ctx, in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	out, err := a.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Hero.Title != "file round trip" {
		t.Errorf("title: got %q", out.Hero.Title)
	}
	if !reflect.DeepEqual(out.Contact, in.Contact) {
		t.Errorf("contact: got %+v, want %+v", out.Contact, in.Contact)
	}
}

func TestFileAdapterMissingFile(t *testing.T) {
	a := NewFileAdapter(filepath.Join(t.TempDir(), "nope.json"))

	_, err := a.Get(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileAdapterCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "content.json")
	a := NewFileAdapter(path)

	if err := a.Set(context.Background(), testDoc("nested")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("content file not created: %v", err)
	}
}

func TestFileAdapterPrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	a := NewFileAdapter(path)

	if err := a.Set(context.Background(), testDoc("pretty")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(raw), "\n  ") {
		t.Error("content file should be indented JSON")
	}
	if !json.Valid(raw) {
		t.Error("content file is not valid JSON")
	}
}

func TestFileAdapterOverwriteIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	a := NewFileAdapter(path)
	ctx := context.Background()

	in := testDoc("idempotent")
	if err := a.Set(ctx, in); err != nil {
		t.Fatalf("first Set: %v", err)
	}
	first, _ := os.ReadFile(path)

	if err := a.Set(ctx, in); err != nil {
		t.Fatalf("second Set: %v", err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Error("identical writes produced different file contents")
	}
}

func TestFileAdapterCorruptFileDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}

	a := NewFileAdapter(path)
	_, err := a.Get(context.Background())
	if err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("corrupt file must not masquerade as absent content")
	}
}

func TestMemoryAdapterIsolation(t *testing.T) {
	a := NewMemoryAdapter()
	ctx := context.Background()

	if _, err := a.Get(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatal("fresh memory adapter must report ErrNotFound")
	}

	in := testDoc("cached")
	in.Products = []models.Product{{ID: "1", Name: "Latte"}}
	if err := a.Set(ctx, in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Mutating the caller's document must not leak into the cache.
	in.Products[0].Name = "Mutated"

	out, err := a.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Products[0].Name != "Latte" {
		t.Error("memory adapter shares state with caller")
	}

	// Mutating the returned copy must not change the cache either.
	out.Products[0].Name = "Also Mutated"
	again, _ := a.Get(ctx)
	if again.Products[0].Name != "Latte" {
		t.Error("memory adapter returns shared copies")
	}
}
