// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"aulait/internal/models"
)

// fakeAdapter is a scriptable adapter for orchestrator tests.
type fakeAdapter struct {
	tier    Tier
	doc     *models.Document
	getErr  error
	setErr  error
	sets    int
	lastSet *models.Document
}

func (f *fakeAdapter) Tier() Tier { return f.tier }

func (f *fakeAdapter) Get(_ context.Context) (*models.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.doc == nil {
		return nil, ErrNotFound
	}
	return f.doc.Clone(), nil
}

func (f *fakeAdapter) Set(_ context.Context, doc *models.Document) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.lastSet = doc.Clone()
	f.doc = f.lastSet
	return nil
}

// hangingAdapter blocks until its context expires.
type hangingAdapter struct{ tier Tier }

func (h *hangingAdapter) Tier() Tier { return h.tier }
func (h *hangingAdapter) Get(ctx context.Context) (*models.Document, error) {
	<-ctx.Done()
	return nil, unavailable(h.tier, ctx.Err())
}
func (h *hangingAdapter) Set(ctx context.Context, _ *models.Document) error {
	<-ctx.Done()
	return unavailable(h.tier, ctx.Err())
}

func testDoc(title string) *models.Document {
	doc := models.DefaultDocument()
	doc.Hero.Title = title
	return doc
}

func TestReadFallbackOrder(t *testing.T) {
	primary := &fakeAdapter{tier: TierFile, getErr: unavailable(TierFile, errors.New("disk gone"))}
	secondary := &fakeAdapter{tier: TierPostgres, doc: testDoc("from postgres")}
	mem := &fakeAdapter{tier: TierMemory, doc: testDoc("from memory")}

	s := New([]Adapter{primary, secondary, mem})

	doc, tier := s.Read(context.Background())
	if tier != TierPostgres {
		t.Errorf("tier: got %s, want %s", tier, TierPostgres)
	}
	if doc.Hero.Title != "from postgres" {
		t.Errorf("document came from wrong tier: %q", doc.Hero.Title)
	}
}

func TestReadSkipsEmptyTiers(t *testing.T) {
	empty := &fakeAdapter{tier: TierFile}
	mem := &fakeAdapter{tier: TierMemory, doc: testDoc("cached")}

	s := New([]Adapter{empty, mem})

	doc, tier := s.Read(context.Background())
	if tier != TierMemory {
		t.Errorf("tier: got %s, want %s", tier, TierMemory)
	}
	if doc.Hero.Title != "cached" {
		t.Errorf("unexpected document: %q", doc.Hero.Title)
	}
}

func TestReadSynthesizesDefault(t *testing.T) {
	s := New([]Adapter{
		&fakeAdapter{tier: TierFile},
		&fakeAdapter{tier: TierMemory},
	})

	doc, tier := s.Read(context.Background())
	if tier != TierDefault {
		t.Errorf("tier: got %s, want %s", tier, TierDefault)
	}
	if doc.Hero.Title == "" {
		t.Error("default document must carry placeholder hero title")
	}
	if len(doc.Products) != 0 || len(doc.Categories) != 0 {
		t.Error("default document collections must be empty")
	}
	if doc.Products == nil || doc.Categories == nil {
		t.Error("default document collections must be non-nil")
	}
}

func TestWriteThenRead(t *testing.T) {
	primary := &fakeAdapter{tier: TierFile}
	mem := &fakeAdapter{tier: TierMemory}
	s := New([]Adapter{primary, mem})

	in := testDoc("written")
	report, err := s.Write(context.Background(), in)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if report.Tier != TierFile || !report.PrimaryHealthy {
		t.Errorf("report: %+v", report)
	}

	doc, tier := s.Read(context.Background())
	if tier != TierFile {
		t.Errorf("read tier: got %s, want %s", tier, TierFile)
	}
	if !reflect.DeepEqual(doc, in) {
		t.Errorf("read != write:\n got %+v\nwant %+v", doc, in)
	}
}

func TestWriteDegradesToMemory(t *testing.T) {
	primary := &fakeAdapter{tier: TierFile, setErr: unavailable(TierFile, errors.New("read-only fs"))}
	mem := &fakeAdapter{tier: TierMemory}
	s := New([]Adapter{primary, mem})

	in := testDoc("survives")
	report, err := s.Write(context.Background(), in)
	if err != nil {
		t.Fatalf("degraded write should still succeed: %v", err)
	}
	if report.Tier != TierMemory {
		t.Errorf("absorbing tier: got %s, want %s", report.Tier, TierMemory)
	}
	if report.PrimaryHealthy {
		t.Error("primary must be reported unhealthy")
	}
	if !report.Degraded() {
		t.Error("report must flag the degraded write")
	}
	if got := report.Attempted; len(got) != 2 || got[0] != TierFile || got[1] != TierMemory {
		t.Errorf("attempted tiers: %v", got)
	}

	doc, tier := s.Read(context.Background())
	if tier != TierMemory {
		t.Errorf("read tier: got %s, want %s", tier, TierMemory)
	}
	if doc.Hero.Title != "survives" {
		t.Errorf("edit lost: %q", doc.Hero.Title)
	}
}

func TestWriteAttemptsPrimaryExactlyOnce(t *testing.T) {
	primary := &fakeAdapter{tier: TierFile, setErr: unavailable(TierFile, errors.New("down"))}
	mem := &fakeAdapter{tier: TierMemory}
	s := New([]Adapter{primary, mem})

	if _, err := s.Write(context.Background(), testDoc("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if primary.sets != 1 {
		t.Errorf("primary attempts: got %d, want exactly 1", primary.sets)
	}
}

func TestWriteMirrorsIntoMemory(t *testing.T) {
	primary := &fakeAdapter{tier: TierFile}
	mem := &fakeAdapter{tier: TierMemory}
	s := New([]Adapter{primary, mem})

	if _, err := s.Write(context.Background(), testDoc("mirrored")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if mem.lastSet == nil || mem.lastSet.Hero.Title != "mirrored" {
		t.Error("memory tier did not receive the write-through copy")
	}
}

func TestWriteIdempotent(t *testing.T) {
	primary := &fakeAdapter{tier: TierFile}
	s := New([]Adapter{primary, &fakeAdapter{tier: TierMemory}})

	in := testDoc("same")
	if _, err := s.Write(context.Background(), in); err != nil {
		t.Fatalf("first write: %v", err)
	}
	first := primary.lastSet

	if _, err := s.Write(context.Background(), in); err != nil {
		t.Fatalf("second write: %v", err)
	}

	if !reflect.DeepEqual(first, primary.lastSet) {
		t.Error("identical writes must leave identical stored state")
	}
}

func TestWriteAllTiersExhausted(t *testing.T) {
	s := New([]Adapter{
		&fakeAdapter{tier: TierFile, setErr: unavailable(TierFile, errors.New("down"))},
		&fakeAdapter{tier: TierMemory, setErr: unavailable(TierMemory, errors.New("also down"))},
	})

	_, err := s.Write(context.Background(), testDoc("lost"))
	if err == nil {
		t.Fatal("expected error when every tier rejects")
	}
	var serr *StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StoreError, got %T", err)
	}
	if serr.Kind != KindAllTiersExhausted {
		t.Errorf("kind: got %s, want %s", serr.Kind, KindAllTiersExhausted)
	}
	if len(serr.Attempted) != 2 {
		t.Errorf("attempted tiers: %v", serr.Attempted)
	}
}

func TestHungAdapterIsBounded(t *testing.T) {
	hung := &hangingAdapter{tier: TierPostgres}
	mem := &fakeAdapter{tier: TierMemory, doc: testDoc("fallback")}
	s := New([]Adapter{hung, mem}, WithTimeout(50*time.Millisecond))

	start := time.Now()
	doc, tier := s.Read(context.Background())
	elapsed := time.Since(start)

	if tier != TierMemory {
		t.Errorf("tier: got %s, want %s", tier, TierMemory)
	}
	if doc.Hero.Title != "fallback" {
		t.Errorf("unexpected document: %q", doc.Hero.Title)
	}
	if elapsed > time.Second {
		t.Errorf("read blocked for %s despite timeout", elapsed)
	}

	// Writes are bounded the same way.
	report, err := s.Write(context.Background(), testDoc("w"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if report.Tier != TierMemory {
		t.Errorf("write tier: got %s, want %s", report.Tier, TierMemory)
	}
}
