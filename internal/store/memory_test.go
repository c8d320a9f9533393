package store

import (
	"context"
	"testing"
	"time"
)

func TestMemStore_PutGet(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	rec := testRecord("doc-1", "report.pdf", "hash-1", time.Now())

	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.DocID != "doc-1" {
		t.Errorf("expected record doc-1, got %v", got)
	}
}

func TestMemStore_GetMissingReturnsNil(t *testing.T) {
	s := NewMemStore()
	got, err := s.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing record, got %v", got)
	}
}

func TestMemStore_PutRequiresDocID(t *testing.T) {
	s := NewMemStore()
	rec := testRecord("", "report.pdf", "hash-1", time.Now())
	if err := s.Put(context.Background(), rec); err == nil {
		t.Error("expected error for record without doc id")
	}
}

func TestMemStore_GetByHash(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	s.Put(ctx, testRecord("doc-1", "report.pdf", "hash-1", time.Now()))

	got, err := s.GetByHash(ctx, "hash-1")
	if err != nil {
		t.Fatalf("get by hash: %v", err)
	}
	if got == nil || got.DocID != "doc-1" {
		t.Errorf("expected record doc-1, got %v", got)
	}

	miss, err := s.GetByHash(ctx, "hash-other")
	if err != nil {
		t.Fatalf("get by hash: %v", err)
	}
	if miss != nil {
		t.Errorf("expected nil for unknown hash, got %v", miss)
	}
}

func TestMemStore_GetByEmptyHash(t *testing.T) {
	s := NewMemStore()
	got, err := s.GetByHash(context.Background(), "")
	if err != nil {
		t.Fatalf("get by hash: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for empty hash, got %v", got)
	}
}

func TestMemStore_ListOrdersByCreation(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	s.Put(ctx, testRecord("doc-c", "c.pdf", "hash-c", base.Add(2*time.Hour)))
	s.Put(ctx, testRecord("doc-a", "a.pdf", "hash-a", base))
	s.Put(ctx, testRecord("doc-b", "b.pdf", "hash-b", base.Add(time.Hour)))

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	want := []string{"doc-a", "doc-b", "doc-c"}
	for i, w := range want {
		if recs[i].DocID != w {
			t.Errorf("record %d: expected %q, got %q", i, w, recs[i].DocID)
		}
	}
}

func TestMemStore_Delete(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	s.Put(ctx, testRecord("doc-1", "report.pdf", "hash-1", time.Now()))

	found, err := s.Delete(ctx, "doc-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !found {
		t.Error("expected delete to report found")
	}

	if got, _ := s.Get(ctx, "doc-1"); got != nil {
		t.Errorf("expected record gone, got %v", got)
	}
	if got, _ := s.GetByHash(ctx, "hash-1"); got != nil {
		t.Errorf("expected hash index entry gone, got %v", got)
	}

	found, err = s.Delete(ctx, "doc-1")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if found {
		t.Error("expected second delete to report not found")
	}
}

func TestMemStore_RePutUpdatesHashIndex(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	s.Put(ctx, testRecord("doc-1", "report.pdf", "hash-old", time.Now()))
	s.Put(ctx, testRecord("doc-1", "report.pdf", "hash-new", time.Now()))

	if got, _ := s.GetByHash(ctx, "hash-old"); got != nil {
		t.Errorf("expected stale hash entry removed, got %v", got)
	}
	got, _ := s.GetByHash(ctx, "hash-new")
	if got == nil || got.DocID != "doc-1" {
		t.Errorf("expected record under new hash, got %v", got)
	}
}
