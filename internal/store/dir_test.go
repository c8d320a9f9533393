package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDirStore_PutWritesPrettyJSON(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("new dir store: %v", err)
	}
	ctx := context.Background()
	rec := testRecord("doc-1", "Quarterly Report.pdf", "hash-1", time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	path := filepath.Join(dir, "quarterly-report-doc-1.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected record file at %s: %v", path, err)
	}
	if !bytes.Contains(data, []byte("\n  \"title\"")) {
		t.Error("expected indented title key in record file")
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("decode record file: %v", err)
	}
	if back.DocID != "doc-1" || back.Title != "Annual Report" {
		t.Errorf("expected stored record, got %+v", back)
	}
}

func TestDirStore_ReloadIndexesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("new dir store: %v", err)
	}
	s1.Put(ctx, testRecord("doc-1", "a.pdf", "hash-a", time.Now()))
	s1.Put(ctx, testRecord("doc-2", "b.pdf", "hash-b", time.Now()))

	s2, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("reopen dir store: %v", err)
	}
	recs, err := s2.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records after reload, got %d", len(recs))
	}
	got, _ := s2.GetByHash(ctx, "hash-b")
	if got == nil || got.DocID != "doc-2" {
		t.Errorf("expected hash index rebuilt, got %v", got)
	}
}

func TestDirStore_DeleteRemovesFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("new dir store: %v", err)
	}
	ctx := context.Background()
	s.Put(ctx, testRecord("doc-1", "report.pdf", "hash-1", time.Now()))

	found, err := s.Delete(ctx, "doc-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !found {
		t.Error("expected delete to report found")
	}
	if _, err := os.Stat(filepath.Join(dir, "report-doc-1.json")); !os.IsNotExist(err) {
		t.Errorf("expected record file removed, stat err %v", err)
	}
	if got, _ := s.Get(ctx, "doc-1"); got != nil {
		t.Errorf("expected record gone, got %v", got)
	}
}

func TestDirStore_LoadSkipsUndecodableFiles(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("new dir store: %v", err)
	}
	s1.Put(ctx, testRecord("doc-1", "report.pdf", "hash-1", time.Now()))
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("not json"), 0644); err != nil {
		t.Fatalf("write junk file: %v", err)
	}
	// Valid JSON but no outline content.
	if err := os.WriteFile(filepath.Join(dir, "bare.json"), []byte(`{"doc_id":"bare"}`), 0644); err != nil {
		t.Fatalf("write bare file: %v", err)
	}
	// Decodes but fails outline validation.
	bad := `{"doc_id":"bad","title":"Bad","outline":[{"level":"H9","text":"x","page":1}]}`
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0644); err != nil {
		t.Fatalf("write bad file: %v", err)
	}

	s2, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("reopen dir store: %v", err)
	}
	recs, err := s2.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("expected 1 record, got %d", len(recs))
	}
}

func TestDirStore_UnslugifiableFilenameFallsBack(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("new dir store: %v", err)
	}
	rec := testRecord("doc-1", "###.pdf", "hash-1", time.Now())
	if err := s.Put(context.Background(), rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "document-doc-1.json")); err != nil {
		t.Errorf("expected fallback filename, stat err %v", err)
	}
}
