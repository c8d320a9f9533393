package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DirStore persists records as pretty-printed JSON files, one per
// document, alongside an in-memory index. Files already present in
// the directory are indexed at construction, so a restarted server
// sees previously stored outlines.
type DirStore struct {
	mu    sync.Mutex
	dir   string
	mem   *MemStore
	paths map[string]string
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	s := &DirStore{
		dir:   dir,
		mem:   NewMemStore(),
		paths: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load indexes the JSON files already present in the directory.
// Files that do not decode as records are skipped.
func (s *DirStore) load() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read store dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil || rec.DocID == "" || rec.Outline == nil {
			continue
		}
		if err := rec.Outline.Validate(); err != nil {
			continue
		}
		s.paths[rec.DocID] = path
		s.mem.Put(context.Background(), &rec)
	}
	return nil
}

func (s *DirStore) Put(ctx context.Context, rec *Record) error {
	if rec.DocID == "" {
		return fmt.Errorf("record has no doc id")
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	path := filepath.Join(s.dir, recordFilename(rec))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write record %s: %w", rec.DocID, err)
	}
	// A re-put under a new filename replaces the old file.
	if old := s.paths[rec.DocID]; old != "" && old != path {
		os.Remove(old)
	}
	s.paths[rec.DocID] = path
	return s.mem.Put(ctx, rec)
}

func (s *DirStore) Get(ctx context.Context, docID string) (*Record, error) {
	return s.mem.Get(ctx, docID)
}

func (s *DirStore) GetByHash(ctx context.Context, hash string) (*Record, error) {
	return s.mem.GetByHash(ctx, hash)
}

func (s *DirStore) List(ctx context.Context) ([]*Record, error) {
	return s.mem.List(ctx)
}

func (s *DirStore) Delete(ctx context.Context, docID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found, err := s.mem.Delete(ctx, docID)
	if err != nil || !found {
		return found, err
	}
	if path := s.paths[docID]; path != "" {
		delete(s.paths, docID)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return true, fmt.Errorf("remove record file: %w", err)
		}
	}
	return true, nil
}

func recordFilename(rec *Record) string {
	slug := Slugify(strings.TrimSuffix(rec.Filename, filepath.Ext(rec.Filename)))
	if slug == "" {
		slug = "document"
	}
	return slug + "-" + rec.DocID + ".json"
}
