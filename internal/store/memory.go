package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemStore is a thread-safe in-memory Store.
type MemStore struct {
	mu     sync.Mutex
	docs   map[string]*Record
	byHash map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{
		docs:   make(map[string]*Record),
		byHash: make(map[string]string),
	}
}

func (s *MemStore) Put(ctx context.Context, rec *Record) error {
	if rec.DocID == "" {
		return fmt.Errorf("record has no doc id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if old := s.docs[rec.DocID]; old != nil && old.ContentHash != rec.ContentHash {
		delete(s.byHash, old.ContentHash)
	}
	s.docs[rec.DocID] = rec
	if rec.ContentHash != "" {
		s.byHash[rec.ContentHash] = rec.DocID
	}
	return nil
}

func (s *MemStore) Get(ctx context.Context, docID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[docID], nil
}

func (s *MemStore) GetByHash(ctx context.Context, hash string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hash == "" {
		return nil, nil
	}
	docID, ok := s.byHash[hash]
	if !ok {
		return nil, nil
	}
	return s.docs[docID], nil
}

// List returns all records ordered by creation time, then doc ID.
func (s *MemStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := make([]*Record, 0, len(s.docs))
	for _, rec := range s.docs {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.Before(recs[j].CreatedAt)
		}
		return recs[i].DocID < recs[j].DocID
	})
	return recs, nil
}

func (s *MemStore) Delete(ctx context.Context, docID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.docs[docID]
	if !ok {
		return false, nil
	}
	delete(s.docs, docID)
	if rec.ContentHash != "" && s.byHash[rec.ContentHash] == docID {
		delete(s.byHash, rec.ContentHash)
	}
	return true, nil
}
