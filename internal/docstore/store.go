// Package docstore holds the in-memory document corpus.
package docstore

import (
	"sync"

	"github.com/maint-agent/backend/internal/models"
)

// Store is the process-lifetime registry of uploaded documents.
// Writes are mutually exclusive; readers get copied snapshots so a
// ranking pass never observes a mutation in flight.
type Store struct {
	mu    sync.RWMutex
	docs  map[string]models.Document
	order []string // insertion order of document ids
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		docs: make(map[string]models.Document),
	}
}

// Put inserts a document under its filename, overwriting any previous
// entry with the same id. An overwrite keeps the original insertion slot.
func (s *Store) Put(id, content string, kind models.DocumentKind) models.Document {
	doc := models.NewDocument(id, content, kind)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[id]; !exists {
		s.order = append(s.order, id)
	}
	s.docs[id] = doc

	return doc
}

// Snapshot returns a copy of all documents in insertion order. Callers
// may hold the slice across blocking work; it never mutates underneath them.
func (s *Store) Snapshot() []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

// List returns the metadata view of the corpus in insertion order.
func (s *Store) List() []models.DocumentInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DocumentInfo, 0, len(s.order))
	for _, id := range s.order {
		doc := s.docs[id]
		out = append(out, models.DocumentInfo{
			Filename: doc.ID,
			Size:     doc.Size,
			Kind:     doc.Kind,
		})
	}
	return out
}

// Delete removes the document with the given id and reports whether an
// entry was actually removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Count returns the number of stored documents.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
