package memory

import (
	"fmt"
	"iter"
	"sync"

	"pdfmanager/internal/domain"
)

var _ domain.DocumentStore = (*Storage)(nil)

// Storage is an in-memory, insertion-ordered document store.
type Storage struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]domain.Document
}

func NewStorage() *Storage { return &Storage{docs: make(map[string]domain.Document)} }

// Upload inserts or overwrites the text stored under id.
// An overwritten document keeps its original position.
func (s *Storage) Upload(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		s.order = append(s.order, id)
	}
	s.docs[id] = domain.Document{ID: id, Path: id, Content: text}
}

// Document returns the stored entity for id.
func (s *Storage) Document(id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}
	return doc, nil
}

func (s *Storage) Get(id string) (string, error) {
	doc, err := s.Document(id)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

// All yields (id, text) pairs in insertion order. The pairs are copied
// under the read lock first, so uploads made while iterating are not seen.
func (s *Storage) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		s.mu.RLock()
		ids := make([]string, len(s.order))
		copy(ids, s.order)
		texts := make([]string, len(ids))
		for i, id := range ids {
			texts[i] = s.docs[id].Content
		}
		s.mu.RUnlock()

		for i, id := range ids {
			if !yield(id, texts[i]) {
				return
			}
		}
	}
}

func (s *Storage) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
