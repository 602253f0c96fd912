package main

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var _ AuthorStorage = (*memoryAuthorStorage)(nil) // ensure memoryAuthorStorage implements AuthorStorage.

// memoryAuthorStorage holds the fixed author roster. Identifiers are
// allocated the same way as book ids but from an independent counter.
// The guard stays since the storage is shared by concurrent requests,
// even though the roster never changes after seeding.
type memoryAuthorStorage struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	authors map[string]Author
	order   []string
	seq     uint64
}

// NewMemoryAuthorStorage provides an in-memory author storage loaded
// with the given roster of names.
func NewMemoryAuthorStorage(logger *zap.Logger, names ...string) AuthorStorage {
	s := &memoryAuthorStorage{
		logger:  logger,
		authors: make(map[string]Author),
	}
	for _, name := range names {
		author := Author{
			ID:   strconv.FormatUint(atomic.AddUint64(&s.seq, 1), 10),
			Name: name,
		}
		s.mu.Lock()
		s.authors[author.ID] = author
		s.order = append(s.order, author.ID)
		s.mu.Unlock()
	}
	return s
}

// GetOne retrieves an author record based on its ID.
func (s *memoryAuthorStorage) GetOne(_ context.Context, id string) (Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	author, ok := s.authors[id]
	if !ok {
		return Author{}, ErrAuthorNotFound
	}
	return author, nil
}

// GetByName retrieves an author record based on its exact name.
func (s *memoryAuthorStorage) GetByName(_ context.Context, name string) (Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if s.authors[id].Name == name {
			return s.authors[id], nil
		}
	}
	return Author{}, ErrAuthorNotFound
}

// GetAll retrieves all author records in insertion order.
func (s *memoryAuthorStorage) GetAll(_ context.Context) ([]Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	authors := make([]Author, 0, len(s.order))
	for _, id := range s.order {
		authors = append(authors, s.authors[id])
	}
	return authors, nil
}
