package main

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var _ BookStorage = (*memoryBookStorage)(nil) // ensure memoryBookStorage implements BookStorage.

// memoryBookStorage is a process-lifetime book repository. Records
// live in a mutex-guarded map and an insertion-order slice keeps the
// listing order deterministic. Identifiers come from a dedicated
// atomic counter so two concurrent creates never share an id, and an
// id is never reused even after deletion.
type memoryBookStorage struct {
	logger *zap.Logger
	mu     sync.RWMutex
	books  map[string]Book
	order  []string
	seq    uint64
}

// NewMemoryBookStorage provides an in-memory book storage loaded
// with the given seed records.
func NewMemoryBookStorage(logger *zap.Logger, seed ...BookInput) BookStorage {
	s := &memoryBookStorage{
		logger: logger,
		books:  make(map[string]Book),
	}
	for _, input := range seed {
		if _, err := s.Create(context.Background(), input); err != nil {
			logger.Error("storage: failed to seed book", zap.String("book.title", input.Title), zap.Error(err))
		}
	}
	return s
}

// nextID allocates the next identifier with a single atomic
// increment-and-read, formatted as a decimal string.
func (s *memoryBookStorage) nextID() string {
	return strconv.FormatUint(atomic.AddUint64(&s.seq, 1), 10)
}

// Create inserts a new book record and returns it. No validation is
// performed beyond the input shape, empty strings are accepted.
func (s *memoryBookStorage) Create(_ context.Context, input BookInput) (Book, error) {
	book := Book{
		ID:     s.nextID(),
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
		Genre:  input.Genre,
	}
	s.mu.Lock()
	s.books[book.ID] = book
	s.order = append(s.order, book.ID)
	s.mu.Unlock()
	return book, nil
}

// GetOne retrieves a book record based on its ID.
func (s *memoryBookStorage) GetOne(_ context.Context, id string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[id]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return book, nil
}

// GetAll retrieves all book records in insertion order.
func (s *memoryBookStorage) GetAll(_ context.Context) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	books := make([]Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, s.books[id])
	}
	return books, nil
}

// GetByAuthor retrieves all books whose author field equals the given
// name exactly. The match is case-sensitive and performs no trimming.
func (s *memoryBookStorage) GetByAuthor(ctx context.Context, name string) ([]Book, error) {
	books, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(books, func(book Book, _ int) bool {
		return book.Author == name
	}), nil
}

// Update merges the patch into the stored record. A nil patch field
// keeps the stored value, a non-nil one replaces it. The identifier
// is preserved. It returns ErrBookNotFound and mutates nothing when
// the id is unknown.
func (s *memoryBookStorage) Update(_ context.Context, id string, patch BookPatch) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[id]
	if !ok {
		return Book{}, ErrBookNotFound
	}

	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.Year != nil {
		book.Year = patch.Year
	}
	if patch.Genre != nil {
		book.Genre = patch.Genre
	}

	s.books[id] = book
	return book, nil
}

// Delete removes a book record based on its ID. It reports whether a
// removal occurred, so repeated deletes of the same id return false
// after the first true.
func (s *memoryBookStorage) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return false, nil
	}
	delete(s.books, id)
	s.order = lo.Without(s.order, id)
	return true, nil
}
