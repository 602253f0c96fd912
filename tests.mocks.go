package main

import (
	"context"
	"time"
)

// This file contains mocks and fixtures definitions needed to perform unit tests.

type MockBookStorage struct {
	CreateFunc      func(ctx context.Context, input BookInput) (Book, error)
	GetOneFunc      func(ctx context.Context, id string) (Book, error)
	GetAllFunc      func(ctx context.Context) ([]Book, error)
	GetByAuthorFunc func(ctx context.Context, name string) ([]Book, error)
	UpdateFunc      func(ctx context.Context, id string, patch BookPatch) (Book, error)
	DeleteFunc      func(ctx context.Context, id string) (bool, error)
}

// Create mocks the behavior of book creation by the repository.
func (m *MockBookStorage) Create(ctx context.Context, input BookInput) (Book, error) {
	return m.CreateFunc(ctx, input)
}

// GetOne mocks the behavior of retrieving a book by the repository.
func (m *MockBookStorage) GetOne(ctx context.Context, id string) (Book, error) {
	return m.GetOneFunc(ctx, id)
}

// GetAll mocks the behavior of retrieving all books by the repository.
func (m *MockBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	return m.GetAllFunc(ctx)
}

// GetByAuthor mocks the behavior of filtering books by author name.
func (m *MockBookStorage) GetByAuthor(ctx context.Context, name string) ([]Book, error) {
	return m.GetByAuthorFunc(ctx, name)
}

// Update mocks the behavior of updating a book by the repository.
func (m *MockBookStorage) Update(ctx context.Context, id string, patch BookPatch) (Book, error) {
	return m.UpdateFunc(ctx, id, patch)
}

// Delete mocks the behavior of deleting a book by the repository.
func (m *MockBookStorage) Delete(ctx context.Context, id string) (bool, error) {
	return m.DeleteFunc(ctx, id)
}

type MockAuthorStorage struct {
	GetOneFunc    func(ctx context.Context, id string) (Author, error)
	GetByNameFunc func(ctx context.Context, name string) (Author, error)
	GetAllFunc    func(ctx context.Context) ([]Author, error)
}

// GetOne mocks the behavior of retrieving an author by the repository.
func (m *MockAuthorStorage) GetOne(ctx context.Context, id string) (Author, error) {
	return m.GetOneFunc(ctx, id)
}

// GetByName mocks the behavior of retrieving an author by name.
func (m *MockAuthorStorage) GetByName(ctx context.Context, name string) (Author, error) {
	return m.GetByNameFunc(ctx, name)
}

// GetAll mocks the behavior of retrieving all authors by the repository.
func (m *MockAuthorStorage) GetAll(ctx context.Context) ([]Author, error) {
	return m.GetAllFunc(ctx)
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `Sun, 02 Jul 2023 00:00:00 UTC` in time.RFC1123 format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// MockUIDHandler implements a fake UIDHandler.
type MockUIDHandler struct {
	MockedUID string
	Valid     bool
}

// NewMockUIDHandler returns a mocked instance with predictable id.
func NewMockUIDHandler(id string, valid bool) *MockUIDHandler {
	return &MockUIDHandler{MockedUID: id, Valid: valid}
}

// Generate constructs a predictable id to be used as mock.
func (muid *MockUIDHandler) Generate(prefix string) string {
	return prefix + ":" + muid.MockedUID
}

// IsValid mocks IsValid behavior by providing configured status.
func (muid *MockUIDHandler) IsValid(_, _ string) bool {
	return muid.Valid
}

// newTestConfig provides a minimal valid configuration for unit tests.
func newTestConfig() *Config {
	return &Config{
		OpsEndpointsEnable: true,
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            "8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		GraphQL: GraphQLConfig{
			Endpoint:       "/graphql",
			MaxQueryBytes:  1 << 20,
			GraphiQLEnable: true,
		},
	}
}
