package main

import "context"

// Author represents an author entity. The roster is fixed after
// seeding: no create, update or delete operations are exposed.
// An author's books are never stored on the record; they are
// derived at read time from the book storage by name.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthorStorage defines possible operations on author entity.
type AuthorStorage interface {
	GetOne(ctx context.Context, id string) (Author, error)
	GetByName(ctx context.Context, name string) (Author, error)
	GetAll(ctx context.Context) ([]Author, error)
}
