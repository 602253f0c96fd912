package main

import "context"

// Book represents a book entity. The Author field holds the
// author's name, not an identifier: the link between a book and
// its author is an exact string match on that name.
type Book struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Year   *int32  `json:"year,omitempty"`
	Genre  *string `json:"genre,omitempty"`
}

// BookInput carries the fields of a book creation request.
// Year and Genre are optional.
type BookInput struct {
	Title  string
	Author string
	Year   *int32
	Genre  *string
}

// BookPatch carries the fields of a book update request. Each field
// is presence-tracked: a nil field was not supplied by the caller and
// the stored value must be kept. A non-nil field replaces the stored
// value, even when it points to a zero value.
type BookPatch struct {
	Title  *string
	Author *string
	Year   *int32
	Genre  *string
}

// BookStorage defines possible operations on book entity.
type BookStorage interface {
	Create(ctx context.Context, input BookInput) (Book, error)
	GetOne(ctx context.Context, id string) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	GetByAuthor(ctx context.Context, name string) ([]Book, error)
	Update(ctx context.Context, id string, patch BookPatch) (Book, error)
	Delete(ctx context.Context, id string) (bool, error)
}
