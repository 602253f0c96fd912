package main

import (
	"context"

	"go.uber.org/zap"
)

type BookServiceProvider interface {
	Create(ctx context.Context, input BookInput) (Book, error)
	GetOne(ctx context.Context, id string) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	GetByAuthor(ctx context.Context, name string) ([]Book, error)
	Update(ctx context.Context, id string, patch BookPatch) (Book, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type BookService struct {
	logger  *zap.Logger
	config  *Config
	storage BookStorage
}

func NewBookService(logger *zap.Logger, config *Config, storage BookStorage) BookServiceProvider {
	return &BookService{
		logger:  logger,
		config:  config,
		storage: storage,
	}
}

func (bs *BookService) Create(ctx context.Context, input BookInput) (Book, error) {
	book, err := bs.storage.Create(ctx, input)
	if err != nil {
		bs.logger.Error("service: failed to create book", zap.String("book.title", input.Title), zap.Error(err))
	}
	return book, err
}

func (bs *BookService) GetOne(ctx context.Context, id string) (Book, error) {
	book, err := bs.storage.GetOne(ctx, id)
	return book, err
}

func (bs *BookService) GetAll(ctx context.Context) ([]Book, error) {
	books, err := bs.storage.GetAll(ctx)
	return books, err
}

func (bs *BookService) GetByAuthor(ctx context.Context, name string) ([]Book, error) {
	books, err := bs.storage.GetByAuthor(ctx, name)
	return books, err
}

func (bs *BookService) Update(ctx context.Context, id string, patch BookPatch) (Book, error) {
	book, err := bs.storage.Update(ctx, id, patch)
	if err != nil && err != ErrBookNotFound {
		bs.logger.Error("service: failed to update book", zap.String("book.id", id), zap.Error(err))
	}
	return book, err
}

func (bs *BookService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := bs.storage.Delete(ctx, id)
	if err != nil {
		bs.logger.Error("service: failed to delete book", zap.String("book.id", id), zap.Error(err))
	}
	return deleted, err
}

type AuthorServiceProvider interface {
	GetOne(ctx context.Context, id string) (Author, error)
	GetByName(ctx context.Context, name string) (Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	BooksOf(ctx context.Context, name string) ([]Book, error)
}

// AuthorService serves the read-only author roster. It collaborates
// with the book storage to derive an author's books on demand: the
// author records themselves never hold book state.
type AuthorService struct {
	logger  *zap.Logger
	config  *Config
	storage AuthorStorage
	books   BookStorage
}

func NewAuthorService(logger *zap.Logger, config *Config, storage AuthorStorage, books BookStorage) AuthorServiceProvider {
	return &AuthorService{
		logger:  logger,
		config:  config,
		storage: storage,
		books:   books,
	}
}

func (as *AuthorService) GetOne(ctx context.Context, id string) (Author, error) {
	author, err := as.storage.GetOne(ctx, id)
	return author, err
}

func (as *AuthorService) GetByName(ctx context.Context, name string) (Author, error) {
	author, err := as.storage.GetByName(ctx, name)
	return author, err
}

func (as *AuthorService) GetAll(ctx context.Context) ([]Author, error) {
	authors, err := as.storage.GetAll(ctx)
	return authors, err
}

// BooksOf computes the list of books linked to the given author name.
// The result is recomputed on every call, nothing is cached.
func (as *AuthorService) BooksOf(ctx context.Context, name string) ([]Book, error) {
	books, err := as.books.GetByAuthor(ctx, name)
	return books, err
}
