package main

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// BookResolver shapes a book record to the schema's Book type.
type BookResolver struct {
	book Book
}

func (r *BookResolver) ID() graphql.ID {
	return graphql.ID(r.book.ID)
}

func (r *BookResolver) Title() string {
	return r.book.Title
}

func (r *BookResolver) Author() string {
	return r.book.Author
}

func (r *BookResolver) Year() *int32 {
	return r.book.Year
}

func (r *BookResolver) Genre() *string {
	return r.book.Genre
}

func newBookResolvers(books []Book) []*BookResolver {
	return lo.Map(books, func(book Book, _ int) *BookResolver {
		return &BookResolver{book: book}
	})
}

// Books resolves the `books` query with a full scan of the catalog.
func (r *RootResolver) Books(ctx context.Context) ([]*BookResolver, error) {
	books, err := r.books.GetAll(ctx)
	if err != nil {
		r.logger.Error("resolver: failed to get all books",
			zap.String("request.id", GetValueFromContext(ctx, ContextRequestID)), zap.Error(err))
		return nil, err
	}
	return newBookResolvers(books), nil
}

// Book resolves the `book` query. An unknown id yields null, not an error.
func (r *RootResolver) Book(ctx context.Context, args struct{ ID graphql.ID }) (*BookResolver, error) {
	book, err := r.books.GetOne(ctx, string(args.ID))
	if err == ErrBookNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &BookResolver{book: book}, nil
}

type createBookArgs struct {
	Title  string
	Author string
	Year   *int32
	Genre  *string
}

// CreateBook resolves the `createBook` mutation. It always succeeds:
// the schema already rejected requests missing required arguments.
func (r *RootResolver) CreateBook(ctx context.Context, args createBookArgs) (*BookResolver, error) {
	book, err := r.books.Create(ctx, BookInput{
		Title:  args.Title,
		Author: args.Author,
		Year:   args.Year,
		Genre:  args.Genre,
	})
	if err != nil {
		return nil, err
	}
	r.logger.Info("resolver: book created",
		zap.String("book.id", book.ID),
		zap.String("request.id", GetValueFromContext(ctx, ContextRequestID)))
	return &BookResolver{book: book}, nil
}

type updateBookArgs struct {
	ID     graphql.ID
	Title  *string
	Author *string
	Year   *int32
	Genre  *string
}

// UpdateBook resolves the `updateBook` mutation. Omitted arguments
// arrive as nil pointers and keep their stored values. An unknown id
// yields null and mutates nothing.
func (r *RootResolver) UpdateBook(ctx context.Context, args updateBookArgs) (*BookResolver, error) {
	book, err := r.books.Update(ctx, string(args.ID), BookPatch{
		Title:  args.Title,
		Author: args.Author,
		Year:   args.Year,
		Genre:  args.Genre,
	})
	if err == ErrBookNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.logger.Info("resolver: book updated",
		zap.String("book.id", book.ID),
		zap.String("request.id", GetValueFromContext(ctx, ContextRequestID)))
	return &BookResolver{book: book}, nil
}

// DeleteBook resolves the `deleteBook` mutation. It reports whether a
// record was removed, deleting a missing id is not an error.
func (r *RootResolver) DeleteBook(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	deleted, err := r.books.Delete(ctx, string(args.ID))
	if err != nil {
		return false, err
	}
	if deleted {
		r.logger.Info("resolver: book deleted",
			zap.String("book.id", string(args.ID)),
			zap.String("request.id", GetValueFromContext(ctx, ContextRequestID)))
	}
	return deleted, nil
}
