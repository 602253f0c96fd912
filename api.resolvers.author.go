package main

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// AuthorResolver shapes an author record to the schema's Author type.
// The books field is not read from the record: it is derived when the
// field is selected, by querying the book side with the author's name.
type AuthorResolver struct {
	author  Author
	authors AuthorServiceProvider
}

func (r *AuthorResolver) ID() graphql.ID {
	return graphql.ID(r.author.ID)
}

func (r *AuthorResolver) Name() string {
	return r.author.Name
}

// Books resolves the derived relationship at serialization time.
// Renaming an author or mistyping a book's author string silently
// breaks this link since the join is by name and not by id.
func (r *AuthorResolver) Books(ctx context.Context) ([]*BookResolver, error) {
	books, err := r.authors.BooksOf(ctx, r.author.Name)
	if err != nil {
		return nil, err
	}
	return newBookResolvers(books), nil
}

// Authors resolves the `authors` query with the full roster.
func (r *RootResolver) Authors(ctx context.Context) ([]*AuthorResolver, error) {
	authors, err := r.authors.GetAll(ctx)
	if err != nil {
		r.logger.Error("resolver: failed to get all authors",
			zap.String("request.id", GetValueFromContext(ctx, ContextRequestID)), zap.Error(err))
		return nil, err
	}
	return lo.Map(authors, func(author Author, _ int) *AuthorResolver {
		return &AuthorResolver{author: author, authors: r.authors}
	}), nil
}

// Author resolves the `author` query. An unknown id yields null, not an error.
func (r *RootResolver) Author(ctx context.Context, args struct{ ID graphql.ID }) (*AuthorResolver, error) {
	author, err := r.authors.GetOne(ctx, string(args.ID))
	if err == ErrAuthorNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &AuthorResolver{author: author, authors: r.authors}, nil
}
