package main

import (
	"go.uber.org/zap"
)

// RootResolver is the entry point for every Query and Mutation field
// of the schema. It holds the services the resolvers draw from.
type RootResolver struct {
	logger  *zap.Logger
	books   BookServiceProvider
	authors AuthorServiceProvider
}

// NewRootResolver provides a ready to use RootResolver.
func NewRootResolver(logger *zap.Logger, books BookServiceProvider, authors AuthorServiceProvider) *RootResolver {
	return &RootResolver{
		logger:  logger,
		books:   books,
		authors: authors,
	}
}
