package main

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaDefinition string

// NewSchema parses the embedded schema definition against the root
// resolver. The schema owns query validation: malformed documents and
// missing required arguments never reach the resolvers.
func NewSchema(resolver *RootResolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(
		schemaDefinition,
		resolver,
		graphql.UseStringDescriptions(),
		graphql.MaxParallelism(20),
	)
}
