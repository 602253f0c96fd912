package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestSchema provides a schema wired to freshly seeded in-memory
// stores, so record identifiers are deterministic per test.
func newTestSchema(t *testing.T) *graphql.Schema {
	t.Helper()
	books := NewMemoryBookStorage(zap.NewNop(), DefaultBooks()...)
	authors := NewMemoryAuthorStorage(zap.NewNop(), DefaultAuthors()...)
	config := newTestConfig()
	schema, err := NewSchema(NewRootResolver(
		zap.NewNop(),
		NewBookService(zap.NewNop(), config, books),
		NewAuthorService(zap.NewNop(), config, authors, books),
	))
	require.NoError(t, err)
	return schema
}

// mustExec runs one graphql document and returns the marshaled
// response envelope.
func mustExec(t *testing.T, schema *graphql.Schema, query string, variables map[string]interface{}) string {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", variables)
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}

// TestResolvers_Books ensures the full scan query over the seeded catalog.
func TestResolvers_Books(t *testing.T) {
	schema := newTestSchema(t)
	got := mustExec(t, schema, `{books {id title author}}`, nil)
	expected := `{"data":{"books":[
		{"id":"1","title":"1984","author":"George Orwell"},
		{"id":"2","title":"To Kill a Mockingbird","author":"Harper Lee"},
		{"id":"3","title":"The Hobbit","author":"J.R.R. Tolkien"},
		{"id":"4","title":"Pride and Prejudice","author":"Jane Austen"}]}}`
	assert.JSONEq(t, expected, got)
}

// TestResolvers_Book ensures single lookups return the record or null.
func TestResolvers_Book(t *testing.T) {
	schema := newTestSchema(t)

	t.Run("known id", func(t *testing.T) {
		got := mustExec(t, schema, `{book(id:"1") {id title author year genre}}`, nil)
		expected := `{"data":{"book":{"id":"1","title":"1984","author":"George Orwell","year":1949,"genre":"Dystopian"}}}`
		assert.JSONEq(t, expected, got)
	})

	t.Run("unknown id yields null not error", func(t *testing.T) {
		got := mustExec(t, schema, `{book(id:"999") {id}}`, nil)
		assert.JSONEq(t, `{"data":{"book":null}}`, got)
	})
}

// TestResolvers_Authors ensures each author comes back with its book
// list derived by name equality.
func TestResolvers_Authors(t *testing.T) {
	schema := newTestSchema(t)
	got := mustExec(t, schema, `{authors {id name books {title year}}}`, nil)
	expected := `{"data":{"authors":[
		{"id":"1","name":"George Orwell","books":[{"title":"1984","year":1949}]},
		{"id":"2","name":"Harper Lee","books":[{"title":"To Kill a Mockingbird","year":1960}]},
		{"id":"3","name":"J.R.R. Tolkien","books":[{"title":"The Hobbit","year":1937}]},
		{"id":"4","name":"Jane Austen","books":[{"title":"Pride and Prejudice","year":1813}]}]}}`
	assert.JSONEq(t, expected, got)
}

// TestResolvers_Author ensures single author lookups and the derived
// books freshness across mutations.
func TestResolvers_Author(t *testing.T) {
	schema := newTestSchema(t)

	t.Run("known id", func(t *testing.T) {
		got := mustExec(t, schema, `{author(id:"1") {name books {title}}}`, nil)
		assert.JSONEq(t, `{"data":{"author":{"name":"George Orwell","books":[{"title":"1984"}]}}}`, got)
	})

	t.Run("unknown id yields null not error", func(t *testing.T) {
		got := mustExec(t, schema, `{author(id:"999") {name}}`, nil)
		assert.JSONEq(t, `{"data":{"author":null}}`, got)
	})

	t.Run("books recomputed after a mutation", func(t *testing.T) {
		mustExec(t, schema, `mutation {createBook(title:"Animal Farm", author:"George Orwell", year:1945) {id}}`, nil)
		got := mustExec(t, schema, `{author(id:"1") {books {title}}}`, nil)
		assert.JSONEq(t, `{"data":{"author":{"books":[{"title":"1984"},{"title":"Animal Farm"}]}}}`, got)
	})
}

// TestResolvers_CreateBook ensures creation allocates the next id and
// the record is readable afterwards.
func TestResolvers_CreateBook(t *testing.T) {
	schema := newTestSchema(t)

	got := mustExec(t, schema, `mutation {createBook(title:"Brave New World", author:"Aldous Huxley", year:1932, genre:"Dystopian") {id title author year genre}}`, nil)
	expected := `{"data":{"createBook":{"id":"5","title":"Brave New World","author":"Aldous Huxley","year":1932,"genre":"Dystopian"}}}`
	assert.JSONEq(t, expected, got)

	got = mustExec(t, schema, `{book(id:"5") {title}}`, nil)
	assert.JSONEq(t, `{"data":{"book":{"title":"Brave New World"}}}`, got)

	t.Run("optional arguments may be omitted", func(t *testing.T) {
		got := mustExec(t, schema, `mutation {createBook(title:"Essays", author:"Unknown") {id year genre}}`, nil)
		assert.JSONEq(t, `{"data":{"createBook":{"id":"6","year":null,"genre":null}}}`, got)
	})

	t.Run("empty strings are accepted", func(t *testing.T) {
		got := mustExec(t, schema, `mutation {createBook(title:"", author:"") {id title author}}`, nil)
		assert.JSONEq(t, `{"data":{"createBook":{"id":"7","title":"","author":""}}}`, got)
	})
}

// TestResolvers_UpdateBook ensures omitted arguments keep their stored
// values and unknown ids yield null without mutating anything.
func TestResolvers_UpdateBook(t *testing.T) {
	schema := newTestSchema(t)

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		got := mustExec(t, schema, `mutation {updateBook(id:"1", title:"Nineteen Eighty-Four") {id title author year genre}}`, nil)
		expected := `{"data":{"updateBook":{"id":"1","title":"Nineteen Eighty-Four","author":"George Orwell","year":1949,"genre":"Dystopian"}}}`
		assert.JSONEq(t, expected, got)
	})

	t.Run("with variables", func(t *testing.T) {
		query := `mutation($id: ID!, $genre: String) {updateBook(id:$id, genre:$genre) {id title genre}}`
		got := mustExec(t, schema, query, map[string]interface{}{"id": "2", "genre": "Classic"})
		assert.JSONEq(t, `{"data":{"updateBook":{"id":"2","title":"To Kill a Mockingbird","genre":"Classic"}}}`, got)
	})

	t.Run("unknown id yields null and mutates nothing", func(t *testing.T) {
		got := mustExec(t, schema, `mutation {updateBook(id:"999", title:"X") {id}}`, nil)
		assert.JSONEq(t, `{"data":{"updateBook":null}}`, got)

		books := mustExec(t, schema, `{books {title}}`, nil)
		assert.NotContains(t, books, `"X"`)
	})
}

// TestResolvers_DeleteBook ensures deletion reports removal once and
// the record is gone afterwards.
func TestResolvers_DeleteBook(t *testing.T) {
	schema := newTestSchema(t)

	got := mustExec(t, schema, `mutation {deleteBook(id:"2")}`, nil)
	assert.JSONEq(t, `{"data":{"deleteBook":true}}`, got)

	got = mustExec(t, schema, `mutation {deleteBook(id:"2")}`, nil)
	assert.JSONEq(t, `{"data":{"deleteBook":false}}`, got)

	got = mustExec(t, schema, `{book(id:"2") {id}}`, nil)
	assert.JSONEq(t, `{"data":{"book":null}}`, got)
}

// TestResolvers_SchemaValidation ensures structural errors are caught
// by the engine and surfaced in the envelope's errors field.
func TestResolvers_SchemaValidation(t *testing.T) {
	schema := newTestSchema(t)

	t.Run("unknown field", func(t *testing.T) {
		resp := schema.Exec(context.Background(), `{nope}`, "", nil)
		assert.NotEmpty(t, resp.Errors)
	})

	t.Run("missing required argument", func(t *testing.T) {
		resp := schema.Exec(context.Background(), `mutation {createBook(title:"only title") {id}}`, "", nil)
		assert.NotEmpty(t, resp.Errors)
	})
}

// TestResolvers_StorageFailure ensures storage errors travel through
// the envelope's errors field instead of breaking the transport.
func TestResolvers_StorageFailure(t *testing.T) {
	mockBooks := &MockBookStorage{
		GetAllFunc: func(ctx context.Context) ([]Book, error) {
			return nil, errors.New("storage failure")
		},
	}
	mockAuthors := &MockAuthorStorage{
		GetAllFunc: func(ctx context.Context) ([]Author, error) {
			return nil, errors.New("storage failure")
		},
	}
	config := newTestConfig()
	schema, err := NewSchema(NewRootResolver(
		zap.NewNop(),
		NewBookService(zap.NewNop(), config, mockBooks),
		NewAuthorService(zap.NewNop(), config, mockAuthors, mockBooks),
	))
	require.NoError(t, err)

	resp := schema.Exec(context.Background(), `{books {id}}`, "", nil)
	assert.NotEmpty(t, resp.Errors)

	resp = schema.Exec(context.Background(), `{authors {id}}`, "", nil)
	assert.NotEmpty(t, resp.Errors)
}
