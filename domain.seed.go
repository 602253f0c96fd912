package main

import "github.com/samber/lo"

// DefaultAuthors returns the fixed roster loaded at process start.
// Names must match the seeded books' Author fields exactly since
// the author/book relationship is resolved by name equality.
func DefaultAuthors() []string {
	return []string{
		"George Orwell",
		"Harper Lee",
		"J.R.R. Tolkien",
		"Jane Austen",
	}
}

// DefaultBooks returns the sample catalog loaded at process start.
func DefaultBooks() []BookInput {
	return []BookInput{
		{Title: "1984", Author: "George Orwell", Year: lo.ToPtr(int32(1949)), Genre: lo.ToPtr("Dystopian")},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: lo.ToPtr(int32(1960)), Genre: lo.ToPtr("Southern Gothic")},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: lo.ToPtr(int32(1937)), Genre: lo.ToPtr("Fantasy")},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Year: lo.ToPtr(int32(1813)), Genre: lo.ToPtr("Romance")},
	}
}
