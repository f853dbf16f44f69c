package library

import (
	"fmt"
	"strings"
)

// bookFeeCents is the late fee per day, in cents.
const bookFeeCents = 50

// Book is a printed book with an author and an immutable ISBN.
type Book struct {
	itemCore
	author string
	isbn   string
}

// NewBook validates title, year, author and ISBN in that order and
// returns a new available book.
func NewBook(title string, year int, author, isbn string) (*Book, error) {
	t, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	a := strings.TrimSpace(author)
	if a == "" {
		return nil, fmt.Errorf("%w: author must not be empty", ErrInvalidArgument)
	}
	if err := validateISBN(isbn); err != nil {
		return nil, err
	}
	return &Book{itemCore: newItemCore(t, year), author: a, isbn: isbn}, nil
}

func (b *Book) Author() string { return b.author }
func (b *Book) ISBN() string   { return b.isbn }

// SetAuthor replaces the author; it must not be blank.
func (b *Book) SetAuthor(author string) error {
	a := strings.TrimSpace(author)
	if a == "" {
		return fmt.Errorf("%w: author must not be empty", ErrInvalidArgument)
	}
	b.author = a
	return nil
}

func (b *Book) CalculateLateFee(daysLate int) float64 {
	return lateFee(daysLate, bookFeeCents)
}

func (b *Book) Info() string {
	return fmt.Sprintf("Book: %s (%d) - %s - ID: %s - Author: %s, ISBN: %s",
		b.title, b.year, b.status(), b.id, b.author, b.isbn)
}
