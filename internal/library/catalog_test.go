package library_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/library"
)

func newCatalog(t *testing.T) (*library.Catalog, *bytes.Buffer) {
	t.Helper()
	var sink bytes.Buffer
	return library.NewCatalog(&sink), &sink
}

func addBook(t *testing.T, cat *library.Catalog, title string) *library.Book {
	t.Helper()
	b, err := library.NewBook(title, 1999, "Some Author", "9780441013593")
	if err != nil {
		t.Fatalf("NewBook(%q): %v", title, err)
	}
	if err := cat.AddItem(b); err != nil {
		t.Fatalf("AddItem(%q): %v", title, err)
	}
	return b
}

// --- AddItem / RemoveItem ---

func TestAddItem_NilRejected(t *testing.T) {
	cat, _ := newCatalog(t)
	if err := cat.AddItem(nil); !errors.Is(err, library.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestAddItem_SameItemTwiceRejected(t *testing.T) {
	cat, _ := newCatalog(t)
	b := addBook(t, cat, "Dune")
	if err := cat.AddItem(b); !errors.Is(err, library.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Len = %d after rejected add, want 1", cat.Len())
	}
}

func TestRemoveItem_Missing(t *testing.T) {
	cat, _ := newCatalog(t)
	addBook(t, cat, "Dune")
	if cat.RemoveItem(uuid.New()) {
		t.Error("RemoveItem returned true for unknown id")
	}
	if cat.Len() != 1 {
		t.Errorf("Len = %d, want 1 (catalog must be unchanged)", cat.Len())
	}
}

func TestRemoveItem_StopsRelay(t *testing.T) {
	cat, sink := newCatalog(t)
	b := addBook(t, cat, "Dune")

	if !cat.RemoveItem(b.ID()) {
		t.Fatal("RemoveItem returned false for owned item")
	}
	if err := b.Borrow("Alice"); err != nil {
		t.Fatalf("Borrow: %v", err)
	}
	if sink.Len() != 0 {
		t.Errorf("relay still active after removal, sink = %q", sink.String())
	}
}

func TestRemoveItem_BorrowedItemPermitted(t *testing.T) {
	cat, _ := newCatalog(t)
	b := addBook(t, cat, "Dune")
	if err := b.Borrow("Alice"); err != nil {
		t.Fatalf("Borrow: %v", err)
	}
	if !cat.RemoveItem(b.ID()) {
		t.Error("borrowed item could not be removed")
	}
	if !b.IsBorrowed() {
		t.Error("removal changed the item's borrow state")
	}
}

// --- FindByTitle ---

func collect(seq func(func(library.Item) bool)) []library.Item {
	var out []library.Item
	seq(func(it library.Item) bool {
		out = append(out, it)
		return true
	})
	return out
}

func TestFindByTitle_BlankQueryMatchesNothing(t *testing.T) {
	cat, _ := newCatalog(t)
	addBook(t, cat, "Dune")
	for _, q := range []string{"", "   "} {
		if got := collect(cat.FindByTitle(q)); len(got) != 0 {
			t.Errorf("FindByTitle(%q) returned %d items, want 0", q, len(got))
		}
	}
}

func TestFindByTitle_CaseInsensitiveSubstring(t *testing.T) {
	cat, _ := newCatalog(t)
	addBook(t, cat, "The Pragmatic Programmer")
	addBook(t, cat, "Dune")

	got := collect(cat.FindByTitle("pragmatic"))
	if len(got) != 1 || got[0].Title() != "The Pragmatic Programmer" {
		t.Fatalf("FindByTitle(pragmatic) = %v items", len(got))
	}
	if got := collect(cat.FindByTitle("  PROGRAMMER ")); len(got) != 1 {
		t.Errorf("trimmed uppercase query matched %d items, want 1", len(got))
	}
}

func TestFindByTitle_Restartable(t *testing.T) {
	cat, _ := newCatalog(t)
	addBook(t, cat, "Dune")
	addBook(t, cat, "Dune Messiah")

	seq := cat.FindByTitle("dune")
	first := collect(seq)
	second := collect(seq)
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("sequence not restartable: first=%d second=%d", len(first), len(second))
	}
	if first[0].Title() != "Dune" || first[1].Title() != "Dune Messiah" {
		t.Error("results not in insertion order")
	}
}

func TestFindByTitle_EarlyBreak(t *testing.T) {
	cat, _ := newCatalog(t)
	addBook(t, cat, "Dune")
	addBook(t, cat, "Dune Messiah")

	n := 0
	for range cat.FindByTitle("dune") {
		n++
		break
	}
	if n != 1 {
		t.Errorf("early break yielded %d items, want 1", n)
	}
}

// --- Borrow / Return by id ---

func TestBorrowItemByID_Unknown(t *testing.T) {
	cat, _ := newCatalog(t)
	if err := cat.BorrowItemByID(uuid.New(), "Alice"); !errors.Is(err, library.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := cat.ReturnItemByID(uuid.New()); !errors.Is(err, library.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBorrowItemByID_PropagatesItemErrors(t *testing.T) {
	cat, _ := newCatalog(t)
	b := addBook(t, cat, "Dune")

	if err := cat.BorrowItemByID(b.ID(), "x"); !errors.Is(err, library.ErrInvalidArgument) {
		t.Errorf("invalid name err = %v, want ErrInvalidArgument", err)
	}
	if err := cat.ReturnItemByID(b.ID()); !errors.Is(err, library.ErrInvalidState) {
		t.Errorf("return of available item err = %v, want ErrInvalidState", err)
	}
}

func TestBorrowedCount_TracksState(t *testing.T) {
	cat, _ := newCatalog(t)
	a := addBook(t, cat, "Dune")
	b := addBook(t, cat, "The Pragmatic Programmer")
	c := addBook(t, cat, "Gödel, Escher, Bach")

	if cat.BorrowedCount() != 0 {
		t.Fatalf("BorrowedCount = %d, want 0", cat.BorrowedCount())
	}
	if err := cat.BorrowItemByID(a.ID(), "Alice"); err != nil {
		t.Fatalf("Borrow a: %v", err)
	}
	if err := cat.BorrowItemByID(b.ID(), "Bob"); err != nil {
		t.Fatalf("Borrow b: %v", err)
	}
	if cat.BorrowedCount() != 2 {
		t.Errorf("BorrowedCount = %d, want 2", cat.BorrowedCount())
	}

	cat.RemoveItem(c.ID())
	if cat.BorrowedCount() != 2 {
		t.Errorf("BorrowedCount = %d after removing available item, want 2", cat.BorrowedCount())
	}
	if err := cat.ReturnItemByID(a.ID()); err != nil {
		t.Fatalf("Return a: %v", err)
	}
	if cat.BorrowedCount() != 1 {
		t.Errorf("BorrowedCount = %d, want 1", cat.BorrowedCount())
	}
}

// --- Display and relay ---

func TestShowAllItems_InsertionOrder(t *testing.T) {
	cat, _ := newCatalog(t)
	addBook(t, cat, "Dune")
	addBook(t, cat, "The Pragmatic Programmer")

	var out bytes.Buffer
	cat.ShowAllItems(&out)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Dune") || !strings.Contains(lines[1], "Pragmatic") {
		t.Errorf("lines out of insertion order: %v", lines)
	}
}

func TestRelay_WritesTimestampedLine(t *testing.T) {
	cat, sink := newCatalog(t)
	cat.SetTimeFormat("2006")
	b := addBook(t, cat, "Dune")

	if err := cat.BorrowItemByID(b.ID(), "Alice"); err != nil {
		t.Fatalf("Borrow: %v", err)
	}

	line := strings.TrimRight(sink.String(), "\n")
	parts := strings.SplitN(line, " - ", 2)
	if len(parts) != 2 {
		t.Fatalf("relay line %q not in 'timestamp - message' form", line)
	}
	if len(parts[0]) != 4 {
		t.Errorf("timestamp %q not in configured layout", parts[0])
	}
	if !strings.Contains(parts[1], "borrowed by Alice") {
		t.Errorf("relay message = %q", parts[1])
	}
}

// --- End to end ---

func TestEndToEnd_DuneScenario(t *testing.T) {
	cat, sink := newCatalog(t)

	before := library.TotalItems()
	book, err := library.NewBook("Dune", 1965, "Frank Herbert", "9780441013593")
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	if err := cat.AddItem(book); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if library.TotalItems() != before+1 {
		t.Errorf("TotalItems did not increase by 1")
	}
	if cat.BorrowedCount() != 0 {
		t.Errorf("BorrowedCount = %d, want 0", cat.BorrowedCount())
	}

	if err := cat.BorrowItemByID(book.ID(), "Alice"); err != nil {
		t.Fatalf("BorrowItemByID: %v", err)
	}
	if !book.IsBorrowed() || book.Borrower() != "Alice" {
		t.Errorf("status = %v/%q, want borrowed by Alice", book.IsBorrowed(), book.Borrower())
	}
	if n := strings.Count(sink.String(), "\n"); n != 1 {
		t.Errorf("got %d notification lines, want 1", n)
	}

	if fee := book.CalculateLateFee(3); fee != 1.50 {
		t.Errorf("CalculateLateFee(3) = %v, want 1.50", fee)
	}

	if err := cat.ReturnItemByID(book.ID()); err != nil {
		t.Fatalf("ReturnItemByID: %v", err)
	}
	if book.IsBorrowed() {
		t.Error("status still borrowed after return")
	}
	if n := strings.Count(sink.String(), "\n"); n != 2 {
		t.Errorf("got %d notification lines, want 2", n)
	}
	if cat.BorrowedCount() != 0 {
		t.Errorf("BorrowedCount = %d, want 0", cat.BorrowedCount())
	}
}
