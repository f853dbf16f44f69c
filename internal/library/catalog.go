package library

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/google/uuid"
)

// DefaultTimeFormat is the timestamp layout for relayed notification lines.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// Catalog owns a collection of items in insertion order and relays every
// owned item's availability notifications to its sink as
// "{timestamp} - {message}" lines. It is not safe for concurrent use.
type Catalog struct {
	items      []Item
	relays     map[uuid.UUID]*Subscription
	sink       io.Writer
	timeFormat string
}

// NewCatalog creates an empty catalog writing notifications to sink.
// A nil sink means stdout.
func NewCatalog(sink io.Writer) *Catalog {
	if sink == nil {
		sink = os.Stdout
	}
	return &Catalog{
		relays:     make(map[uuid.UUID]*Subscription),
		sink:       sink,
		timeFormat: DefaultTimeFormat,
	}
}

// SetTimeFormat overrides the timestamp layout for notification lines.
func (c *Catalog) SetTimeFormat(layout string) {
	if layout != "" {
		c.timeFormat = layout
	}
}

// AddItem takes ownership of the item and subscribes the catalog's relay
// to its notifications. The same item cannot be added twice.
func (c *Catalog) AddItem(item Item) error {
	if item == nil {
		return fmt.Errorf("%w: item must not be nil", ErrInvalidArgument)
	}
	if _, exists := c.relays[item.ID()]; exists {
		return fmt.Errorf("%w: item %s is already in the catalog", ErrInvalidArgument, item.ID())
	}
	c.relays[item.ID()] = item.Subscribe(c.relay)
	c.items = append(c.items, item)
	return nil
}

// RemoveItem drops the item with the given id and cancels the relay
// subscription, so later borrows and returns on it no longer reach the
// sink. Reports whether an item was removed. A borrowed item may be
// removed; it leaves the catalog still checked out.
func (c *Catalog) RemoveItem(id uuid.UUID) bool {
	for i, it := range c.items {
		if it.ID() == id {
			c.relays[id].Cancel()
			delete(c.relays, id)
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// ItemByID returns the owned item with the given id, or nil.
func (c *Catalog) ItemByID(id uuid.UUID) Item {
	for _, it := range c.items {
		if it.ID() == id {
			return it
		}
	}
	return nil
}

// FindByTitle returns a restartable sequence of items whose title
// contains the trimmed query, case-insensitively, in insertion order.
// A blank query matches nothing.
func (c *Catalog) FindByTitle(query string) iter.Seq[Item] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(yield func(Item) bool) {
		if q == "" {
			return
		}
		for _, it := range c.items {
			if strings.Contains(strings.ToLower(it.Title()), q) {
				if !yield(it) {
					return
				}
			}
		}
	}
}

// BorrowItemByID borrows the item with the given id for borrower,
// propagating the item's own validation and state errors unchanged.
func (c *Catalog) BorrowItemByID(id uuid.UUID, borrower string) error {
	it := c.ItemByID(id)
	if it == nil {
		return fmt.Errorf("%w: no item with ID %s", ErrNotFound, id)
	}
	return it.Borrow(borrower)
}

// ReturnItemByID returns the item with the given id.
func (c *Catalog) ReturnItemByID(id uuid.UUID) error {
	it := c.ItemByID(id)
	if it == nil {
		return fmt.Errorf("%w: no item with ID %s", ErrNotFound, id)
	}
	return it.Return()
}

// BorrowedCount recomputes the number of currently borrowed items.
func (c *Catalog) BorrowedCount() int {
	n := 0
	for _, it := range c.items {
		if it.IsBorrowed() {
			n++
		}
	}
	return n
}

// Len returns the number of owned items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the owned items in insertion order. The slice is a copy;
// the items themselves are the catalog's own references.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// ShowAllItems writes each item's Info line to w in insertion order.
func (c *Catalog) ShowAllItems(w io.Writer) {
	for _, it := range c.items {
		fmt.Fprintln(w, it.Info())
	}
}

func (c *Catalog) relay(e AvailabilityEvent) {
	fmt.Fprintf(c.sink, "%s - %s\n", e.OccurredAt.Format(c.timeFormat), e.Message)
}
