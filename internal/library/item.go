package library

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Item is one circulating library unit: a book, a DVD, or a magazine.
// An item is either available or borrowed by exactly one person; Borrow
// and Return are the only way to move between the two states, and each
// successful transition notifies the item's subscribers.
type Item interface {
	ID() uuid.UUID
	Title() string
	SetTitle(title string) error
	Year() int
	DateAdded() time.Time
	IsBorrowed() bool
	Borrower() string
	Borrow(borrower string) error
	Return() error
	CalculateLateFee(daysLate int) float64
	Info() string
	Subscribe(fn Listener) *Subscription
}

var totalItems atomic.Int64

// TotalItems reports how many items have been constructed since process
// start. It only ever grows; removing an item from a catalog does not
// decrement it.
func TotalItems() int64 {
	return totalItems.Load()
}

// itemCore holds the state and behavior shared by every variant.
type itemCore struct {
	id        uuid.UUID
	title     string
	year      int
	dateAdded time.Time
	borrowed  bool
	borrower  string
	listeners []listenerEntry
	nextSeq   uint64
}

// newItemCore assumes title and year have already been validated.
func newItemCore(title string, year int) itemCore {
	totalItems.Add(1)
	return itemCore{
		id:        uuid.New(),
		title:     title,
		year:      year,
		dateAdded: time.Now(),
	}
}

func (c *itemCore) ID() uuid.UUID        { return c.id }
func (c *itemCore) Title() string        { return c.title }
func (c *itemCore) Year() int            { return c.year }
func (c *itemCore) DateAdded() time.Time { return c.dateAdded }
func (c *itemCore) IsBorrowed() bool     { return c.borrowed }

// Borrower returns the current borrower's name, or "" when available.
func (c *itemCore) Borrower() string { return c.borrower }

func (c *itemCore) SetTitle(title string) error {
	t, err := validateTitle(title)
	if err != nil {
		return err
	}
	c.title = t
	return nil
}

// Borrow marks the item as borrowed and notifies subscribers. The item
// must be available and the borrower name must pass validation; on
// failure nothing is mutated and no notification fires.
func (c *itemCore) Borrow(borrower string) error {
	if c.borrowed {
		return fmt.Errorf("%w: item %q is already borrowed by %s", ErrInvalidState, c.title, c.borrower)
	}
	name, err := validatePersonName(borrower)
	if err != nil {
		return err
	}
	c.borrowed = true
	c.borrower = name
	c.notify(fmt.Sprintf("Item '%s' (ID: %s) borrowed by %s.", c.title, c.id, name))
	return nil
}

// Return marks the item as available again and notifies subscribers.
func (c *itemCore) Return() error {
	if !c.borrowed {
		return fmt.Errorf("%w: item %q is not borrowed", ErrInvalidState, c.title)
	}
	previous := c.borrower
	c.borrowed = false
	c.borrower = ""
	c.notify(fmt.Sprintf("Item '%s' (ID: %s) returned by %s.", c.title, c.id, previous))
	return nil
}

// Subscribe registers a listener for this item's availability changes.
func (c *itemCore) Subscribe(fn Listener) *Subscription {
	c.nextSeq++
	c.listeners = append(c.listeners, listenerEntry{seq: c.nextSeq, fn: fn})
	return &Subscription{core: c, seq: c.nextSeq}
}

func (c *itemCore) notify(message string) {
	e := AvailabilityEvent{
		ItemID:     c.id,
		ItemTitle:  c.title,
		Message:    message,
		OccurredAt: time.Now(),
	}
	// Snapshot so a listener unsubscribing mid-fire cannot skip its peers.
	for _, entry := range append([]listenerEntry(nil), c.listeners...) {
		invoke(entry.fn, e)
	}
}

// invoke shields the item from a panicking listener; the state change has
// already committed by the time listeners run.
func invoke(fn Listener, e AvailabilityEvent) {
	defer func() { _ = recover() }()
	fn(e)
}

// status renders the borrow state for Info lines.
func (c *itemCore) status() string {
	if c.borrowed {
		return "Borrowed by " + c.borrower
	}
	return "Available"
}

// lateFee turns a per-day rate in cents into a fee for daysLate days.
// Integer cents keep the documented rates exact in the returned float.
func lateFee(daysLate, centsPerDay int) float64 {
	if daysLate <= 0 {
		return 0
	}
	return float64(daysLate*centsPerDay) / 100
}
