package library

import "fmt"

// dvdFeeCents is the late fee per day, in cents.
const dvdFeeCents = 150

// DVD is a video disc with a running time in minutes.
type DVD struct {
	itemCore
	durationMinutes int
}

// NewDVD validates title, year and duration in that order and returns a
// new available DVD.
func NewDVD(title string, year, durationMinutes int) (*DVD, error) {
	t, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := validatePositive("duration", durationMinutes); err != nil {
		return nil, err
	}
	return &DVD{itemCore: newItemCore(t, year), durationMinutes: durationMinutes}, nil
}

func (d *DVD) DurationMinutes() int { return d.durationMinutes }

// SetDurationMinutes replaces the running time; it must stay positive.
func (d *DVD) SetDurationMinutes(minutes int) error {
	if err := validatePositive("duration", minutes); err != nil {
		return err
	}
	d.durationMinutes = minutes
	return nil
}

func (d *DVD) CalculateLateFee(daysLate int) float64 {
	return lateFee(daysLate, dvdFeeCents)
}

func (d *DVD) Info() string {
	return fmt.Sprintf("DVD: %s (%d) - %s - ID: %s - Duration: %d min",
		d.title, d.year, d.status(), d.id, d.durationMinutes)
}
