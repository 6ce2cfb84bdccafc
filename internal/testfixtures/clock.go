package testfixtures

import (
	"sync"
	"time"

	"github.com/example/hotel-reservations/internal/reservation"
)

// Clock is a controllable time source shared by the ledger, the recommender
// and the menus under test.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock returns a clock set to start, or to ReferenceTime when start is
// the zero value.
func NewClock(start time.Time) *Clock {
	if start.IsZero() {
		start = ReferenceTime()
	}
	return &Clock{current: start}
}

// NewClockOn returns a clock set to 09:00 UTC on the given yyyy-mm-dd day.
func NewClockOn(day string) *Clock {
	return NewClock(reservation.MustParseDate(day).Time().Add(9 * time.Hour))
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// NowFunc exposes Now for injection into constructors taking func() time.Time.
func (c *Clock) NowFunc() func() time.Time {
	if c == nil {
		return time.Now
	}
	return c.Now
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// AdvanceDays moves the clock forward by whole days and returns the new day.
func (c *Clock) AdvanceDays(days int) reservation.Date {
	c.mu.Lock()
	c.current = c.current.AddDate(0, 0, days)
	updated := c.current
	c.mu.Unlock()
	return reservation.DateOf(updated)
}

// Today returns the calendar day the clock currently points at.
func (c *Clock) Today() reservation.Date {
	return reservation.DateOf(c.Now())
}
