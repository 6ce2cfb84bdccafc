package reservation

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and display format for calendar days.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component. It is a value type:
// copies never share state, so a Date handed out by the ledger cannot be used
// to alter a recorded reservation.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month and day. Out of range
// values are normalised the same way time.Date normalises them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a strict yyyy-mm-dd string. Dates that do not exist on the
// calendar (2025-02-30) are rejected.
func ParseDate(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Date{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	t, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must use yyyy-mm-dd", ErrInvalidInput, trimmed)
	}
	return Date{t: t}, nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether the date was never set.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Stay is the half-open interval [CheckIn, CheckOut): the check-out day itself
// is not occupied, so back-to-back stays do not overlap.
type Stay struct {
	CheckIn  Date
	CheckOut Date
}

// NewStay builds a stay from two dates without validating it.
func NewStay(checkIn, checkOut Date) Stay {
	return Stay{CheckIn: checkIn, CheckOut: checkOut}
}

// ParseStay parses both endpoints and validates the interval.
func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Stay{}, err
	}
	stay := Stay{CheckIn: in, CheckOut: out}
	if !stay.Valid() {
		return Stay{}, fmt.Errorf("%w: check-out %s must be after check-in %s", ErrInvalidInput, out, in)
	}
	return stay, nil
}

// Valid reports whether both endpoints are set and CheckIn precedes CheckOut.
func (s Stay) Valid() bool {
	return !s.CheckIn.IsZero() && !s.CheckOut.IsZero() && s.CheckIn.Before(s.CheckOut)
}

// Nights is the stay duration in whole days.
func (s Stay) Nights() int {
	return s.CheckIn.DaysUntil(s.CheckOut)
}

// Shift moves both endpoints by the same number of days.
func (s Stay) Shift(days int) Stay {
	return Stay{CheckIn: s.CheckIn.AddDays(days), CheckOut: s.CheckOut.AddDays(days)}
}

func (s Stay) String() string {
	return s.CheckIn.String() + ".." + s.CheckOut.String()
}

// Overlaps reports whether two half-open stays share at least one night. It is
// the only conflict predicate used by booking and recommendation.
func Overlaps(a, b Stay) bool {
	return !(!a.CheckOut.After(b.CheckIn) || !a.CheckIn.Before(b.CheckOut))
}
