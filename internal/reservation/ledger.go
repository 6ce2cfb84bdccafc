package reservation

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger is the append-only record of confirmed reservations. Entries are
// indexed by room number so a conflict check only walks that room's history.
type Ledger struct {
	mu          sync.RWMutex
	entries     []Reservation
	byRoom      map[string][]int
	idGenerator func() string
	now         func() time.Time
}

// NewLedger returns an empty ledger. Nil arguments fall back to random UUIDs
// and the wall clock.
func NewLedger(idGenerator func() string, now func() time.Time) *Ledger {
	if idGenerator == nil {
		idGenerator = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		byRoom:      make(map[string][]int),
		idGenerator: idGenerator,
		now:         now,
	}
}

// Book records a reservation of room for customer. Invalid input yields
// ErrInvalidInput and an overlapping stay yields ErrAlreadyBooked; in both
// cases the ledger is left untouched.
func (l *Ledger) Book(customer Customer, room Room, stay Stay) (Reservation, error) {
	if customer.Email == "" {
		return Reservation{}, fmt.Errorf("%w: customer is required", ErrInvalidInput)
	}
	if strings.TrimSpace(room.Number) == "" {
		return Reservation{}, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if !stay.Valid() {
		return Reservation{}, fmt.Errorf("%w: check-in must be before check-out", ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.conflictLocked(room.Number, stay); ok {
		return Reservation{}, fmt.Errorf("%w: room %s is taken %s", ErrAlreadyBooked, room.Number, existing.Stay)
	}

	res := Reservation{
		ID:        l.idGenerator(),
		Customer:  customer,
		Room:      room,
		Stay:      stay,
		CreatedAt: l.now(),
	}
	l.entries = append(l.entries, res)
	l.byRoom[room.Number] = append(l.byRoom[room.Number], len(l.entries)-1)
	return res, nil
}

// IsAvailable reports whether stay overlaps no reservation for the room.
func (l *Ledger) IsAvailable(roomNumber string, stay Stay) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, taken := l.conflictLocked(roomNumber, stay)
	return !taken
}

// StaysFor returns the booked stays of one room in booking order.
func (l *Ledger) StaysFor(roomNumber string) []Stay {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.byRoom[roomNumber]
	out := make([]Stay, 0, len(idx))
	for _, i := range idx {
		out = append(out, l.entries[i].Stay)
	}
	return out
}

// ReservationsFor returns every reservation held by email. The result is
// never nil.
func (l *Ledger) ReservationsFor(email string) []Reservation {
	key := NormalizeEmail(email)

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Reservation, 0)
	if key == "" {
		return out
	}
	for _, res := range l.entries {
		if res.Customer.Email == key {
			out = append(out, res)
		}
	}
	return out
}

// All returns the reservations in insertion order.
func (l *Ledger) All() []Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Reservation, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded reservations.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Render writes every reservation in insertion order, separated by blank
// lines. An empty ledger writes nothing and returns ErrNoReservations.
func (l *Ledger) Render(w io.Writer) error {
	all := l.All()
	if len(all) == 0 {
		return ErrNoReservations
	}
	for i, res := range all {
		sep := ""
		if i > 0 {
			sep = "\n\n"
		}
		if _, err := io.WriteString(w, sep+res.String()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (l *Ledger) conflictLocked(roomNumber string, stay Stay) (Reservation, bool) {
	for _, i := range l.byRoom[roomNumber] {
		if Overlaps(stay, l.entries[i].Stay) {
			return l.entries[i], true
		}
	}
	return Reservation{}, false
}
