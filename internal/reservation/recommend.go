package reservation

import (
	"fmt"
	"time"
)

const (
	// MinSearchWindow and MaxSearchWindow bound the caller's lookahead in days.
	MinSearchWindow = 1
	MaxSearchWindow = 365
	// HorizonDays is how far past today an alternative may start (exclusive).
	HorizonDays = 365
	// bandWidth is the number of consecutive offsets probed per room.
	bandWidth = 7
)

// Filter narrows the rooms considered by a search.
type Filter int

const (
	AnyRoom Filter = iota
	FreeOnly
	PaidOnly
)

// ParseFilter maps "all", "free" and "paid" (or "") to a Filter.
func ParseFilter(value string) (Filter, error) {
	switch value {
	case "", "all", "any":
		return AnyRoom, nil
	case "free":
		return FreeOnly, nil
	case "paid":
		return PaidOnly, nil
	}
	return AnyRoom, fmt.Errorf("%w: filter %q must be all, free or paid", ErrInvalidInput, value)
}

func (f Filter) String() string {
	switch f {
	case FreeOnly:
		return "free"
	case PaidOnly:
		return "paid"
	default:
		return "all"
	}
}

// Matches reports whether room passes the filter. Both the recorded price and
// the room's own free flag count.
func (f Filter) Matches(room Room) bool {
	if f == AnyRoom {
		return true
	}
	free := room.HasZeroPrice() || room.IsFree()
	return free == (f == FreeOnly)
}

// Recommendation proposes an alternative stay for a room.
type Recommendation struct {
	Room   Room
	Stay   Stay
	Offset int
}

// Recommendations is the ordered result of a search. Rooms that were free for
// the requested stay and rooms without an alternative are absent.
type Recommendations struct {
	Items []Recommendation
	// Window is the lookahead actually used after clamping.
	Window int
	// Capped is set when the requested window exceeded MaxSearchWindow.
	Capped bool
}

// For returns the alternative proposed for roomNumber.
func (r Recommendations) For(roomNumber string) (Stay, bool) {
	for _, item := range r.Items {
		if item.Room.Number == roomNumber {
			return item.Stay, true
		}
	}
	return Stay{}, false
}

func (r Recommendations) Len() int {
	return len(r.Items)
}

// Note is the informational message shown when the window was capped.
func (r Recommendations) Note() string {
	if !r.Capped {
		return ""
	}
	return fmt.Sprintf("Maximum search range allowed is %d days. Using %d days.", MaxSearchWindow, MaxSearchWindow)
}

// ClampWindow bounds days to [MinSearchWindow, MaxSearchWindow] and reports
// whether it was capped from above.
func ClampWindow(days int) (int, bool) {
	switch {
	case days > MaxSearchWindow:
		return MaxSearchWindow, true
	case days < MinSearchWindow:
		return MinSearchWindow, false
	}
	return days, false
}

// Recommender searches for alternative stays when the requested one is taken.
type Recommender struct {
	rooms  *Registry
	ledger *Ledger
	now    func() time.Time
}

// NewRecommender wires the search over a registry and ledger.
func NewRecommender(rooms *Registry, ledger *Ledger, now func() time.Time) *Recommender {
	if now == nil {
		now = time.Now
	}
	return &Recommender{rooms: rooms, ledger: ledger, now: now}
}

// Recommend probes the offsets [window, window+6] days after stay.CheckIn for
// every room that is booked for stay, keeping the stay length, and returns the
// first free alternative per room. No alternative may start on or after
// today + HorizonDays. The ledger is never modified.
func (r *Recommender) Recommend(stay Stay, searchWindowDays int, filter Filter) Recommendations {
	window, capped := ClampWindow(searchWindowDays)
	result := Recommendations{Window: window, Capped: capped}

	if stay.CheckIn.IsZero() || stay.CheckOut.IsZero() {
		return result
	}
	nights := stay.Nights()
	if nights <= 0 {
		return result
	}

	horizon := DateOf(r.now()).AddDays(HorizonDays)

	for _, room := range r.rooms.List() {
		if !filter.Matches(room) {
			continue
		}
		booked := r.ledger.StaysFor(room.Number)
		if isFree(booked, stay) {
			continue
		}
		for offset := window; offset < window+bandWidth; offset++ {
			candidate := stay.Shift(offset)
			if !candidate.CheckIn.Before(horizon) {
				break
			}
			if isFree(booked, candidate) {
				result.Items = append(result.Items, Recommendation{Room: room, Stay: candidate, Offset: offset})
				break
			}
		}
	}
	return result
}

// Available lists the rooms passing filter that are free for stay, in
// registry order.
func (r *Recommender) Available(stay Stay, filter Filter) []Room {
	out := make([]Room, 0)
	if !stay.Valid() {
		return out
	}
	for _, room := range r.rooms.List() {
		if filter.Matches(room) && r.ledger.IsAvailable(room.Number, stay) {
			out = append(out, room)
		}
	}
	return out
}

func isFree(booked []Stay, stay Stay) bool {
	for _, existing := range booked {
		if Overlaps(stay, existing) {
			return false
		}
	}
	return true
}
