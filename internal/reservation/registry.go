package reservation

import (
	"strings"
	"sync"
)

// Registry holds the room catalog keyed by room number. Iteration follows
// registration order.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]Room
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]Room)}
}

// Register inserts the room and reports whether it was added. A blank number
// or a number that is already registered leaves the registry unchanged.
func (r *Registry) Register(room Room) bool {
	number := strings.TrimSpace(room.Number)
	if number == "" {
		return false
	}
	room.Number = number

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[number]; exists {
		return false
	}
	r.rooms[number] = room
	r.order = append(r.order, number)
	return true
}

// Lookup returns the room registered under number.
func (r *Registry) Lookup(number string) (Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[strings.TrimSpace(number)]
	return room, ok
}

// List returns a snapshot of every registered room.
func (r *Registry) List() []Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Room, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, r.rooms[number])
	}
	return out
}

// Len returns the number of registered rooms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
