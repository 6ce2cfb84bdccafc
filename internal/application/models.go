package application

import (
	"github.com/shopspring/decimal"

	"github.com/example/hotel-reservations/internal/reservation"
)

// RoomInput captures caller provided room fields.
type RoomInput struct {
	Number string
	// Price is the nightly rate; nil registers a room without a price.
	Price         *decimal.Decimal
	Type          string
	Complimentary bool
}

// CustomerInput captures caller provided account fields.
type CustomerInput struct {
	Email     string
	FirstName string
	LastName  string
}

// BookParams wraps the data required to reserve a room.
type BookParams struct {
	Email      string
	RoomNumber string
	Stay       reservation.Stay
}

// SearchParams wraps the data required to list rooms free for a stay.
type SearchParams struct {
	Stay   reservation.Stay
	Filter reservation.Filter
}

// RecommendParams wraps the data required to look for alternative stays.
type RecommendParams struct {
	Stay       reservation.Stay
	WindowDays int
	Filter     reservation.Filter
}
