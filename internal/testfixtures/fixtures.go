package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/hotel-reservations/internal/application"
	"github.com/example/hotel-reservations/internal/reservation"
)

var (
	roomCounter     uint64
	customerCounter uint64
)

var referenceTime = time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical "now" used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// Stay parses a check-in/check-out pair and panics on malformed literals.
func Stay(checkIn, checkOut string) reservation.Stay {
	stay, err := reservation.ParseStay(checkIn, checkOut)
	if err != nil {
		panic(err)
	}
	return stay
}

// ----------------------------- Room fixtures -----------------------------

// RoomFixture is a deterministic room description.
type RoomFixture struct {
	Number        string
	Price         *decimal.Decimal
	Type          reservation.RoomType
	Complimentary bool
}

// RoomOption configures the generated room fixture.
type RoomOption func(*RoomFixture)

// NewRoomFixture returns a paid single room numbered from 9001 upward.
func NewRoomFixture(opts ...RoomOption) RoomFixture {
	idx := atomic.AddUint64(&roomCounter, 1)
	price := decimal.NewFromInt(100)
	fixture := RoomFixture{
		Number: fmt.Sprintf("%d", 9000+idx),
		Price:  &price,
		Type:   reservation.RoomTypeSingle,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

func WithRoomNumber(number string) RoomOption {
	return func(f *RoomFixture) {
		f.Number = number
	}
}

// WithRoomPrice sets the nightly rate from a decimal literal.
func WithRoomPrice(price string) RoomOption {
	return func(f *RoomFixture) {
		d := decimal.RequireFromString(price)
		f.Price = &d
	}
}

// WithoutRoomPrice clears the price so the room is free.
func WithoutRoomPrice() RoomOption {
	return func(f *RoomFixture) {
		f.Price = nil
	}
}

func WithRoomType(roomType reservation.RoomType) RoomOption {
	return func(f *RoomFixture) {
		f.Type = roomType
	}
}

// WithComplimentary marks the room free regardless of price.
func WithComplimentary() RoomOption {
	return func(f *RoomFixture) {
		f.Complimentary = true
	}
}

// Input returns the fixture as an application.RoomInput.
func (f RoomFixture) Input() application.RoomInput {
	input := application.RoomInput{
		Number:        f.Number,
		Type:          string(f.Type),
		Complimentary: f.Complimentary,
	}
	if f.Price != nil {
		price := *f.Price
		input.Price = &price
	}
	return input
}

// Room returns the fixture as a registry value.
func (f RoomFixture) Room() reservation.Room {
	switch {
	case f.Complimentary:
		return reservation.NewComplimentaryRoom(f.Number, f.Type)
	case f.Price == nil:
		return reservation.Room{Number: f.Number, Type: f.Type}
	default:
		return reservation.NewRoom(f.Number, *f.Price, f.Type)
	}
}

// --------------------------- Customer fixtures ---------------------------

// CustomerFixture is a deterministic customer account.
type CustomerFixture struct {
	Email     string
	FirstName string
	LastName  string
}

// CustomerOption configures the generated customer fixture.
type CustomerOption func(*CustomerFixture)

// NewCustomerFixture returns a customer with a unique guest-N address.
func NewCustomerFixture(opts ...CustomerOption) CustomerFixture {
	idx := atomic.AddUint64(&customerCounter, 1)
	fixture := CustomerFixture{
		Email:     fmt.Sprintf("guest-%03d@example.com", idx),
		FirstName: "Guest",
		LastName:  fmt.Sprintf("%03d", idx),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

func WithCustomerEmail(email string) CustomerOption {
	return func(f *CustomerFixture) {
		f.Email = email
	}
}

func WithCustomerName(first, last string) CustomerOption {
	return func(f *CustomerFixture) {
		f.FirstName = first
		f.LastName = last
	}
}

// Input returns the fixture as an application.CustomerInput.
func (f CustomerFixture) Input() application.CustomerInput {
	return application.CustomerInput{Email: f.Email, FirstName: f.FirstName, LastName: f.LastName}
}

// Customer returns the fixture as a validated domain value.
func (f CustomerFixture) Customer() reservation.Customer {
	customer, err := reservation.NewCustomer(f.Email, f.FirstName, f.LastName)
	if err != nil {
		panic(err)
	}
	return customer
}
