package reservation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoomType is the closed set of room categories.
type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
)

// ParseRoomType accepts the category name in any letter case.
func ParseRoomType(value string) (RoomType, error) {
	switch RoomType(strings.ToUpper(strings.TrimSpace(value))) {
	case RoomTypeSingle:
		return RoomTypeSingle, nil
	case RoomTypeDouble:
		return RoomTypeDouble, nil
	}
	return "", fmt.Errorf("%w: room type %q must be SINGLE or DOUBLE", ErrInvalidInput, value)
}

// Room describes a bookable unit. Rooms are treated as immutable once they are
// registered; the registry hands out copies.
type Room struct {
	Number string
	// Price is the nightly rate. An absent price means the room is free.
	Price decimal.NullDecimal
	Type  RoomType
	// Complimentary marks rooms that are free regardless of any price on record.
	Complimentary bool
}

// NewRoom returns a priced room.
func NewRoom(number string, price decimal.Decimal, roomType RoomType) Room {
	return Room{Number: number, Price: decimal.NewNullDecimal(price), Type: roomType}
}

// NewComplimentaryRoom returns a room that is always free.
func NewComplimentaryRoom(number string, roomType RoomType) Room {
	return Room{Number: number, Price: decimal.NewNullDecimal(decimal.Zero), Type: roomType, Complimentary: true}
}

// HasZeroPrice reports whether a price is on record and equals zero.
func (r Room) HasZeroPrice() bool {
	return r.Price.Valid && r.Price.Decimal.IsZero()
}

// IsFree reports whether guests pay nothing for the room.
func (r Room) IsFree() bool {
	return r.Complimentary || !r.Price.Valid || r.Price.Decimal.IsZero()
}

// NightlyRate returns the price, or zero for rooms without one.
func (r Room) NightlyRate() decimal.Decimal {
	if !r.Price.Valid {
		return decimal.Zero
	}
	return r.Price.Decimal
}

func (r Room) String() string {
	price := "Free"
	if !r.IsFree() {
		price = "$" + r.Price.Decimal.StringFixed(2)
	}
	return fmt.Sprintf("Room Number: %s, Price: %s, Type: %s", r.Number, price, r.Type)
}
