package reservation

import (
	"fmt"
	"time"
)

// Reservation binds one room to one customer for a stay. Reservations are
// never modified once recorded.
type Reservation struct {
	ID        string
	Customer  Customer
	Room      Room
	Stay      Stay
	CreatedAt time.Time
}

// RoomNumber is the key used for conflict checks.
func (r Reservation) RoomNumber() string {
	return r.Room.Number
}

func (r Reservation) String() string {
	return fmt.Sprintf("Reservation:\nCustomer: First Name: %s, Last Name: %s, Email: %s\nRoom: %s\nCheck-In Date: %s\nCheck-Out Date: %s",
		r.Customer.FirstName, r.Customer.LastName, r.Customer.Email,
		r.Room, r.Stay.CheckIn, r.Stay.CheckOut)
}
