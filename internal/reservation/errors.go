package reservation

import "errors"

var (
	// ErrInvalidInput is returned when a request is missing data or its stay is empty.
	ErrInvalidInput = errors.New("reservation: invalid input")
	// ErrAlreadyBooked is returned when the stay overlaps an existing reservation for the room.
	ErrAlreadyBooked = errors.New("reservation: room already booked for these dates")
	// ErrInvalidEmail is returned when a customer email does not match the address grammar.
	ErrInvalidEmail = errors.New("reservation: invalid email")
	// ErrNoReservations signals an empty ledger to presentation layers.
	ErrNoReservations = errors.New("reservation: no reservations found")
)
