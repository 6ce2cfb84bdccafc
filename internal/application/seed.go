package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/example/hotel-reservations/internal/reservation"
)

// DemoCustomers are the accounts created by SeedDemoData.
var DemoCustomers = []CustomerInput{
	{Email: "liam@gmail.com", FirstName: "Liam", LastName: "Carter"},
	{Email: "ethan@gmail.com", FirstName: "Ethan", LastName: "Harris"},
}

// DemoRooms are the rooms created by SeedDemoData.
var DemoRooms = []RoomInput{
	{Number: "101", Price: priceOf("100.00"), Type: "SINGLE"},
	{Number: "102", Price: priceOf("200.00"), Type: "DOUBLE"},
	{Number: "103", Price: priceOf("150.00"), Type: "SINGLE"},
	{Number: "105", Price: priceOf("0"), Type: "SINGLE"},
	{Number: "108", Price: priceOf("0"), Type: "SINGLE"},
	{Number: "201", Price: priceOf("100.01"), Type: "SINGLE"},
	{Number: "202", Price: priceOf("200.00"), Type: "DOUBLE"},
	{Number: "203", Type: "SINGLE", Complimentary: true},
}

// DemoBooking is the reservation created by SeedDemoData.
var DemoBooking = BookParams{
	Email:      "liam@gmail.com",
	RoomNumber: "201",
	Stay:       reservation.NewStay(reservation.MustParseDate("2025-11-20"), reservation.MustParseDate("2025-11-22")),
}

func priceOf(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

// SeedDemoData loads the demo customers, rooms and booking. Running it twice
// leaves the stores unchanged.
func (s *HotelService) SeedDemoData(ctx context.Context) (err error) {
	if s == nil {
		return fmt.Errorf("HotelService is nil")
	}

	logger := s.loggerWith(ctx, "SeedDemoData")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to seed demo data", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "demo data seeded",
			"rooms", s.rooms.Len(),
			"reservations", s.ledger.Len(),
		)
	}()

	for _, input := range DemoCustomers {
		if _, regErr := s.customers.Register(ctx, input); regErr != nil && !errors.Is(regErr, ErrAlreadyExists) {
			return fmt.Errorf("seed customer %s: %w", input.Email, regErr)
		}
	}

	if _, err = s.AddRooms(ctx, DemoRooms); err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}

	if _, bookErr := s.Book(ctx, DemoBooking); bookErr != nil && !errors.Is(bookErr, ErrConflict) {
		return fmt.Errorf("seed reservation: %w", bookErr)
	}
	return nil
}
