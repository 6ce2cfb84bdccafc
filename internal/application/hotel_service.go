package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/example/hotel-reservations/internal/reservation"
)

// HotelService is the single entry point used by the menus and the HTTP API.
// It resolves customers and rooms, delegates to the ledger and recommender,
// and maps engine errors onto the application taxonomy.
type HotelService struct {
	rooms       *reservation.Registry
	ledger      *reservation.Ledger
	customers   *CustomerDirectory
	recommender *reservation.Recommender
	now         func() time.Time
	logger      *slog.Logger
	recorder    Recorder
}

// NewHotelService constructs the facade over the provided stores.
func NewHotelService(rooms *reservation.Registry, ledger *reservation.Ledger, customers *CustomerDirectory, now func() time.Time) *HotelService {
	return NewHotelServiceWithLogger(rooms, ledger, customers, now, nil, nil)
}

// NewHotelServiceWithLogger constructs the facade with a specified logger and
// metrics recorder. Nil stores are replaced with empty ones.
func NewHotelServiceWithLogger(rooms *reservation.Registry, ledger *reservation.Ledger, customers *CustomerDirectory, now func() time.Time, logger *slog.Logger, recorder Recorder) *HotelService {
	if now == nil {
		now = time.Now
	}
	if rooms == nil {
		rooms = reservation.NewRegistry()
	}
	if ledger == nil {
		ledger = reservation.NewLedger(nil, now)
	}
	if customers == nil {
		customers = NewCustomerDirectoryWithLogger(logger)
	}
	return &HotelService{
		rooms:       rooms,
		ledger:      ledger,
		customers:   customers,
		recommender: reservation.NewRecommender(rooms, ledger, now),
		now:         now,
		logger:      defaultLogger(logger),
		recorder:    defaultRecorder(recorder),
	}
}

func (s *HotelService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "HotelService", operation, attrs...)
}

// Today returns the current calendar day according to the service clock.
func (s *HotelService) Today() reservation.Date {
	return reservation.DateOf(s.now())
}

// RegisterRoom validates input and adds a room to the catalog.
func (s *HotelService) RegisterRoom(ctx context.Context, input RoomInput) (room reservation.Room, err error) {
	if s == nil {
		err = fmt.Errorf("HotelService is nil")
		return
	}

	logger := s.loggerWith(ctx, "RegisterRoom", "room_number", strings.TrimSpace(input.Number))
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to register room", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "room registered")
	}()

	room, vErr := buildRoom(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	if !s.rooms.Register(room) {
		room = reservation.Room{}
		err = fmt.Errorf("room %s: %w", strings.TrimSpace(input.Number), ErrAlreadyExists)
		return
	}
	s.recorder.ObserveRoomRegistered()
	return
}

// AddRooms registers a batch of rooms. Every entry is validated before any is
// inserted; numbers that are already registered are skipped.
func (s *HotelService) AddRooms(ctx context.Context, inputs []RoomInput) (added int, err error) {
	if s == nil {
		err = fmt.Errorf("HotelService is nil")
		return
	}

	logger := s.loggerWith(ctx, "AddRooms", "requested", len(inputs))
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to add rooms", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("added", added).InfoContext(ctx, "rooms added")
	}()

	rooms := make([]reservation.Room, 0, len(inputs))
	vErr := &ValidationError{}
	for i, input := range inputs {
		room, roomErr := buildRoom(input)
		if roomErr.HasErrors() {
			for field, msg := range roomErr.FieldErrors {
				vErr.add(fmt.Sprintf("rooms[%d].%s", i, field), msg)
			}
			continue
		}
		rooms = append(rooms, room)
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	for _, room := range rooms {
		if s.rooms.Register(room) {
			added++
			s.recorder.ObserveRoomRegistered()
		}
	}
	return
}

// FindRoom returns the room registered under number.
func (s *HotelService) FindRoom(ctx context.Context, number string) (reservation.Room, error) {
	if s == nil {
		return reservation.Room{}, fmt.Errorf("HotelService is nil")
	}

	room, ok := s.rooms.Lookup(number)
	if !ok {
		return reservation.Room{}, fmt.Errorf("room %s: %w", strings.TrimSpace(number), ErrNotFound)
	}
	return room, nil
}

// ListRooms returns the catalog in registration order.
func (s *HotelService) ListRooms(ctx context.Context) []reservation.Room {
	if s == nil {
		return nil
	}
	rooms := s.rooms.List()
	s.loggerWith(ctx, "ListRooms").With("result_count", len(rooms)).DebugContext(ctx, "rooms listed")
	return rooms
}

// SearchRooms lists the rooms passing the filter that are free for the stay.
func (s *HotelService) SearchRooms(ctx context.Context, params SearchParams) (rooms []reservation.Room, err error) {
	if s == nil {
		err = fmt.Errorf("HotelService is nil")
		return
	}

	logger := s.loggerWith(ctx, "SearchRooms",
		"stay", params.Stay.String(),
		"filter", params.Filter.String(),
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to search rooms", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(rooms)).DebugContext(ctx, "rooms searched")
	}()

	if vErr := validateStay(params.Stay); vErr.HasErrors() {
		err = vErr
		return
	}

	rooms = s.recommender.Available(params.Stay, params.Filter)
	return
}

// Book reserves a room for a registered customer.
func (s *HotelService) Book(ctx context.Context, params BookParams) (res reservation.Reservation, err error) {
	if s == nil {
		err = fmt.Errorf("HotelService is nil")
		return
	}

	logger := s.loggerWith(ctx, "Book",
		"email", reservation.NormalizeEmail(params.Email),
		"room_number", strings.TrimSpace(params.RoomNumber),
		"stay", params.Stay.String(),
	)
	defer func() {
		s.recorder.ObserveBooking(bookingOutcome(err))
		if err != nil {
			logger.ErrorContext(ctx, "failed to book room", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("reservation_id", res.ID).InfoContext(ctx, "room booked")
	}()

	if vErr := validateStay(params.Stay); vErr.HasErrors() {
		err = vErr
		return
	}

	var customer reservation.Customer
	customer, err = s.customers.Lookup(ctx, params.Email)
	if err != nil {
		err = fmt.Errorf("customer %s: %w", reservation.NormalizeEmail(params.Email), err)
		return
	}

	var room reservation.Room
	room, err = s.FindRoom(ctx, params.RoomNumber)
	if err != nil {
		return
	}

	res, err = s.ledger.Book(customer, room, params.Stay)
	if err != nil {
		err = mapLedgerError(err)
		return
	}
	return
}

// Recommend searches for alternative stays of the same length for every room
// booked over the requested one.
func (s *HotelService) Recommend(ctx context.Context, params RecommendParams) reservation.Recommendations {
	if s == nil {
		return reservation.Recommendations{}
	}

	result := s.recommender.Recommend(params.Stay, params.WindowDays, params.Filter)
	s.recorder.ObserveRecommendation(result.Len(), result.Capped)

	logger := s.loggerWith(ctx, "Recommend",
		"stay", params.Stay.String(),
		"window_requested", params.WindowDays,
		"window", result.Window,
		"filter", params.Filter.String(),
	)
	if result.Capped {
		logger.InfoContext(ctx, "search window capped", "note", result.Note())
	}
	logger.With("result_count", result.Len()).DebugContext(ctx, "recommendations computed")
	return result
}

// ReservationsOf returns the reservations held by email; unknown customers
// have none.
func (s *HotelService) ReservationsOf(ctx context.Context, email string) []reservation.Reservation {
	if s == nil {
		return []reservation.Reservation{}
	}
	out := s.ledger.ReservationsFor(email)
	s.loggerWith(ctx, "ReservationsOf", "email", reservation.NormalizeEmail(email)).
		With("result_count", len(out)).DebugContext(ctx, "reservations listed")
	return out
}

// AllReservations returns every reservation in booking order.
func (s *HotelService) AllReservations(ctx context.Context) []reservation.Reservation {
	if s == nil {
		return nil
	}
	return s.ledger.All()
}

// RenderReservations writes the text listing of every reservation.
func (s *HotelService) RenderReservations(ctx context.Context, w io.Writer) error {
	if s == nil {
		return fmt.Errorf("HotelService is nil")
	}
	return s.ledger.Render(w)
}

// CreateCustomer registers a new customer account.
func (s *HotelService) CreateCustomer(ctx context.Context, input CustomerInput) (reservation.Customer, error) {
	if s == nil {
		return reservation.Customer{}, fmt.Errorf("HotelService is nil")
	}
	return s.customers.Register(ctx, input)
}

// GetCustomer returns the account registered under email.
func (s *HotelService) GetCustomer(ctx context.Context, email string) (reservation.Customer, error) {
	if s == nil {
		return reservation.Customer{}, fmt.Errorf("HotelService is nil")
	}
	customer, err := s.customers.Lookup(ctx, email)
	if err != nil {
		return reservation.Customer{}, fmt.Errorf("customer %s: %w", reservation.NormalizeEmail(email), err)
	}
	return customer, nil
}

// ListCustomers returns every account ordered by email.
func (s *HotelService) ListCustomers(ctx context.Context) []reservation.Customer {
	if s == nil {
		return nil
	}
	return s.customers.List(ctx)
}

func buildRoom(input RoomInput) (reservation.Room, *ValidationError) {
	vErr := &ValidationError{}

	number := strings.TrimSpace(input.Number)
	switch {
	case number == "":
		vErr.add("number", "room number is required")
	case strings.IndexFunc(number, unicode.IsSpace) >= 0:
		vErr.add("number", "room number must not contain spaces")
	}

	roomType, err := reservation.ParseRoomType(input.Type)
	if err != nil {
		vErr.add("type", "room type must be SINGLE or DOUBLE")
	}

	if input.Price != nil && input.Price.IsNegative() {
		vErr.add("price", "price must not be negative")
	}

	if vErr.HasErrors() {
		return reservation.Room{}, vErr
	}

	switch {
	case input.Complimentary:
		return reservation.NewComplimentaryRoom(number, roomType), vErr
	case input.Price == nil:
		return reservation.Room{Number: number, Type: roomType}, vErr
	default:
		return reservation.NewRoom(number, *input.Price, roomType), vErr
	}
}

func validateStay(stay reservation.Stay) *ValidationError {
	vErr := &ValidationError{}
	if stay.CheckIn.IsZero() {
		vErr.add("check_in", "check-in date is required")
	}
	if stay.CheckOut.IsZero() {
		vErr.add("check_out", "check-out date is required")
	}
	if !vErr.HasErrors() && !stay.CheckIn.Before(stay.CheckOut) {
		vErr.add("check_out", "check-out date must be after check-in date")
	}
	return vErr
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrAlreadyBooked):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, reservation.ErrInvalidInput):
		vErr := &ValidationError{}
		vErr.add("reservation", err.Error())
		return vErr
	}
	return err
}
