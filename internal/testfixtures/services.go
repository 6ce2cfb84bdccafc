package testfixtures

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/example/hotel-reservations/internal/application"
	"github.com/example/hotel-reservations/internal/reservation"
)

// Hotel bundles a facade with the stores and test doubles behind it.
type Hotel struct {
	Clock       *Clock
	IDGenerator *IDGenerator
	Rooms       *reservation.Registry
	Ledger      *reservation.Ledger
	Customers   *application.CustomerDirectory
	Service     *application.HotelService
}

type hotelConfig struct {
	clock    *Clock
	ids      *IDGenerator
	logger   *slog.Logger
	recorder application.Recorder
}

// HotelOption configures NewHotel.
type HotelOption func(*hotelConfig)

func WithClock(clock *Clock) HotelOption {
	return func(cfg *hotelConfig) {
		cfg.clock = clock
	}
}

func WithIDGenerator(generator *IDGenerator) HotelOption {
	return func(cfg *hotelConfig) {
		cfg.ids = generator
	}
}

func WithLogger(logger *slog.Logger) HotelOption {
	return func(cfg *hotelConfig) {
		cfg.logger = logger
	}
}

func WithRecorder(recorder application.Recorder) HotelOption {
	return func(cfg *hotelConfig) {
		cfg.recorder = recorder
	}
}

// NewHotel wires empty stores and a facade over a deterministic clock and
// identifier sequence.
func NewHotel(opts ...HotelOption) *Hotel {
	cfg := hotelConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = NewClock(time.Time{})
	}
	if cfg.ids == nil {
		cfg.ids = NewIDGenerator("res")
	}

	rooms := reservation.NewRegistry()
	ledger := reservation.NewLedger(cfg.ids.NextFunc(), cfg.clock.NowFunc())
	customers := application.NewCustomerDirectoryWithLogger(cfg.logger)
	service := application.NewHotelServiceWithLogger(rooms, ledger, customers, cfg.clock.NowFunc(), cfg.logger, cfg.recorder)

	return &Hotel{
		Clock:       cfg.clock,
		IDGenerator: cfg.ids,
		Rooms:       rooms,
		Ledger:      ledger,
		Customers:   customers,
		Service:     service,
	}
}

// MustAddRoom registers the fixture through the facade.
func (h *Hotel) MustAddRoom(t testing.TB, fixture RoomFixture) reservation.Room {
	t.Helper()
	room, err := h.Service.RegisterRoom(context.Background(), fixture.Input())
	if err != nil {
		t.Fatalf("register room %s: %v", fixture.Number, err)
	}
	return room
}

// MustAddCustomer registers the fixture through the facade.
func (h *Hotel) MustAddCustomer(t testing.TB, fixture CustomerFixture) reservation.Customer {
	t.Helper()
	customer, err := h.Service.CreateCustomer(context.Background(), fixture.Input())
	if err != nil {
		t.Fatalf("register customer %s: %v", fixture.Email, err)
	}
	return customer
}

// MustBook reserves a room and fails the test on error.
func (h *Hotel) MustBook(t testing.TB, email, roomNumber string, stay reservation.Stay) reservation.Reservation {
	t.Helper()
	res, err := h.Service.Book(context.Background(), application.BookParams{Email: email, RoomNumber: roomNumber, Stay: stay})
	if err != nil {
		t.Fatalf("book %s for %s %s: %v", roomNumber, email, stay, err)
	}
	return res
}
