// Package cli implements the interactive text menus for guests and
// administrators.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/example/hotel-reservations/internal/application"
	"github.com/example/hotel-reservations/internal/reservation"
)

type hotelService interface {
	Today() reservation.Date
	FindRoom(ctx context.Context, number string) (reservation.Room, error)
	ListRooms(ctx context.Context) []reservation.Room
	AddRooms(ctx context.Context, inputs []application.RoomInput) (int, error)
	SearchRooms(ctx context.Context, params application.SearchParams) ([]reservation.Room, error)
	Book(ctx context.Context, params application.BookParams) (reservation.Reservation, error)
	Recommend(ctx context.Context, params application.RecommendParams) reservation.Recommendations
	ReservationsOf(ctx context.Context, email string) []reservation.Reservation
	RenderReservations(ctx context.Context, w io.Writer) error
	CreateCustomer(ctx context.Context, input application.CustomerInput) (reservation.Customer, error)
	GetCustomer(ctx context.Context, email string) (reservation.Customer, error)
	ListCustomers(ctx context.Context) []reservation.Customer
	SeedDemoData(ctx context.Context) error
}

// Menu drives the main and admin menus over a line oriented stream.
type Menu struct {
	service       hotelService
	console       *console
	defaultWindow int
	logger        *slog.Logger
}

// NewMenu wires a menu reading answers from in and writing prompts to out.
func NewMenu(service hotelService, in io.Reader, out io.Writer, defaultWindow int, logger *slog.Logger) *Menu {
	if defaultWindow <= 0 {
		defaultWindow = 7
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		service:       service,
		console:       newConsole(in, out),
		defaultWindow: defaultWindow,
		logger:        logger.With("component", "cli"),
	}
}

// Run shows the main menu until the user exits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	err := m.mainLoop(ctx)
	if errors.Is(err, errQuit) {
		m.logger.InfoContext(ctx, "input closed, leaving menu")
		return nil
	}
	return err
}

func (m *Menu) mainLoop(ctx context.Context) error {
	c := m.console
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("\n===== MAIN MENU =====")
		c.println("1. Find and reserve a room")
		c.println("2. View my reservations")
		c.println("3. Create a new account")
		c.println("4. Admin options")
		c.println("5. Exit")
		choice, err := c.ask("Please Select an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.findAndReserve(ctx)
		case "2":
			err = m.showMyReservations(ctx)
		case "3":
			err = m.createAccount(ctx)
		case "4":
			err = m.adminLoop(ctx)
		case "5":
			c.println("Thank you for using the reservation system.")
			return nil
		default:
			c.println("Invalid selection. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) findAndReserve(ctx context.Context) error {
	c := m.console
	today := m.service.Today()

	checkIn, err := c.askDate("Enter check-in date (yyyy-MM-dd): ", "Check-in date", today)
	if err != nil {
		return err
	}
	var checkOut reservation.Date
	for {
		checkOut, err = c.askDate("Enter check-out date (yyyy-MM-dd): ", "Check-out date", today)
		if err != nil {
			return err
		}
		if checkIn.Before(checkOut) {
			break
		}
		c.println("Error: Check-out date must be after check-in date.")
	}
	stay := reservation.NewStay(checkIn, checkOut)

	filter, err := c.askFilter()
	if err != nil {
		return err
	}
	window, err := c.askWindow(m.defaultWindow)
	if err != nil {
		return err
	}

	available, err := m.service.SearchRooms(ctx, application.SearchParams{Stay: stay, Filter: filter})
	if err != nil {
		c.println("Error:", err)
		return nil
	}
	if len(available) > 0 {
		return m.reserveFromAvailable(ctx, available, stay, window, filter)
	}

	c.println("\nNo rooms available for your chosen dates.")
	return m.reserveFromRecommendations(ctx, stay, window, filter)
}

func (m *Menu) reserveFromAvailable(ctx context.Context, rooms []reservation.Room, stay reservation.Stay, window int, filter reservation.Filter) error {
	c := m.console

	c.println("\nAvailable rooms for your dates:")
	for _, room := range rooms {
		c.println(room)
	}

	selection, err := c.ask("Enter a room number to reserve (or 'N' to cancel): ")
	if err != nil || strings.EqualFold(selection, "n") {
		return err
	}
	room, listed := listedRoom(rooms, selection)
	if !listed {
		c.println("Invalid room number. Please choose one of the rooms listed above.")
		return nil
	}

	email, err := c.ask("Enter your account email: ")
	if err != nil {
		return err
	}
	if _, err := m.service.GetCustomer(ctx, email); err != nil {
		c.println("No customer found. Please create an account first.")
		return nil
	}

	res, err := m.service.Book(ctx, application.BookParams{Email: email, RoomNumber: room.Number, Stay: stay})
	if err == nil {
		c.println("Reservation confirmed!")
		c.println(res)
		return nil
	}
	if !errors.Is(err, application.ErrConflict) {
		c.println("Error:", err)
		return nil
	}

	c.println("The room is already booked for these dates.")
	c.println("\nChecking for recommended dates...")
	alt, ok := m.service.Recommend(ctx, application.RecommendParams{Stay: stay, WindowDays: window, Filter: filter}).For(room.Number)
	if !ok {
		c.printf("No recommended dates available for this room within %d days.\n", window)
		return nil
	}

	c.printf("\nSuggested dates for Room %s:\n", room.Number)
	c.printf("  Available from: %s to %s\n", alt.CheckIn, alt.CheckOut)
	answer, err := c.ask("Would you like to book these suggested dates? (y/n): ")
	if err != nil || !yes(answer) {
		return err
	}

	res, err = m.service.Book(ctx, application.BookParams{Email: email, RoomNumber: room.Number, Stay: alt})
	if err != nil {
		c.println("Unable to reserve the suggested dates.")
		return nil
	}
	c.println("Reservation confirmed with suggested dates:")
	c.println(res)
	return nil
}

func listedRoom(rooms []reservation.Room, number string) (reservation.Room, bool) {
	number = strings.TrimSpace(number)
	for _, room := range rooms {
		if room.Number == number {
			return room, true
		}
	}
	return reservation.Room{}, false
}

func (m *Menu) reserveFromRecommendations(ctx context.Context, stay reservation.Stay, window int, filter reservation.Filter) error {
	c := m.console

	recs := m.service.Recommend(ctx, application.RecommendParams{Stay: stay, WindowDays: window, Filter: filter})
	if note := recs.Note(); note != "" {
		c.println(note)
	}
	if recs.Len() == 0 {
		c.println("No alternative dates available within your search window.")
		return nil
	}

	c.println("\nSuggested rooms with nearby available dates:")
	for i, item := range recs.Items {
		c.printf("%d. %s\n", i+1, item.Room)
		c.printf("   Available from: %s to %s\n", item.Stay.CheckIn, item.Stay.CheckOut)
	}

	answer, err := c.ask("Would you like to book one of these suggested options? (y/n): ")
	if err != nil || !yes(answer) {
		return err
	}

	raw, err := c.ask("Enter the number of the room you want to book: ")
	if err != nil {
		return err
	}
	pick, convErr := strconv.Atoi(raw)
	if convErr != nil {
		c.println("Invalid input.")
		return nil
	}
	if pick < 1 || pick > recs.Len() {
		c.println("Invalid selection.")
		return nil
	}
	chosen := recs.Items[pick-1]

	email, err := c.ask("Enter your email: ")
	if err != nil {
		return err
	}
	if _, err := m.service.GetCustomer(ctx, email); err != nil {
		c.println("Customer not found. Please create an account before booking.")
		return nil
	}

	res, err := m.service.Book(ctx, application.BookParams{Email: email, RoomNumber: chosen.Room.Number, Stay: chosen.Stay})
	if err != nil {
		c.println("Could not complete the reservation.")
		return nil
	}
	c.println("Reservation confirmed!")
	c.println(res)
	return nil
}

func (m *Menu) showMyReservations(ctx context.Context) error {
	c := m.console

	email, err := c.ask("Enter your email: ")
	if err != nil {
		return err
	}
	list := m.service.ReservationsOf(ctx, email)
	if len(list) == 0 {
		c.println("You have no reservations.")
		return nil
	}
	for _, res := range list {
		c.println(res)
	}
	return nil
}

func (m *Menu) createAccount(ctx context.Context) error {
	c := m.console

	var email string
	for {
		var err error
		email, err = c.ask("Enter email (example: user@example.com): ")
		if err != nil {
			return err
		}
		if reservation.ValidEmail(email) {
			break
		}
		c.println("Invalid email format. Try again.")
	}

	firstName, err := c.ask("Enter first name: ")
	if err != nil {
		return err
	}
	lastName, err := c.ask("Enter last name: ")
	if err != nil {
		return err
	}

	_, err = m.service.CreateCustomer(ctx, application.CustomerInput{Email: email, FirstName: firstName, LastName: lastName})
	switch {
	case err == nil:
		c.println("Account created successfully.")
	case errors.Is(err, application.ErrAlreadyExists):
		c.println("An account with this email already exists.")
	default:
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			for _, field := range []string{"email", "first_name", "last_name"} {
				if msg, ok := vErr.FieldErrors[field]; ok {
					c.println("Error:", msg)
				}
			}
			return nil
		}
		c.println("Error:", err)
	}
	return nil
}
