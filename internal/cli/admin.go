package cli

import (
	"context"
	"errors"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/example/hotel-reservations/internal/application"
	"github.com/example/hotel-reservations/internal/reservation"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

func (m *Menu) adminLoop(ctx context.Context) error {
	c := m.console
	for {
		c.println("\n--- Admin Menu ---")
		c.println("1. See all Customers")
		c.println("2. See all Rooms")
		c.println("3. See all Reservations")
		c.println("4. Add a Room")
		c.println("5. Populate Test Data")
		c.println("6. Back to Main Menu")
		choice, err := c.ask("Please select a number: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			m.printCustomers(ctx)
		case "2":
			m.printRooms(ctx)
		case "3":
			m.printReservations(ctx)
		case "4":
			if err := m.addRooms(ctx); err != nil {
				return err
			}
		case "5":
			if err := m.service.SeedDemoData(ctx); err != nil {
				c.println("Error:", err)
				continue
			}
			c.println("Test data populated.")
			c.println("\n--- Customers ---")
			m.printCustomers(ctx)
			c.println("\n--- Rooms ---")
			m.printRooms(ctx)
			c.println("\n--- Reservations ---")
			m.printReservations(ctx)
		case "6":
			return nil
		default:
			c.println("Invalid choice. Try again.")
		}
	}
}

func (m *Menu) printCustomers(ctx context.Context) {
	customers := m.service.ListCustomers(ctx)
	if len(customers) == 0 {
		m.console.println("No customers found.")
		return
	}
	for _, customer := range customers {
		m.console.println(customer)
	}
}

func (m *Menu) printRooms(ctx context.Context) {
	rooms := m.service.ListRooms(ctx)
	if len(rooms) == 0 {
		m.console.println("No rooms found.")
		return
	}
	for _, room := range rooms {
		m.console.println(room)
	}
}

func (m *Menu) printReservations(ctx context.Context) {
	err := m.service.RenderReservations(ctx, m.console.out)
	if errors.Is(err, reservation.ErrNoReservations) {
		m.console.println("No reservations found.")
		return
	}
	if err != nil {
		m.console.println("Error:", err)
	}
}

// addRooms collects a batch of rooms and registers them together.
func (m *Menu) addRooms(ctx context.Context) error {
	c := m.console
	batch := make([]application.RoomInput, 0, 1)
	entered := make(map[string]bool)

	for {
		number, err := m.askRoomNumber(ctx, entered)
		if err != nil {
			return err
		}
		entered[number] = true

		price, err := m.askPrice()
		if err != nil {
			return err
		}

		var roomType reservation.RoomType
		for {
			raw, err := c.ask("Enter room type (SINGLE/DOUBLE): ")
			if err != nil {
				return err
			}
			if roomType, err = reservation.ParseRoomType(raw); err == nil {
				break
			}
			c.println("Invalid room type. Only SINGLE or DOUBLE allowed.")
		}

		batch = append(batch, application.RoomInput{Number: number, Price: &price, Type: string(roomType)})

		another, err := c.ask("Add another? (Y/N): ")
		if err != nil {
			return err
		}
		if !yes(another) {
			break
		}
	}

	if _, err := m.service.AddRooms(ctx, batch); err != nil {
		c.println("Error:", err)
		return nil
	}
	c.println("Rooms added.")
	return nil
}

func (m *Menu) askRoomNumber(ctx context.Context, entered map[string]bool) (string, error) {
	c := m.console
	for {
		number, err := c.ask("Enter room number: ")
		if err != nil {
			return "", err
		}
		switch {
		case number == "":
			c.println("Error: Room number cannot be empty.")
		case !digitsOnly.MatchString(number):
			c.println("Error: Room number must contain digits only.")
		case entered[number]:
			c.printf("Error: Room number %s already entered in this session.\n", number)
		default:
			if _, err := m.service.FindRoom(ctx, number); err == nil {
				c.printf("Error: Room number %s already exists. Try another.\n", number)
				continue
			}
			return number, nil
		}
	}
}

func (m *Menu) askPrice() (decimal.Decimal, error) {
	c := m.console
	for {
		raw, err := c.ask("Enter price per night: ")
		if err != nil {
			return decimal.Zero, err
		}
		price, err := decimal.NewFromString(raw)
		switch {
		case err != nil:
			c.println("Invalid price. Please enter a valid numeric value.")
		case price.IsNegative():
			c.println("Error: Price cannot be negative.")
		default:
			return price, nil
		}
	}
}
