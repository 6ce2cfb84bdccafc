package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/example/hotel-reservations/internal/reservation"
)

// errQuit signals that the input stream is exhausted.
var errQuit = errors.New("cli: input closed")

type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewScanner(in), out: out}
}

func (c *console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ask prints label and returns the next trimmed line.
func (c *console) ask(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askDate re-prompts until a valid date on or after today is entered.
func (c *console) askDate(label, field string, today reservation.Date) (reservation.Date, error) {
	for {
		raw, err := c.ask(label)
		if err != nil {
			return reservation.Date{}, err
		}
		date, problem := parseEntryDate(raw, field, today)
		if problem == "" {
			return date, nil
		}
		c.println(problem)
	}
}

// parseEntryDate applies the interactive date rules and returns a message
// describing the first one that fails.
func parseEntryDate(raw, field string, today reservation.Date) (reservation.Date, string) {
	var year, month, day int
	if n, _ := fmt.Sscanf(raw, "%4d-%2d-%2d", &year, &month, &day); n == 3 && month == 2 {
		if limit := februaryDays(year); day > limit {
			return reservation.Date{}, fmt.Sprintf("Error: February in %d cannot have more than %d days.", year, limit)
		}
	}

	date, err := reservation.ParseDate(raw)
	if err != nil {
		return reservation.Date{}, fmt.Sprintf("Error: Invalid date format for %s.\n"+
			"Please use yyyy-MM-dd format (e.g., 2025-12-25)\n"+
			"Note: Month must be 01-12 and date must be valid for the given month.", field)
	}
	if date.Before(today) {
		return reservation.Date{}, fmt.Sprintf("Error: %s cannot be in the past. Please enter a current or future date.", field)
	}
	return date, ""
}

func februaryDays(year int) int {
	if time.Date(year, time.March, 0, 0, 0, 0, 0, time.UTC).Day() == 29 {
		return 29
	}
	return 28
}

// askFilter maps the 1/2/3 search type answer to a Filter.
func (c *console) askFilter() (reservation.Filter, error) {
	for {
		raw, err := c.ask("Search type -> (1) All rooms  (2) Free rooms only  (3) Paid rooms only: ")
		if err != nil {
			return reservation.AnyRoom, err
		}
		choice, convErr := strconv.Atoi(raw)
		switch {
		case convErr != nil:
			c.println("Invalid input. Only numbers 1, 2, or 3 are allowed.")
		case choice == 1:
			return reservation.AnyRoom, nil
		case choice == 2:
			return reservation.FreeOnly, nil
		case choice == 3:
			return reservation.PaidOnly, nil
		default:
			c.println("Error: Please enter only 1, 2 or 3.")
		}
	}
}

// askWindow reads a positive day count; an empty answer keeps fallback.
func (c *console) askWindow(fallback int) (int, error) {
	for {
		raw, err := c.ask(fmt.Sprintf("If rooms are unavailable, how many days ahead should we search? (default: %d): ", fallback))
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return fallback, nil
		}
		window, convErr := strconv.Atoi(raw)
		switch {
		case convErr != nil:
			c.println("Invalid number. Try again.")
		case window <= 0:
			c.println("Please enter a positive number.")
		default:
			return window, nil
		}
	}
}

func yes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
