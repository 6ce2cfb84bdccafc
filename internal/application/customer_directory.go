package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/example/hotel-reservations/internal/reservation"
)

// CustomerDirectory stores customer accounts keyed by normalised email.
type CustomerDirectory struct {
	mu        sync.RWMutex
	customers map[string]reservation.Customer
	logger    *slog.Logger
}

// NewCustomerDirectory constructs an empty directory.
func NewCustomerDirectory() *CustomerDirectory {
	return NewCustomerDirectoryWithLogger(nil)
}

// NewCustomerDirectoryWithLogger constructs an empty directory with a specified logger.
func NewCustomerDirectoryWithLogger(logger *slog.Logger) *CustomerDirectory {
	return &CustomerDirectory{
		customers: make(map[string]reservation.Customer),
		logger:    defaultLogger(logger),
	}
}

func (d *CustomerDirectory) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, d.logger, "CustomerDirectory", operation, attrs...)
}

// Register validates input and creates a new account. A malformed email is
// rejected before the directory is touched; an existing email yields
// ErrAlreadyExists and keeps the original account.
func (d *CustomerDirectory) Register(ctx context.Context, input CustomerInput) (customer reservation.Customer, err error) {
	if d == nil {
		err = fmt.Errorf("CustomerDirectory is nil")
		return
	}

	logger := d.loggerWith(ctx, "Register", "email", reservation.NormalizeEmail(input.Email))
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to register customer", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "customer registered")
	}()

	vErr := validateCustomerInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	customer, err = reservation.NewCustomer(input.Email, input.FirstName, input.LastName)
	if err != nil {
		vErr.add("email", "email is invalid")
		err = vErr
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.customers[customer.Email]; exists {
		customer = reservation.Customer{}
		err = ErrAlreadyExists
		return
	}
	d.customers[customer.Email] = customer
	return
}

// Lookup returns the account registered under email in any letter case.
func (d *CustomerDirectory) Lookup(ctx context.Context, email string) (reservation.Customer, error) {
	if d == nil {
		return reservation.Customer{}, fmt.Errorf("CustomerDirectory is nil")
	}

	d.mu.RLock()
	customer, ok := d.customers[reservation.NormalizeEmail(email)]
	d.mu.RUnlock()

	if !ok {
		return reservation.Customer{}, ErrNotFound
	}
	return customer, nil
}

// List returns every account ordered by email.
func (d *CustomerDirectory) List(ctx context.Context) []reservation.Customer {
	if d == nil {
		return nil
	}

	d.mu.RLock()
	out := make([]reservation.Customer, 0, len(d.customers))
	for _, customer := range d.customers {
		out = append(out, customer)
	}
	d.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Email < out[j].Email
	})

	d.loggerWith(ctx, "List").With("result_count", len(out)).DebugContext(ctx, "customers listed")
	return out
}

func validateCustomerInput(input CustomerInput) *ValidationError {
	vErr := &ValidationError{}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		vErr.add("email", "email is required")
	} else if !reservation.ValidEmail(email) {
		vErr.add("email", "email is invalid")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		vErr.add("first_name", "first name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		vErr.add("last_name", "last name is required")
	}

	return vErr
}
