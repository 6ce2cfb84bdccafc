package reservation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// Customer is identified by its normalised email address.
type Customer struct {
	Email     string
	FirstName string
	LastName  string
}

// NormalizeEmail trims and lowercases an address for use as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email matches the accepted address grammar.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// NewCustomer validates the email and returns a customer keyed by its
// normalised form.
func NewCustomer(email, firstName, lastName string) (Customer, error) {
	if !ValidEmail(email) {
		return Customer{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return Customer{
		Email:     NormalizeEmail(email),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}, nil
}

// Equal compares customers by email only.
func (c Customer) Equal(other Customer) bool {
	return c.Email == other.Email
}

func (c Customer) String() string {
	return fmt.Sprintf("%s %s <%s>", c.FirstName, c.LastName, c.Email)
}
