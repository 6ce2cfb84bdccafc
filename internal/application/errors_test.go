package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	var nilErr *ValidationError
	if nilErr.Error() != "" {
		t.Fatalf("expected empty message for nil error, got %q", nilErr.Error())
	}

	populated := &ValidationError{FieldErrors: map[string]string{"email": "email is invalid"}}
	if got := populated.Error(); got != "validation failed" {
		t.Fatalf("expected generic message, got %q", got)
	}
}

func TestValidationError_Add(t *testing.T) {
	t.Parallel()

	vErr := &ValidationError{}
	if vErr.HasErrors() {
		t.Fatalf("expected empty error to report no fields")
	}

	vErr.add("number", "room number is required")
	vErr.add("type", "room type must be SINGLE or DOUBLE")
	vErr.add("number", "room number must not contain spaces")

	if !vErr.HasErrors() || len(vErr.FieldErrors) != 2 {
		t.Fatalf("expected two field errors, got %#v", vErr.FieldErrors)
	}
	if got := vErr.FieldErrors["number"]; got != "room number must not contain spaces" {
		t.Fatalf("expected later message to replace earlier one, got %q", got)
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unauthorized", err: ErrUnauthorized, want: "unauthorized"},
		{name: "wrapped not found", err: fmt.Errorf("room 999: %w", ErrNotFound), want: "not_found"},
		{name: "duplicate", err: ErrAlreadyExists, want: "already_exists"},
		{name: "conflict", err: fmt.Errorf("%w: taken", ErrConflict), want: "conflict"},
		{name: "validation", err: &ValidationError{FieldErrors: map[string]string{"email": "bad"}}, want: "validation"},
		{name: "other", err: errors.New("boom"), want: "unexpected"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ErrorKind(tc.err); got != tc.want {
				t.Fatalf("ErrorKind() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBookingOutcome(t *testing.T) {
	t.Parallel()

	if got := bookingOutcome(nil); got != OutcomeBooked {
		t.Fatalf("expected booked outcome, got %q", got)
	}
	if got := bookingOutcome(ErrConflict); got != OutcomeConflict {
		t.Fatalf("expected conflict outcome, got %q", got)
	}
	if got := bookingOutcome(&ValidationError{FieldErrors: map[string]string{"x": "y"}}); got != OutcomeInvalid {
		t.Fatalf("expected invalid outcome, got %q", got)
	}
	if got := bookingOutcome(ErrNotFound); got != OutcomeNotFound {
		t.Fatalf("expected not_found outcome, got %q", got)
	}
	if got := bookingOutcome(errors.New("disk")); got != OutcomeError {
		t.Fatalf("expected error outcome, got %q", got)
	}
}
