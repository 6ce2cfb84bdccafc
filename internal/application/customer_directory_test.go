package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerDirectory_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("normalises the email key", func(t *testing.T) {
		dir := NewCustomerDirectory()

		customer, err := dir.Register(ctx, CustomerInput{Email: "  Liam@Gmail.com ", FirstName: "Liam", LastName: "Carter"})
		require.NoError(t, err)
		assert.Equal(t, "liam@gmail.com", customer.Email)

		found, err := dir.Lookup(ctx, "LIAM@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, customer, found)
	})

	t.Run("malformed email leaves the directory untouched", func(t *testing.T) {
		dir := NewCustomerDirectory()

		for _, email := range []string{"", "liam", "liam@gmail", "liam@@gmail.com", "liam@gmail.c"} {
			_, err := dir.Register(ctx, CustomerInput{Email: email, FirstName: "Liam", LastName: "Carter"})
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, email)
			assert.Contains(t, vErr.FieldErrors, "email")
		}
		assert.Empty(t, dir.List(ctx))
	})

	t.Run("names are required", func(t *testing.T) {
		dir := NewCustomerDirectory()

		_, err := dir.Register(ctx, CustomerInput{Email: "a@b.com"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.FieldErrors, "first_name")
		assert.Contains(t, vErr.FieldErrors, "last_name")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dir := NewCustomerDirectory()

		_, err := dir.Register(ctx, CustomerInput{Email: "a@b.com", FirstName: "A", LastName: "B"})
		require.NoError(t, err)
		_, err = dir.Register(ctx, CustomerInput{Email: "A@B.COM", FirstName: "Other", LastName: "Person"})
		require.ErrorIs(t, err, ErrAlreadyExists)

		found, err := dir.Lookup(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, "A", found.FirstName)
	})
}

func TestCustomerDirectory_LookupAndList(t *testing.T) {
	ctx := context.Background()
	dir := NewCustomerDirectory()

	_, err := dir.Lookup(ctx, "ghost@nowhere.com")
	assert.ErrorIs(t, err, ErrNotFound)

	for _, email := range []string{"zoe@x.com", "adam@x.com", "mia@x.com"} {
		_, err := dir.Register(ctx, CustomerInput{Email: email, FirstName: "F", LastName: "L"})
		require.NoError(t, err)
	}

	listed := dir.List(ctx)
	require.Len(t, listed, 3)
	assert.Equal(t, "adam@x.com", listed[0].Email)
	assert.Equal(t, "mia@x.com", listed[1].Email)
	assert.Equal(t, "zoe@x.com", listed[2].Email)
}
