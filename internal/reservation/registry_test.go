package reservation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("lookup returns the registered room", func(t *testing.T) {
		reg := NewRegistry()
		room := NewRoom("101", decimal.RequireFromString("100.00"), RoomTypeSingle)

		require.True(t, reg.Register(room))

		found, ok := reg.Lookup("101")
		require.True(t, ok)
		assert.Equal(t, room, found)
	})

	t.Run("duplicate number keeps the original", func(t *testing.T) {
		reg := NewRegistry()
		original := NewRoom("101", decimal.RequireFromString("100.00"), RoomTypeSingle)
		replacement := NewRoom("101", decimal.RequireFromString("999.00"), RoomTypeDouble)

		require.True(t, reg.Register(original))
		assert.False(t, reg.Register(replacement))

		found, _ := reg.Lookup("101")
		assert.Equal(t, original, found)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("blank number is rejected", func(t *testing.T) {
		reg := NewRegistry()
		assert.False(t, reg.Register(Room{Number: "  "}))
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("unknown number is absent", func(t *testing.T) {
		_, ok := NewRegistry().Lookup("404")
		assert.False(t, ok)
	})

	t.Run("list is a snapshot in registration order", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register(NewRoom("103", decimal.NewFromInt(150), RoomTypeSingle))
		reg.Register(NewComplimentaryRoom("105", RoomTypeSingle))
		reg.Register(NewRoom("102", decimal.NewFromInt(200), RoomTypeDouble))

		listed := reg.List()
		require.Len(t, listed, 3)
		assert.Equal(t, []string{"103", "105", "102"}, []string{listed[0].Number, listed[1].Number, listed[2].Number})

		listed[0].Number = "mutated"
		listed[0].Type = RoomTypeDouble
		found, ok := reg.Lookup("103")
		require.True(t, ok)
		assert.Equal(t, RoomTypeSingle, found.Type)
	})
}

func TestRoomFreeStatus(t *testing.T) {
	cases := []struct {
		name string
		room Room
		free bool
	}{
		{"priced", NewRoom("101", decimal.RequireFromString("100.01"), RoomTypeSingle), false},
		{"zero price", NewRoom("105", decimal.Zero, RoomTypeSingle), true},
		{"no price", Room{Number: "106", Type: RoomTypeSingle}, true},
		{"complimentary", NewComplimentaryRoom("203", RoomTypeSingle), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.free, tc.room.IsFree())
			assert.Equal(t, tc.free, FreeOnly.Matches(tc.room))
			assert.Equal(t, !tc.free, PaidOnly.Matches(tc.room))
			assert.True(t, AnyRoom.Matches(tc.room))
		})
	}
}

func TestRoomString(t *testing.T) {
	assert.Equal(t, "Room Number: 201, Price: $100.01, Type: SINGLE",
		NewRoom("201", decimal.RequireFromString("100.01"), RoomTypeSingle).String())
	assert.Equal(t, "Room Number: 203, Price: Free, Type: SINGLE",
		NewComplimentaryRoom("203", RoomTypeSingle).String())
}

func TestParseRoomType(t *testing.T) {
	rt, err := ParseRoomType(" double ")
	require.NoError(t, err)
	assert.Equal(t, RoomTypeDouble, rt)

	_, err = ParseRoomType("suite")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer(" Liam@Gmail.com ", "Liam", "Carter")
	require.NoError(t, err)
	assert.Equal(t, "liam@gmail.com", c.Email)
	assert.Equal(t, "Liam Carter <liam@gmail.com>", c.String())

	other, err := NewCustomer("LIAM@gmail.com", "Someone", "Else")
	require.NoError(t, err)
	assert.True(t, c.Equal(other))

	for _, bad := range []string{"", "liam", "liam@gmail", "liam@@gmail.com", "li am@gmail.com"} {
		_, err := NewCustomer(bad, "x", "y")
		assert.ErrorIs(t, err, ErrInvalidEmail, bad)
	}
}
