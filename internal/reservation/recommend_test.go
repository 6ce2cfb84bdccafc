package reservation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engine struct {
	rooms       *Registry
	ledger      *Ledger
	recommender *Recommender
}

func newEngine(now func() time.Time, rooms ...Room) engine {
	reg := NewRegistry()
	for _, room := range rooms {
		reg.Register(room)
	}
	ledger := NewLedger(nil, now)
	return engine{rooms: reg, ledger: ledger, recommender: NewRecommender(reg, ledger, now)}
}

func (e engine) book(t *testing.T, number string, s Stay) {
	t.Helper()
	room, ok := e.rooms.Lookup(number)
	require.True(t, ok, "room %s", number)
	guest, err := NewCustomer("blocker@example.com", "Block", "Er")
	require.NoError(t, err)
	_, err = e.ledger.Book(guest, room, s)
	require.NoError(t, err)
}

func TestRecommendFirstFreeOffset(t *testing.T) {
	e := newEngine(fixedNow, NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle))
	requested := stay("2025-11-20", "2025-11-21")

	e.book(t, "101", requested)
	// Covers the alternatives at offsets 7, 8, 9 and 10.
	e.book(t, "101", stay("2025-11-27", "2025-12-01"))

	got := e.recommender.Recommend(requested, 7, AnyRoom)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, 11, got.Items[0].Offset)
	alt, ok := got.For("101")
	require.True(t, ok)
	assert.Equal(t, "2025-12-01", alt.CheckIn.String())
	assert.Equal(t, "2025-12-02", alt.CheckOut.String())
	assert.Equal(t, requested.Nights(), alt.Nights())
	assert.False(t, got.Capped)
	assert.Equal(t, 7, got.Window)
}

func TestRecommendKeepsStayLength(t *testing.T) {
	e := newEngine(fixedNow, NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle))
	requested := stay("2025-11-20", "2025-11-23")
	e.book(t, "101", requested)

	got := e.recommender.Recommend(requested, 10, AnyRoom)

	alt, ok := got.For("101")
	require.True(t, ok)
	assert.Equal(t, "2025-11-30", alt.CheckIn.String())
	assert.Equal(t, 3, alt.Nights())
	assert.True(t, e.ledger.IsAvailable("101", alt))
}

func TestRecommendSkipsRoomsThatAreFree(t *testing.T) {
	e := newEngine(fixedNow,
		NewRoom("101", decimal.Zero, RoomTypeSingle),
		NewRoom("102", decimal.NewFromInt(200), RoomTypeDouble),
	)
	requested := stay("2025-11-20", "2025-11-22")
	e.book(t, "102", requested)

	got := e.recommender.Recommend(requested, 7, AnyRoom)

	_, ok := got.For("101")
	assert.False(t, ok)
	_, ok = got.For("102")
	assert.True(t, ok)
	assert.Equal(t, 1, e.ledger.Len(), "recommendation must not book")
}

func TestRecommendOmitsRoomsWithoutAlternative(t *testing.T) {
	e := newEngine(fixedNow, NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle))
	requested := stay("2025-11-20", "2025-11-21")
	e.book(t, "101", requested)
	e.book(t, "101", stay("2025-11-27", "2025-12-04"))

	got := e.recommender.Recommend(requested, 7, AnyRoom)
	assert.Equal(t, 0, got.Len())
}

func TestRecommendClampsWindow(t *testing.T) {
	now := func() time.Time { return time.Date(2025, time.January, 1, 15, 0, 0, 0, time.UTC) }
	horizon := MustParseDate("2026-01-01")

	t.Run("window above the maximum is capped", func(t *testing.T) {
		e := newEngine(now, NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle))
		requested := stay("2024-12-28", "2024-12-29")
		e.book(t, "101", requested)

		got := e.recommender.Recommend(requested, 400, AnyRoom)

		assert.True(t, got.Capped)
		assert.Equal(t, MaxSearchWindow, got.Window)
		assert.NotEmpty(t, got.Note())
		alt, ok := got.For("101")
		require.True(t, ok)
		assert.Equal(t, "2025-12-28", alt.CheckIn.String())
		assert.True(t, alt.CheckIn.Before(horizon))
	})

	t.Run("alternatives never start at or after the horizon", func(t *testing.T) {
		e := newEngine(now, NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle))
		requested := stay("2025-01-05", "2025-01-06")
		e.book(t, "101", requested)

		got := e.recommender.Recommend(requested, 400, AnyRoom)

		assert.Equal(t, 0, got.Len())
		for _, item := range got.Items {
			assert.True(t, item.Stay.CheckIn.Before(horizon))
		}
	})

	t.Run("horizon cuts the band part way", func(t *testing.T) {
		e := newEngine(now, NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle))
		requested := stay("2024-12-29", "2024-12-30")
		e.book(t, "101", requested)
		// Blocks offsets 365 to 367; offset 368 would start on the horizon.
		e.book(t, "101", stay("2025-12-29", "2026-01-01"))

		got := e.recommender.Recommend(requested, 365, AnyRoom)
		assert.Equal(t, 0, got.Len())
	})

	t.Run("window below the minimum is raised", func(t *testing.T) {
		window, capped := ClampWindow(-3)
		assert.Equal(t, MinSearchWindow, window)
		assert.False(t, capped)

		e := newEngine(now, NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle))
		requested := stay("2025-02-01", "2025-02-03")
		e.book(t, "101", requested)

		got := e.recommender.Recommend(requested, 0, AnyRoom)
		alt, ok := got.For("101")
		require.True(t, ok)
		assert.Equal(t, "2025-02-03", alt.CheckIn.String())
		assert.Equal(t, 2, got.Items[0].Offset)
	})
}

func TestRecommendEmptyStay(t *testing.T) {
	e := newEngine(fixedNow, NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle))
	e.book(t, "101", stay("2025-11-20", "2025-11-22"))

	assert.Equal(t, 0, e.recommender.Recommend(stay("2025-11-20", "2025-11-20"), 7, AnyRoom).Len())
	assert.Equal(t, 0, e.recommender.Recommend(stay("2025-11-22", "2025-11-20"), 7, AnyRoom).Len())
	assert.Equal(t, 0, e.recommender.Recommend(Stay{}, 7, AnyRoom).Len())
}

func TestRecommendFilterAndOrder(t *testing.T) {
	e := newEngine(fixedNow,
		NewRoom("201", decimal.RequireFromString("100.01"), RoomTypeSingle),
		NewComplimentaryRoom("203", RoomTypeSingle),
		NewRoom("105", decimal.Zero, RoomTypeSingle),
		NewRoom("102", decimal.NewFromInt(200), RoomTypeDouble),
	)
	requested := stay("2025-11-20", "2025-11-22")
	for _, number := range []string{"201", "203", "105", "102"} {
		e.book(t, number, requested)
	}

	all := e.recommender.Recommend(requested, 7, AnyRoom)
	require.Equal(t, 4, all.Len())
	numbers := make([]string, 0, all.Len())
	for _, item := range all.Items {
		numbers = append(numbers, item.Room.Number)
	}
	assert.Equal(t, []string{"201", "203", "105", "102"}, numbers)

	free := e.recommender.Recommend(requested, 7, FreeOnly)
	require.Equal(t, 2, free.Len())
	assert.Equal(t, "203", free.Items[0].Room.Number)
	assert.Equal(t, "105", free.Items[1].Room.Number)

	paid := e.recommender.Recommend(requested, 7, PaidOnly)
	require.Equal(t, 2, paid.Len())
	assert.Equal(t, "201", paid.Items[0].Room.Number)
	assert.Equal(t, "102", paid.Items[1].Room.Number)
}

func TestAvailable(t *testing.T) {
	e := newEngine(fixedNow,
		NewRoom("101", decimal.NewFromInt(100), RoomTypeSingle),
		NewRoom("105", decimal.Zero, RoomTypeSingle),
	)
	requested := stay("2025-11-20", "2025-11-22")
	e.book(t, "101", requested)

	got := e.recommender.Available(requested, AnyRoom)
	require.Len(t, got, 1)
	assert.Equal(t, "105", got[0].Number)

	assert.Empty(t, e.recommender.Available(requested, PaidOnly))
	assert.Len(t, e.recommender.Available(stay("2025-11-22", "2025-11-23"), AnyRoom), 2)
	assert.Empty(t, e.recommender.Available(Stay{}, AnyRoom))
}

func TestParseFilter(t *testing.T) {
	for value, expected := range map[string]Filter{"": AnyRoom, "all": AnyRoom, "free": FreeOnly, "paid": PaidOnly} {
		got, err := ParseFilter(value)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
	_, err := ParseFilter("cheap")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
