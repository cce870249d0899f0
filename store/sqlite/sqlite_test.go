package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solari/vacation-engine/calendar"
	"github.com/solari/vacation-engine/holiday"
	"github.com/solari/vacation-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func buildCalendar(t *testing.T, year int) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.Build(calendar.Config{
		Country:     "IT",
		Subdivision: "BO",
		Year:        year,
	}, holiday.NewRegistry())
	require.NoError(t, err)
	return cal
}

func TestStore_SaveAndLoadRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cal := buildCalendar(t, 2023)
	engine := calendar.NewEngine(decimal.NewFromInt(8))
	booked := calendar.NewDate(2023, time.December, 15)
	require.NoError(t, engine.ApplySingleDay(cal, booked, decimal.RequireFromString("5.5"), calendar.CategoryPTO))

	require.NoError(t, store.SaveCalendar(ctx, cal))

	loaded, err := store.LoadCalendar(ctx, 2023)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, 2023, loaded.Year)
	assert.Equal(t, "IT", loaded.Country)
	assert.Equal(t, "BO", loaded.Subdivision)
	require.Len(t, loaded.Days, 365)

	day := loaded.Lookup(booked)
	require.NotNil(t, day)
	assert.True(t, day.PTOHours.Equal(decimal.RequireFromString("5.5")))
	assert.True(t, day.VacationHours.IsZero())

	// Flags and holiday names survive the roundtrip
	easter := loaded.Lookup(calendar.NewDate(2023, time.April, 9))
	require.NotNil(t, easter)
	assert.True(t, easter.IsHoliday)
	assert.Equal(t, "Pasqua di Resurrezione", easter.HolidayName)
	assert.True(t, loaded.Lookup(calendar.NewDate(2023, time.December, 17)).IsWeekend)
}

func TestStore_SaveReplacesPreviousState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cal := buildCalendar(t, 2023)
	engine := calendar.NewEngine(decimal.NewFromInt(8))
	dec15 := calendar.NewDate(2023, time.December, 15)

	require.NoError(t, engine.ApplySingleDay(cal, dec15, decimal.NewFromInt(3), calendar.CategoryPTO))
	require.NoError(t, store.SaveCalendar(ctx, cal))

	require.NoError(t, engine.ApplySingleDay(cal, dec15, decimal.NewFromInt(5), calendar.CategoryPTO))
	require.NoError(t, store.SaveCalendar(ctx, cal))

	loaded, err := store.LoadCalendar(ctx, 2023)
	require.NoError(t, err)
	require.Len(t, loaded.Days, 365, "days are replaced, not appended")
	assert.True(t, loaded.Lookup(dec15).PTOHours.Equal(decimal.NewFromInt(5)))
}

func TestStore_LoadMissingYear(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.LoadCalendar(context.Background(), 1999)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_ListCalendars(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCalendar(ctx, buildCalendar(t, 2024)))
	require.NoError(t, store.SaveCalendar(ctx, buildCalendar(t, 2023)))

	infos, err := store.ListCalendars(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, 2023, infos[0].Year, "ascending order")
	assert.Equal(t, 2024, infos[1].Year)
	assert.Equal(t, "IT", infos[0].Country)
	assert.False(t, infos[0].CreatedAt.IsZero())
}

func TestStore_DeleteCalendar(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCalendar(ctx, buildCalendar(t, 2023)))
	require.NoError(t, store.DeleteCalendar(ctx, 2023))

	loaded, err := store.LoadCalendar(ctx, 2023)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	infos, err := store.ListCalendars(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
}
