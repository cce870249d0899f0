package holiday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solari/vacation-engine/calendar"
	"github.com/solari/vacation-engine/holiday"
)

func date(year int, month time.Month, day int) calendar.Date {
	return calendar.NewDate(year, month, day)
}

// =============================================================================
// ITALY
// =============================================================================

func TestItaly_NationalHolidays2023(t *testing.T) {
	got, err := holiday.Italy{}.Resolve("IT", "", 2023)
	require.NoError(t, err)

	assert.Equal(t, "Capodanno", got[date(2023, time.January, 1)])
	assert.Equal(t, "Epifania del Signore", got[date(2023, time.January, 6)])
	assert.Equal(t, "Pasqua di Resurrezione", got[date(2023, time.April, 9)])
	assert.Equal(t, "Lunedì dell'Angelo", got[date(2023, time.April, 10)])
	assert.Equal(t, "Festa della Liberazione", got[date(2023, time.April, 25)])
	assert.Equal(t, "Assunzione della Vergine", got[date(2023, time.August, 15)])
	assert.Equal(t, "Natale", got[date(2023, time.December, 25)])
	assert.Equal(t, "Santo Stefano", got[date(2023, time.December, 26)])
	assert.Len(t, got, 12)
}

func TestItaly_EasterMoves(t *testing.T) {
	for year, easter := range map[int]calendar.Date{
		2022: date(2022, time.April, 17),
		2023: date(2023, time.April, 9),
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
	} {
		got, err := holiday.Italy{}.Resolve("IT", "", year)
		require.NoError(t, err)
		assert.Equal(t, "Pasqua di Resurrezione", got[easter], "year %d", year)
	}
}

func TestItaly_PatronSaints(t *testing.T) {
	got, err := holiday.Italy{}.Resolve("IT", "BO", 2023)
	require.NoError(t, err)
	assert.Equal(t, "San Petronio", got[date(2023, time.October, 4)])

	// case-insensitive subdivision codes
	got, err = holiday.Italy{}.Resolve("IT", "mi", 2023)
	require.NoError(t, err)
	assert.Equal(t, "Sant'Ambrogio", got[date(2023, time.December, 7)])
}

func TestItaly_UnknownSubdivision(t *testing.T) {
	_, err := holiday.Italy{}.Resolve("IT", "XX", 2023)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XX")
}

// =============================================================================
// UNITED STATES
// =============================================================================

func TestUnitedStates_FederalHolidays2023(t *testing.T) {
	got, err := holiday.UnitedStates{}.Resolve("US", "", 2023)
	require.NoError(t, err)

	assert.Equal(t, "Independence Day", got[date(2023, time.July, 4)])
	assert.Contains(t, got, date(2023, time.January, 1))

	// Jan 1 2023 was a Sunday; the observed shift lands on Monday
	observed, ok := got[date(2023, time.January, 2)]
	require.True(t, ok)
	assert.Contains(t, observed, "(observed)")
}

func TestUnitedStates_SubdivisionUnsupported(t *testing.T) {
	_, err := holiday.UnitedStates{}.Resolve("US", "CA", 2023)
	require.Error(t, err)
}

// =============================================================================
// REGISTRY
// =============================================================================

func TestRegistry_DispatchesByCountry(t *testing.T) {
	registry := holiday.NewRegistry()

	it, err := registry.Resolve("it", "BO", 2023)
	require.NoError(t, err)
	assert.Contains(t, it, date(2023, time.October, 4))

	us, err := registry.Resolve("US", "", 2023)
	require.NoError(t, err)
	assert.Contains(t, us, date(2023, time.July, 4))
}

func TestRegistry_UnknownCountry(t *testing.T) {
	_, err := holiday.NewRegistry().Resolve("FR", "", 2023)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FR")
}
