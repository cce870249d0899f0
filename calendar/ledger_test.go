package calendar_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solari/vacation-engine/calendar"
	"github.com/solari/vacation-engine/holiday"
)

// newBolognaCalendar builds the IT/BO 2023 fixture used by the booking tests.
func newBolognaCalendar(t *testing.T) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.Build(testConfig(2023), holiday.NewRegistry())
	require.NoError(t, err)
	return cal
}

func newEngine() *calendar.Engine {
	return calendar.NewEngine(decimal.NewFromInt(8))
}

func hours(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// =============================================================================
// SINGLE-DAY BOOKING TESTS
// =============================================================================

func TestApplySingleDay_BooksWorkingDay(t *testing.T) {
	cal := newBolognaCalendar(t)

	err := newEngine().ApplySingleDay(cal, date(2023, time.December, 15), hours(3), calendar.CategoryPTO)
	require.NoError(t, err)

	day := cal.Lookup(date(2023, time.December, 15))
	assert.True(t, day.PTOHours.Equal(hours(3)))
	assert.True(t, day.VacationHours.IsZero(), "other category untouched")
}

func TestApplySingleDay_LastWriteWins(t *testing.T) {
	// GIVEN: 3 PTO hours already booked on Dec 15
	// WHEN: Booking 5 PTO hours on the same date
	// THEN: The second value overwrites the first (no accumulation)

	cal := newBolognaCalendar(t)
	engine := newEngine()
	dec15 := date(2023, time.December, 15)

	require.NoError(t, engine.ApplySingleDay(cal, dec15, hours(3), calendar.CategoryPTO))
	require.NoError(t, engine.ApplySingleDay(cal, dec15, hours(5), calendar.CategoryPTO))

	assert.True(t, cal.Lookup(dec15).PTOHours.Equal(hours(5)))
}

func TestApplySingleDay_ExceedsCap(t *testing.T) {
	cal := newBolognaCalendar(t)

	err := newEngine().ApplySingleDay(cal, date(2023, time.December, 15), hours(100), calendar.CategoryPTO)
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrInvalidAmount)

	var amountErr *calendar.InvalidAmountError
	require.ErrorAs(t, err, &amountErr)
	assert.True(t, amountErr.Cap.Equal(hours(8)))

	assert.True(t, cal.Lookup(date(2023, time.December, 15)).PTOHours.IsZero(), "no mutation on failure")
}

func TestApplySingleDay_NegativeHours(t *testing.T) {
	cal := newBolognaCalendar(t)

	err := newEngine().ApplySingleDay(cal, date(2023, time.December, 15), hours(-1), calendar.CategoryVacation)
	assert.ErrorIs(t, err, calendar.ErrInvalidAmount)
}

func TestApplySingleDay_Weekend(t *testing.T) {
	// 2023-12-17 is a Sunday; a weekend booking fails regardless of hours
	cal := newBolognaCalendar(t)

	for _, h := range []float64{1, 4, 8} {
		err := newEngine().ApplySingleDay(cal, date(2023, time.December, 17), hours(h), calendar.CategoryVacation)
		require.Error(t, err)
		assert.ErrorIs(t, err, calendar.ErrNonWorkingDay)
	}

	var nwErr *calendar.NonWorkingDayError
	err := newEngine().ApplySingleDay(cal, date(2023, time.December, 17), hours(4), calendar.CategoryVacation)
	require.ErrorAs(t, err, &nwErr)
	assert.True(t, nwErr.Weekend)
}

func TestApplySingleDay_Holiday(t *testing.T) {
	// Christmas 2023 fell on a Monday, so the rejection is holiday-driven
	cal := newBolognaCalendar(t)

	err := newEngine().ApplySingleDay(cal, date(2023, time.December, 25), hours(8), calendar.CategoryVacation)
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrNonWorkingDay)

	var nwErr *calendar.NonWorkingDayError
	require.ErrorAs(t, err, &nwErr)
	assert.Equal(t, "Natale", nwErr.HolidayName)
	assert.False(t, nwErr.Weekend)
}

func TestApplySingleDay_DateOutsideYear(t *testing.T) {
	cal := newBolognaCalendar(t)

	err := newEngine().ApplySingleDay(cal, date(2024, time.January, 5), hours(8), calendar.CategoryVacation)
	assert.ErrorIs(t, err, calendar.ErrDateNotFound)
}

func TestApplySingleDay_DerivedCategoryRejected(t *testing.T) {
	// Aggregate fields (accrued, residual) are not bookable categories
	cal := newBolognaCalendar(t)

	for _, bogus := range []string{"residual", "accrued", "vac_res", ""} {
		err := newEngine().ApplySingleDay(cal, date(2023, time.December, 15), hours(1), calendar.Category(bogus))
		assert.ErrorIs(t, err, calendar.ErrUnknownCategory, bogus)
	}
}

// =============================================================================
// RANGE BOOKING TESTS
// =============================================================================

func TestApplyRange_SkipsWeekendsAndHolidays(t *testing.T) {
	// GIVEN: Dec 15 (Fri) .. Dec 20 (Wed), containing the 16/17 weekend
	// WHEN: Booking 8 vacation hours over the range
	// THEN: The weekend stays at zero, working days receive 8 hours

	cal := newBolognaCalendar(t)

	err := newEngine().ApplyRange(cal,
		date(2023, time.December, 15), date(2023, time.December, 20),
		hours(8), calendar.CategoryVacation)
	require.NoError(t, err)

	assert.True(t, cal.Lookup(date(2023, time.December, 15)).VacationHours.Equal(hours(8)))
	assert.True(t, cal.Lookup(date(2023, time.December, 16)).VacationHours.IsZero(), "Saturday skipped")
	assert.True(t, cal.Lookup(date(2023, time.December, 17)).VacationHours.IsZero(), "Sunday skipped")
	assert.True(t, cal.Lookup(date(2023, time.December, 18)).VacationHours.Equal(hours(8)))
	assert.True(t, cal.Lookup(date(2023, time.December, 19)).VacationHours.Equal(hours(8)))
	assert.True(t, cal.Lookup(date(2023, time.December, 20)).VacationHours.Equal(hours(8)))
}

func TestApplyRange_StartAfterEnd(t *testing.T) {
	cal := newBolognaCalendar(t)

	err := newEngine().ApplyRange(cal,
		date(2023, time.December, 20), date(2023, time.December, 15),
		hours(8), calendar.CategoryVacation)
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)
}

func TestApplyRange_ExceedsCap(t *testing.T) {
	cal := newBolognaCalendar(t)

	err := newEngine().ApplyRange(cal,
		date(2023, time.December, 18), date(2023, time.December, 20),
		hours(9), calendar.CategoryVacation)
	assert.ErrorIs(t, err, calendar.ErrInvalidAmount)

	assert.True(t, cal.Lookup(date(2023, time.December, 18)).VacationHours.IsZero(), "no mutation on failure")
}

func TestApplyRange_OnlyNonWorkingDays(t *testing.T) {
	// A weekend-only span selects nothing and maps to the not-found signal
	cal := newBolognaCalendar(t)

	err := newEngine().ApplyRange(cal,
		date(2023, time.December, 16), date(2023, time.December, 17),
		hours(8), calendar.CategoryVacation)
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrDateNotFound)
}

func TestApplyRange_OutsideCalendarYear(t *testing.T) {
	cal := newBolognaCalendar(t)

	err := newEngine().ApplyRange(cal,
		date(2024, time.March, 4), date(2024, time.March, 8),
		hours(8), calendar.CategoryVacation)
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrDateNotFound)

	var rangeErr *calendar.EmptyRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, date(2024, time.March, 4), rangeErr.Start)
}

func TestApplyRange_LastWriteWinsPerDay(t *testing.T) {
	cal := newBolognaCalendar(t)
	engine := newEngine()

	require.NoError(t, engine.ApplyRange(cal,
		date(2023, time.December, 18), date(2023, time.December, 20),
		hours(8), calendar.CategoryVacation))
	require.NoError(t, engine.ApplyRange(cal,
		date(2023, time.December, 19), date(2023, time.December, 21),
		hours(4), calendar.CategoryVacation))

	assert.True(t, cal.Lookup(date(2023, time.December, 18)).VacationHours.Equal(hours(8)))
	assert.True(t, cal.Lookup(date(2023, time.December, 19)).VacationHours.Equal(hours(4)), "overlap overwritten")
	assert.True(t, cal.Lookup(date(2023, time.December, 20)).VacationHours.Equal(hours(4)))
	assert.True(t, cal.Lookup(date(2023, time.December, 21)).VacationHours.Equal(hours(4)))
}

func TestApplyRange_CategoriesIndependent(t *testing.T) {
	// Hours are validated per call and per category only; a day may carry
	// both vacation and PTO hours (known gap, kept deliberately).
	cal := newBolognaCalendar(t)
	engine := newEngine()
	dec18 := date(2023, time.December, 18)

	require.NoError(t, engine.ApplySingleDay(cal, dec18, hours(8), calendar.CategoryVacation))
	require.NoError(t, engine.ApplySingleDay(cal, dec18, hours(8), calendar.CategoryPTO))

	day := cal.Lookup(dec18)
	assert.True(t, day.VacationHours.Equal(hours(8)))
	assert.True(t, day.PTOHours.Equal(hours(8)))
}
