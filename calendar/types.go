/*
Package calendar provides the core vacation-calendar engine.

PURPOSE:

	This package contains the types and algorithms for tracking an employee's
	annual time-off allotment against a daily calendar: building a per-day
	calendar annotated with weekend/holiday flags, recording vacation and PTO
	bookings against calendar constraints, and aggregating monthly consumption
	with residual-balance computation.

KEY CONCEPTS IN THIS FILE (types.go):
  - Date: A day-granularity calendar date, comparable, usable as a map key
  - Category: A bookable time-off category (vacation or PTO)
  - CalendarDay: One row per calendar date with flags and booked hours
  - Calendar: The full-year day sequence, owned by the caller
  - MonthlySummary: Derived per-month consumption and residual balances
  - Config: The externally supplied configuration record

DESIGN PRINCIPLES:
 1. Precision: Uses decimal.Decimal to avoid floating-point errors
 2. Purity: No I/O, no hidden state; everything is threaded explicitly
 3. Separation: Bookable categories are a closed enum; derived aggregates
    (accrued, residual) live only on MonthlySummary and are never ledger keys

SEE ALSO:
  - builder.go: Calendar construction from a holiday provider
  - ledger.go: Booking validation and overwrite semantics
  - summary.go: Monthly aggregation
  - errors.go: Error taxonomy
*/
package calendar

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Day-granularity calendar date
// =============================================================================

// Date identifies a single calendar day. The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates t to day granularity.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a date in ISO form, e.g. "2023-12-15".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool  { return d.Time().After(other.Time()) }

// Arithmetic
func (d Date) AddDays(n int) Date { return DateOf(d.Time().AddDate(0, 0, n)) }

// Properties
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }
func (d Date) IsZero() bool          { return d == Date{} }

func (d Date) String() string { return d.Time().Format("2006-01-02") }

// =============================================================================
// CATEGORY - Bookable time-off categories
// =============================================================================

// Category is a bookable time-off category used as a ledger key.
// Derived aggregate figures (accrued, residual) are NOT categories; they
// exist only as MonthlySummary fields and can never be booked.
type Category string

const (
	CategoryVacation Category = "vacation"
	CategoryPTO      Category = "pto"
)

// Categories lists all bookable categories in a stable order.
var Categories = []Category{CategoryVacation, CategoryPTO}

func (c Category) Valid() bool {
	return c == CategoryVacation || c == CategoryPTO
}

// ParseCategory converts external input into a bookable category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", &UnknownCategoryError{Value: s}
	}
	return c, nil
}

// =============================================================================
// CALENDAR DAY - One row per calendar date
// =============================================================================

// CalendarDay is one day of the annual calendar.
//
// INVARIANTS:
//   - IsHoliday == (HolidayName != "")
//   - A day with IsWeekend or IsHoliday never carries booked hours
//   - Booked hours are non-negative and bounded by the working-hours cap
type CalendarDay struct {
	Date          Date
	IsWeekend     bool
	HolidayName   string
	IsHoliday     bool
	VacationHours decimal.Decimal
	PTOHours      decimal.Decimal
}

func (d *CalendarDay) Month() time.Month { return d.Date.Month }
func (d *CalendarDay) Year() int         { return d.Date.Year }

// Workday reports whether the day is bookable.
func (d *CalendarDay) Workday() bool { return !d.IsWeekend && !d.IsHoliday }

// Hours returns the booked hours for a category.
func (d *CalendarDay) Hours(c Category) decimal.Decimal {
	if c == CategoryPTO {
		return d.PTOHours
	}
	return d.VacationHours
}

func (d *CalendarDay) setHours(c Category, hours decimal.Decimal) {
	if c == CategoryPTO {
		d.PTOHours = hours
		return
	}
	d.VacationHours = hours
}

// =============================================================================
// CALENDAR - Ordered full-year day sequence
// =============================================================================

// Calendar is the ordered day sequence for one calendar year: one entry per
// date, Jan 1 through Dec 31, no gaps, no duplicates. It is owned by the
// caller; this package never persists it.
type Calendar struct {
	Year        int
	Country     string
	Subdivision string
	Days        []CalendarDay
}

// Lookup returns the day for the given date, or nil if the date is not part
// of the calendar. For a full-year calendar the lookup is O(1) by day-of-year.
func (c *Calendar) Lookup(d Date) *CalendarDay {
	if len(c.Days) == 0 || d.Year != c.Year {
		return nil
	}
	if idx := d.Time().YearDay() - 1; idx >= 0 && idx < len(c.Days) {
		if day := &c.Days[idx]; day.Date == d {
			return day
		}
	}
	// Partial calendars (e.g. loaded from storage mid-migration) fall back
	// to a linear scan.
	for i := range c.Days {
		if c.Days[i].Date == d {
			return &c.Days[i]
		}
	}
	return nil
}

// =============================================================================
// MONTHLY SUMMARY - Derived per-month balances
// =============================================================================

// MonthlySummary is one report row per month. It is derived fresh from a
// Calendar on each aggregation and never mutated independently.
type MonthlySummary struct {
	Month            time.Month
	VacationUsed     decimal.Decimal
	PTOUsed          decimal.Decimal
	VacationAccrued  decimal.Decimal
	PTOAccrued       decimal.Decimal
	VacationResidual decimal.Decimal
	PTOResidual      decimal.Decimal
}

// Used returns the consumed hours for a category.
func (m *MonthlySummary) Used(c Category) decimal.Decimal {
	if c == CategoryPTO {
		return m.PTOUsed
	}
	return m.VacationUsed
}

// =============================================================================
// CONFIGURATION - Consumed, not owned, by the engine
// =============================================================================

// DefaultWorkingHoursCap is the maximum bookable hours per day per category
// when the configuration does not say otherwise.
const DefaultWorkingHoursCap = 8

// DefaultWeekendDays returns the two designated non-working weekdays used
// when the configuration does not override them.
func DefaultWeekendDays() []time.Weekday {
	return []time.Weekday{time.Saturday, time.Sunday}
}

// Config is the configuration record consumed by the engine. It is supplied
// by an external loader; the engine defines no default policy beyond the
// stated working-hours cap and weekend days.
type Config struct {
	Country     string
	Subdivision string
	Year        int

	// WorkingHoursCap bounds bookable hours per day per category.
	WorkingHoursCap decimal.Decimal

	// WeekendDays are the designated non-working weekdays.
	WeekendDays []time.Weekday

	// MonthlyRate is the flat per-month accrual per category.
	MonthlyRate map[Category]decimal.Decimal

	// PriorYearCarryover is a fixed leftover balance from last year, added
	// uniformly to every month's residual.
	PriorYearCarryover map[Category]decimal.Decimal
}

// Cap returns the working-hours cap, falling back to the default.
func (c Config) Cap() decimal.Decimal {
	if c.WorkingHoursCap.IsPositive() {
		return c.WorkingHoursCap
	}
	return decimal.NewFromInt(DefaultWorkingHoursCap)
}

// Weekend returns the configured weekend weekdays, falling back to Sat/Sun.
func (c Config) Weekend() []time.Weekday {
	if len(c.WeekendDays) > 0 {
		return c.WeekendDays
	}
	return DefaultWeekendDays()
}

// Rate returns the monthly accrual rate for a category (zero if unset).
func (c Config) Rate(cat Category) decimal.Decimal {
	return c.MonthlyRate[cat]
}

// Carryover returns the prior-year balance for a category (zero if unset).
func (c Config) Carryover(cat Category) decimal.Decimal {
	return c.PriorYearCarryover[cat]
}
