/*
errors.go - Centralized error types for the calendar engine

PURPOSE:

	All error kinds in one place for consistency and discoverability.
	Callers match kinds with errors.Is() and extract context with errors.As().

ERROR CATEGORIES:
 1. Holiday source errors - Calendar construction failures
 2. Validation errors - Booking rule violations
 3. Lookup errors - Dates outside the built calendar

USAGE:

	if errors.Is(err, calendar.ErrNonWorkingDay) {
	    // booking targeted a weekend or holiday
	}

	var amountErr *calendar.InvalidAmountError
	if errors.As(err, &amountErr) {
	    fmt.Println(amountErr.Cap)
	}
*/
package calendar

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrHolidaySource is returned when holiday data is unavailable or the
	// country/subdivision pair is unrecognized. Fatal to calendar
	// construction; never retried internally.
	ErrHolidaySource = errors.New("holiday source unavailable")

	// ErrInvalidAmount is returned when requested hours are negative or
	// exceed the daily working-hours cap. Rejected before any mutation.
	ErrInvalidAmount = errors.New("invalid booking amount")

	// ErrDateNotFound is returned when the referenced date falls outside the
	// built calendar's year, or when a range contains no eligible working day.
	ErrDateNotFound = errors.New("date not found in calendar")

	// ErrNonWorkingDay is returned when a single-day booking targets a
	// weekend or holiday.
	ErrNonWorkingDay = errors.New("day is a weekend or holiday")

	// ErrInvalidRange is returned when a range start is after its end.
	ErrInvalidRange = errors.New("invalid range: start after end")

	// ErrUnknownCategory is returned when a booking names something that is
	// not a bookable category (e.g. a derived aggregate).
	ErrUnknownCategory = errors.New("unknown time-off category")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// HolidaySourceError reports that the holiday provider could not resolve the
// configured country/subdivision pair for the target year.
type HolidaySourceError struct {
	Country     string
	Subdivision string
	Year        int
	Err         error
}

func (e *HolidaySourceError) Error() string {
	return fmt.Sprintf("resolving holidays for %s/%s %d: %v",
		e.Country, e.Subdivision, e.Year, e.Err)
}

func (e *HolidaySourceError) Unwrap() error { return ErrHolidaySource }

// InvalidAmountError reports hours outside [0, cap].
type InvalidAmountError struct {
	Hours decimal.Decimal
	Cap   decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount %s hours outside the daily working cap of %s",
		e.Hours, e.Cap)
}

func (e *InvalidAmountError) Unwrap() error { return ErrInvalidAmount }

// DateNotFoundError reports a single date missing from the calendar.
type DateNotFoundError struct {
	Date Date
}

func (e *DateNotFoundError) Error() string {
	return fmt.Sprintf("date %s does not exist in the calendar", e.Date)
}

func (e *DateNotFoundError) Unwrap() error { return ErrDateNotFound }

// EmptyRangeError reports a range that selected no eligible working day:
// either entirely outside the calendar's year or entirely on weekends and
// holidays. Both cases map to the same ErrDateNotFound signal; the bounds
// are carried so callers can tell them apart by inspection.
type EmptyRangeError struct {
	Start Date
	End   Date
}

func (e *EmptyRangeError) Error() string {
	return fmt.Sprintf("range %s..%s selects no working day in the calendar",
		e.Start, e.End)
}

func (e *EmptyRangeError) Unwrap() error { return ErrDateNotFound }

// NonWorkingDayError reports a single-day booking on a weekend or holiday.
type NonWorkingDayError struct {
	Date        Date
	Weekend     bool
	HolidayName string
}

func (e *NonWorkingDayError) Error() string {
	if e.HolidayName != "" {
		return fmt.Sprintf("day %s is a holiday (%s)", e.Date, e.HolidayName)
	}
	return fmt.Sprintf("day %s is a weekend", e.Date)
}

func (e *NonWorkingDayError) Unwrap() error { return ErrNonWorkingDay }

// InvalidRangeError reports a range whose start is after its end.
type InvalidRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("range start %s is after end %s", e.Start, e.End)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// UnknownCategoryError reports a value that is not a bookable category.
type UnknownCategoryError struct {
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("%q is not a bookable time-off category", e.Value)
}

func (e *UnknownCategoryError) Unwrap() error { return ErrUnknownCategory }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrDateNotFound) ||
		errors.Is(err, ErrNonWorkingDay) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrUnknownCategory)
}

// IsNotFound returns true if the error indicates a missing date or range.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDateNotFound)
}
