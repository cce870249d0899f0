/*
ledger.go - Booking validation and overwrite semantics

PURPOSE:

	The Engine validates and applies single-day and date-range time-off
	bookings onto a Calendar. The calendar is mutated in place; all days not
	matched by a booking are left untouched.

CRITICAL INVARIANTS:
 1. VALIDATION FIRST: No day is written until every check has passed.
    A failed booking leaves the calendar exactly as it was.
 2. LAST WRITE WINS: A booking overwrites the category field of the matched
    day(s); it never accumulates. Re-booking a date is how a booking is
    corrected.
 3. NON-WORKING DAYS ARE NEVER BOOKABLE: A single-day booking on a weekend
    or holiday is an error; inside a range such days are silently skipped.

KNOWN GAP:

	Hours are validated per call and per category only. A single day may carry
	both vacation and PTO hours, and their sum is not capped.
*/
package calendar

import (
	"github.com/shopspring/decimal"
)

// Engine applies time-off bookings onto a Calendar. It holds only the
// working-hours cap; all other state is threaded through explicitly.
//
// The engine is not safe for concurrent writers on the same Calendar;
// callers wishing to book concurrently must serialize access.
type Engine struct {
	cap decimal.Decimal
}

// NewEngine creates an engine enforcing the given daily working-hours cap.
// A non-positive cap falls back to DefaultWorkingHoursCap.
func NewEngine(workingHoursCap decimal.Decimal) *Engine {
	if !workingHoursCap.IsPositive() {
		workingHoursCap = decimal.NewFromInt(DefaultWorkingHoursCap)
	}
	return &Engine{cap: workingHoursCap}
}

// Cap returns the enforced daily working-hours cap.
func (e *Engine) Cap() decimal.Decimal { return e.cap }

// ApplySingleDay books hours of the given category on one date, overwriting
// any previous value for that date and category.
//
// Fails with ErrInvalidAmount, ErrUnknownCategory, ErrDateNotFound or
// ErrNonWorkingDay. The calendar is untouched on failure.
func (e *Engine) ApplySingleDay(cal *Calendar, date Date, hours decimal.Decimal, category Category) error {
	if err := e.checkAmount(hours); err != nil {
		return err
	}
	if !category.Valid() {
		return &UnknownCategoryError{Value: string(category)}
	}

	day := cal.Lookup(date)
	if day == nil {
		return &DateNotFoundError{Date: date}
	}
	if !day.Workday() {
		return &NonWorkingDayError{
			Date:        date,
			Weekend:     day.IsWeekend,
			HolidayName: day.HolidayName,
		}
	}

	day.setHours(category, hours)
	return nil
}

// ApplyRange books hours of the given category on every working day in
// [start, end]. Weekends and holidays inside the range are silently skipped.
// Each selected day is overwritten (last write wins per day).
//
// Fails with ErrInvalidRange, ErrInvalidAmount, ErrUnknownCategory, or
// ErrDateNotFound when the selection is empty: a range entirely outside
// the calendar's year and a range made only of non-working days produce the
// same signal.
func (e *Engine) ApplyRange(cal *Calendar, start, end Date, hours decimal.Decimal, category Category) error {
	if start.After(end) {
		return &InvalidRangeError{Start: start, End: end}
	}
	if err := e.checkAmount(hours); err != nil {
		return err
	}
	if !category.Valid() {
		return &UnknownCategoryError{Value: string(category)}
	}

	// Select first, write after: the selection doubles as validation, so an
	// empty result leaves the calendar untouched.
	var matched []*CalendarDay
	for i := range cal.Days {
		day := &cal.Days[i]
		if day.Date.Before(start) || day.Date.After(end) {
			continue
		}
		if !day.Workday() {
			continue
		}
		matched = append(matched, day)
	}
	if len(matched) == 0 {
		return &EmptyRangeError{Start: start, End: end}
	}

	for _, day := range matched {
		day.setHours(category, hours)
	}
	return nil
}

func (e *Engine) checkAmount(hours decimal.Decimal) error {
	if hours.IsNegative() || hours.GreaterThan(e.cap) {
		return &InvalidAmountError{Hours: hours, Cap: e.cap}
	}
	return nil
}
