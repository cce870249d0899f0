/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:

	Defines the JSON structures for API communication. These types decouple
	the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:

	Validation is done in handlers, not in DTOs. DTOs are pure data carriers.
*/
package api

import (
	"time"

	"github.com/solari/vacation-engine/calendar"
	"github.com/solari/vacation-engine/store/sqlite"
)

// CalendarDayDTO represents one calendar day in API responses.
type CalendarDayDTO struct {
	Date          string  `json:"date"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	IsWeekend     bool    `json:"is_weekend"`
	HolidayName   string  `json:"holiday_name,omitempty"`
	IsHoliday     bool    `json:"is_holiday"`
	VacationHours float64 `json:"vacation_hours"`
	PTOHours      float64 `json:"pto_hours"`
}

// CalendarDTO represents a full calendar year.
type CalendarDTO struct {
	Year        int              `json:"year"`
	Country     string           `json:"country"`
	Subdivision string           `json:"subdivision,omitempty"`
	Days        []CalendarDayDTO `json:"days"`
}

// CalendarInfoDTO describes a stored calendar without its days.
type CalendarInfoDTO struct {
	Year        int    `json:"year"`
	Country     string `json:"country"`
	Subdivision string `json:"subdivision,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// CreateCalendarRequest builds a calendar. Zero values fall back to the
// server's configuration.
type CreateCalendarRequest struct {
	Year        int    `json:"year,omitempty"`
	Country     string `json:"country,omitempty"`
	Subdivision string `json:"subdivision,omitempty"`
}

// BookingRequest records time off. Exactly one of Date or Start+End must be
// set: Date books a single day, Start+End book every working day in the
// range.
type BookingRequest struct {
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
	Date     string  `json:"date,omitempty"`
	Start    string  `json:"start,omitempty"`
	End      string  `json:"end,omitempty"`
}

// MonthlySummaryDTO is one report row per month.
type MonthlySummaryDTO struct {
	Month            int     `json:"month"`
	VacationUsed     float64 `json:"vacation_used"`
	PTOUsed          float64 `json:"pto_used"`
	VacationAccrued  float64 `json:"vacation_accrued"`
	PTOAccrued       float64 `json:"pto_accrued"`
	VacationResidual float64 `json:"vacation_residual"`
	PTOResidual      float64 `json:"pto_residual"`
}

// EventDTO is a day-level background/foreground event for calendar widgets
// (weekend, holiday, booked day). The engine exposes plain data; this is
// the presentation shape consumed by the frontend.
type EventDTO struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	Title           string `json:"title,omitempty"`
	AllDay          bool   `json:"allDay"`
	ClassName       string `json:"className"`
	Display         string `json:"display"`
	Editable        bool   `json:"editable"`
	BackgroundColor string `json:"backgroundColor"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// MAPPERS
// =============================================================================

func toCalendarDTO(cal *calendar.Calendar) CalendarDTO {
	dto := CalendarDTO{
		Year:        cal.Year,
		Country:     cal.Country,
		Subdivision: cal.Subdivision,
		Days:        make([]CalendarDayDTO, len(cal.Days)),
	}
	for i := range cal.Days {
		day := &cal.Days[i]
		dto.Days[i] = CalendarDayDTO{
			Date:          day.Date.String(),
			Month:         int(day.Date.Month),
			Year:          day.Date.Year,
			IsWeekend:     day.IsWeekend,
			HolidayName:   day.HolidayName,
			IsHoliday:     day.IsHoliday,
			VacationHours: day.VacationHours.InexactFloat64(),
			PTOHours:      day.PTOHours.InexactFloat64(),
		}
	}
	return dto
}

func toInfoDTO(info sqlite.CalendarInfo) CalendarInfoDTO {
	dto := CalendarInfoDTO{
		Year:        info.Year,
		Country:     info.Country,
		Subdivision: info.Subdivision,
	}
	if !info.CreatedAt.IsZero() {
		dto.CreatedAt = info.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

func toSummaryDTOs(summaries []calendar.MonthlySummary) []MonthlySummaryDTO {
	dtos := make([]MonthlySummaryDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = MonthlySummaryDTO{
			Month:            int(s.Month),
			VacationUsed:     s.VacationUsed.InexactFloat64(),
			PTOUsed:          s.PTOUsed.InexactFloat64(),
			VacationAccrued:  s.VacationAccrued.InexactFloat64(),
			PTOAccrued:       s.PTOAccrued.InexactFloat64(),
			VacationResidual: s.VacationResidual.InexactFloat64(),
			PTOResidual:      s.PTOResidual.InexactFloat64(),
		}
	}
	return dtos
}
