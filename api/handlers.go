/*
handlers.go - HTTP API handlers for the vacation calendar

PURPOSE:

	Exposes the calendar engine via REST API. Handles HTTP request/response,
	JSON serialization, and delegates to the engine and the store.

ENDPOINTS:

	Calendars:
	  POST   /api/calendars                 Build and persist a calendar year
	  GET    /api/calendars                 List stored years
	  GET    /api/calendars/{year}          Full day list
	  DELETE /api/calendars/{year}          Remove a stored year

	Bookings:
	  POST   /api/calendars/{year}/bookings Record a single-day or range booking

	Reports:
	  GET    /api/calendars/{year}/summary       Monthly summary rows
	  GET    /api/calendars/{year}/summary.xlsx  Monthly summary workbook
	  GET    /api/calendars/{year}/events        Calendar-widget event feed

ERROR HANDLING:

	Errors are returned as JSON with appropriate HTTP status:
	- 400: Validation errors, invalid input
	- 404: Calendar or date not found
	- 409: Booking on a weekend or holiday
	- 500: Internal errors
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/solari/vacation-engine/calendar"
	"github.com/solari/vacation-engine/report"
	"github.com/solari/vacation-engine/store/sqlite"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	Provider calendar.HolidayProvider
	Config   calendar.Config

	engine *calendar.Engine
}

// NewHandler creates a new handler with the given store, holiday provider
// and configuration.
func NewHandler(store *sqlite.Store, provider calendar.HolidayProvider, cfg calendar.Config) *Handler {
	return &Handler{
		Store:    store,
		Provider: provider,
		Config:   cfg,
		engine:   calendar.NewEngine(cfg.Cap()),
	}
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// CreateCalendar builds the calendar for the requested (or configured) year
// and persists it.
func (h *Handler) CreateCalendar(w http.ResponseWriter, r *http.Request) {
	var req CreateCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cfg := h.Config
	if req.Year != 0 {
		cfg.Year = req.Year
	}
	if req.Country != "" {
		cfg.Country = req.Country
		cfg.Subdivision = req.Subdivision
	}

	cal, err := calendar.Build(cfg, h.Provider)
	if err != nil {
		if errors.Is(err, calendar.ErrHolidaySource) {
			writeError(w, http.StatusBadRequest, "Cannot resolve holidays", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to build calendar", err)
		return
	}

	if err := h.Store.SaveCalendar(r.Context(), cal); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save calendar", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCalendarDTO(cal))
}

// ListCalendars returns metadata for every stored year.
func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	infos, err := h.Store.ListCalendars(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list calendars", err)
		return
	}
	dtos := make([]CalendarInfoDTO, len(infos))
	for i, info := range infos {
		dtos[i] = toInfoDTO(info)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCalendar returns the full day list for a stored year.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.loadCalendar(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toCalendarDTO(cal))
}

// DeleteCalendar removes a stored year.
func (h *Handler) DeleteCalendar(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	if err := h.Store.DeleteCalendar(r.Context(), year); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete calendar", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// BOOKING HANDLER
// =============================================================================

// SubmitBooking records a time-off booking on a stored calendar. The request
// carries either a single date or a start/end pair; the handler dispatches
// to the matching engine operation, never both.
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.loadCalendar(w, r)
	if !ok {
		return
	}

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	category, err := calendar.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown category", err)
		return
	}
	hours := decimal.NewFromFloat(req.Hours)

	switch {
	case req.Date != "" && req.Start == "" && req.End == "":
		date, perr := calendar.ParseDate(req.Date)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid date", perr)
			return
		}
		err = h.engine.ApplySingleDay(cal, date, hours, category)

	case req.Date == "" && req.Start != "" && req.End != "":
		start, perr := calendar.ParseDate(req.Start)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid start date", perr)
			return
		}
		end, perr := calendar.ParseDate(req.End)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid end date", perr)
			return
		}
		err = h.engine.ApplyRange(cal, start, end, hours, category)

	default:
		writeError(w, http.StatusBadRequest, "Provide either date or start and end", nil)
		return
	}

	if err != nil {
		writeBookingError(w, err)
		return
	}

	if err := h.Store.SaveCalendar(r.Context(), cal); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save calendar", err)
		return
	}
	writeJSON(w, http.StatusOK, toCalendarDTO(cal))
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// GetSummary returns the monthly summary rows for a stored year.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.loadCalendar(w, r)
	if !ok {
		return
	}
	cfg := h.Config
	cfg.Year = cal.Year
	writeJSON(w, http.StatusOK, toSummaryDTOs(calendar.Summarize(cal, cfg)))
}

// GetSummaryXLSX returns the monthly summary as a spreadsheet download.
func (h *Handler) GetSummaryXLSX(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.loadCalendar(w, r)
	if !ok {
		return
	}
	cfg := h.Config
	cfg.Year = cal.Year

	data, err := report.SummaryXLSX(cal.Year, calendar.Summarize(cal, cfg))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
		return
	}
	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="summary-%d.xlsx"`, cal.Year))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// GetEvents returns the calendar-widget event feed: weekends and holidays as
// background events, booked days as foreground events.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.loadCalendar(w, r)
	if !ok {
		return
	}

	events := make([]EventDTO, 0, len(cal.Days)/3)
	for i := range cal.Days {
		day := &cal.Days[i]
		date := day.Date.String()
		switch {
		case day.IsHoliday:
			events = append(events, EventDTO{
				Start: date, End: date,
				Title:           day.HolidayName,
				AllDay:          true,
				ClassName:       "holiday",
				Display:         "background",
				BackgroundColor: "#f6c064",
			})
		case day.IsWeekend:
			events = append(events, EventDTO{
				Start: date, End: date,
				AllDay:          true,
				ClassName:       "weekend",
				Display:         "background",
				BackgroundColor: "rgba(13,111,166,255)",
			})
		}
		if day.VacationHours.IsPositive() {
			events = append(events, EventDTO{
				Start: date, End: date,
				Title:           fmt.Sprintf("Vacation %sh", day.VacationHours),
				AllDay:          true,
				ClassName:       "vacation",
				BackgroundColor: "#5ab171",
			})
		}
		if day.PTOHours.IsPositive() {
			events = append(events, EventDTO{
				Start: date, End: date,
				Title:           fmt.Sprintf("PTO %sh", day.PTOHours),
				AllDay:          true,
				ClassName:       "pto",
				BackgroundColor: "#b15a8f",
			})
		}
	}
	writeJSON(w, http.StatusOK, events)
}

// =============================================================================
// HELPERS
// =============================================================================

// loadCalendar fetches the calendar addressed by the {year} URL parameter,
// writing the error response itself when the calendar cannot be served.
func (h *Handler) loadCalendar(w http.ResponseWriter, r *http.Request) (*calendar.Calendar, bool) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return nil, false
	}
	cal, err := h.Store.LoadCalendar(r.Context(), year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load calendar", err)
		return nil, false
	}
	if cal == nil {
		writeError(w, http.StatusNotFound, "Calendar not found", nil)
		return nil, false
	}
	return cal, true
}

func yearParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "year"))
}

// writeBookingError maps engine error kinds to HTTP status codes.
func writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calendar.ErrDateNotFound):
		writeError(w, http.StatusNotFound, "Date not in calendar", err)
	case errors.Is(err, calendar.ErrNonWorkingDay):
		writeError(w, http.StatusConflict, "Day is not a working day", err)
	case calendar.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Invalid booking", err)
	default:
		writeError(w, http.StatusInternalServerError, "Booking failed", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
