/*
Package sqlite persists calendars keyed by year.

PURPOSE:

	The engine never reads or writes storage; this package is the durable
	representation of a Calendar on the other side of the persistence
	boundary. One calendars row per year, one calendar_days row per date.

KEY TABLES:

	calendars:     year (primary key), country, subdivision, created_at
	calendar_days: per-day flags and booked hours, keyed by (year, date)

REPRESENTATION:

	Hours are stored as decimal strings to keep exact values.
	holiday_name is the single source of holiday truth; the is_holiday flag
	is reconstructed on load so the two can never diverge.

CONCURRENCY:

	Uses sync.RWMutex for thread-safety. SQLite is opened with WAL for better
	read concurrency and crash recovery.

USAGE:

	store, err := sqlite.New("./data/vacation.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/solari/vacation-engine/calendar"
)

// Store persists calendars in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// CalendarInfo describes one stored calendar year.
type CalendarInfo struct {
	Year        int
	Country     string
	Subdivision string
	CreatedAt   time.Time
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calendars (
		year INTEGER PRIMARY KEY,
		country TEXT NOT NULL,
		subdivision TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS calendar_days (
		year INTEGER NOT NULL,
		date TEXT NOT NULL,
		is_weekend INTEGER NOT NULL,
		holiday_name TEXT NOT NULL DEFAULT '',
		vacation_hours TEXT NOT NULL,
		pto_hours TEXT NOT NULL,
		PRIMARY KEY (year, date),
		FOREIGN KEY (year) REFERENCES calendars(year) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_calendar_days_year
		ON calendar_days(year);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveCalendar writes the calendar for its year, replacing any previous
// state for that year atomically.
func (s *Store) SaveCalendar(ctx context.Context, cal *calendar.Calendar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO calendars (year, country, subdivision, created_at)
		 VALUES (?, ?, ?, ?)`,
		cal.Year, cal.Country, cal.Subdivision, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM calendar_days WHERE year = ?`, cal.Year); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO calendar_days (year, date, is_weekend, holiday_name, vacation_hours, pto_hours)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range cal.Days {
		day := &cal.Days[i]
		if _, err := stmt.ExecContext(ctx,
			cal.Year,
			day.Date.String(),
			boolToInt(day.IsWeekend),
			day.HolidayName,
			day.VacationHours.String(),
			day.PTOHours.String(),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadCalendar reads the calendar stored for a year. Returns (nil, nil)
// when no calendar exists for that year.
func (s *Store) LoadCalendar(ctx context.Context, year int) (*calendar.Calendar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cal := &calendar.Calendar{Year: year}
	err := s.db.QueryRowContext(ctx,
		`SELECT country, subdivision FROM calendars WHERE year = ?`, year).
		Scan(&cal.Country, &cal.Subdivision)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, is_weekend, holiday_name, vacation_hours, pto_hours
		 FROM calendar_days WHERE year = ? ORDER BY date`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			dateStr string
			weekend int
			name    string
			vacStr  string
			ptoStr  string
		)
		if err := rows.Scan(&dateStr, &weekend, &name, &vacStr, &ptoStr); err != nil {
			return nil, err
		}
		date, err := calendar.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt day row: %w", err)
		}
		vac, err := decimal.NewFromString(vacStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt vacation hours %q: %w", vacStr, err)
		}
		pto, err := decimal.NewFromString(ptoStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt pto hours %q: %w", ptoStr, err)
		}
		cal.Days = append(cal.Days, calendar.CalendarDay{
			Date:          date,
			IsWeekend:     weekend != 0,
			HolidayName:   name,
			IsHoliday:     name != "",
			VacationHours: vac,
			PTOHours:      pto,
		})
	}
	return cal, rows.Err()
}

// ListCalendars returns metadata for every stored year, ascending.
func (s *Store) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT year, country, subdivision, created_at FROM calendars ORDER BY year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []CalendarInfo
	for rows.Next() {
		var (
			info      CalendarInfo
			createdAt string
		)
		if err := rows.Scan(&info.Year, &info.Country, &info.Subdivision, &createdAt); err != nil {
			return nil, err
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteCalendar removes a stored year and its days.
func (s *Store) DeleteCalendar(ctx context.Context, year int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Days are removed by the ON DELETE CASCADE foreign key.
	_, err := s.db.ExecContext(ctx, `DELETE FROM calendars WHERE year = ?`, year)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
