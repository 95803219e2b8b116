package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"turfBooker/internal/models"
	"turfBooker/internal/storage"

	"github.com/google/uuid"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// timeLayout is fixed width so created_at sorts and compares as text.
const timeLayout = "2006-01-02 15:04:05.000000000"

const schema = `
	CREATE TABLE IF NOT EXISTS turfs (
		id        TEXT PRIMARY KEY,
		name      TEXT NOT NULL,
		address   TEXT NOT NULL,
		open_at   TEXT NOT NULL,
		close_at  TEXT NOT NULL,
		days_open TEXT NOT NULL DEFAULT '',
		owner_id  TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id          TEXT PRIMARY KEY,
		turf_id     TEXT NOT NULL REFERENCES turfs(id) ON DELETE CASCADE,
		booker_name TEXT NOT NULL,
		slot_date   TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		slot_time   INTEGER NOT NULL CHECK (slot_time > 0),
		amount      REAL NOT NULL CHECK (amount >= 0),
		created_at  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_turf_date ON bookings (turf_id, slot_date);`

const bookingColumns = `id, turf_id, booker_name, slot_date, start_time, end_time, slot_time, amount, created_at`

// Storage keeps turfs and bookings in an embedded SQLite database. It runs
// on a single connection, so write transactions never interleave.
type Storage struct {
	db *sql.DB
}

// New opens the database at path (":memory:" for a private in-memory
// database) and creates the schema.
func New(path string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err = db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to apply schema: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) SaveTurf(ctx context.Context, turf models.Turf) (models.Turf, error) {
	const op = "storage.sqlite.SaveTurf"

	turf.ID = uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO turfs (id, name, address, open_at, close_at, days_open, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		turf.ID, turf.Name, turf.Address, turf.OpenAt, turf.CloseAt, joinDays(turf.DaysOpen), turf.OwnerID)
	if err != nil {
		var sqliteErr *moderncsqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return models.Turf{}, fmt.Errorf("%s: %w", op, storage.ErrTurfExists)
		}
		return models.Turf{}, fmt.Errorf("%s: %w", op, err)
	}

	return turf, nil
}

func (s *Storage) Turf(ctx context.Context, id string) (*models.Turf, error) {
	const op = "storage.sqlite.Turf"

	turf, err := scanTurf(s.db.QueryRowContext(ctx, `
		SELECT id, name, address, open_at, close_at, days_open, owner_id
		FROM turfs
		WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrTurfNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return turf, nil
}

func (s *Storage) UpdateTurf(ctx context.Context, turf models.Turf) (*models.Turf, error) {
	const op = "storage.sqlite.UpdateTurf"

	res, err := s.db.ExecContext(ctx, `
		UPDATE turfs
		SET name = ?, address = ?, open_at = ?, close_at = ?, days_open = ?
		WHERE id = ?`,
		turf.Name, turf.Address, turf.OpenAt, turf.CloseAt, joinDays(turf.DaysOpen), turf.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTurfNotFound)
	}

	return s.Turf(ctx, turf.ID)
}

func (s *Storage) SaveBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	const op = "storage.sqlite.SaveBooking"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	b.ID = uuid.NewString()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	b.CreatedAt = b.CreatedAt.UTC()

	if err = checkConflict(ctx, tx, b); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.TurfID, b.BookerName, b.SlotDate, b.StartTime, b.EndTime, b.SlotTime, b.Amount, b.CreatedAt.Format(timeLayout))
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to create booking: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) UpdateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	const op = "storage.sqlite.UpdateBooking"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var found string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM bookings WHERE id = ? AND turf_id = ?`, b.ID, b.TurfID).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get booking: %w", op, err)
	}

	if err = checkConflict(ctx, tx, b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET booker_name = ?, slot_date = ?, start_time = ?, end_time = ?, slot_time = ?, amount = ?
		WHERE id = ? AND turf_id = ?`,
		b.BookerName, b.SlotDate, b.StartTime, b.EndTime, b.SlotTime, b.Amount, b.ID, b.TurfID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update booking: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	updated, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, b.ID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Storage) DeleteBooking(ctx context.Context, turfID, id string) (*models.Booking, error) {
	const op = "storage.sqlite.DeleteBooking"

	deleted, err := scanBooking(s.db.QueryRowContext(ctx, `
		DELETE FROM bookings
		WHERE id = ? AND turf_id = ?
		RETURNING `+bookingColumns, id, turfID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

func (s *Storage) Booking(ctx context.Context, turfID, id string) (*models.Booking, error) {
	const op = "storage.sqlite.Booking"

	b, err := scanBooking(s.db.QueryRowContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = ? AND turf_id = ?`, id, turfID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) BookingsByDate(ctx context.Context, turfID string, date models.Date) ([]models.Booking, error) {
	return s.Bookings(ctx, storage.BookingFilter{TurfID: turfID, SlotDate: date})
}

func (s *Storage) Bookings(ctx context.Context, filter storage.BookingFilter) ([]models.Booking, error) {
	const op = "storage.sqlite.Bookings"

	where, args := bookingWhere(filter)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings`+where+`
		ORDER BY slot_date ASC, start_time ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get bookings: %w", op, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *Storage) CountBookings(ctx context.Context, filter storage.BookingFilter) (int, error) {
	const op = "storage.sqlite.CountBookings"

	where, args := bookingWhere(filter)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func checkConflict(ctx context.Context, tx *sql.Tx, b models.Booking) error {
	var turfID string
	err := tx.QueryRowContext(ctx, `SELECT id FROM turfs WHERE id = ?`, b.TurfID).Scan(&turfID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrTurfNotFound
		}
		return fmt.Errorf("failed to get turf: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE turf_id = ? AND slot_date = ?`, b.TurfID, b.SlotDate)
	if err != nil {
		return fmt.Errorf("failed to get bookings for date: %w", err)
	}
	defer rows.Close()

	existing, err := scanBookings(rows)
	if err != nil {
		return err
	}

	return storage.CheckConflict(existing, b)
}

func bookingWhere(filter storage.BookingFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.TurfID != "" {
		conds = append(conds, "turf_id = ?")
		args = append(args, filter.TurfID)
	}
	if !filter.SlotDate.IsZero() {
		conds = append(conds, "slot_date = ?")
		args = append(args, filter.SlotDate)
	}
	if filter.BookerName != "" {
		conds = append(conds, `booker_name LIKE ? ESCAPE '\'`)
		args = append(args, storage.LikePattern(filter.BookerName))
	}
	if !filter.CreatedFrom.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, filter.CreatedFrom.UTC().Format(timeLayout))
	}
	if !filter.CreatedTo.IsZero() {
		conds = append(conds, "created_at < ?")
		args = append(args, filter.CreatedTo.UTC().Format(timeLayout))
	}

	if len(conds) == 0 {
		return "", nil
	}

	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTurf(row rowScanner) (*models.Turf, error) {
	var turf models.Turf
	var days string

	if err := row.Scan(&turf.ID, &turf.Name, &turf.Address, &turf.OpenAt, &turf.CloseAt, &days, &turf.OwnerID); err != nil {
		return nil, err
	}

	parsed, err := splitDays(days)
	if err != nil {
		return nil, err
	}
	turf.DaysOpen = parsed

	return &turf, nil
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking
	var createdAt string

	err := row.Scan(
		&b.ID,
		&b.TurfID,
		&b.BookerName,
		&b.SlotDate,
		&b.StartTime,
		&b.EndTime,
		&b.SlotTime,
		&b.Amount,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func joinDays(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

func splitDays(s string) ([]int, error) {
	days := []int{}
	if s == "" {
		return days, nil
	}

	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid days_open %q: %w", s, err)
		}
		days = append(days, d)
	}

	return days, nil
}
