package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"turfBooker/internal/config"
	"turfBooker/internal/models"
	"turfBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const schema = `
	CREATE TABLE IF NOT EXISTS turfs (
		id        UUID PRIMARY KEY,
		name      TEXT NOT NULL,
		address   TEXT NOT NULL,
		open_at   CHAR(5) NOT NULL,
		close_at  CHAR(5) NOT NULL,
		days_open SMALLINT[] NOT NULL DEFAULT '{}',
		owner_id  TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id          UUID PRIMARY KEY,
		turf_id     UUID NOT NULL REFERENCES turfs(id) ON DELETE CASCADE,
		booker_name TEXT NOT NULL,
		slot_date   DATE NOT NULL,
		start_time  CHAR(5) NOT NULL,
		end_time    CHAR(5) NOT NULL,
		slot_time   INTEGER NOT NULL CHECK (slot_time > 0),
		amount      NUMERIC(12, 2) NOT NULL CHECK (amount >= 0),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_turf_date ON bookings (turf_id, slot_date);`

const bookingColumns = `id, turf_id, booker_name, slot_date, start_time, end_time, slot_time, amount, created_at`

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Postgres) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveTurf(ctx context.Context, turf models.Turf) (models.Turf, error) {
	const op = "storage.postgres.SaveTurf"

	turf.ID = uuid.NewString()

	query := `
		INSERT INTO turfs (id, name, address, open_at, close_at, days_open, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.DB.ExecContext(ctx, query,
		turf.ID, turf.Name, turf.Address, turf.OpenAt, turf.CloseAt, pq.Array(toInt64s(turf.DaysOpen)), turf.OwnerID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.Turf{}, fmt.Errorf("%s: %w", op, storage.ErrTurfExists)
		}
		return models.Turf{}, fmt.Errorf("%s: %w", op, err)
	}

	return turf, nil
}

func (s *Storage) Turf(ctx context.Context, id string) (*models.Turf, error) {
	const op = "storage.postgres.Turf"

	query := `
		SELECT id, name, address, open_at, close_at, days_open, owner_id
		FROM turfs
		WHERE id = $1`

	turf, err := scanTurf(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrTurfNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return turf, nil
}

func (s *Storage) UpdateTurf(ctx context.Context, turf models.Turf) (*models.Turf, error) {
	const op = "storage.postgres.UpdateTurf"

	query := `
		UPDATE turfs
		SET name = $2, address = $3, open_at = $4, close_at = $5, days_open = $6
		WHERE id = $1
		RETURNING id, name, address, open_at, close_at, days_open, owner_id`

	updated, err := scanTurf(s.DB.QueryRowContext(ctx, query,
		turf.ID, turf.Name, turf.Address, turf.OpenAt, turf.CloseAt, pq.Array(toInt64s(turf.DaysOpen))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrTurfNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// SaveBooking inserts b unless it overlaps a booking on the same turf and
// date. The turf row is locked for the duration of the check so concurrent
// writers for one turf serialize.
func (s *Storage) SaveBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	const op = "storage.postgres.SaveBooking"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	b.ID = uuid.NewString()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	if err = lockAndCheck(ctx, tx, b); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	insertQuery := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = tx.ExecContext(ctx, insertQuery,
		b.ID, b.TurfID, b.BookerName, b.SlotDate, b.StartTime, b.EndTime, b.SlotTime, b.Amount, b.CreatedAt)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to create booking: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) UpdateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	const op = "storage.postgres.UpdateBooking"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if err = lockTurf(ctx, tx, b.TurfID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = lockBooking(ctx, tx, b.TurfID, b.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = checkConflict(ctx, tx, b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updateQuery := `
		UPDATE bookings
		SET booker_name = $3, slot_date = $4, start_time = $5, end_time = $6, slot_time = $7, amount = $8
		WHERE id = $1 AND turf_id = $2
		RETURNING ` + bookingColumns

	updated, err := scanBooking(tx.QueryRowContext(ctx, updateQuery,
		b.ID, b.TurfID, b.BookerName, b.SlotDate, b.StartTime, b.EndTime, b.SlotTime, b.Amount))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: failed to update booking: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Storage) DeleteBooking(ctx context.Context, turfID, id string) (*models.Booking, error) {
	const op = "storage.postgres.DeleteBooking"

	query := `
		DELETE FROM bookings
		WHERE id = $1 AND turf_id = $2
		RETURNING ` + bookingColumns

	deleted, err := scanBooking(s.DB.QueryRowContext(ctx, query, id, turfID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

func (s *Storage) Booking(ctx context.Context, turfID, id string) (*models.Booking, error) {
	const op = "storage.postgres.Booking"

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1 AND turf_id = $2`

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query, id, turfID))
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
	const op = "storage.postgres.Bookings"

	where, args := bookingWhere(filter)
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings` + where + `
		ORDER BY slot_date ASC, start_time ASC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
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
	const op = "storage.postgres.CountBookings"

	where, args := bookingWhere(filter)

	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func lockAndCheck(ctx context.Context, tx *sql.Tx, b models.Booking) error {
	if err := lockTurf(ctx, tx, b.TurfID); err != nil {
		return err
	}

	return checkConflict(ctx, tx, b)
}

// lockTurf serializes booking writers of one turf until tx ends.
func lockTurf(ctx context.Context, tx *sql.Tx, turfID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM turfs WHERE id = $1 FOR UPDATE`, turfID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrTurfNotFound
		}
		return fmt.Errorf("failed to lock turf: %w", err)
	}

	return nil
}

func lockBooking(ctx context.Context, tx *sql.Tx, turfID, id string) error {
	var found string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM bookings WHERE id = $1 AND turf_id = $2 FOR UPDATE`, id, turfID).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to lock booking: %w", err)
	}

	return nil
}

func checkConflict(ctx context.Context, tx *sql.Tx, b models.Booking) error {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE turf_id = $1 AND slot_date = $2`

	rows, err := tx.QueryContext(ctx, query, b.TurfID, b.SlotDate)
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

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.TurfID != "" {
		add("turf_id = $%d", filter.TurfID)
	}
	if !filter.SlotDate.IsZero() {
		add("slot_date = $%d", filter.SlotDate)
	}
	if filter.BookerName != "" {
		add(`booker_name ILIKE $%d ESCAPE '\'`, storage.LikePattern(filter.BookerName))
	}
	if !filter.CreatedFrom.IsZero() {
		add("created_at >= $%d", filter.CreatedFrom)
	}
	if !filter.CreatedTo.IsZero() {
		add("created_at < $%d", filter.CreatedTo)
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
	var days pq.Int64Array

	err := row.Scan(&turf.ID, &turf.Name, &turf.Address, &turf.OpenAt, &turf.CloseAt, &days, &turf.OwnerID)
	if err != nil {
		return nil, err
	}

	turf.DaysOpen = make([]int, 0, len(days))
	for _, d := range days {
		turf.DaysOpen = append(turf.DaysOpen, int(d))
	}

	return &turf, nil
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking

	err := row.Scan(
		&b.ID,
		&b.TurfID,
		&b.BookerName,
		&b.SlotDate,
		&b.StartTime,
		&b.EndTime,
		&b.SlotTime,
		&b.Amount,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
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

func toInt64s(days []int) []int64 {
	out := make([]int64, 0, len(days))
	for _, d := range days {
		out = append(out, int64(d))
	}
	return out
}
