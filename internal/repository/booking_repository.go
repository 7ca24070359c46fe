package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/space-booking/internal/model"
)

// ErrBookingNotFound is returned when a booking cannot be found in the DB.
var ErrBookingNotFound = errors.New("booking not found")

// dateLayout is the wire format for calendar dates in API responses.
const dateLayout = "2006-01-02"

// BookingRepo provides persistence for booking requests.  Bookings are
// created in the Requested state, only ever mutated through UpdateStatus,
// and never deleted.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a new booking request.  It populates the generated ID on
// the provided record and queries back the DB-side timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const qInsert = `INSERT INTO bookings (user_id, space_id, booking_date, status) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, b.UserID, b.SpaceID, b.BookingDate, string(b.Status))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM bookings WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, b.ID).Scan(&b.CreatedAt, &b.UpdatedAt)
}

// GetByID fetches a booking by id, returning ErrBookingNotFound when no
// row exists.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	const q = `SELECT id, user_id, space_id, booking_date, status, created_at, updated_at
	           FROM bookings WHERE id = ?`
	var b model.Booking
	var status string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.UserID, &b.SpaceID, &b.BookingDate, &status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, ErrBookingNotFound
		}
		return model.Booking{}, err
	}
	b.Status = model.Status(status)
	return b, nil
}

// UpdateStatus persists a status transition.  Nothing else on a booking
// row is ever updated.  Returns ErrBookingNotFound when no row matches.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status model.Status) error {
	const q = `UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// EnrichedBooking is a booking joined with its space name and the
// requesting user's name for display in request lists.
type EnrichedBooking struct {
	ID                 uint64 `json:"id"`
	SpaceID            uint64 `json:"space_id"`
	SpaceName          string `json:"space_name"`
	BookingDate        string `json:"booking_date"`
	Status             string `json:"status"`
	RequestingUserName string `json:"requesting_user_name"`
}

const enrichedSelect = `SELECT b.id, b.space_id, s.space_name, b.booking_date, b.status, u.user_name
                        FROM bookings b
                        JOIN spaces s ON s.id = b.space_id
                        JOIN users  u ON u.id = b.user_id`

// scanEnriched reads joined rows into EnrichedBooking values.  The inner
// joins mean a booking with a dangling space or user reference simply
// does not appear; dangling ids on single-row lookups surface as typed
// not-found errors from SpaceRepo/UserRepo instead.
func scanEnriched(rows *sql.Rows) ([]EnrichedBooking, error) {
	out := make([]EnrichedBooking, 0)
	for rows.Next() {
		var e EnrichedBooking
		var date time.Time
		if err := rows.Scan(&e.ID, &e.SpaceID, &e.SpaceName, &date, &e.Status, &e.RequestingUserName); err != nil {
			return nil, err
		}
		e.BookingDate = date.Format(dateLayout)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMadeBy returns all booking requests created by the given user,
// newest first.
func (r *BookingRepo) ListMadeBy(ctx context.Context, userID uint64) ([]EnrichedBooking, error) {
	const q = enrichedSelect + ` WHERE b.user_id = ? ORDER BY b.created_at DESC, b.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnriched(rows)
}

// ListReceivedBy returns all booking requests targeting spaces owned by
// the given user, newest first.
func (r *BookingRepo) ListReceivedBy(ctx context.Context, ownerID uint64) ([]EnrichedBooking, error) {
	const q = enrichedSelect + ` WHERE s.user_id = ? ORDER BY b.created_at DESC, b.id DESC`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnriched(rows)
}

// ListBySpace returns all booking requests for one space, newest first.
// Callers filter out the booking under view when building sibling lists.
func (r *BookingRepo) ListBySpace(ctx context.Context, spaceID uint64) ([]EnrichedBooking, error) {
	const q = enrichedSelect + ` WHERE b.space_id = ? ORDER BY b.created_at DESC, b.id DESC`
	rows, err := r.db.QueryContext(ctx, q, spaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnriched(rows)
}
