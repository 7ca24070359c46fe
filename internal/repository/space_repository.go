// Package repository contains data access logic separated from HTTP
// handlers.  Repositories operate on plain model types and return
// per-entity sentinel errors so handlers can map failures to HTTP codes
// without inspecting driver errors.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/space-booking/internal/model"
)

// ErrSpaceNotFound is returned when a space cannot be found in the DB.
var ErrSpaceNotFound = errors.New("space not found")

// SpaceRepo encapsulates all database queries related to spaces.
type SpaceRepo struct {
	db *sql.DB
}

// NewSpaceRepo constructs a SpaceRepo with the provided DB handle.  This
// allows dependency injection of the database in tests and at startup.
func NewSpaceRepo(db *sql.DB) *SpaceRepo {
	return &SpaceRepo{db: db}
}

// Create inserts a new space listing.  On success the space's ID field is
// populated with the auto-generated value and a follow-up SELECT fills in
// the DB-side default timestamps so callers receive a complete record.
func (r *SpaceRepo) Create(ctx context.Context, s *model.Space) error {
	const qInsert = `INSERT INTO spaces
	                 (user_id, space_name, description, price_per_night, available_from, available_to)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		s.UserID, s.Name, s.Description, s.PricePerNight, s.AvailableFrom, s.AvailableTo)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM spaces WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// GetByID fetches a space by its ID.  It returns ErrSpaceNotFound when no
// row exists, which also covers dangling space references reached through
// a booking.
func (r *SpaceRepo) GetByID(ctx context.Context, id uint64) (*model.Space, error) {
	const q = `SELECT id, user_id, space_name, description, price_per_night,
	                  available_from, available_to, created_at, updated_at
	           FROM spaces WHERE id = ?`
	var s model.Space
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.UserID, &s.Name, &s.Description, &s.PricePerNight,
		&s.AvailableFrom, &s.AvailableTo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListAll returns every space ordered by id.  Date-range filtering happens
// above the repository so that the directory and the filtered view share
// one query and one ordering.
func (r *SpaceRepo) ListAll(ctx context.Context) ([]model.Space, error) {
	const q = `SELECT id, user_id, space_name, description, price_per_night,
	                  available_from, available_to, created_at, updated_at
	           FROM spaces ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Space, 0)
	for rows.Next() {
		var s model.Space
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Name, &s.Description, &s.PricePerNight,
			&s.AvailableFrom, &s.AvailableTo, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
