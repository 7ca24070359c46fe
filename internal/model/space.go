package model

import "time"

// Space represents a rentable listing with an availability window and an
// owner.  Spaces are immutable after creation; bookings reference them by
// id.  The price is kept as decimal text to avoid float rounding on money.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – user ID of the space owner.
//  Name          – listing name.
//  Description   – free-text description of the space.
//  PricePerNight – nightly price as decimal text (e.g. "95.00").
//  AvailableFrom – first calendar date the space can be booked (inclusive).
//  AvailableTo   – last calendar date the space can be booked (inclusive).
//  CreatedAt     – timestamp when the listing was created.
//  UpdatedAt     – timestamp of last update.
type Space struct {
	ID            uint64    // spaces.id
	UserID        uint64    // spaces.user_id
	Name          string    // spaces.space_name
	Description   string    // spaces.description
	PricePerNight string    // spaces.price_per_night
	AvailableFrom time.Time // spaces.available_from (DATE)
	AvailableTo   time.Time // spaces.available_to (DATE)
	CreatedAt     time.Time // spaces.created_at
	UpdatedAt     time.Time // spaces.updated_at
}

// OverlapsRange reports whether the space's availability window overlaps
// the inclusive [from, to] query window.  Dates are compared as parsed
// calendar dates, never as raw strings.
func (s Space) OverlapsRange(from, to time.Time) bool {
	return !s.AvailableFrom.After(to) && !s.AvailableTo.Before(from)
}

// FilterByRange returns the spaces whose availability window overlaps the
// inclusive [from, to] window, preserving the input order.  When either
// bound is nil no filtering is applied and the input slice is returned
// unchanged.
func FilterByRange(spaces []Space, from, to *time.Time) []Space {
	if from == nil || to == nil {
		return spaces
	}
	out := make([]Space, 0, len(spaces))
	for _, s := range spaces {
		if s.OverlapsRange(*from, *to) {
			out = append(out, s)
		}
	}
	return out
}
