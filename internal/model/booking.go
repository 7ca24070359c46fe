package model

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates the booking request lifecycle.  A booking is created
// as Requested and moves to exactly one of the terminal states Booked or
// Rejected when the space owner resolves it.
type Status string

const (
	StatusRequested Status = "Requested"
	StatusBooked    Status = "Booked"
	StatusRejected  Status = "Rejected"
)

// Terminal reports whether the status is one of the end states of the
// lifecycle.  Terminal bookings are immutable.
func (s Status) Terminal() bool {
	return s == StatusBooked || s == StatusRejected
}

// Action is the exhaustive set of resolutions a space owner can apply to
// a pending booking request.  Anything outside this set is rejected at
// parse time rather than silently ignored.
type Action string

const (
	ActionApprove Action = "approve"
	ActionDeny    Action = "deny"
)

// ErrUnknownAction is returned by ParseAction for any value outside the
// approve/deny set.
var ErrUnknownAction = errors.New("unknown action")

// ErrUnauthorized is returned when the resolving actor does not own the
// booking's space.  The booking status must not change in this case.
var ErrUnauthorized = errors.New("only the space owner may resolve a booking request")

// ErrAlreadyResolved is returned when a resolve is attempted on a booking
// that already reached a terminal state.
var ErrAlreadyResolved = errors.New("booking request already resolved")

// ParseAction normalizes and validates a raw action string.
func ParseAction(raw string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ActionApprove):
		return ActionApprove, nil
	case string(ActionDeny):
		return ActionDeny, nil
	default:
		return "", ErrUnknownAction
	}
}

// Resolve maps an action to the terminal status it produces.
func (a Action) Resolve() Status {
	if a == ActionApprove {
		return StatusBooked
	}
	return StatusRejected
}

// Booking records a dated request by a user to occupy a space.  Only the
// status field ever changes after creation; bookings are never deleted.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – requesting user.
//  SpaceID     – space the request targets.
//  BookingDate – single calendar date requested.
//  Status      – lifecycle state (Requested, Booked, Rejected).
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – timestamp of last update.
type Booking struct {
	ID          uint64    // bookings.id
	UserID      uint64    // bookings.user_id
	SpaceID     uint64    // bookings.space_id
	BookingDate time.Time // bookings.booking_date (DATE)
	Status      Status    // bookings.status
	CreatedAt   time.Time // bookings.created_at
	UpdatedAt   time.Time // bookings.updated_at
}

// ResolveTransition applies the lifecycle rules for resolving booking b on
// space sp and returns the status the booking should move to.
//
// The authorization rule comes first: only the space owner may resolve,
// anyone else gets ErrUnauthorized and the current status back untouched.
// A booking already in a terminal state returns ErrAlreadyResolved.  Note
// that concurrent resolves remain last-write-wins at the storage layer;
// this guard narrows the race but does not close it.
func ResolveTransition(b Booking, sp Space, actorID uint64, a Action) (Status, error) {
	if actorID != sp.UserID {
		return b.Status, ErrUnauthorized
	}
	if b.Status.Terminal() {
		return b.Status, ErrAlreadyResolved
	}
	return a.Resolve(), nil
}
