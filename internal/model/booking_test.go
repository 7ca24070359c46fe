package model

import (
	"errors"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		raw  string
		want Action
		ok   bool
	}{
		{"approve", ActionApprove, true},
		{"deny", ActionDeny, true},
		{"APPROVE", ActionApprove, true},
		{"  Deny ", ActionDeny, true},
		{"", "", false},
		{"maybe", "", false},
		{"approved", "", false},
	}
	for _, c := range cases {
		got, err := ParseAction(c.raw)
		if c.ok {
			if err != nil {
				t.Fatalf("ParseAction(%q): unexpected error %v", c.raw, err)
			}
			if got != c.want {
				t.Fatalf("ParseAction(%q) = %q, want %q", c.raw, got, c.want)
			}
			continue
		}
		if !errors.Is(err, ErrUnknownAction) {
			t.Fatalf("ParseAction(%q): want ErrUnknownAction, got %v", c.raw, err)
		}
	}
}

func TestActionResolve(t *testing.T) {
	if got := ActionApprove.Resolve(); got != StatusBooked {
		t.Fatalf("approve resolves to %q, want %q", got, StatusBooked)
	}
	if got := ActionDeny.Resolve(); got != StatusRejected {
		t.Fatalf("deny resolves to %q, want %q", got, StatusRejected)
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusRequested.Terminal() {
		t.Fatal("Requested must not be terminal")
	}
	if !StatusBooked.Terminal() {
		t.Fatal("Booked must be terminal")
	}
	if !StatusRejected.Terminal() {
		t.Fatal("Rejected must be terminal")
	}
}

func TestResolveTransitionByOwner(t *testing.T) {
	sp := Space{ID: 7, UserID: 1}
	b := Booking{ID: 3, UserID: 2, SpaceID: 7, Status: StatusRequested}

	got, err := ResolveTransition(b, sp, 1, ActionApprove)
	if err != nil {
		t.Fatalf("owner approve: unexpected error %v", err)
	}
	if got != StatusBooked {
		t.Fatalf("owner approve = %q, want %q", got, StatusBooked)
	}

	got, err = ResolveTransition(b, sp, 1, ActionDeny)
	if err != nil {
		t.Fatalf("owner deny: unexpected error %v", err)
	}
	if got != StatusRejected {
		t.Fatalf("owner deny = %q, want %q", got, StatusRejected)
	}
}

func TestResolveTransitionUnauthorized(t *testing.T) {
	sp := Space{ID: 7, UserID: 1}
	// Neither the requester nor a third party may resolve; the status
	// must come back unchanged for every action.
	for _, actor := range []uint64{2, 99} {
		for _, a := range []Action{ActionApprove, ActionDeny} {
			b := Booking{ID: 3, UserID: 2, SpaceID: 7, Status: StatusRequested}
			got, err := ResolveTransition(b, sp, actor, a)
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("actor %d action %q: want ErrUnauthorized, got %v", actor, a, err)
			}
			if got != StatusRequested {
				t.Fatalf("actor %d action %q: status changed to %q", actor, a, got)
			}
		}
	}
}

func TestResolveTransitionTerminalGuard(t *testing.T) {
	sp := Space{ID: 7, UserID: 1}
	for _, st := range []Status{StatusBooked, StatusRejected} {
		b := Booking{ID: 3, UserID: 2, SpaceID: 7, Status: st}
		got, err := ResolveTransition(b, sp, 1, ActionApprove)
		if !errors.Is(err, ErrAlreadyResolved) {
			t.Fatalf("status %q: want ErrAlreadyResolved, got %v", st, err)
		}
		if got != st {
			t.Fatalf("status %q: changed to %q", st, got)
		}
	}
}

// The authorization check runs before the terminal guard: a non-owner
// resolving an already-resolved booking gets 403 semantics, not 409.
func TestResolveTransitionAuthBeforeTerminal(t *testing.T) {
	sp := Space{ID: 7, UserID: 1}
	b := Booking{ID: 3, UserID: 2, SpaceID: 7, Status: StatusBooked}
	_, err := ResolveTransition(b, sp, 2, ActionDeny)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

// Full lifecycle walk: a request on another user's space is created as
// Requested, only the owner resolves it, and the outcome is terminal.
func TestBookingLifecycle(t *testing.T) {
	owner, requester := uint64(1), uint64(2)
	sp := Space{ID: 10, UserID: owner, AvailableFrom: date("2024-06-01"), AvailableTo: date("2024-06-10")}
	b := Booking{ID: 1, UserID: requester, SpaceID: sp.ID, BookingDate: date("2024-06-03"), Status: StatusRequested}

	if _, err := ResolveTransition(b, sp, requester, ActionApprove); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("requester self-approve: want ErrUnauthorized, got %v", err)
	}

	st, err := ResolveTransition(b, sp, owner, ActionApprove)
	if err != nil {
		t.Fatalf("owner approve: %v", err)
	}
	b.Status = st
	if b.Status != StatusBooked {
		t.Fatalf("status = %q, want %q", b.Status, StatusBooked)
	}

	if _, err := ResolveTransition(b, sp, owner, ActionDeny); !errors.Is(err, ErrAlreadyResolved) {
		t.Fatalf("second resolve: want ErrAlreadyResolved, got %v", err)
	}
}
