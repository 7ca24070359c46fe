package handler

import (
	"testing"

	"github.com/iliyamo/space-booking/internal/repository"
)

func TestExcludeBooking(t *testing.T) {
	list := []repository.EnrichedBooking{
		{ID: 1, SpaceID: 7},
		{ID: 2, SpaceID: 7},
		{ID: 3, SpaceID: 7},
	}
	got := excludeBooking(list, 2)
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("got ids %d,%d, want 1,3", got[0].ID, got[1].ID)
	}
}

func TestExcludeBookingNoMatch(t *testing.T) {
	list := []repository.EnrichedBooking{{ID: 1}, {ID: 2}}
	got := excludeBooking(list, 99)
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want 2", len(got))
	}
}

func TestExcludeBookingEmpty(t *testing.T) {
	if got := excludeBooking(nil, 1); len(got) != 0 {
		t.Fatalf("got %d bookings, want 0", len(got))
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-06-05")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if d.Format(dateLayout) != "2024-06-05" {
		t.Fatalf("round trip = %s", d.Format(dateLayout))
	}
	for _, bad := range []string{"", "06/05/2024", "2024-13-01", "yesterday"} {
		if _, err := parseDate(bad); err == nil {
			t.Fatalf("parseDate(%q): want error", bad)
		}
	}
}
