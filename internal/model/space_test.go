package model

import "testing"

func TestOverlapsRange(t *testing.T) {
	s := Space{AvailableFrom: date("2024-06-01"), AvailableTo: date("2024-06-10")}

	cases := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"inside window", "2024-06-03", "2024-06-05", true},
		{"covers window", "2024-05-01", "2024-07-01", true},
		{"touches start", "2024-05-20", "2024-06-01", true},
		{"touches end", "2024-06-10", "2024-06-15", true},
		{"single day inside", "2024-06-05", "2024-06-05", true},
		{"before window", "2024-05-01", "2024-05-31", false},
		{"after window", "2024-06-11", "2024-06-20", false},
	}
	for _, c := range cases {
		if got := s.OverlapsRange(date(c.from), date(c.to)); got != c.want {
			t.Fatalf("%s: OverlapsRange(%s, %s) = %v, want %v", c.name, c.from, c.to, got, c.want)
		}
	}
}

func TestFilterByRange(t *testing.T) {
	spaces := []Space{
		{ID: 1, AvailableFrom: date("2024-06-01"), AvailableTo: date("2024-06-10")},
		{ID: 2, AvailableFrom: date("2024-06-11"), AvailableTo: date("2024-06-20")},
		{ID: 3, AvailableFrom: date("2024-06-05"), AvailableTo: date("2024-06-15")},
	}

	from, to := date("2024-06-05"), date("2024-06-05")
	got := FilterByRange(spaces, &from, &to)
	if len(got) != 2 {
		t.Fatalf("got %d spaces, want 2", len(got))
	}
	// Input order is preserved.
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("got ids %d,%d, want 1,3", got[0].ID, got[1].ID)
	}
}

func TestFilterByRangeNilBound(t *testing.T) {
	spaces := []Space{
		{ID: 1, AvailableFrom: date("2024-06-01"), AvailableTo: date("2024-06-10")},
		{ID: 2, AvailableFrom: date("2024-06-11"), AvailableTo: date("2024-06-20")},
	}
	from := date("2024-06-05")

	for _, got := range [][]Space{
		FilterByRange(spaces, nil, nil),
		FilterByRange(spaces, &from, nil),
		FilterByRange(spaces, nil, &from),
	} {
		if len(got) != len(spaces) {
			t.Fatalf("missing bound must return the full set, got %d of %d", len(got), len(spaces))
		}
		for i := range got {
			if got[i].ID != spaces[i].ID {
				t.Fatalf("order changed at index %d: got %d, want %d", i, got[i].ID, spaces[i].ID)
			}
		}
	}
}

func TestFilterByRangeNoMatches(t *testing.T) {
	spaces := []Space{
		{ID: 1, AvailableFrom: date("2024-06-01"), AvailableTo: date("2024-06-10")},
	}
	from, to := date("2025-01-01"), date("2025-01-31")
	got := FilterByRange(spaces, &from, &to)
	if len(got) != 0 {
		t.Fatalf("got %d spaces, want 0", len(got))
	}
}
