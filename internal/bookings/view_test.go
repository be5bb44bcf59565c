package bookings

import (
	"reflect"
	"testing"

	"courtside/internal/venues"
)

func mkBooking(venueName, date, bookingStatus string, amount float64) Booking {
	return Booking{
		Venue:         &venues.Venue{Name: venueName},
		Date:          date,
		BookingStatus: bookingStatus,
		Amount:        amount,
	}
}

func venueNames(list []Booking) []string {
	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.VenueName()
	}
	return names
}

func TestDeriveViewFilters(t *testing.T) {
	input := []Booking{
		mkBooking("Elite Sports Arena", "2025-02-10", "PAID", 1000),
		mkBooking("Champions Ground", "2025-02-15", "INITIATED", 500),
		mkBooking("Elite Sports Arena", "2025-02-15", "CANCELLED", 750),
	}

	tests := []struct {
		name string
		opts ViewOptions
		want []string
	}{
		{
			"no filters keeps everything, date-desc default",
			ViewOptions{},
			[]string{"Champions Ground", "Elite Sports Arena", "Elite Sports Arena"},
		},
		{
			"date filter is exact string match",
			ViewOptions{Date: "2025-02-10"},
			[]string{"Elite Sports Arena"},
		},
		{
			"venue filter exact match",
			ViewOptions{VenueName: "Champions Ground"},
			[]string{"Champions Ground"},
		},
		{
			"venue sentinel all disables the filter",
			ViewOptions{VenueName: "all"},
			[]string{"Champions Ground", "Elite Sports Arena", "Elite Sports Arena"},
		},
		{
			"status filter is case-insensitive on display status",
			ViewOptions{Status: "confirmed"},
			[]string{"Elite Sports Arena"},
		},
		{
			"search is a case-insensitive substring on venue name",
			ViewOptions{SearchText: "  elite "},
			[]string{"Elite Sports Arena", "Elite Sports Arena"},
		},
		{
			"filters are conjunctive",
			ViewOptions{Date: "2025-02-15", SearchText: "Elite"},
			[]string{"Elite Sports Arena"},
		},
		{
			"search with no match filters everything",
			ViewOptions{SearchText: "Olympic"},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := DeriveView(input, tt.opts)
			got := venueNames(view.Filtered)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filtered venues = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeriveViewStatusScenario(t *testing.T) {
	input := []Booking{
		mkBooking("A", "2025-02-10", "PAID", 1000),
		mkBooking("B", "2025-02-15", "INITIATED", 500),
	}

	view := DeriveView(input, ViewOptions{Status: "confirmed"})

	if len(view.Filtered) != 1 {
		t.Fatalf("filtered %d bookings, want 1", len(view.Filtered))
	}
	if view.Filtered[0].Amount != 1000 {
		t.Errorf("kept booking amount = %v, want 1000", view.Filtered[0].Amount)
	}
	if got := view.Filtered[0].DisplayStatus(); got != DisplayConfirmed {
		t.Errorf("kept booking display status = %q, want Confirmed", got)
	}
}

func TestDeriveViewFilterIdempotent(t *testing.T) {
	input := []Booking{
		mkBooking("Elite Sports Arena", "2025-02-10", "PAID", 1000),
		mkBooking("Champions Ground", "2025-02-15", "INITIATED", 500),
	}
	opts := ViewOptions{Status: "Confirmed", SortBy: SortAmountAsc}

	once := DeriveView(input, opts)
	twice := DeriveView(once.Filtered, opts)

	if !reflect.DeepEqual(venueNames(once.Filtered), venueNames(twice.Filtered)) {
		t.Errorf("filtering is not idempotent: %v vs %v",
			venueNames(once.Filtered), venueNames(twice.Filtered))
	}
}

func TestDeriveViewSorting(t *testing.T) {
	input := []Booking{
		mkBooking("A", "2025-02-12", "PAID", 300),
		mkBooking("B", "2025-02-10", "CANCELLED", 900),
		mkBooking("C", "2025-02-15", "INITIATED", 600),
	}

	tests := []struct {
		name   string
		sortBy string
		want   []string
	}{
		{"date desc", SortDateDesc, []string{"C", "A", "B"}},
		{"date asc", SortDateAsc, []string{"B", "A", "C"}},
		{"amount desc", SortAmountDesc, []string{"B", "C", "A"}},
		{"amount asc", SortAmountAsc, []string{"A", "C", "B"}},
		// Cancelled < Confirmed < Pending lexicographically
		{"status ascending", SortStatus, []string{"B", "A", "C"}},
		{"unrecognized key falls back to date desc", "bogus", []string{"C", "A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := DeriveView(input, ViewOptions{SortBy: tt.sortBy})
			got := venueNames(view.Filtered)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sort %q = %v, want %v", tt.sortBy, got, tt.want)
			}
		})
	}
}

func TestAmountSortReversalProperty(t *testing.T) {
	input := []Booking{
		mkBooking("A", "2025-02-12", "", 300),
		mkBooking("B", "2025-02-10", "", 900),
		mkBooking("C", "2025-02-15", "", 600),
		mkBooking("D", "2025-02-11", "", 150),
	}

	desc := DeriveView(input, ViewOptions{SortBy: SortAmountDesc}).Filtered
	asc := DeriveView(input, ViewOptions{SortBy: SortAmountAsc}).Filtered

	for i := range desc {
		if desc[i].Amount != asc[len(asc)-1-i].Amount {
			t.Fatalf("amount-desc reversed != amount-asc at %d: %v vs %v",
				i, desc[i].Amount, asc[len(asc)-1-i].Amount)
		}
	}
}

func TestMalformedDatesSortLast(t *testing.T) {
	input := []Booking{
		mkBooking("bad", "not-a-date", "", 0),
		mkBooking("old", "2025-01-01", "", 0),
		mkBooking("new", "2025-06-01", "", 0),
	}

	for _, sortBy := range []string{SortDateDesc, SortDateAsc} {
		view := DeriveView(input, ViewOptions{SortBy: sortBy})
		last := view.Filtered[len(view.Filtered)-1]
		if last.VenueName() != "bad" {
			t.Errorf("sort %q: malformed date not last, got %v", sortBy, venueNames(view.Filtered))
		}
	}
}

func TestVenueNameFacet(t *testing.T) {
	input := []Booking{
		mkBooking("Zen Court", "2025-02-10", "", 0),
		mkBooking("Elite Sports Arena", "2025-02-11", "", 0),
		mkBooking("Zen Court", "2025-02-12", "", 0),
		{Date: "2025-02-13"}, // no venue loaded
	}

	// The facet is computed over the unfiltered input even when a filter
	// removes most bookings.
	view := DeriveView(input, ViewOptions{Date: "2025-02-10"})

	want := []string{"Elite Sports Arena", "Zen Court"}
	if !reflect.DeepEqual(view.VenueNames, want) {
		t.Errorf("venueNames = %v, want %v", view.VenueNames, want)
	}
	if len(view.Filtered) != 1 {
		t.Errorf("filtered %d bookings, want 1", len(view.Filtered))
	}
}

func TestDeriveViewDoesNotMutateInput(t *testing.T) {
	input := []Booking{
		mkBooking("B", "2025-02-15", "", 2),
		mkBooking("A", "2025-02-10", "", 1),
	}

	DeriveView(input, ViewOptions{SortBy: SortAmountDesc})

	if input[0].VenueName() != "B" || input[1].VenueName() != "A" {
		t.Errorf("input order mutated: %v", venueNames(input))
	}
}
