package bookings

import (
	"errors"
	"strings"
	"testing"
	"time"

	"courtside/internal/venues"
)

func TestExportCSVEmptyList(t *testing.T) {
	_, _, err := ExportCSV(nil, time.Now())
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("ExportCSV(nil) error = %v, want ErrNothingToExport", err)
	}

	_, _, err = ExportCSV([]Booking{}, time.Now())
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("ExportCSV(empty) error = %v, want ErrNothingToExport", err)
	}
}

func TestExportCSVContent(t *testing.T) {
	list := []Booking{
		{
			Venue:         &venues.Venue{Name: "Elite Sports Arena"},
			Date:          "2025-02-10",
			BookingStatus: "PAID",
			Amount:        1500,
			Slots: []BookingSlot{
				{StartTime: "06:00", EndTime: "07:00", Price: 750},
				{StartTime: "07:00", EndTime: "08:00", Price: 750},
			},
		},
	}

	now := time.Date(2025, 2, 20, 10, 30, 0, 0, time.UTC)
	data, filename, err := ExportCSV(list, now)
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	if filename != "bookings-2025-02-20.csv" {
		t.Errorf("filename = %q, want bookings-2025-02-20.csv", filename)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("export has %d lines, want 2", len(lines))
	}

	wantHeader := `"Venue Name","Date","Status","Slots","Total Amount"`
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	wantRow := `"Elite Sports Arena","2025-02-10","Confirmed","06:00-07:00, 07:00-08:00","1500"`
	if lines[1] != wantRow {
		t.Errorf("row = %q, want %q", lines[1], wantRow)
	}
}

func TestExportCSVQuoting(t *testing.T) {
	list := []Booking{
		{
			Venue:  &venues.Venue{Name: `The "Arena", Downtown`},
			Date:   "2025-03-01",
			Amount: 99.5,
		},
	}

	data, _, err := ExportCSV(list, time.Now())
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	if !strings.Contains(string(data), `"The ""Arena"", Downtown"`) {
		t.Errorf("embedded quotes not doubled: %s", data)
	}
	if !strings.Contains(string(data), `"99.5"`) {
		t.Errorf("amount not formatted: %s", data)
	}
}
