package bookings

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrNothingToExport is returned when an export is requested over an
// empty (fully filtered out) booking list.
var ErrNothingToExport = errors.New("no bookings to export")

var csvHeader = []string{"Venue Name", "Date", "Status", "Slots", "Total Amount"}

// ExportCSV renders the bookings as a CSV document with every field
// quoted, and returns the content alongside the dated download filename
// (bookings-YYYY-MM-DD.csv).
func ExportCSV(list []Booking, now time.Time) ([]byte, string, error) {
	if len(list) == 0 {
		return nil, "", ErrNothingToExport
	}

	var buf bytes.Buffer
	writeCSVRow(&buf, csvHeader)

	for _, b := range list {
		writeCSVRow(&buf, []string{
			b.VenueName(),
			b.Date,
			b.DisplayStatus(),
			formatSlots(b.Slots),
			strconv.FormatFloat(b.Amount, 'f', -1, 64),
		})
	}

	filename := fmt.Sprintf("bookings-%s.csv", now.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// writeCSVRow quotes every field unconditionally, doubling embedded
// quotes. encoding/csv is not used because it only quotes when forced,
// and the dashboard's spreadsheet import expects fully quoted rows.
func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

func formatSlots(slots []BookingSlot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.StartTime + "-" + s.EndTime
	}
	return strings.Join(parts, ", ")
}
