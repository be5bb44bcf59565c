package bookings

import (
	"sort"
	"strings"
	"time"
)

// Sort keys accepted by DeriveView. Anything else falls back to date-desc.
const (
	SortDateDesc   = "date-desc"
	SortDateAsc    = "date-asc"
	SortAmountDesc = "amount-desc"
	SortAmountAsc  = "amount-asc"
	SortStatus     = "status"
)

// VenueFilterAll is the sentinel meaning "no venue filter".
const VenueFilterAll = "all"

// ViewOptions selects and orders bookings for a dashboard view. Zero
// values mean "no filter" for every field except SortBy, which defaults
// to date-desc.
type ViewOptions struct {
	Date       string // exact match on YYYY-MM-DD
	VenueName  string // exact match, "all" or empty disables
	Status     string // display status, case-insensitive, "all" or empty disables
	SearchText string // substring match on venue name, case-insensitive
	SortBy     string
}

// View is the derived dashboard state: the filtered, sorted bookings
// plus the venue-name facet computed over the unfiltered input.
type View struct {
	Filtered   []Booking `json:"filtered"`
	VenueNames []string  `json:"venueNames"`
}

// DeriveView applies filters conjunctively in a fixed order, then sorts.
// It is a pure function: the input slice is never mutated.
func DeriveView(list []Booking, opts ViewOptions) View {
	filtered := make([]Booking, 0, len(list))
	for _, b := range list {
		if opts.Date != "" && b.Date != opts.Date {
			continue
		}
		if opts.VenueName != "" && opts.VenueName != VenueFilterAll && b.VenueName() != opts.VenueName {
			continue
		}
		if opts.Status != "" && !strings.EqualFold(opts.Status, VenueFilterAll) &&
			!strings.EqualFold(b.DisplayStatus(), opts.Status) {
			continue
		}
		if search := strings.ToLower(strings.TrimSpace(opts.SearchText)); search != "" {
			if !strings.Contains(strings.ToLower(b.VenueName()), search) {
				continue
			}
		}
		filtered = append(filtered, b)
	}

	sortBookings(filtered, opts.SortBy)

	return View{
		Filtered:   filtered,
		VenueNames: VenueNameFacet(list),
	}
}

// VenueNameFacet returns the distinct non-empty venue names across the
// whole (unfiltered) list, alphabetically sorted.
func VenueNameFacet(list []Booking) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, b := range list {
		name := b.VenueName()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortBookings(list []Booking, sortBy string) {
	switch sortBy {
	case SortDateAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return dateLess(list[i].Date, list[j].Date, false)
		})
	case SortAmountDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Amount > list[j].Amount
		})
	case SortAmountAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Amount < list[j].Amount
		})
	case SortStatus:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].DisplayStatus() < list[j].DisplayStatus()
		})
	default: // SortDateDesc and unrecognized keys
		sort.SliceStable(list, func(i, j int) bool {
			return dateLess(list[i].Date, list[j].Date, true)
		})
	}
}

// dateLess orders parsed YYYY-MM-DD values. Malformed dates sort after
// every valid date in either direction, so bad records cluster at the
// end instead of poisoning the whole ordering.
func dateLess(a, b string, desc bool) bool {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)

	if errA != nil || errB != nil {
		return errA == nil && errB != nil
	}
	if desc {
		return ta.After(tb)
	}
	return ta.Before(tb)
}
