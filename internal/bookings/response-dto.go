package bookings

// BookingView decorates a booking with its derived display status so
// clients never have to re-implement the classification rules.
type BookingView struct {
	Booking
	DisplayStatus string `json:"displayStatus"`
}

// GroupCounts summarizes the confirmed/pending partition of a view.
type GroupCounts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

// BookingListResponse is the payload for partner and user booking lists.
type BookingListResponse struct {
	Bookings   []BookingView `json:"bookings"`
	VenueNames []string      `json:"venueNames"`
	Groups     GroupCounts   `json:"groups"`
}

func toBookingViews(list []Booking) []BookingView {
	views := make([]BookingView, len(list))
	for i, b := range list {
		views[i] = BookingView{
			Booking:       b,
			DisplayStatus: b.DisplayStatus(),
		}
	}
	return views
}

func toListResponse(view View) *BookingListResponse {
	confirmed, pending := Partition(view.Filtered)
	return &BookingListResponse{
		Bookings:   toBookingViews(view.Filtered),
		VenueNames: view.VenueNames,
		Groups: GroupCounts{
			Confirmed: len(confirmed),
			Pending:   len(pending),
		},
	}
}
