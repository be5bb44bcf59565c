package bookings

// CreateBookingRequest reserves one or more slots on a venue. Mobile is
// the customer's 10 digit number; the user row is created lazily.
type CreateBookingRequest struct {
	VenueID              string   `json:"venueId" binding:"required,uuid"`
	Date                 string   `json:"date" binding:"required,datetime=2006-01-02"`
	SlotIDs              []string `json:"slotIds" binding:"required,min=1,dive,uuid"`
	Mobile               string   `json:"mobile" binding:"required,len=10,numeric"`
	CustomerName         string   `json:"customerName" binding:"max=255"`
	PaymentScreenshotURL string   `json:"paymentScreenshotUrl" binding:"omitempty,url"`
}

// ViewQuery carries the dashboard filter/sort parameters. All fields are
// optional; zero values disable the corresponding filter.
type ViewQuery struct {
	Date       string `form:"date"`
	VenueName  string `form:"venue"`
	Status     string `form:"status"`
	SearchText string `form:"search"`
	SortBy     string `form:"sortBy"`
}

func (q ViewQuery) toOptions() ViewOptions {
	return ViewOptions{
		Date:       q.Date,
		VenueName:  q.VenueName,
		Status:     q.Status,
		SearchText: q.SearchText,
		SortBy:     q.SortBy,
	}
}
