package slots

// SlotInput is one time window within a bulk create request.
type SlotInput struct {
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// CreateSlotsRequest adds slots to a venue for one calendar day.
type CreateSlotsRequest struct {
	VenueID string      `json:"venueId" binding:"required,uuid"`
	Date    string      `json:"date" binding:"required,datetime=2006-01-02"`
	Slots   []SlotInput `json:"slots" binding:"required,min=1,dive"`
}
