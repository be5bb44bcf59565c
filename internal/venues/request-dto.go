package venues

// CreateVenueRequest is submitted from the partner dashboard listing form.
// StartTime/EndTime use the timehhmm validation registered in helper.go.
type CreateVenueRequest struct {
	PartnerID   string   `json:"partnerId" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required,min=2,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Address     string   `json:"address" binding:"required,max=512"`
	City        string   `json:"city" binding:"required,max=100"`
	Sports      []string `json:"sports" binding:"required,min=1,dive,required"`
	Amenities   []string `json:"amenities" binding:"dive,required"`
	Images      []string `json:"images" binding:"dive,url"`
	StartTime   string   `json:"startTime" binding:"required,timehhmm"`
	EndTime     string   `json:"endTime" binding:"required,timehhmm"`
}

// UpdateVenueRequest allows partial edits; nil fields are left untouched.
type UpdateVenueRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	Address     *string   `json:"address" binding:"omitempty,max=512"`
	Sports      *[]string `json:"sports" binding:"omitempty,min=1,dive,required"`
	Amenities   *[]string `json:"amenities" binding:"omitempty,dive,required"`
	Images      *[]string `json:"images" binding:"omitempty,dive,url"`
	StartTime   *string   `json:"startTime" binding:"omitempty,timehhmm"`
	EndTime     *string   `json:"endTime" binding:"omitempty,timehhmm"`
}
