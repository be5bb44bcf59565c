package partners

import "time"

// PartnerResponse is the public view of a partner account (no password hash).
type PartnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPartnerResponse(p *Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
	}
}
