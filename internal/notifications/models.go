package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeNewBooking NotificationType = "NEW_BOOKING"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusQueued  NotificationStatus = "QUEUED"
	NotificationStatusSending NotificationStatus = "SENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// PushPayload is the JSON the service worker receives in its push event.
// Field names are part of the wire contract with the dashboard frontend.
type PushPayload struct {
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Icon      string  `json:"icon"`
	Badge     string  `json:"badge"`
	Type      string  `json:"type"`
	BookingID string  `json:"bookingId"`
	VenueName string  `json:"venueName"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
}

// PushNotification is the unit that travels through Kafka: the payload
// destined for the partner's browsers plus delivery bookkeeping.
type PushNotification struct {
	ID        uuid.UUID        `json:"id"`
	Type      NotificationType `json:"type"`
	PartnerID uuid.UUID        `json:"partner_id"`
	Payload   PushPayload      `json:"payload"`

	// Timing
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Status tracking
	Status     NotificationStatus `json:"status"`
	RetryCount int                `json:"retry_count"`
	MaxRetries int                `json:"max_retries"`
	LastError  *string            `json:"last_error,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	SentAt     *time.Time         `json:"sent_at,omitempty"`
}

type NotificationBuilder struct {
	notification *PushNotification
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		notification: &PushNotification{
			ID:         uuid.New(),
			Status:     NotificationStatusPending,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
			MaxRetries: 3,
		},
	}
}

func (nb *NotificationBuilder) WithType(notType NotificationType) *NotificationBuilder {
	nb.notification.Type = notType
	nb.notification.Payload.Type = string(notType)
	return nb
}

func (nb *NotificationBuilder) WithPartner(partnerID uuid.UUID) *NotificationBuilder {
	nb.notification.PartnerID = partnerID
	return nb
}

func (nb *NotificationBuilder) WithContent(title, body string) *NotificationBuilder {
	nb.notification.Payload.Title = title
	nb.notification.Payload.Body = body
	return nb
}

func (nb *NotificationBuilder) WithIcons(icon, badge string) *NotificationBuilder {
	nb.notification.Payload.Icon = icon
	nb.notification.Payload.Badge = badge
	return nb
}

func (nb *NotificationBuilder) WithBookingContext(bookingID, venueName, date string, amount float64) *NotificationBuilder {
	nb.notification.Payload.BookingID = bookingID
	nb.notification.Payload.VenueName = venueName
	nb.notification.Payload.Date = date
	nb.notification.Payload.Amount = amount
	return nb
}

func (nb *NotificationBuilder) WithExpiration(expiresAt time.Time) *NotificationBuilder {
	nb.notification.ExpiresAt = &expiresAt
	return nb
}

func (nb *NotificationBuilder) WithMaxRetries(maxRetries int) *NotificationBuilder {
	nb.notification.MaxRetries = maxRetries
	return nb
}

func (nb *NotificationBuilder) Build() *PushNotification {
	return nb.notification
}

// GetPartitionKey routes all of a partner's notifications to one
// partition so their browsers see them in order.
func (pn *PushNotification) GetPartitionKey() string {
	return pn.PartnerID.String()
}

func (pn *PushNotification) ToJSON() ([]byte, error) {
	return json.Marshal(pn)
}

func (pn *PushNotification) IsExpired() bool {
	return pn.ExpiresAt != nil && time.Now().After(*pn.ExpiresAt)
}

func (pn *PushNotification) MarkSent() {
	now := time.Now()
	pn.Status = NotificationStatusSent
	pn.SentAt = &now
	pn.UpdatedAt = now
}

func (pn *PushNotification) MarkFailed(err error) {
	now := time.Now()
	pn.Status = NotificationStatusFailed
	pn.UpdatedAt = now

	errorStr := err.Error()
	pn.LastError = &errorStr
}
