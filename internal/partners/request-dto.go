package partners

// SavePushSubscriptionRequest mirrors the JSON produced by the browser's
// PushSubscription.toJSON(), plus the registering user agent.
type SavePushSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
	UserAgent string `json:"userAgent"`
}

// RemovePushSubscriptionRequest identifies the subscription to drop.
type RemovePushSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
}
