package response

// StandardApiResponse matches the envelope the web client expects:
// {success: boolean, message?: string, data?: T}
type StandardApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"` // Human-readable message
	Data    interface{} `json:"data,omitempty"`    // Payload for success
	Errors  interface{} `json:"errors,omitempty"`  // Validation or error details
}
