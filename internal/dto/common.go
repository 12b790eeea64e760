package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is a minimal success envelope for deletes.
type MessageResponse struct {
	Message string `json:"message"`
}
