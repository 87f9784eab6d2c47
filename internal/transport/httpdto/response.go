package httpdto

// ErrorResponse is the failure body on every endpoint:
// {"error": "Unauthorized", "message": "Invalid credentials"}
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewErrorResponse(errText, message string) ErrorResponse {
	return ErrorResponse{
		Error:   errText,
		Message: message,
	}
}

// MessageResponse is the body of operations that confirm with a message only.
type MessageResponse struct {
	Message string `json:"message"`
}
