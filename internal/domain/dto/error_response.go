package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx API response.
//
// Message is meant for the user; ErrorDetails carries the underlying error
// text when there is one.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to load offers"`
	ErrorDetails string    `json:"error,omitempty" example:"context deadline exceeded"`
	Timestamp    time.Time `json:"timestamp" example:"2024-06-30T12:00:00Z"`
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
