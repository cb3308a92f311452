package service

import "errors"

// ErrAINotConfigured is returned by the chat relay when no API credential is
// configured. The rest of the API keeps working without one.
var ErrAINotConfigured = errors.New("AI service not configured")

// AIServiceError wraps any failure of the external chat completion call.
// The underlying message is surfaced to the client; the call is not retried.
type AIServiceError struct {
	Err error
}

func (e *AIServiceError) Error() string {
	return "AI service error: " + e.Err.Error()
}

func (e *AIServiceError) Unwrap() error {
	return e.Err
}
