package api

import "errors"

// ErrUnexpected covers transport-level failures where no response was
// obtained at all, as opposed to a rejection reported by the server.
var ErrUnexpected = errors.New("an unexpected error occurred")

// Error is the structured error body the API returns on non-2xx responses.
type Error struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (e *Error) Error() string { return e.Message }

// Message reduces any error from the client to the single human-readable
// string screens display.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnexpected) {
		return "An unexpected error occurred"
	}
	return err.Error()
}
