package errors

// HTTPError carries an HTTP status code alongside a user-facing message.
// Delivery layers translate domain errors into HTTPError via mapError.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}
