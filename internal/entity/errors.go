package entity

import "errors"

var (
	// ErrPostNotFound means the id is well-formed but matches no post.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidID means the id is not a well-formed identifier.
	ErrInvalidID = errors.New("invalid post id")
)

// ValidationError is a client-caused input error whose message is safe to
// show to the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
