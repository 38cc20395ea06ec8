package randoqa

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic codes describing the class of error, not
// the specific error itself. Codes map loosely onto user-facing behavior:
// EINVALID and ENOTFOUND messages are safe to show, EINTERNAL is not.
const (
	ECONFLICT    = "conflict"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EINTERNAL    = "internal"
	EUNAVAILABLE = "unavailable" // rate limits, upstream outages
)

// Error represents an application-specific error. Errors can be unwrapped
// to retrieve the code and message for end-user display.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message, safe to surface to users.
	Message string
}

// Error implements the error interface. Not meant for end users.
func (e *Error) Error() string {
	return fmt.Sprintf("randoqa error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
