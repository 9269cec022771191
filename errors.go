package capture

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFIG          = "config"            // invalid or missing configuration
	ECONVERSION      = "conversion"        // HTML to Markdown conversion failure
	EENCODING        = "encoding"          // character encoding failure during fetch/decode
	EFETCH           = "fetch"             // generic HTTP or file fetch failure
	EINTERNAL        = "internal"          // unexpected internal error
	EINVALID         = "invalid"           // validation failure
	ENOSELECTORMATCH = "no_selector_match" // no configured selector extracted content
	ENOTFOUND        = "not_found"         // entity does not exist
	ESIZELIMIT       = "size_limit"        // content exceeds the configured size ceiling
	ETIMEOUT         = "timeout"           // network request timed out
	EWRITE           = "write"             // filesystem write failure
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("capture error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available; EINTERNAL otherwise.
// Returns an empty string for a nil error.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available; a generic
// message otherwise. Returns an empty string for a nil error.
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

// ExitCode maps an error code to the CLI exit code reported to callers.
func ExitCode(code string) int {
	switch code {
	case ENOSELECTORMATCH:
		return 2
	case ETIMEOUT:
		return 3
	case ESIZELIMIT:
		return 4
	case EENCODING:
		return 5
	case EFETCH:
		return 6
	case ECONVERSION:
		return 7
	case EWRITE:
		return 8
	case ECONFIG, EINVALID:
		return 9
	default:
		return 1
	}
}
