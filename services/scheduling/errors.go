package scheduling

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the scheduling engine. The transport layer maps
// these to HTTP statuses; the engine itself never retries.
const (
	CodeValidation        = "validationError"
	CodeUnauthorized      = "unauthorized"
	CodeNotAWorkingDay    = "notAWorkingDay"
	CodeSlotUnavailable   = "slotUnavailable"
	CodeSlotConflict      = "slotConflict"
	CodePastDate          = "pastDate"
	CodeInvalidTransition = "invalidTransition"
	CodeNotFound          = "notFound"
)

// Error is a classified engine failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...interface{}) error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the engine error code from err, or an empty string when err
// did not originate from the engine.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
