package wizard

import (
	"errors"
	"fmt"
)

// FlowError is a booking-flow rule violation with a stable code the HTTP
// layer can map to a status.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Flow error codes.
const (
	CodeSessionNotFound = "sessionNotFound"
	CodeStepMismatch    = "stepMismatch"
	CodeNoProvider      = "noProvider"
	CodeDateDisabled    = "dateDisabled"
	CodeSlotUnavailable = "slotUnavailable"
	CodeSlotTaken       = "slotTaken"
	CodeIncompleteDraft = "incompleteDraft"
)

func newFlowError(code, msg string) error {
	return &FlowError{Code: code, Message: msg}
}

// HasCode reports whether err is a FlowError with the given code.
func HasCode(err error, code string) bool {
	var fe *FlowError
	return errors.As(err, &fe) && fe.Code == code
}

// ValidationError carries field-level error text keyed by field name, so the
// client can highlight failing fields instead of showing one aggregate error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
