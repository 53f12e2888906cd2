package argparse

import (
	"errors"
)

// ErrorType represents failure categories reported by a Parser.
// These categories drive exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeAllocation        ErrorType = "allocation"
	ErrorTypeCapacityExceeded  ErrorType = "capacity_exceeded"
	ErrorTypeMalformedToken    ErrorType = "malformed_token"
	ErrorTypeUnknownOption     ErrorType = "unknown_option"
	ErrorTypeTooManyPositional ErrorType = "too_many_positional"
	ErrorTypeTooFewPositional  ErrorType = "too_few_positional"
	ErrorTypeMissingValue      ErrorType = "missing_value"
	ErrorTypeInvalidValue      ErrorType = "invalid_value"
	ErrorTypeInvalidDefinition ErrorType = "invalid_definition"
)

// Sentinels matched with errors.Is against any *Error of the same type.
var (
	ErrAllocation        = errors.New("allocation failure")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrMalformedToken    = errors.New("malformed token")
	ErrUnknownOption     = errors.New("unknown option")
	ErrTooManyPositional = errors.New("too many positional arguments")
	ErrTooFewPositional  = errors.New("too few positional arguments")
	ErrMissingValue      = errors.New("missing option value")
	ErrInvalidValue      = errors.New("invalid value")
	ErrInvalidDefinition = errors.New("invalid parameter definition")
)

var sentinels = map[ErrorType]error{
	ErrorTypeAllocation:        ErrAllocation,
	ErrorTypeCapacityExceeded:  ErrCapacityExceeded,
	ErrorTypeMalformedToken:    ErrMalformedToken,
	ErrorTypeUnknownOption:     ErrUnknownOption,
	ErrorTypeTooManyPositional: ErrTooManyPositional,
	ErrorTypeTooFewPositional:  ErrTooFewPositional,
	ErrorTypeMissingValue:      ErrMissingValue,
	ErrorTypeInvalidValue:      ErrInvalidValue,
	ErrorTypeInvalidDefinition: ErrInvalidDefinition,
}

// Error is returned by registration and parse operations. Message is the same
// text stored in the parser's error slot.
type Error struct {
	Type       ErrorType
	Message    string
	Token      string // offending command-line token, if any
	Param      string // parameter name, if any
	Suggestion string // closest registered option for unknown options
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the sentinel for e.Type.
func (e *Error) Unwrap() error {
	return sentinels[e.Type]
}
