package encoding

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength   = errors.New("invalid length")
	ErrInvalidType     = errors.New("invalid type")
	ErrSequenceEnded   = errors.New("sequence has no more elements")
	ErrSequenceNotDone = errors.New("sequence was not fully encoded")
)

// ErrorCode classifies encoding errors
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeInvalidLength
	CodeInvalidType
	CodeCustom
)

// Error is a decode or encode failure reported by a value's own (de)serialization logic
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error

	// Expected and Actual are set for CodeInvalidLength.
	Expected int
	Actual   int
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil && e.Message == "" {
		return e.Cause.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel for e's code
func (e *Error) Is(target error) bool {
	switch e.Code {
	case CodeInvalidLength:
		return target == ErrInvalidLength
	case CodeInvalidType:
		return target == ErrInvalidType
	default:
		return false
	}
}

// InvalidLength reports a sequence that did not hold exactly expected elements.
func InvalidLength(actual, expected int) *Error {
	return &Error{
		Code:     CodeInvalidLength,
		Message:  fmt.Sprintf("invalid length %d, expected %d elements", actual, expected),
		Expected: expected,
		Actual:   actual,
	}
}

// InvalidType reports a value of the wrong shape, e.g. a mapping where a sequence was expected.
func InvalidType(got, expected string) *Error {
	return &Error{
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("invalid type: %s, expected %s", got, expected),
	}
}

// Custom wraps a validation failure raised by a value's decoding logic.
func Custom(err error) *Error {
	return &Error{
		Code:  CodeCustom,
		Cause: err,
	}
}

// GetErrorCode returns the code of the first *Error in err's chain
func GetErrorCode(err error) ErrorCode {
	var encErr *Error
	if errors.As(err, &encErr) {
		return encErr.Code
	}
	return CodeUnknown
}
