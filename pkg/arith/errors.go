package arith

import (
	"errors"
	"fmt"
)

// ErrorKind represents the standardized failure categories of the arithmetic primitives
type ErrorKind string

const (
	KindDivisionByZero  ErrorKind = "DIVISION_BY_ZERO"
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
)

// Sentinel errors matched by errors.Is against any *Error of the same kind
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is returned by every failing operation in this package.
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindDivisionByZero:
		return target == ErrDivisionByZero
	case KindInvalidArgument:
		return target == ErrInvalidArgument
	}
	return false
}

// NewError creates a new arithmetic error
func NewError(kind ErrorKind, op, message string) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WithDetail adds a detail field to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.Details[key] = value
	return e
}

func divisionByZero(op string, x uint16) *Error {
	return NewError(KindDivisionByZero, op, "divisor must be non-zero").WithDetail("x", x)
}

// KindOf returns the ErrorKind carried by err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ToOperand narrows v to an operand, failing with KindInvalidArgument when v
// falls outside [0, MaxOperand].
func ToOperand(v int64) (uint16, error) {
	if v < 0 || v > MaxOperand {
		return 0, NewError(KindInvalidArgument, "operand",
			fmt.Sprintf("%d is outside the 16-bit unsigned range [0, %d]", v, MaxOperand)).
			WithDetail("value", v)
	}
	return uint16(v), nil
}
