// Package errorcode holds the errors shared by the bchgen packages and
// the process exit codes the bchgen command maps them to.
package errorcode

import (
	"errors"
	iofs "io/fs"
)

var (
	// ErrInvalidParameter is returned when a field exponent, class
	// selector, exponent or distance is out of its declared range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNoDataForField is returned when the primitive polynomial
	// table has no entry for the requested field.
	ErrNoDataForField = errors.New("no data for field")
	// ErrDegreeMismatch is returned when a primitive polynomial's
	// degree disagrees with the declared field exponent.
	ErrDegreeMismatch = errors.New("degree mismatch")
	// ErrDivisionByZero is returned when dividing by the zero
	// polynomial.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotPrimitive is returned when a modulus fails to generate
	// the whole multiplicative group of its field.
	ErrNotPrimitive = errors.New("polynomial is not primitive")
	// ErrMalformedTable is returned when a primitive polynomial
	// table can't be parsed.
	ErrMalformedTable = errors.New("malformed primitive polynomial table")
)

type Errorcode int

const (
	Success          Errorcode = 0
	InvalidParameter Errorcode = 1
	NoDataForField   Errorcode = 2
	DegreeMismatch   Errorcode = 3
	DivisionByZero   Errorcode = 4
	NotPrimitive     Errorcode = 5
	FileIOError      Errorcode = 6
	LogicError       Errorcode = 7
	MalformedTable   Errorcode = 8
)

// FromError returns the exit code for err. Errors that don't wrap one
// of the sentinels above map to LogicError, and nil maps to Success.
func FromError(err error) Errorcode {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrInvalidParameter):
		return InvalidParameter
	case errors.Is(err, ErrNoDataForField):
		return NoDataForField
	case errors.Is(err, ErrDegreeMismatch):
		return DegreeMismatch
	case errors.Is(err, ErrDivisionByZero):
		return DivisionByZero
	case errors.Is(err, ErrNotPrimitive):
		return NotPrimitive
	case errors.Is(err, ErrMalformedTable):
		return MalformedTable
	}
	var pathErr *iofs.PathError
	if errors.As(err, &pathErr) {
		return FileIOError
	}
	return LogicError
}
