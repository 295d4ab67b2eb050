package purefn

import (
	"errors"

	"github.com/Pure-Company/purefn/internal/value"
)

// Sentinel errors. Errors returned by a wrapped callable are passed through
// unchanged; these cover failures of the combinator layer and of the
// built-in operations.
var (
	// ErrInvalidSpec indicates a function specification of an unrecognized shape.
	ErrInvalidSpec = errors.New("purefn: invalid function specification")

	// ErrUnknownOperator indicates an operator symbol missing from the operator table.
	ErrUnknownOperator = errors.New("purefn: unknown operator")

	// ErrNotCallable indicates a juxtaposition element that is not callable.
	ErrNotCallable = errors.New("purefn: not callable")

	// ErrNotInvertible indicates an inverse was required of a function without one.
	ErrNotInvertible = errors.New("purefn: function has no inverse")

	// ErrEmptySequence indicates a reduction over no items and no initial value.
	ErrEmptySequence = errors.New("purefn: reduce of empty sequence with no initial value")

	// ErrArgCount indicates a call with the wrong number of arguments.
	ErrArgCount = value.ErrArgCount

	// ErrArgType indicates an argument that cannot be converted to the parameter type.
	ErrArgType = value.ErrArgType

	// ErrUnexpectedKeyword indicates keyword arguments passed to a callable that takes none.
	ErrUnexpectedKeyword = value.ErrUnexpectedKeyword

	// ErrUnsupportedOperand indicates an operation undefined for its operand types.
	ErrUnsupportedOperand = value.ErrUnsupportedOperand

	// ErrDivisionByZero indicates a division or modulo by zero.
	ErrDivisionByZero = value.ErrDivisionByZero

	// ErrIndexOutOfRange indicates a sequence index outside its bounds.
	ErrIndexOutOfRange = value.ErrIndexOutOfRange

	// ErrKeyNotFound indicates a missing mapping key.
	ErrKeyNotFound = value.ErrKeyNotFound

	// ErrNoAttribute indicates a missing field, key or method.
	ErrNoAttribute = value.ErrNoAttribute

	// ErrNotIterable indicates a value that cannot be iterated.
	ErrNotIterable = value.ErrNotIterable

	// ErrNegativeShift indicates a shift by a negative count.
	ErrNegativeShift = value.ErrNegativeShift

	// ErrZeroStep indicates a Slice with a zero step.
	ErrZeroStep = value.ErrZeroStep

	// ErrOverflow indicates an integer operand or result outside the supported range.
	ErrOverflow = value.ErrOverflow
)
