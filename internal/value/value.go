// Package value implements the dynamic operations behind purefn's operator
// table: arithmetic, comparison, indexing, membership, attribute access and
// reflective calls over untyped values.
//
// Numbers follow the usual promotion rules: two integers stay integers, any
// float promotes the result to float64, and a result keeps its operands' type
// when both operands share it. True division always produces float64, while
// floor division and modulo round toward negative infinity.
package value

import (
	"errors"
	"reflect"
)

// Sentinel errors for dynamic operations.
var (
	// ErrUnsupportedOperand indicates an operation is not defined for the operand types.
	ErrUnsupportedOperand = errors.New("value: unsupported operand type")

	// ErrDivisionByZero indicates a division or modulo by zero.
	ErrDivisionByZero = errors.New("value: division by zero")

	// ErrIndexOutOfRange indicates a sequence index outside its bounds.
	ErrIndexOutOfRange = errors.New("value: index out of range")

	// ErrKeyNotFound indicates a missing mapping key.
	ErrKeyNotFound = errors.New("value: key not found")

	// ErrNoAttribute indicates a missing field, key or method.
	ErrNoAttribute = errors.New("value: no such attribute")

	// ErrNotIterable indicates a value that cannot be iterated.
	ErrNotIterable = errors.New("value: not iterable")

	// ErrNegativeShift indicates a shift by a negative count.
	ErrNegativeShift = errors.New("value: negative shift count")

	// ErrZeroStep indicates a slice with a zero step.
	ErrZeroStep = errors.New("value: slice step cannot be zero")

	// ErrOverflow indicates an integer operand or result outside the supported range.
	ErrOverflow = errors.New("value: integer overflow")

	// ErrArgCount indicates a call with the wrong number of arguments.
	ErrArgCount = errors.New("value: wrong number of arguments")

	// ErrArgType indicates an argument that cannot be converted to the parameter type.
	ErrArgType = errors.New("value: argument type mismatch")

	// ErrUnexpectedKeyword indicates keyword arguments passed to a function that takes none.
	ErrUnexpectedKeyword = errors.New("value: unexpected keyword arguments")
)

// Kwargs holds keyword arguments.
type Kwargs map[string]any

// Tuple is an ordered, fixed collection of heterogeneous values.
type Tuple []any

// Set is an unordered collection of comparable values.
type Set map[any]struct{}

// NewSet builds a Set from items. Uncomparable items are left out.
func NewSet(items ...any) Set {
	s := make(Set, len(items))
	for _, it := range items {
		if it != nil && !reflect.ValueOf(it).Comparable() {
			continue
		}
		s[it] = struct{}{}
	}
	return s
}

// Has reports whether item is a member of s. Uncomparable items are never members.
func (s Set) Has(item any) bool {
	if item != nil && !reflect.ValueOf(item).Comparable() {
		return false
	}
	_, ok := s[item]
	return ok
}

// IsNil reports whether v is nil or a typed nil pointer, map, slice, func,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Truthy reports the truth value of v: nil, false, zero numbers and empty
// strings or containers are false.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Array:
		return rv.Len() > 0
	case reflect.Slice, reflect.Map, reflect.Chan:
		return !rv.IsNil() && rv.Len() > 0
	case reflect.Pointer, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Not returns the negated truth value of v.
func Not(v any) (any, error) {
	return !Truthy(v), nil
}
