package value

import (
	"cmp"
	"reflect"
)

// Equal reports whether a and b are equal. Numbers compare by value across
// types; everything else compares deeply.
func Equal(a, b any) bool {
	if x, y, class, ok := numbers(a, b); ok {
		if class == integer {
			return compareInts(x, y) == 0
		}
		return toFloat(x) == toFloat(y)
	}
	return reflect.DeepEqual(a, b)
}

// Compare orders a and b. Numbers and strings are ordered; other operand
// combinations fail with ErrUnsupportedOperand.
func Compare(a, b any) (int, error) {
	if x, y, class, ok := numbers(a, b); ok {
		if class == integer {
			return compareInts(x, y), nil
		}
		return cmp.Compare(toFloat(x), toFloat(y)), nil
	}
	if a != nil && b != nil {
		x, y := reflect.ValueOf(a), reflect.ValueOf(b)
		if x.Kind() == reflect.String && y.Kind() == reflect.String {
			return cmp.Compare(x.String(), y.String()), nil
		}
	}
	return 0, unsupported("comparison", a, b)
}

// compareInts orders two integer values of any signedness.
func compareInts(x, y reflect.Value) int {
	xf, yf := fitsInt(x), fitsInt(y)
	switch {
	case !xf && !yf:
		return cmp.Compare(x.Uint(), y.Uint())
	case !xf:
		return 1
	case !yf:
		return -1
	}
	return cmp.Compare(toInt(x), toInt(y))
}

func ordered(test func(c int) bool) func(a, b any) (any, error) {
	return func(a, b any) (any, error) {
		c, err := Compare(a, b)
		if err != nil {
			return nil, err
		}
		return test(c), nil
	}
}

var (
	// Lt returns a < b.
	Lt = ordered(func(c int) bool { return c < 0 })
	// Le returns a <= b.
	Le = ordered(func(c int) bool { return c <= 0 })
	// Gt returns a > b.
	Gt = ordered(func(c int) bool { return c > 0 })
	// Ge returns a >= b.
	Ge = ordered(func(c int) bool { return c >= 0 })
)

// Eq returns a == b.
func Eq(a, b any) (any, error) {
	return Equal(a, b), nil
}

// Ne returns a != b.
func Ne(a, b any) (any, error) {
	return !Equal(a, b), nil
}
