package value

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

type numClass int

const (
	notNumber numClass = iota
	integer
	floating
)

func classify(v any) (reflect.Value, numClass) {
	if v == nil {
		return reflect.Value{}, notNumber
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv, integer
	case reflect.Float32, reflect.Float64:
		return rv, floating
	}
	return rv, notNumber
}

// fitsInt reports whether an integer value is representable as int64.
func fitsInt(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() <= math.MaxInt64
	}
	return true
}

// toInt returns an integer value as int64. Callers check fitsInt first.
func toInt(rv reflect.Value) int64 {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint())
	}
	return rv.Int()
}

func toFloat(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	}
	return float64(rv.Int())
}

// numbers classifies a pair of operands. ok is false unless both are numbers.
func numbers(a, b any) (x, y reflect.Value, class numClass, ok bool) {
	x, ca := classify(a)
	y, cb := classify(b)
	if ca == notNumber || cb == notNumber {
		return x, y, notNumber, false
	}
	if ca == floating || cb == floating {
		return x, y, floating, true
	}
	return x, y, integer, true
}

func intResult(x, y reflect.Value, r int64) any {
	if x.Type() == y.Type() {
		return reflect.ValueOf(r).Convert(x.Type()).Interface()
	}
	return r
}

func floatResult(x, y reflect.Value, r float64) any {
	if x.Type() == y.Type() && x.Kind() == reflect.Float32 {
		return reflect.ValueOf(r).Convert(x.Type()).Interface()
	}
	return r
}

func unsupported(op string, a, b any) error {
	return fmt.Errorf("%w for %s: %T and %T", ErrUnsupportedOperand, op, a, b)
}

// checkInts fails with ErrOverflow when an unsigned operand exceeds int64.
func checkInts(op string, operands ...reflect.Value) error {
	for _, rv := range operands {
		if !fitsInt(rv) {
			return fmt.Errorf("%w for %s: %v", ErrOverflow, op, rv.Interface())
		}
	}
	return nil
}

func arith(op string, a, b any, fi func(x, y int64) (int64, error), ff func(x, y float64) (float64, error)) (any, error) {
	x, y, class, ok := numbers(a, b)
	if !ok {
		return nil, unsupported(op, a, b)
	}
	if class == integer && fi != nil {
		if err := checkInts(op, x, y); err != nil {
			return nil, err
		}
		r, err := fi(toInt(x), toInt(y))
		if err != nil {
			return nil, err
		}
		return intResult(x, y, r), nil
	}
	r, err := ff(toFloat(x), toFloat(y))
	if err != nil {
		return nil, err
	}
	return floatResult(x, y, r), nil
}

// Add returns a + b: numeric addition or concatenation of strings and slices.
func Add(a, b any) (any, error) {
	if r, ok := concat(a, b); ok {
		return r, nil
	}
	return arith("+", a, b,
		func(x, y int64) (int64, error) { return x + y, nil },
		func(x, y float64) (float64, error) { return x + y, nil })
}

// Sub returns a - b.
func Sub(a, b any) (any, error) {
	return arith("-", a, b,
		func(x, y int64) (int64, error) { return x - y, nil },
		func(x, y float64) (float64, error) { return x - y, nil })
}

// Mul returns a * b, or the repetition of a string or slice by an integer.
func Mul(a, b any) (any, error) {
	if r, ok, err := repeat(a, b); ok {
		return r, err
	}
	if r, ok, err := repeat(b, a); ok {
		return r, err
	}
	return arith("*", a, b,
		func(x, y int64) (int64, error) { return x * y, nil },
		func(x, y float64) (float64, error) { return x * y, nil })
}

// TrueDiv returns a / b as a float.
func TrueDiv(a, b any) (any, error) {
	x, y, _, ok := numbers(a, b)
	if !ok {
		return nil, unsupported("/", a, b)
	}
	d := toFloat(y)
	if d == 0 {
		return nil, ErrDivisionByZero
	}
	return floatResult(x, y, toFloat(x)/d), nil
}

// FloorDiv returns a / b rounded toward negative infinity.
func FloorDiv(a, b any) (any, error) {
	return arith("//", a, b,
		func(x, y int64) (int64, error) {
			if y == 0 {
				return 0, ErrDivisionByZero
			}
			q := x / y
			if (x%y != 0) && ((x < 0) != (y < 0)) {
				q--
			}
			return q, nil
		},
		func(x, y float64) (float64, error) {
			if y == 0 {
				return 0, ErrDivisionByZero
			}
			return math.Floor(x / y), nil
		})
}

// Mod returns a modulo b; the result takes the sign of b.
func Mod(a, b any) (any, error) {
	return arith("%", a, b,
		func(x, y int64) (int64, error) {
			if y == 0 {
				return 0, ErrDivisionByZero
			}
			m := x % y
			if m != 0 && ((m < 0) != (y < 0)) {
				m += y
			}
			return m, nil
		},
		func(x, y float64) (float64, error) {
			if y == 0 {
				return 0, ErrDivisionByZero
			}
			m := math.Mod(x, y)
			if m != 0 && ((m < 0) != (y < 0)) {
				m += y
			}
			return m, nil
		})
}

// Pow returns a raised to b. Integers raised to a negative power yield a float.
func Pow(a, b any) (any, error) {
	x, y, class, ok := numbers(a, b)
	if !ok {
		return nil, unsupported("**", a, b)
	}
	if class == integer {
		if err := checkInts("**", x, y); err != nil {
			return nil, err
		}
	}
	if class == integer && toInt(y) >= 0 {
		base, exp, r := toInt(x), toInt(y), int64(1)
		for exp > 0 {
			if exp&1 == 1 {
				r *= base
			}
			base *= base
			exp >>= 1
		}
		return intResult(x, y, r), nil
	}
	if toFloat(x) == 0 && toFloat(y) < 0 {
		return nil, ErrDivisionByZero
	}
	return floatResult(x, y, math.Pow(toFloat(x), toFloat(y))), nil
}

// Neg returns -a.
func Neg(a any) (any, error) {
	x, class := classify(a)
	switch class {
	case integer:
		if err := checkInts("unary -", x); err != nil {
			return nil, err
		}
		return reflect.ValueOf(-toInt(x)).Convert(x.Type()).Interface(), nil
	case floating:
		return reflect.ValueOf(-x.Float()).Convert(x.Type()).Interface(), nil
	}
	return nil, fmt.Errorf("%w for unary -: %T", ErrUnsupportedOperand, a)
}

// Invert returns the bitwise complement of an integer.
func Invert(a any) (any, error) {
	x, class := classify(a)
	if class != integer {
		return nil, fmt.Errorf("%w for unary ~: %T", ErrUnsupportedOperand, a)
	}
	if err := checkInts("unary ~", x); err != nil {
		return nil, err
	}
	return reflect.ValueOf(^toInt(x)).Convert(x.Type()).Interface(), nil
}

func bitwise(op string, a, b any, fi func(x, y int64) int64, fb func(x, y bool) bool) (any, error) {
	if x, ok := a.(bool); ok {
		if y, ok := b.(bool); ok && fb != nil {
			return fb(x, y), nil
		}
	}
	x, y, class, ok := numbers(a, b)
	if !ok || class != integer {
		return nil, unsupported(op, a, b)
	}
	if err := checkInts(op, x, y); err != nil {
		return nil, err
	}
	return intResult(x, y, fi(toInt(x), toInt(y))), nil
}

// And returns the bitwise (or boolean) conjunction of a and b.
func And(a, b any) (any, error) {
	return bitwise("&", a, b,
		func(x, y int64) int64 { return x & y },
		func(x, y bool) bool { return x && y })
}

// Or returns the bitwise (or boolean) disjunction of a and b.
func Or(a, b any) (any, error) {
	return bitwise("|", a, b,
		func(x, y int64) int64 { return x | y },
		func(x, y bool) bool { return x || y })
}

// Xor returns the bitwise (or boolean) exclusive or of a and b.
func Xor(a, b any) (any, error) {
	return bitwise("^", a, b,
		func(x, y int64) int64 { return x ^ y },
		func(x, y bool) bool { return x != y })
}

func shift(op string, a, b any, f func(x int64, n uint64) int64) (any, error) {
	x, y, class, ok := numbers(a, b)
	if !ok || class != integer {
		return nil, unsupported(op, a, b)
	}
	if err := checkInts(op, x, y); err != nil {
		return nil, err
	}
	n := toInt(y)
	if n < 0 {
		return nil, ErrNegativeShift
	}
	// the shifted value keeps the left operand's type
	return reflect.ValueOf(f(toInt(x), uint64(n))).Convert(x.Type()).Interface(), nil
}

// Lshift returns a << b.
func Lshift(a, b any) (any, error) {
	return shift("<<", a, b, func(x int64, n uint64) int64 { return x << n })
}

// Rshift returns a >> b.
func Rshift(a, b any) (any, error) {
	return shift(">>", a, b, func(x int64, n uint64) int64 { return x >> n })
}

// Concat joins two strings or two slices of the same type.
func Concat(a, b any) (any, error) {
	if r, ok := concat(a, b); ok {
		return r, nil
	}
	return nil, unsupported("concat", a, b)
}

func concat(a, b any) (any, bool) {
	if a == nil || b == nil {
		return nil, false
	}
	x, y := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case x.Kind() == reflect.String && y.Kind() == reflect.String:
		r := reflect.New(x.Type()).Elem()
		r.SetString(x.String() + y.String())
		return r.Interface(), true
	case x.Kind() == reflect.Slice && x.Type() == y.Type():
		r := reflect.MakeSlice(x.Type(), 0, x.Len()+y.Len())
		r = reflect.AppendSlice(r, x)
		r = reflect.AppendSlice(r, y)
		return r.Interface(), true
	}
	return nil, false
}

// maxRepeatLen bounds the length of a repeated string or slice.
const maxRepeatLen = 1 << 30

// repeat handles seq * n. ok is false when the operands are not a sequence and an integer.
func repeat(seq, n any) (any, bool, error) {
	if seq == nil {
		return nil, false, nil
	}
	s := reflect.ValueOf(seq)
	c, class := classify(n)
	if class != integer || (s.Kind() != reflect.String && s.Kind() != reflect.Slice) {
		return nil, false, nil
	}
	var count int64
	switch {
	case s.Len() == 0:
	case !fitsInt(c) || toInt(c) > maxRepeatLen/int64(s.Len()):
		return nil, true, fmt.Errorf("%w: %v repetitions of length %d", ErrOverflow, c.Interface(), s.Len())
	default:
		count = max(toInt(c), 0)
	}
	if s.Kind() == reflect.String {
		r := reflect.New(s.Type()).Elem()
		r.SetString(strings.Repeat(s.String(), int(count)))
		return r.Interface(), true, nil
	}
	r := reflect.MakeSlice(s.Type(), 0, s.Len()*int(count))
	for range count {
		r = reflect.AppendSlice(r, s)
	}
	return r.Interface(), true, nil
}
