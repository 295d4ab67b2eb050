package value

import (
	"fmt"
	"math"
	"reflect"
)

var (
	kwargsType = reflect.TypeFor[Kwargs]()
	errorType  = reflect.TypeFor[error]()
)

// invoker matches purefn's Callable without importing it.
type invoker interface {
	Invoke(args []any, kw Kwargs) (any, error)
}

// Invoke calls the Go function fn with args, converting each argument to the
// parameter type. A trailing Kwargs parameter receives kw; other functions
// reject keyword arguments. Results are mapped as follows: none yields nil,
// one yields the value, a trailing error is returned as the error, and
// several values are returned as a Tuple.
func Invoke(fn reflect.Value, args []any, kw Kwargs) (any, error) {
	t := fn.Type()
	nIn := t.NumIn()
	takesKw := !t.IsVariadic() && nIn > 0 && t.In(nIn-1) == kwargsType
	if takesKw {
		nIn--
	} else if len(kw) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedKeyword, t)
	}

	fixed := nIn
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: %s wants at least %d, got %d", ErrArgCount, t, fixed, len(args))
		}
	} else if len(args) != nIn {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrArgCount, t, nIn, len(args))
	}

	in := make([]reflect.Value, 0, len(args)+1)
	for i, a := range args {
		var pt reflect.Type
		if i < fixed {
			pt = t.In(i)
		} else {
			pt = t.In(fixed).Elem()
		}
		v, err := coerce(a, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in = append(in, v)
	}
	if takesKw {
		in = append(in, reflect.ValueOf(kw))
	}
	return results(fn.Call(in))
}

func results(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	if err != nil {
		return nil, err
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	tup := make(Tuple, len(out))
	for i, v := range out {
		tup[i] = v.Interface()
	}
	return tup, nil
}

// coerce converts a to t: assignable values pass through, numbers convert
// between kinds (floats only to integers when integral), slices convert
// element-wise, and invokers adapt to function types.
func coerce(a any, t reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrArgType, t)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if _, class := classify(a); class != notNumber {
		if _, target := classify(reflect.Zero(t).Interface()); target != notNumber {
			if class == floating && target == integer && v.Float() != math.Trunc(v.Float()) {
				return reflect.Value{}, fmt.Errorf("%w: %v for %s", ErrArgType, a, t)
			}
			if overflows(v, t) {
				return reflect.Value{}, fmt.Errorf("%w: %v overflows %s", ErrArgType, a, t)
			}
			return v.Convert(t), nil
		}
	}
	switch {
	case v.Kind() == reflect.String && t.Kind() == reflect.String:
		return v.Convert(t), nil
	case (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) && t.Kind() == reflect.Slice:
		out := reflect.MakeSlice(t, v.Len(), v.Len())
		for i := range v.Len() {
			e, err := coerce(v.Index(i).Interface(), t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(e)
		}
		return out, nil
	case t.Kind() == reflect.Func:
		if f, ok := a.(invoker); ok {
			return adaptFunc(f, t), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("%w: %T for %s", ErrArgType, a, t)
}

// overflows reports whether the number v is out of range for the numeric type t.
func overflows(v reflect.Value, t reflect.Type) bool {
	z := reflect.Zero(t)
	switch t.Kind() {
	case reflect.Float32:
		return z.OverflowFloat(toFloat(v))
	case reflect.Float64:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			return f < math.MinInt64 || f >= math.MaxInt64 || z.OverflowInt(int64(f))
		}
		return !fitsInt(v) || z.OverflowInt(toInt(v))
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f < 0 || f >= math.MaxUint64 || z.OverflowUint(uint64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return z.OverflowUint(v.Uint())
	}
	return v.Int() < 0 || z.OverflowUint(uint64(v.Int()))
}

// adaptFunc builds a Go function of type t that forwards to f. If f fails
// and t has no trailing error result, the function panics with the error.
func adaptFunc(f invoker, t reflect.Type) reflect.Value {
	return reflect.MakeFunc(t, func(in []reflect.Value) []reflect.Value {
		args := make([]any, len(in))
		for i, v := range in {
			args[i] = v.Interface()
		}
		if t.IsVariadic() && len(in) > 0 {
			last := in[len(in)-1]
			args = args[:len(args)-1]
			for i := range last.Len() {
				args = append(args, last.Index(i).Interface())
			}
		}
		r, err := f.Invoke(args, nil)

		out := make([]reflect.Value, t.NumOut())
		hasErr := t.NumOut() > 0 && t.Out(t.NumOut()-1) == errorType
		if hasErr {
			out[len(out)-1] = reflect.Zero(errorType)
			if err != nil {
				out[len(out)-1] = reflect.ValueOf(&err).Elem()
			}
		} else if err != nil {
			panic(err)
		}
		for i := range out {
			if hasErr && i == len(out)-1 {
				continue
			}
			out[i] = reflect.Zero(t.Out(i))
			if err != nil {
				continue
			}
			v := r
			if tup, ok := r.(Tuple); ok && t.NumOut()-btoi(hasErr) > 1 {
				v = tup[i]
			}
			cv, cerr := coerce(v, t.Out(i))
			if cerr != nil {
				panic(cerr)
			}
			out[i] = cv
		}
		return out
	})
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
