package purefn

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/Pure-Company/purefn/internal/value"
)

// Kwargs holds keyword arguments, keyed by parameter name.
type Kwargs = value.Kwargs

// Callable is anything that can be invoked with positional and keyword
// arguments.
type Callable interface {
	Invoke(args []any, kw Kwargs) (any, error)
}

// CallFunc is a functional binding for Callable.
//
// Example:
//
//	double := CallFunc(func(args []any, kw Kwargs) (any, error) {
//	    return args[0].(int) * 2, nil
//	})
type CallFunc func(args []any, kw Kwargs) (any, error)

// Invoke implements Callable.
func (f CallFunc) Invoke(args []any, kw Kwargs) (any, error) {
	return f(args, kw)
}

// goFunc adapts a plain Go function of any signature.
type goFunc struct {
	fn reflect.Value
}

func (g goFunc) Invoke(args []any, kw Kwargs) (any, error) {
	return value.Invoke(g.fn, args, kw)
}

func (g goFunc) String() string {
	name := runtime.FuncForPC(g.fn.Pointer()).Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// toCallable reports whether v can be called and returns it as a Callable.
// Go functions of any signature qualify; nil values never do.
func toCallable(v any) (Callable, bool) {
	switch f := v.(type) {
	case nil:
		return nil, false
	case Callable:
		if value.IsNil(f) {
			return nil, false
		}
		return f, true
	case func(args []any, kw Kwargs) (any, error):
		return CallFunc(f), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		return goFunc{fn: rv}, true
	}
	return nil, false
}

// unwrap returns the callable held by a Function, or f itself.
func unwrap(f Callable) Callable {
	if w, ok := f.(*Function); ok {
		return w.f
	}
	return f
}

// Function wraps a callable and adds composition, partial application,
// argument reordering and operator combinators. A Function is never mutated
// after construction; every combinator returns a new Function.
//
// Example:
//
//	inc := MustFn("+", 1)
//	double := MustFn("*", 2)
//	v, _ := double.Compose(inc).Call(3) // (3 + 1) * 2 == 8
type Function struct {
	f   Callable
	inv *inverse // nil unless invertible
}

// New wraps f. Wrapping a Function yields a plain Function around the same
// underlying callable, never a nested wrapper.
func New(f Callable) *Function {
	return &Function{f: unwrap(f)}
}

// wrap returns f as a Function, keeping Functions (and their inverses) as they are.
func wrap(f Callable) *Function {
	if w, ok := f.(*Function); ok {
		return w
	}
	return &Function{f: f}
}

// Invoke implements Callable. Errors from the wrapped callable are returned
// unchanged.
func (w *Function) Invoke(args []any, kw Kwargs) (any, error) {
	return w.f.Invoke(args, kw)
}

// Call invokes w with positional arguments only.
func (w *Function) Call(args ...any) (any, error) {
	return w.f.Invoke(args, nil)
}

// CallKw invokes w with keyword and positional arguments.
func (w *Function) CallKw(kw Kwargs, args ...any) (any, error) {
	return w.f.Invoke(args, kw)
}

// Compose returns w after other: other receives the call arguments and w
// receives other's result. In longer chains only the rightmost function sees
// the call arguments; every other link gets exactly one argument.
//
// Composing two invertible functions yields an invertible function whose
// inverse is other.Inverse() after w.Inverse(). Composing with the identity
// returns the other operand.
func (w *Function) Compose(other Callable) *Function {
	if w.isIdentity() {
		return wrap(other)
	}
	o := wrap(other)
	if o.isIdentity() {
		return w
	}
	if w.Invertible() && o.Invertible() {
		return newInvertible(
			newComposition(w.f, o.f),
			newComposition(o.Inverse().f, w.Inverse().f),
		)
	}
	return &Function{f: newComposition(w.f, o.f)}
}

// Then returns other after w, the reverse of Compose.
func (w *Function) Then(other Callable) *Function {
	return wrap(other).Compose(w)
}

// Left fixes args ahead of the call-site arguments. It returns w when
// nothing is fixed.
func (w *Function) Left(args ...any) *Function {
	return w.LeftKw(nil, args...)
}

// LeftKw is Left with keyword arguments. Call-site keywords override fixed
// ones.
func (w *Function) LeftKw(kw Kwargs, args ...any) *Function {
	if len(args) == 0 && len(kw) == 0 {
		return w
	}
	return &Function{f: newPartialLeft(w.f, args, kw)}
}

// Right fixes args behind the call-site arguments. It returns w when nothing
// is fixed.
//
// On an invertible function the same arguments are fixed on the inverse.
// That is only sound when the fixed positions do not take part in the
// inversion, e.g. fixing the divisor of a multiply/divide pair but not the
// dividend; keeping to that is the caller's job.
func (w *Function) Right(args ...any) *Function {
	return w.RightKw(nil, args...)
}

// RightKw is Right with keyword arguments. Fixed keywords override call-site
// ones.
func (w *Function) RightKw(kw Kwargs, args ...any) *Function {
	if len(args) == 0 && len(kw) == 0 {
		return w
	}
	if w.Invertible() {
		return newInvertible(
			newPartialRight(w.f, args, kw),
			newPartialRight(w.Inverse().f, args, kw),
		)
	}
	return &Function{f: newPartialRight(w.f, args, kw)}
}

// WithInverse pairs w's callable with inv. It should hold that
// w.Compose(w.Inverse()) is the identity on w's domain.
func (w *Function) WithInverse(inv Callable) *Function {
	return newInvertible(w.f, inv)
}

// Flip swaps the first two positional arguments.
func (w *Function) Flip() *Function {
	return &Function{f: flipped{w.f}}
}

// Rotate moves the last positional argument to the front.
func (w *Function) Rotate() *Function {
	return &Function{f: rotated{w.f}}
}

// Pack makes a function of several arguments accept one sequence whose
// elements become the arguments.
func (w *Function) Pack() *Function {
	return &Function{f: packed{w.f}}
}

// Unpack makes a function of one sequence accept several arguments, passed
// on as a Tuple.
func (w *Function) Unpack() *Function {
	return &Function{f: unpacked{w.f}}
}

// Attr returns a function reading the attribute name from w's result.
func (w *Function) Attr(name string) *Function {
	return w.Then(opGetattr.Right(name))
}

// Method returns a function calling the method name on w's result with args.
func (w *Function) Method(name string, args ...any) *Function {
	return w.Then(methodCall{name: name, args: args})
}

// String renders w as a call expression, e.g. "Function(strings.ToUpper)".
func (w *Function) String() string {
	if w.isIdentity() {
		return "Identity()"
	}
	name := "Function"
	if w.Invertible() {
		name = "InvertibleFunction"
	}
	return reprCall(name, []any{w.f}, nil)
}

var _ fmt.Stringer = (*Function)(nil)
