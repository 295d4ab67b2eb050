package purefn

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Pure-Company/purefn/internal/value"
)

type (
	// Tuple is an ordered collection of values. As a specification it
	// juxtaposes its members; juxtapositions also return their results as a
	// Tuple.
	Tuple = value.Tuple

	// Set is an unordered collection of comparable values. As a
	// specification it tests membership.
	Set = value.Set

	// Slice selects a range of a sequence. Nil bounds are open and negative
	// bounds count from the end.
	//
	// Example:
	//
	//	MustFn(Slice{Start: Bound(1), Stop: Bound(-1)}) // drops the first and last element
	Slice = value.Slice
)

// NewSet builds a Set from items. Uncomparable items are left out.
func NewSet(items ...any) Set {
	return value.NewSet(items...)
}

// Bound returns a pointer to i, for use as a Slice bound.
func Bound(i int) *int {
	return value.Bound(i)
}

// asCallable turns a function specification into a Callable:
//
//   - Callable or Go function: used as is
//   - "": identity
//   - ".name": call method name on the first argument
//   - any other string: operator symbol from the operator table
//   - integer or Slice: index the argument
//   - Tuple: juxtaposition of its normalized members
//   - Set: membership test
//   - other slice, array or map: look the argument up in it
func asCallable(spec any) (Callable, error) {
	if f, ok := toCallable(spec); ok {
		return f, nil
	}
	switch s := spec.(type) {
	case string:
		if s == "" {
			return It, nil
		}
		if strings.HasPrefix(s, ".") && len(s) > 1 {
			return newPartialLeft(methodCaller{}, []any{s[1:]}, nil), nil
		}
		return Lookup(s)
	case Tuple:
		fs := make([]any, len(s))
		for i, member := range s {
			f, err := asCallable(member)
			if err != nil {
				return nil, err
			}
			fs[i] = f
		}
		return newJuxtaposition(fs)
	case Set:
		return newPartialLeft(opContains.f, []any{s}, nil), nil
	case Slice:
		return indexer{key: s}, nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidSpec)
	}
	switch reflect.ValueOf(spec).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return indexer{key: spec}, nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return newPartialLeft(opGetitem.f, []any{spec}, nil), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidSpec, spec)
}

// Fn builds a Function from spec and fixes args on its right. See asCallable
// for the recognized specifications.
//
// Example:
//
//	add1, _ := Fn("+", 1)
//	v, _ := add1.Call(4) // 5
func Fn(spec any, args ...any) (*Function, error) {
	return FnKw(spec, nil, args...)
}

// FnKw is Fn with keyword arguments.
func FnKw(spec any, kw Kwargs, args ...any) (*Function, error) {
	f, err := asCallable(spec)
	if err != nil {
		return nil, err
	}
	return wrap(f).RightKw(kw, args...), nil
}

// LFn is Fn with args fixed on the left.
func LFn(spec any, args ...any) (*Function, error) {
	return LFnKw(spec, nil, args...)
}

// LFnKw is LFn with keyword arguments.
func LFnKw(spec any, kw Kwargs, args ...any) (*Function, error) {
	f, err := asCallable(spec)
	if err != nil {
		return nil, err
	}
	return wrap(f).LeftKw(kw, args...), nil
}

// MustFn is like Fn but panics if spec is invalid.
func MustFn(spec any, args ...any) *Function {
	f, err := Fn(spec, args...)
	if err != nil {
		panic(err)
	}
	return f
}

// MustLFn is like LFn but panics if spec is invalid.
func MustLFn(spec any, args ...any) *Function {
	f, err := LFn(spec, args...)
	if err != nil {
		panic(err)
	}
	return f
}

// Juxtapose returns a Function calling every spec with the same arguments
// and returning the results as a Tuple.
func Juxtapose(specs ...any) (*Function, error) {
	return Fn(Tuple(specs))
}

// methodCaller invokes the method named by its first argument on its second.
type methodCaller struct{}

func (methodCaller) Invoke(args []any, kw Kwargs) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: method call needs a name and a receiver", ErrArgCount)
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: method name is %T", ErrArgType, args[0])
	}
	return value.CallMethod(args[1], name, args[2:], kw)
}

func (methodCaller) String() string { return "methodcall" }

// methodCall invokes a fixed method with fixed arguments on its only argument.
type methodCall struct {
	name string
	args []any
}

func (m methodCall) Invoke(args []any, kw Kwargs) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: method call takes 1 receiver, got %d", ErrArgCount, len(args))
	}
	return value.CallMethod(args[0], m.name, m.args, kw)
}

func (m methodCall) String() string {
	return reprCall("methodcaller", append([]any{m.name}, m.args...), nil)
}

// boundMethod is a method read off a receiver as an attribute.
type boundMethod struct {
	recv any
	name string
	call value.MethodFunc
}

func (b boundMethod) Invoke(args []any, kw Kwargs) (any, error) {
	return b.call(args, kw)
}

func (b boundMethod) String() string {
	return reprValue(b.recv) + "." + b.name
}

// indexer subscripts its argument, or its argument list when called with
// several arguments.
type indexer struct {
	key any
}

func (ix indexer) Invoke(args []any, kw Kwargs) (any, error) {
	if len(kw) > 0 {
		return nil, fmt.Errorf("%w: itemgetter", ErrUnexpectedKeyword)
	}
	var target any = Tuple(args)
	if len(args) == 1 {
		target = args[0]
	}
	return value.GetItem(target, ix.key)
}

func (ix indexer) String() string {
	return reprCall("itemgetter", []any{ix.key}, nil)
}

// getattr reads a field or string key, falling back to a bound method.
func getattr(obj, name any) (any, error) {
	n, ok := name.(string)
	if !ok {
		return nil, fmt.Errorf("%w: attribute name is %T", ErrArgType, name)
	}
	if v, ok := value.Field(obj, n); ok {
		return v, nil
	}
	if m, ok := value.LookupMethod(obj, n); ok {
		return boundMethod{recv: obj, name: n, call: m}, nil
	}
	return nil, fmt.Errorf("%w: %T has no attribute %q", ErrNoAttribute, obj, n)
}
