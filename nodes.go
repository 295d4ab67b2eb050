package purefn

import (
	"fmt"
	"maps"

	"github.com/Pure-Company/purefn/internal/value"
)

// composition applies funcs right to left. It never holds another
// composition.
type composition struct {
	funcs []Callable
}

func newComposition(fs ...Callable) composition {
	c := composition{funcs: make([]Callable, 0, len(fs))}
	for _, f := range fs {
		f = unwrap(f)
		if inner, ok := f.(composition); ok {
			c.funcs = append(c.funcs, inner.funcs...)
			continue
		}
		c.funcs = append(c.funcs, f)
	}
	return c
}

func (c composition) Invoke(args []any, kw Kwargs) (any, error) {
	last := len(c.funcs) - 1
	v, err := c.funcs[last].Invoke(args, kw)
	if err != nil {
		return nil, err
	}
	for i := last - 1; i >= 0; i-- {
		if v, err = c.funcs[i].Invoke([]any{v}, nil); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (c composition) String() string {
	return reprCall("Compose", callables(c.funcs), nil)
}

// partialLeft fixes arguments ahead of the call-site ones.
type partialLeft struct {
	f    Callable
	args []any
	kw   Kwargs
}

// newPartialLeft merges into an existing partialLeft so that the result
// behaves exactly like the nested partial.
func newPartialLeft(f Callable, args []any, kw Kwargs) partialLeft {
	f = unwrap(f)
	if inner, ok := f.(partialLeft); ok {
		return partialLeft{
			f:    inner.f,
			args: concat(inner.args, args),
			kw:   merge(inner.kw, kw),
		}
	}
	return partialLeft{f: f, args: concat(nil, args), kw: merge(nil, kw)}
}

func (p partialLeft) Invoke(args []any, kw Kwargs) (any, error) {
	return p.f.Invoke(concat(p.args, args), merge(p.kw, kw))
}

func (p partialLeft) String() string {
	return reprCall("PartialLeft", append([]any{p.f}, p.args...), p.kw)
}

// partialRight fixes arguments behind the call-site ones.
type partialRight struct {
	f    Callable
	args []any
	kw   Kwargs
}

func newPartialRight(f Callable, args []any, kw Kwargs) partialRight {
	f = unwrap(f)
	if inner, ok := f.(partialRight); ok {
		return partialRight{
			f:    inner.f,
			args: concat(args, inner.args),
			kw:   merge(kw, inner.kw),
		}
	}
	return partialRight{f: f, args: concat(nil, args), kw: merge(nil, kw)}
}

func (p partialRight) Invoke(args []any, kw Kwargs) (any, error) {
	return p.f.Invoke(concat(args, p.args), merge(kw, p.kw))
}

func (p partialRight) String() string {
	return reprCall("PartialRight", append([]any{p.f}, p.args...), p.kw)
}

// juxtaposition calls every function with the same arguments and collects
// the results.
type juxtaposition struct {
	funcs []Callable
}

func newJuxtaposition(fs []any) (juxtaposition, error) {
	j := juxtaposition{funcs: make([]Callable, 0, len(fs))}
	for i, f := range fs {
		c, ok := toCallable(f)
		if !ok {
			return juxtaposition{}, fmt.Errorf("%w: element %d is %T", ErrNotCallable, i, f)
		}
		j.funcs = append(j.funcs, c)
	}
	return j, nil
}

func (j juxtaposition) Invoke(args []any, kw Kwargs) (any, error) {
	out := make(Tuple, len(j.funcs))
	for i, f := range j.funcs {
		v, err := f.Invoke(args, kw)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (j juxtaposition) String() string {
	return reprCall("Juxtaposition", callables(j.funcs), nil)
}

// composedOperation combines the results of two functions called with the
// same arguments.
type composedOperation struct {
	op          Callable
	left, right Callable
}

func (c composedOperation) Invoke(args []any, kw Kwargs) (any, error) {
	l, err := c.left.Invoke(args, kw)
	if err != nil {
		return nil, err
	}
	r, err := c.right.Invoke(args, kw)
	if err != nil {
		return nil, err
	}
	return c.op.Invoke([]any{l, r}, nil)
}

func (c composedOperation) String() string {
	return reprCall("ComposedOperation", []any{c.op, c.left, c.right}, nil)
}

type flipped struct{ f Callable }

func (a flipped) Invoke(args []any, kw Kwargs) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: flip needs at least 2 arguments, got %d", ErrArgCount, len(args))
	}
	swapped := concat(nil, args)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	return a.f.Invoke(swapped, kw)
}

func (a flipped) String() string { return reprFunction(a.f) + ".flip" }

type rotated struct{ f Callable }

func (a rotated) Invoke(args []any, kw Kwargs) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: rotate needs at least 1 argument", ErrArgCount)
	}
	last := len(args) - 1
	return a.f.Invoke(concat([]any{args[last]}, args[:last]), kw)
}

func (a rotated) String() string { return reprFunction(a.f) + ".rotate" }

type packed struct{ f Callable }

func (a packed) Invoke(args []any, kw Kwargs) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: packed function takes 1 argument, got %d", ErrArgCount, len(args))
	}
	spread, err := value.Iterate(args[0])
	if err != nil {
		return nil, err
	}
	return a.f.Invoke(spread, kw)
}

func (a packed) String() string { return reprFunction(a.f) + ".pack" }

type unpacked struct{ f Callable }

func (a unpacked) Invoke(args []any, kw Kwargs) (any, error) {
	return a.f.Invoke([]any{Tuple(concat(nil, args))}, kw)
}

func (a unpacked) String() string { return reprFunction(a.f) + ".unpack" }

// concat returns a fresh slice holding a followed by b.
func concat(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// merge returns a fresh map holding base overridden by over, or nil if both are empty.
func merge(base, over Kwargs) Kwargs {
	if len(base) == 0 && len(over) == 0 {
		return nil
	}
	out := make(Kwargs, len(base)+len(over))
	maps.Copy(out, base)
	maps.Copy(out, over)
	return out
}

func callables(fs []Callable) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}
