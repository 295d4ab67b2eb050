package purefn

import (
	"fmt"
	"sync"
)

// inverse is a write-once cell holding the inverse of a Function. raw may be
// any Callable until first use, when it is promoted to an invertible
// Function pointing back at its owner.
type inverse struct {
	once sync.Once
	raw  Callable
	fn   *Function
}

func newInvertible(f, inv Callable) *Function {
	return &Function{f: unwrap(f), inv: &inverse{raw: inv}}
}

// Invertible reports whether w carries an inverse.
func (w *Function) Invertible() bool {
	return w.inv != nil
}

// Inverse returns the inverse of w, or nil if w is not invertible.
//
// The result is memoized: repeated calls return the same Function, and
// w.Inverse().Inverse() == w unless the inverse was supplied as an
// invertible Function paired with something else.
func (w *Function) Inverse() *Function {
	if w.inv == nil {
		return nil
	}
	w.inv.once.Do(func() {
		if fn, ok := w.inv.raw.(*Function); ok && fn.Invertible() {
			w.inv.fn = fn
			return
		}
		w.inv.fn = &Function{f: unwrap(w.inv.raw), inv: &inverse{raw: w}}
	})
	return w.inv.fn
}

// identity returns its single argument.
type identity struct{}

func (identity) Invoke(args []any, kw Kwargs) (any, error) {
	if len(kw) > 0 {
		return nil, fmt.Errorf("%w: identity", ErrUnexpectedKeyword)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: identity takes 1 argument, got %d", ErrArgCount, len(args))
	}
	return args[0], nil
}

func (identity) String() string { return "identity" }

// It is the identity function. It is its own inverse, and composing it with
// any function on either side returns that function.
var It = newInvertible(identity{}, identity{})

func (w *Function) isIdentity() bool {
	_, ok := w.f.(identity)
	return ok
}
