package purefn

import "github.com/Pure-Company/purefn/internal/value"

// PipeOption configures a Pipe.
type PipeOption func(*Pipe)

// Optional makes the pipe short-circuit once its value is empty: every
// later step leaves the value alone without calling its function.
func Optional() PipeOption {
	return func(p *Pipe) {
		p.optional = true
	}
}

// WithEmpty sets the value an optional pipe treats as empty. The default is
// nil, which also matches typed nil pointers, maps, slices and functions.
func WithEmpty(sentinel any) PipeOption {
	return func(p *Pipe) {
		p.empty = sentinel
	}
}

// Pipe threads a value through a series of function calls.
//
// Every step accepts a function specification as understood by Fn. The
// first failing step records its error; later steps are skipped and the
// error is reported by Err and Result. A Pipe is not safe for concurrent
// use.
//
// Example:
//
//	v, err := NewPipe(5).
//	    IntoHead("+", 3).  // 5 + 3
//	    IntoLast("-", 1).  // 1 - 8
//	    Result()           // -7, nil
type Pipe struct {
	value    any
	err      error
	optional bool
	empty    any
}

// NewPipe returns a Pipe holding v.
func NewPipe(v any, opts ...PipeOption) *Pipe {
	p := &Pipe{value: v}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewOptionalPipe returns an optional Pipe holding v.
func NewOptionalPipe(v any, opts ...PipeOption) *Pipe {
	return NewPipe(v, append([]PipeOption{Optional()}, opts...)...)
}

// IntoHead calls f with the value as first argument, followed by args, and
// keeps the result.
func (p *Pipe) IntoHead(f any, args ...any) *Pipe {
	if v, ok := p.call(f, concat([]any{p.value}, args)); ok {
		p.value = v
	}
	return p
}

// IntoLast calls f with args followed by the value, and keeps the result.
func (p *Pipe) IntoLast(f any, args ...any) *Pipe {
	if v, ok := p.call(f, concat(args, []any{p.value})); ok {
		p.value = v
	}
	return p
}

// DoHead calls f with the value as first argument for its side effects; the
// value is kept.
func (p *Pipe) DoHead(f any, args ...any) *Pipe {
	p.call(f, concat([]any{p.value}, args))
	return p
}

// DoLast calls f with the value as last argument for its side effects; the
// value is kept.
func (p *Pipe) DoLast(f any, args ...any) *Pipe {
	p.call(f, concat(args, []any{p.value}))
	return p
}

// Value returns the current value.
func (p *Pipe) Value() any {
	return p.value
}

// Err returns the error of the first failed step, if any.
func (p *Pipe) Err() error {
	return p.err
}

// Result returns the current value and the error of the first failed step.
func (p *Pipe) Result() (any, error) {
	return p.value, p.err
}

// Empty reports whether the value is the pipe's empty sentinel.
func (p *Pipe) Empty() bool {
	if p.empty == nil {
		return value.IsNil(p.value)
	}
	return value.Equal(p.value, p.empty)
}

// call runs one step. ok is false when the step was skipped or failed.
func (p *Pipe) call(spec any, args []any) (any, bool) {
	if p.err != nil || (p.optional && p.Empty()) {
		return nil, false
	}
	f, err := asCallable(spec)
	if err != nil {
		p.err = err
		return nil, false
	}
	v, err := f.Invoke(args, nil)
	if err != nil {
		p.err = err
		return nil, false
	}
	return v, true
}
