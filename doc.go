/*
Package purefn provides composable function values: composition, partial
application, invertible functions, operator shorthands and pipelines.

# Overview

Every combinator works on a Function, a wrapper around anything callable.
Plain Go functions of any signature, CallFunc literals and Functions
themselves are all accepted. A Function never changes after construction;
each combinator returns a new one.

# Quick Example

Instead of writing small closures by hand:

	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }
	v := double(inc(3))

Build them from specifications:

	inc := purefn.MustFn("+", 1)
	double := purefn.MustFn("*", 2)
	v, err := double.Compose(inc).Call(3) // 8, nil

# Specifications

Fn, LFn and the Pipe steps accept a function specification:

	purefn.MustFn("+")                    // operator symbol: a + b
	purefn.MustFn("+", 1)                 // a + 1
	purefn.MustLFn("-", 10)               // 10 - a
	purefn.MustFn(".upper")               // a.upper()
	purefn.MustFn("")                     // identity
	purefn.MustFn(1)                      // a[1]
	purefn.MustFn(purefn.Tuple{0, 2})     // (a[0], a[2])
	purefn.MustFn(purefn.NewSet(1, 2))    // a in {1, 2}
	purefn.MustFn(map[string]int{"x": 1}) // {"x": 1}[a]
	purefn.MustFn(strings.ToUpper)        // any Go function

Symbols returns every operator symbol the table knows.

# Invertible Functions

A Function may carry its inverse:

	add5 := purefn.MustFn("+", 5)
	v, _ := add5.Inverse().Call(12) // 7

	f := purefn.MustFn("*", 2).Add(1) // 2x + 1
	v, _ = f.Inverse().Call(7)        // 3.0

Composing two invertible functions keeps the result invertible, and It,
the identity, vanishes from every composition.

# Operators

Arithmetic, comparison and bitwise methods combine a Function with a value
or with another function called on the same arguments:

	isEven := purefn.MustFn("%", 2).Eq(0)
	mean := purefn.MustFn(sum).Div(length)

# Pipes

A Pipe threads a value through a series of calls and stops at the first
error:

	v, err := purefn.NewPipe(5).
	    IntoHead("+", 3). // 5 + 3
	    IntoLast("-", 1). // 1 - 8
	    Result()          // -7, nil

Optional pipes stop as soon as the value becomes empty (nil by default):

	v, err := purefn.NewOptionalPipe(user).
	    IntoHead(lookupAccount).
	    IntoHead(".Balance").
	    Result()

# Errors

Failures are reported through errors wrapping the package sentinels, e.g.
ErrInvalidSpec, ErrUnknownOperator, ErrArgCount or ErrUnsupportedOperand.
Test for them with errors.Is. Errors returned by wrapped Go functions are
passed through unchanged.

# Package Import

	import "github.com/Pure-Company/purefn"
*/
package purefn
