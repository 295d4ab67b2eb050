package purefn

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Pure-Company/purefn/internal/value"
)

// builtin is a named primitive operation.
type builtin struct {
	name string
	call CallFunc
}

func (b builtin) Invoke(args []any, kw Kwargs) (any, error) {
	return b.call(args, kw)
}

func (b builtin) String() string { return b.name }

func unary(name string, f func(a any) (any, error)) builtin {
	return builtin{name: name, call: func(args []any, kw Kwargs) (any, error) {
		if err := arity(name, args, kw, 1); err != nil {
			return nil, err
		}
		return f(args[0])
	}}
}

func binary(name string, f func(a, b any) (any, error)) builtin {
	return builtin{name: name, call: func(args []any, kw Kwargs) (any, error) {
		if err := arity(name, args, kw, 2); err != nil {
			return nil, err
		}
		return f(args[0], args[1])
	}}
}

func arity(name string, args []any, kw Kwargs, n int) error {
	if len(kw) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedKeyword, name)
	}
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, name, n, len(args))
	}
	return nil
}

// Primitive operations. Reflected variants are derived with Flip.
var (
	opAdd  = newInvertible(binary("add", value.Add), binary("sub", value.Sub))
	opRadd = opAdd.Flip().WithInverse(opAdd.Inverse())
	opSub  = newInvertible(binary("sub", value.Sub), binary("add", value.Add))
	opRsub = opSub.Flip().WithInverse(opSub.Flip())
	opMul  = newInvertible(binary("mul", value.Mul), binary("truediv", value.TrueDiv))
	opRmul = opMul.Flip().WithInverse(opMul.Inverse())
	opDiv  = newInvertible(binary("truediv", value.TrueDiv), binary("mul", value.Mul))
	opRdiv = opDiv.Flip().WithInverse(opDiv.Flip())

	opFloordiv  = New(binary("floordiv", value.FloorDiv))
	opRfloordiv = opFloordiv.Flip()
	opPow       = New(binary("pow", value.Pow))
	opRpow      = opPow.Flip()
	opMod       = New(binary("mod", value.Mod))
	opRmod      = opMod.Flip()
	opNeg       = newInvertible(unary("neg", value.Neg), unary("neg", value.Neg))

	opLt = New(binary("lt", value.Lt))
	opLe = New(binary("le", value.Le))
	opGt = New(binary("gt", value.Gt))
	opGe = New(binary("ge", value.Ge))
	opEq = New(binary("eq", value.Eq))
	opNe = New(binary("ne", value.Ne))

	opAnd     = New(binary("and", value.And))
	opOr      = New(binary("or", value.Or))
	opXor     = newInvertible(binary("xor", value.Xor), binary("xor", value.Xor))
	opInvert  = newInvertible(unary("invert", value.Invert), unary("invert", value.Invert))
	opLshift  = newInvertible(binary("lshift", value.Lshift), binary("rshift", value.Rshift))
	opRshift  = opLshift.Inverse()
	opRlshift = opLshift.Flip().WithInverse(opRshift.Flip())
	opRrshift = opRshift.Flip().WithInverse(opLshift.Flip())

	opConcat   = New(binary("concat", value.Concat))
	opNot      = newInvertible(unary("not", value.Not), unary("not", value.Not))
	opContains = New(binary("contains", value.Contains))
	opIn       = opContains.Flip()
	opGetattr  = New(binary("getattr", getattr))
	opGetitem  = New(binary("getitem", value.GetItem))

	opStrMul = newInvertible(binary("str_mul", strMul), builtin{name: "split", call: split})
	opStrDiv = opStrMul.Inverse()
	opMap    = New(builtin{name: "map", call: mapItems}).Rotate().
			WithInverse(binary("map_inverse", mapInverse))
)

// symbols maps operator shorthands to table entries.
var symbols = map[string]*Function{
	"":    It,
	"+":   opAdd,
	"-":   opSub,
	"_":   opNeg,
	"*":   opMul,
	"/":   opDiv,
	"//":  opFloordiv,
	"**":  opPow,
	"%":   opMod,
	"<":   opLt,
	"<=":  opLe,
	">":   opGt,
	">=":  opGe,
	"==":  opEq,
	"!=":  opNe,
	"&":   opAnd,
	"|":   opOr,
	"^":   opXor,
	"~":   opInvert,
	"<<":  opLshift,
	">>":  opRshift,
	"++":  opConcat,
	"not": opNot,
	"in":  opIn,
	".":   opGetattr,
	"[]":  opGetitem,
	// experimental
	":=":  opGetitem.Right(-1).Unpack(),
	"s":   New(builtin{name: "format", call: format}).Rotate(),
	"s+":  opConcat,
	"s*":  opStrMul,
	"s/":  opStrDiv,
	"s//": New(binary("count", count)),
	"s%":  New(builtin{name: "replace", call: replace}).Right("", -1),
	// Bird-Meertens formalism (experimental)
	"f/": New(builtin{name: "reduce", call: reduce}).Flip(),
	"f*": opMap,
	"f<": New(builtin{name: "filter", call: filter(true)}).Flip(),
	"f>": New(builtin{name: "filterfalse", call: filter(false)}).Flip(),
}

// Lookup returns the operator table entry for symbol.
func Lookup(symbol string) (*Function, error) {
	f, ok := symbols[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, symbol)
	}
	return f, nil
}

// Symbols returns the operator symbols in sorted order.
func Symbols() []string {
	return slices.Sorted(maps.Keys(symbols))
}

// strMul repeats text n times, or joins the items of text with n when n is a string.
func strMul(text, n any) (any, error) {
	if sep, ok := n.(string); ok {
		return value.CallMethod(sep, "join", []any{text}, nil)
	}
	return value.Mul(text, n)
}

// split is text.split([sep]).
func split(args []any, kw Kwargs) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: split needs a string", ErrArgCount)
	}
	return value.CallMethod(args[0], "split", args[1:], kw)
}

func format(args []any, kw Kwargs) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: format needs a format string", ErrArgCount)
	}
	f, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: format string is %T", ErrArgType, args[0])
	}
	return value.Format(f, args[1:], kw)
}

func count(s, sub any) (any, error) {
	return value.CallMethod(s, "count", []any{sub}, nil)
}

// replace is s.replace(old, new[, n]).
func replace(args []any, kw Kwargs) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: replace needs a string", ErrArgCount)
	}
	return value.CallMethod(args[0], "replace", args[1:], kw)
}

func callableArg(v any) (Callable, error) {
	f, ok := toCallable(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, v)
	}
	return f, nil
}

// mapItems is map(f, seqs...): f applied across the sequences in step,
// stopping at the shortest.
func mapItems(args []any, kw Kwargs) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: map needs a function and a sequence", ErrArgCount)
	}
	f, err := callableArg(args[0])
	if err != nil {
		return nil, err
	}
	seqs := make([][]any, len(args)-1)
	n := -1
	for i, s := range args[1:] {
		if seqs[i], err = value.Iterate(s); err != nil {
			return nil, err
		}
		if n < 0 || len(seqs[i]) < n {
			n = len(seqs[i])
		}
	}
	out := make([]any, n)
	for i := range out {
		call := make([]any, len(seqs))
		for j, s := range seqs {
			call[j] = s[i]
		}
		if out[i], err = f.Invoke(call, kw); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// mapInverse maps the inverse of f over seq.
func mapInverse(seq, f any) (any, error) {
	w, ok := f.(*Function)
	if !ok || !w.Invertible() {
		return nil, fmt.Errorf("%w: %v", ErrNotInvertible, f)
	}
	return mapItems([]any{w.Inverse(), seq}, nil)
}

// reduce is reduce(f, seq[, initial]).
func reduce(args []any, kw Kwargs) (any, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: reduce takes 2 or 3, got %d", ErrArgCount, len(args))
	}
	f, err := callableArg(args[0])
	if err != nil {
		return nil, err
	}
	items, err := value.Iterate(args[1])
	if err != nil {
		return nil, err
	}
	if len(args) == 3 {
		items = append([]any{args[2]}, items...)
	}
	if len(items) == 0 {
		return nil, ErrEmptySequence
	}
	acc := items[0]
	for _, it := range items[1:] {
		if acc, err = f.Invoke([]any{acc, it}, kw); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// filter keeps the items of seq whose predicate result has the wanted truth
// value. A nil predicate tests the items themselves.
func filter(want bool) CallFunc {
	return func(args []any, kw Kwargs) (any, error) {
		if err := arity("filter", args, kw, 2); err != nil {
			return nil, err
		}
		items, err := value.Iterate(args[1])
		if err != nil {
			return nil, err
		}
		var pred Callable
		if args[0] != nil {
			if pred, err = callableArg(args[0]); err != nil {
				return nil, err
			}
		}
		out := make([]any, 0, len(items))
		for _, it := range items {
			keep := it
			if pred != nil {
				if keep, err = pred.Invoke([]any{it}, nil); err != nil {
					return nil, err
				}
			}
			if value.Truthy(keep) == want {
				out = append(out, it)
			}
		}
		return out, nil
	}
}
