package purefn

import "fmt"

// unaryOps and binaryOps bind operator names to table entries for Unary and
// Binary. Symbols from the operator table are accepted as well.
var (
	unaryOps = map[string]*Function{
		"pos":    It,
		"neg":    opNeg,
		"invert": opInvert,
		"not":    opNot,
	}

	binaryOps = map[string]*Function{
		"add":       opAdd,
		"radd":      opRadd,
		"sub":       opSub,
		"rsub":      opRsub,
		"mul":       opMul,
		"rmul":      opRmul,
		"div":       opDiv,
		"rdiv":      opRdiv,
		"floordiv":  opFloordiv,
		"rfloordiv": opRfloordiv,
		"pow":       opPow,
		"rpow":      opRpow,
		"mod":       opMod,
		"rmod":      opRmod,
		"lt":        opLt,
		"le":        opLe,
		"gt":        opGt,
		"ge":        opGe,
		"eq":        opEq,
		"ne":        opNe,
		"and":       opAnd,
		"or":        opOr,
		"xor":       opXor,
		"lshift":    opLshift,
		"rlshift":   opRlshift,
		"rshift":    opRshift,
		"rrshift":   opRrshift,
		"getitem":   opGetitem,
	}
)

// unaryOp applies op to w's result.
func (w *Function) unaryOp(op *Function) *Function {
	return op.Compose(w)
}

// binaryOp combines w with other using op. A callable other is called with
// the same arguments as w and the two results are combined; any other value
// is used as the fixed right operand.
func (w *Function) binaryOp(op *Function, other any) *Function {
	if g, ok := toCallable(other); ok {
		return &Function{f: composedOperation{op: op, left: w.f, right: unwrap(g)}}
	}
	return op.Right(other).Compose(w)
}

// Unary applies the unary operator named op ("neg", "pos", "invert", "not",
// or a symbol such as "_" or "~") to w's result.
func (w *Function) Unary(op string) (*Function, error) {
	f, ok := unaryOps[op]
	if !ok {
		if f, ok = symbols[op]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
		}
	}
	return w.unaryOp(f), nil
}

// Binary combines w and other with the binary operator named op ("add",
// "rsub", ...) or with an operator symbol ("+", "<=", ...).
func (w *Function) Binary(op string, other any) (*Function, error) {
	f, ok := binaryOps[op]
	if !ok {
		if f, ok = symbols[op]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
		}
	}
	return w.binaryOp(f, other), nil
}

// Neg returns -w.
func (w *Function) Neg() *Function { return w.unaryOp(opNeg) }

// Pos returns +w, which is w itself.
func (w *Function) Pos() *Function { return w.unaryOp(It) }

// Invert returns ^w, the bitwise complement.
func (w *Function) Invert() *Function { return w.unaryOp(opInvert) }

// Not returns the logical negation of w.
func (w *Function) Not() *Function { return w.unaryOp(opNot) }

// Add returns w + other.
func (w *Function) Add(other any) *Function { return w.binaryOp(opAdd, other) }

// RAdd returns other + w.
func (w *Function) RAdd(other any) *Function { return w.binaryOp(opRadd, other) }

// Sub returns w - other.
func (w *Function) Sub(other any) *Function { return w.binaryOp(opSub, other) }

// RSub returns other - w.
func (w *Function) RSub(other any) *Function { return w.binaryOp(opRsub, other) }

// Mul returns w * other.
func (w *Function) Mul(other any) *Function { return w.binaryOp(opMul, other) }

// RMul returns other * w.
func (w *Function) RMul(other any) *Function { return w.binaryOp(opRmul, other) }

// Div returns w / other.
func (w *Function) Div(other any) *Function { return w.binaryOp(opDiv, other) }

// RDiv returns other / w.
func (w *Function) RDiv(other any) *Function { return w.binaryOp(opRdiv, other) }

// FloorDiv returns w // other.
func (w *Function) FloorDiv(other any) *Function { return w.binaryOp(opFloordiv, other) }

// RFloorDiv returns other // w.
func (w *Function) RFloorDiv(other any) *Function { return w.binaryOp(opRfloordiv, other) }

// Pow returns w ** other.
func (w *Function) Pow(other any) *Function { return w.binaryOp(opPow, other) }

// RPow returns other ** w.
func (w *Function) RPow(other any) *Function { return w.binaryOp(opRpow, other) }

// Mod returns w % other.
func (w *Function) Mod(other any) *Function { return w.binaryOp(opMod, other) }

// RMod returns other % w.
func (w *Function) RMod(other any) *Function { return w.binaryOp(opRmod, other) }

// Lt returns w < other.
func (w *Function) Lt(other any) *Function { return w.binaryOp(opLt, other) }

// Le returns w <= other.
func (w *Function) Le(other any) *Function { return w.binaryOp(opLe, other) }

// Gt returns w > other.
func (w *Function) Gt(other any) *Function { return w.binaryOp(opGt, other) }

// Ge returns w >= other.
func (w *Function) Ge(other any) *Function { return w.binaryOp(opGe, other) }

// Eq returns w == other.
func (w *Function) Eq(other any) *Function { return w.binaryOp(opEq, other) }

// Ne returns w != other.
func (w *Function) Ne(other any) *Function { return w.binaryOp(opNe, other) }

// And returns w & other.
func (w *Function) And(other any) *Function { return w.binaryOp(opAnd, other) }

// Or returns w | other.
func (w *Function) Or(other any) *Function { return w.binaryOp(opOr, other) }

// Xor returns w ^ other.
func (w *Function) Xor(other any) *Function { return w.binaryOp(opXor, other) }

// Lshift returns w << other.
func (w *Function) Lshift(other any) *Function { return w.binaryOp(opLshift, other) }

// RLshift returns other << w.
func (w *Function) RLshift(other any) *Function { return w.binaryOp(opRlshift, other) }

// Rshift returns w >> other.
func (w *Function) Rshift(other any) *Function { return w.binaryOp(opRshift, other) }

// RRshift returns other >> w.
func (w *Function) RRshift(other any) *Function { return w.binaryOp(opRrshift, other) }

// Index returns w[key].
func (w *Function) Index(key any) *Function { return w.binaryOp(opGetitem, key) }
