package purefn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFn_OperatorSymbols(t *testing.T) {
	v, err := MustFn("+").Call(3, 4)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	v, err = MustFn("+", 1).Call(4)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	v, err = MustLFn("-", 10).Call(4)
	require.NoError(t, err)
	require.Equal(t, 6, v)
}

func TestFn_MethodCall(t *testing.T) {
	v, err := MustFn(".upper").Call("abc")
	require.NoError(t, err)
	require.Equal(t, "ABC", v)

	v, err = MustFn(".split", ",").Call("a,b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, v)

	v, err = MustFn(".Sum").Call(point{X: 2, Y: 5})
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestFn_Callables(t *testing.T) {
	f := MustFn("*", 2)
	require.Same(t, f, MustFn(f))

	v, err := MustFn(strings.TrimSpace).Call("  x ")
	require.NoError(t, err)
	require.Equal(t, "x", v)

	v, err = MustFn(func(args []any, kw Kwargs) (any, error) { return len(args), nil }).Call(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestFn_Index(t *testing.T) {
	v, err := MustFn(1).Call([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, "b", v)

	v, err = MustFn(-1).Call("héllo")
	require.NoError(t, err)
	require.Equal(t, "o", v)

	// several arguments are indexed as one sequence
	v, err = MustFn(1).Call("a", "b")
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = MustFn(5).Call([]int{1})
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = MustFn(0).CallKw(Kwargs{"a": 1}, []int{1})
	require.ErrorIs(t, err, ErrUnexpectedKeyword)
}

func TestFn_Slice(t *testing.T) {
	v, err := MustFn(Slice{Start: Bound(1)}).Call([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, v)

	v, err = MustFn(Slice{Step: Bound(-1)}).Call([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, v)

	v, err = MustFn(Slice{Stop: Bound(2)}).Call("hello")
	require.NoError(t, err)
	require.Equal(t, "he", v)
}

func TestFn_Tuple(t *testing.T) {
	v, err := MustFn(Tuple{0, 1}).Call([]int{10, 20})
	require.NoError(t, err)
	require.Equal(t, Tuple{10, 20}, v)

	v, err = MustFn(Tuple{"+", "-", "*"}).Call(6, 3)
	require.NoError(t, err)
	require.Equal(t, Tuple{9, 3, 18}, v)

	j, err := Juxtapose(".upper", ".lower", "")
	require.NoError(t, err)
	v, err = j.Call("Go")
	require.NoError(t, err)
	require.Equal(t, Tuple{"GO", "go", "Go"}, v)
}

func TestFn_Set(t *testing.T) {
	vowel := MustFn(NewSet("a", "e", "i", "o", "u"))

	v, err := vowel.Call("e")
	require.NoError(t, err)
	require.Equal(t, true, v)

	v, err = vowel.Call("x")
	require.NoError(t, err)
	require.Equal(t, false, v)

	v, err = vowel.Call([]string{"a"})
	require.NoError(t, err)
	require.Equal(t, false, v)

	// uncomparable items are left out
	mixed := MustFn(NewSet(1, []int{1}))
	v, err = mixed.Call(1)
	require.NoError(t, err)
	require.Equal(t, true, v)
}

func TestFn_Containers(t *testing.T) {
	v, err := MustFn(map[string]int{"a": 1}).Call("a")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = MustFn(map[string]int{"a": 1}).Call("b")
	require.ErrorIs(t, err, ErrKeyNotFound)

	v, err = MustFn([]string{"zero", "one"}).Call(1)
	require.NoError(t, err)
	require.Equal(t, "one", v)

	v, err = MustFn([2]int{7, 8}).Call(0)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestFn_Errors(t *testing.T) {
	_, err := Fn(nil)
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Fn(3.5)
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Fn(struct{}{})
	require.ErrorIs(t, err, ErrInvalidSpec)

	var nilFunction *Function
	_, err = Fn(nilFunction)
	require.ErrorIs(t, err, ErrInvalidSpec)

	var nilCallFunc CallFunc
	_, err = LFn(nilCallFunc, 1)
	require.ErrorIs(t, err, ErrInvalidSpec)

	var nilGoFunc func(int) int
	_, err = Fn(nilGoFunc)
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Fn("@@")
	require.ErrorIs(t, err, ErrUnknownOperator)

	_, err = LFn("@@", 1)
	require.ErrorIs(t, err, ErrUnknownOperator)

	_, err = Juxtapose(0, "@@")
	require.ErrorIs(t, err, ErrUnknownOperator)

	require.Panics(t, func() { MustFn(3.5) })
	require.Panics(t, func() { MustLFn(nil) })
}

func TestFnKw(t *testing.T) {
	greet := func(name string, kw Kwargs) string {
		return kw["greeting"].(string) + ", " + name
	}

	f, err := FnKw(greet, Kwargs{"greeting": "hello"})
	require.NoError(t, err)
	v, err := f.Call("ada")
	require.NoError(t, err)
	require.Equal(t, "hello, ada", v)

	f, err = LFnKw(greet, Kwargs{"greeting": "hey"}, "bob")
	require.NoError(t, err)
	v, err = f.Call()
	require.NoError(t, err)
	require.Equal(t, "hey, bob", v)
}

func TestNormalize_Format(t *testing.T) {
	v, err := MustFn(".format", "x").Call("{}!")
	require.NoError(t, err)
	require.Equal(t, "x!", v)

	v, err = MustFn(".format").CallKw(Kwargs{"n": 3}, "{n} items")
	require.NoError(t, err)
	require.Equal(t, "3 items", v)
}
