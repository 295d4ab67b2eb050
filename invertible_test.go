package purefn

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInverse_Roundtrip(t *testing.T) {
	add5 := MustFn("+", 5)
	require.True(t, add5.Invertible())

	v, err := add5.Inverse().Call(12)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	roundtrip := add5.Compose(add5.Inverse())
	for _, x := range []int{-3, 0, 10} {
		v, err := roundtrip.Call(x)
		require.NoError(t, err)
		require.Equal(t, x, v)
	}
}

func TestInverse_Involution(t *testing.T) {
	for _, f := range []*Function{MustFn("+", 5), MustFn("*", 2), opAdd, opLshift, MustFn("^", 3)} {
		require.Same(t, f, f.Inverse().Inverse(), f.String())
		require.Same(t, f.Inverse(), f.Inverse(), "inverse must be memoized")
	}
}

func TestInverse_NotInvertible(t *testing.T) {
	f := MustFn(collect)
	require.False(t, f.Invertible())
	require.Nil(t, f.Inverse())

	// left partials drop the inverse
	require.False(t, MustLFn("-", 10).Invertible())
}

func TestInverse_Concurrent(t *testing.T) {
	f := MustFn("*", 3)
	got := make([]*Function, 16)

	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = f.Inverse()
		}()
	}
	wg.Wait()

	for _, g := range got {
		require.Same(t, got[0], g)
	}
}

func TestWithInverse(t *testing.T) {
	celsius := New(CallFunc(func(args []any, _ Kwargs) (any, error) {
		return (args[0].(float64) - 32) * 5 / 9, nil
	}))
	fahrenheit := func(c float64) float64 { return c*9/5 + 32 }

	f := celsius.WithInverse(MustFn(fahrenheit))
	require.True(t, f.Invertible())
	require.False(t, celsius.Invertible(), "WithInverse must not modify its receiver")

	v, err := f.Inverse().Call(100.0)
	require.NoError(t, err)
	require.Equal(t, 212.0, v)

	v, err = f.Call(212.0)
	require.NoError(t, err)
	require.Equal(t, 100.0, v)
}

func TestIdentity(t *testing.T) {
	f := MustFn("+", 1)

	require.Same(t, f, It.Compose(f))
	require.Same(t, f, f.Compose(It))
	require.True(t, It.Invertible())
	require.Same(t, It, It.Inverse().Inverse())

	v, err := It.Call(42)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	v, err = MustFn("").Call("x")
	require.NoError(t, err)
	require.Equal(t, "x", v)

	_, err = It.Call(1, 2)
	require.ErrorIs(t, err, ErrArgCount)
	_, err = It.CallKw(Kwargs{"a": 1}, 1)
	require.ErrorIs(t, err, ErrUnexpectedKeyword)
}

func TestIdentity_NoCompositionNode(t *testing.T) {
	f := MustFn("*", 2)
	_, ok := f.Compose(It).f.(composition)
	require.False(t, ok)
	_, ok = It.Then(f).f.(composition)
	require.False(t, ok)
}

func TestInverse_Composition(t *testing.T) {
	// 2x + 1, inverted: (y - 1) / 2
	f := MustFn("*", 2).Add(1)
	require.True(t, f.Invertible())

	v, err := f.Call(3)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	v, err = f.Inverse().Call(7)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestInverse_MixedComposition(t *testing.T) {
	f := MustFn("+", 1).Compose(MustFn(collect).Pack().Index(0))
	require.False(t, f.Invertible())
}

func TestInverse_RightOnInvertible(t *testing.T) {
	div := MustFn("/", 4)
	v, err := div.Call(10)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	v, err = div.Inverse().Call(2.5)
	require.NoError(t, err)
	require.Equal(t, 10.0, v)

	sub := MustFn("-", 3)
	v, err = sub.Inverse().Call(7)
	require.NoError(t, err)
	require.Equal(t, 10, v)
}

func TestInverse_ReflectedOperators(t *testing.T) {
	// 10 - x is its own inverse
	rsub, err := It.Binary("rsub", 10)
	require.NoError(t, err)
	require.True(t, rsub.Invertible())
	v, err := rsub.Inverse().Call(4)
	require.NoError(t, err)
	require.Equal(t, 6, v)

	// 12 / x is its own inverse
	rdiv := It.RDiv(12)
	v, err = rdiv.Inverse().Call(4)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	// 3 + x inverts to x - 3
	radd := It.RAdd(3)
	v, err = radd.Inverse().Call(10)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestInverse_Shift(t *testing.T) {
	f := MustFn("<<", 3)
	v, err := f.Call(1)
	require.NoError(t, err)
	require.Equal(t, 8, v)

	v, err = f.Inverse().Call(8)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.Same(t, opRshift, opLshift.Inverse())
}
