package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlice_Indices(t *testing.T) {
	tests := []struct {
		name              string
		s                 Slice
		n                 int
		start, stop, step int
	}{
		{"open", Slice{}, 5, 0, 5, 1},
		{"clamped", Slice{Start: Bound(-10), Stop: Bound(10)}, 5, 0, 5, 1},
		{"negative", Slice{Start: Bound(-2)}, 5, 3, 5, 1},
		{"reversed", Slice{Step: Bound(-1)}, 5, 4, -1, -1},
		{"reversed clamped", Slice{Start: Bound(10), Stop: Bound(-10), Step: Bound(-2)}, 5, 4, -1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, stop, step, err := tt.s.Indices(tt.n)
			require.NoError(t, err)
			require.Equal(t, []int{tt.start, tt.stop, tt.step}, []int{start, stop, step})
		})
	}

	_, _, _, err := Slice{Step: Bound(0)}.Indices(3)
	require.ErrorIs(t, err, ErrZeroStep)
}

func TestSlice_String(t *testing.T) {
	require.Equal(t, ":", Slice{}.String())
	require.Equal(t, "1:-1", Slice{Start: Bound(1), Stop: Bound(-1)}.String())
	require.Equal(t, "::2", Slice{Step: Bound(2)}.String())
}

func TestGetItem(t *testing.T) {
	tests := []struct {
		name      string
		container any
		key       any
		want      any
	}{
		{"slice", []int{1, 2, 3}, 1, 2},
		{"slice negative", []int{1, 2, 3}, -1, 3},
		{"slice uint key", []string{"a", "b"}, uint(1), "b"},
		{"array", [3]int{4, 5, 6}, 0, 4},
		{"tuple", Tuple{"a", 1}, 1, 1},
		{"string rune", "héllo", 1, "é"},
		{"map", map[string]int{"a": 1}, "a", 1},
		{"map converted key", map[int64]string{2: "two"}, 2, "two"},
		{"pointer to slice", &[]int{7}, 0, 7},
		{"slice range", []int{1, 2, 3, 4}, Slice{Start: Bound(1), Stop: Bound(3)}, []int{2, 3}},
		{"slice step", []int{1, 2, 3, 4}, Slice{Step: Bound(2)}, []int{1, 3}},
		{"array range", [3]int{1, 2, 3}, Slice{Start: Bound(1)}, []int{2, 3}},
		{"string range", "héllo", Slice{Stop: Bound(2)}, "hé"},
		{"string reversed", "abc", Slice{Step: Bound(-1)}, "cba"},
		{"empty range", []int{1, 2}, Slice{Start: Bound(2)}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetItem(tt.container, tt.key)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetItem_Errors(t *testing.T) {
	_, err := GetItem([]int{1}, 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = GetItem([]int{1}, -2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = GetItem([]int{1}, uint64(math.MaxUint64))
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = GetItem(map[uint8]string{44: "x"}, 300)
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = GetItem([]int{1}, "a")
	require.ErrorIs(t, err, ErrUnsupportedOperand)

	_, err = GetItem(map[string]int{}, "a")
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = GetItem(map[string]int{}, 1)
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = GetItem(5, 0)
	require.ErrorIs(t, err, ErrUnsupportedOperand)

	_, err = GetItem(nil, 0)
	require.ErrorIs(t, err, ErrUnsupportedOperand)

	_, err = GetItem([]int{1}, Slice{Step: Bound(0)})
	require.ErrorIs(t, err, ErrZeroStep)
}

func TestContains(t *testing.T) {
	tests := []struct {
		name      string
		container any
		item      any
		want      bool
	}{
		{"set", NewSet(1, 2), 2, true},
		{"set missing", NewSet(1, 2), 3, false},
		{"substring", "hello", "ell", true},
		{"map key", map[string]int{"a": 1}, "a", true},
		{"map wrong key type", map[string]int{"a": 1}, 1, false},
		{"slice numeric", []float64{1, 2}, 2, true},
		{"array", [2]string{"a", "b"}, "c", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Contains(tt.container, tt.item)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := Contains("abc", 1)
	require.ErrorIs(t, err, ErrUnsupportedOperand)

	_, err = Contains(3, 1)
	require.ErrorIs(t, err, ErrUnsupportedOperand)
}

func TestIterate(t *testing.T) {
	items, err := Iterate("hé")
	require.NoError(t, err)
	require.Equal(t, []any{"h", "é"}, items)

	items, err = Iterate([2]int{1, 2})
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, items)

	items, err = Iterate(NewSet("x"))
	require.NoError(t, err)
	require.Equal(t, []any{"x"}, items)

	_, err = Iterate(3)
	require.ErrorIs(t, err, ErrNotIterable)

	_, err = Iterate(nil)
	require.ErrorIs(t, err, ErrNotIterable)
}
