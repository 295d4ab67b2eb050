package value

import (
	"fmt"
	"reflect"
	"strings"
)

// Slice selects a range of a sequence. A nil bound is open; negative bounds
// count from the end; a nil Step means 1.
type Slice struct {
	Start, Stop, Step *int
}

// Bound returns a pointer to i, for use as a Slice bound.
func Bound(i int) *int {
	return &i
}

// Indices resolves s against a sequence of length n, clamping bounds the
// way sequence slicing does.
func (s Slice) Indices(n int) (start, stop, step int, err error) {
	step = 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return 0, 0, 0, ErrZeroStep
	}
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	resolve := func(b *int, def int) int {
		if b == nil {
			return def
		}
		i := *b
		if i < 0 {
			return max(i+n, lower)
		}
		return min(i, upper)
	}
	if step > 0 {
		return resolve(s.Start, lower), resolve(s.Stop, upper), step, nil
	}
	return resolve(s.Start, upper), resolve(s.Stop, lower), step, nil
}

func (s Slice) positions(n int) ([]int, error) {
	start, stop, step, err := s.Indices(n)
	if err != nil {
		return nil, err
	}
	var out []int
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		out = append(out, i)
	}
	return out, nil
}

func (s Slice) String() string {
	b := func(p *int) string {
		if p == nil {
			return ""
		}
		return fmt.Sprint(*p)
	}
	if s.Step == nil {
		return b(s.Start) + ":" + b(s.Stop)
	}
	return b(s.Start) + ":" + b(s.Stop) + ":" + b(s.Step)
}

// GetItem returns container[key]. Sequences (slices, arrays, strings) take
// integer keys or a Slice; strings are indexed by rune. Maps take keys
// convertible to their key type.
func GetItem(container, key any) (any, error) {
	if container == nil {
		return nil, fmt.Errorf("%w for indexing: nil", ErrUnsupportedOperand)
	}
	c := reflect.ValueOf(container)
	for c.Kind() == reflect.Pointer && !c.IsNil() {
		c = c.Elem()
	}
	switch c.Kind() {
	case reflect.Map:
		k, err := coerce(key, c.Type().Key())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
		}
		v := c.MapIndex(k)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
		}
		return v.Interface(), nil
	case reflect.String:
		runes := []rune(c.String())
		pos, sliced, err := selectIndices(key, len(runes))
		if err != nil {
			return nil, err
		}
		if !sliced {
			return string(runes[pos[0]]), nil
		}
		var b strings.Builder
		for _, i := range pos {
			b.WriteRune(runes[i])
		}
		r := reflect.New(c.Type()).Elem()
		r.SetString(b.String())
		return r.Interface(), nil
	case reflect.Slice, reflect.Array:
		pos, sliced, err := selectIndices(key, c.Len())
		if err != nil {
			return nil, err
		}
		if !sliced {
			return c.Index(pos[0]).Interface(), nil
		}
		t := c.Type()
		if t.Kind() == reflect.Array {
			t = reflect.SliceOf(t.Elem())
		}
		out := reflect.MakeSlice(t, 0, len(pos))
		for _, i := range pos {
			out = reflect.Append(out, c.Index(i))
		}
		return out.Interface(), nil
	}
	return nil, fmt.Errorf("%w for indexing: %T", ErrUnsupportedOperand, container)
}

// selectIndices resolves key against a sequence of length n: every selected
// position for a Slice, or the single position for an integer.
func selectIndices(key any, n int) (pos []int, sliced bool, err error) {
	if s, ok := key.(Slice); ok {
		pos, err = s.positions(n)
		return pos, true, err
	}
	k, class := classify(key)
	if class != integer {
		return nil, false, fmt.Errorf("%w for index: %T", ErrUnsupportedOperand, key)
	}
	if !fitsInt(k) {
		return nil, false, fmt.Errorf("%w: %v", ErrIndexOutOfRange, k.Interface())
	}
	i := int(toInt(k))
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, false, fmt.Errorf("%w: %d", ErrIndexOutOfRange, toInt(k))
	}
	return []int{i}, false, nil
}

// Contains reports whether item is in container: set membership, map key,
// sequence element or substring.
func Contains(container, item any) (any, error) {
	if s, ok := container.(Set); ok {
		return s.Has(item), nil
	}
	if container == nil {
		return nil, fmt.Errorf("%w for membership: nil", ErrUnsupportedOperand)
	}
	c := reflect.ValueOf(container)
	switch c.Kind() {
	case reflect.String:
		sub, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w for membership in string: %T", ErrUnsupportedOperand, item)
		}
		return strings.Contains(c.String(), sub), nil
	case reflect.Map:
		k, err := coerce(item, c.Type().Key())
		if err != nil {
			return false, nil
		}
		return c.MapIndex(k).IsValid(), nil
	case reflect.Slice, reflect.Array:
		for i := range c.Len() {
			if Equal(c.Index(i).Interface(), item) {
				return true, nil
			}
		}
		return false, nil
	}
	return nil, fmt.Errorf("%w for membership: %T", ErrUnsupportedOperand, container)
}

// Iterate returns the elements of a slice, array, string (as one-rune
// strings) or Set.
func Iterate(v any) ([]any, error) {
	if s, ok := v.(Set); ok {
		out := make([]any, 0, len(s))
		for it := range s {
			out = append(out, it)
		}
		return out, nil
	}
	if v == nil {
		return nil, fmt.Errorf("%w: nil", ErrNotIterable)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		runes := []rune(rv.String())
		out := make([]any, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIterable, v)
}
