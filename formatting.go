package purefn

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// reprFunction names a callable: its String form when it has one, otherwise
// its Go function name.
func reprFunction(f any) string {
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	if c, ok := toCallable(f); ok {
		if s, ok := c.(fmt.Stringer); ok {
			return s.String()
		}
	}
	return fmt.Sprintf("%T", f)
}

// reprValue renders an argument: callables by name, strings quoted, the rest
// with their default format.
func reprValue(v any) string {
	if _, ok := toCallable(v); ok {
		return reprFunction(v)
	}
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// reprCall renders name(args..., key=value...). Keywords are sorted by name.
func reprCall(name string, args []any, kw Kwargs) string {
	parts := make([]string, 0, len(args)+len(kw))
	for _, a := range args {
		parts = append(parts, reprValue(a))
	}
	for _, k := range slices.Sorted(maps.Keys(kw)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, kw[k]))
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
