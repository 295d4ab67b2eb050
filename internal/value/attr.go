package value

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MethodFunc is a method bound to its receiver.
type MethodFunc func(args []any, kw Kwargs) (any, error)

// exported returns name with its first letter upper-cased, so "upper" finds Upper.
func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Field returns the field or string-keyed map entry called name on obj.
func Field(obj any, name string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		for _, n := range []string{name, exported(name)} {
			f, ok := v.Type().FieldByName(n)
			if ok && f.IsExported() {
				return v.FieldByIndex(f.Index).Interface(), true
			}
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		e := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if e.IsValid() {
			return e.Interface(), true
		}
	}
	return nil, false
}

// LookupMethod finds the method called name on recv. Exported Go methods are
// tried first (name as given, then capitalized), including pointer-receiver
// methods of addressable copies; string receivers fall back to the built-in
// string methods.
func LookupMethod(recv any, name string) (MethodFunc, bool) {
	if recv == nil {
		return nil, false
	}
	v := reflect.ValueOf(recv)
	candidates := []reflect.Value{v}
	if v.Kind() != reflect.Pointer {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		candidates = append(candidates, p)
	}
	for _, c := range candidates {
		for _, n := range []string{name, exported(name)} {
			if m := c.MethodByName(n); m.IsValid() {
				return func(args []any, kw Kwargs) (any, error) {
					return Invoke(m, args, kw)
				}, true
			}
		}
	}
	if v.Kind() == reflect.String {
		if sm, ok := stringMethods[name]; ok {
			s := v.String()
			return func(args []any, kw Kwargs) (any, error) {
				if len(kw) > 0 && name != "format" {
					return nil, fmt.Errorf("%w: str.%s", ErrUnexpectedKeyword, name)
				}
				return sm(s, args, kw)
			}, true
		}
	}
	return nil, false
}

// CallMethod invokes recv.name(args...).
func CallMethod(recv any, name string, args []any, kw Kwargs) (any, error) {
	m, ok := LookupMethod(recv, name)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no method %q", ErrNoAttribute, recv, name)
	}
	return m(args, kw)
}

type stringMethod func(s string, args []any, kw Kwargs) (any, error)

var stringMethods = map[string]stringMethod{
	"upper":      unaryString(strings.ToUpper),
	"lower":      unaryString(strings.ToLower),
	"title":      unaryString(title),
	"capitalize": unaryString(capitalize),
	"strip":      trim(strings.TrimSpace, strings.Trim),
	"lstrip":     trim(trimLeftSpace, strings.TrimLeft),
	"rstrip":     trim(trimRightSpace, strings.TrimRight),
	"split":      split,
	"join":       join,
	"replace":    replace,
	"count":      substring(func(s, sub string) any { return strings.Count(s, sub) }),
	"find":       substring(func(s, sub string) any { return strings.Index(s, sub) }),
	"startswith": substring(func(s, sub string) any { return strings.HasPrefix(s, sub) }),
	"endswith":   substring(func(s, sub string) any { return strings.HasSuffix(s, sub) }),
	"format": func(s string, args []any, kw Kwargs) (any, error) {
		return Format(s, args, kw)
	},
}

func unaryString(f func(string) string) stringMethod {
	return func(s string, args []any, _ Kwargs) (any, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: takes no arguments, got %d", ErrArgCount, len(args))
		}
		return f(s), nil
	}
}

func trimLeftSpace(s string) string  { return strings.TrimLeftFunc(s, unicode.IsSpace) }
func trimRightSpace(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }

// title builds a Caser per call; Casers are stateful.
func title(s string) string { return cases.Title(language.Und).String(s) }

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func stringArgs(args []any, lo, hi int) ([]string, error) {
	if len(args) < lo || len(args) > hi {
		return nil, fmt.Errorf("%w: wants %d to %d, got %d", ErrArgCount, lo, hi, len(args))
	}
	out := make([]string, len(args))
	for i, a := range args {
		s, ok := a.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T for string", ErrArgType, a)
		}
		out[i] = s
	}
	return out, nil
}

func trim(space func(string) string, cutset func(string, string) string) stringMethod {
	return func(s string, args []any, _ Kwargs) (any, error) {
		a, err := stringArgs(args, 0, 1)
		if err != nil {
			return nil, err
		}
		if len(a) == 0 {
			return space(s), nil
		}
		return cutset(s, a[0]), nil
	}
}

func substring(f func(s, sub string) any) stringMethod {
	return func(s string, args []any, _ Kwargs) (any, error) {
		a, err := stringArgs(args, 1, 1)
		if err != nil {
			return nil, err
		}
		return f(s, a[0]), nil
	}
}

// split splits on sep, or on runs of whitespace when sep is absent or nil.
func split(s string, args []any, _ Kwargs) (any, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: split wants at most 1, got %d", ErrArgCount, len(args))
	}
	if len(args) == 0 || args[0] == nil {
		return strings.Fields(s), nil
	}
	sep, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %T for separator", ErrArgType, args[0])
	}
	return strings.Split(s, sep), nil
}

// join concatenates the string elements of one iterable, separated by s.
func join(s string, args []any, _ Kwargs) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: join wants 1, got %d", ErrArgCount, len(args))
	}
	items, err := Iterate(args[0])
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(items))
	for i, it := range items {
		p, ok := it.(string)
		if !ok {
			return nil, fmt.Errorf("%w: join item %d is %T", ErrArgType, i, it)
		}
		parts[i] = p
	}
	return strings.Join(parts, s), nil
}

// replace is s.replace(old, new[, count]); a negative count replaces all.
func replace(s string, args []any, _ Kwargs) (any, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: replace wants 2 or 3, got %d", ErrArgCount, len(args))
	}
	a, err := stringArgs(args[:2], 2, 2)
	if err != nil {
		return nil, err
	}
	n := -1
	if len(args) == 3 {
		c, class := classify(args[2])
		if class != integer || !fitsInt(c) {
			return nil, fmt.Errorf("%w: %v for count", ErrArgType, args[2])
		}
		n = int(toInt(c))
	}
	return strings.Replace(s, a[0], a[1], n), nil
}

// Format substitutes replacement fields in format: "{}" takes the next
// positional argument, "{0}" a numbered one, "{name}" a keyword argument.
// "{{" and "}}" produce literal braces.
func Format(format string, args []any, kw Kwargs) (string, error) {
	var b strings.Builder
	next := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '{' && i+1 < len(format) && format[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(format) && format[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unmatched '{' in format", ErrArgType)
			}
			field := format[i+1 : i+end]
			v, err := formatField(field, &next, args, kw)
			if err != nil {
				return "", err
			}
			fmt.Fprint(&b, v)
			i += end
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func formatField(field string, next *int, args []any, kw Kwargs) (any, error) {
	if field == "" {
		if *next >= len(args) {
			return nil, fmt.Errorf("%w: format wants more than %d arguments", ErrIndexOutOfRange, len(args))
		}
		*next++
		return args[*next-1], nil
	}
	if idx, err := strconv.Atoi(field); err == nil {
		if idx < 0 || idx >= len(args) {
			return nil, fmt.Errorf("%w: format field %d", ErrIndexOutOfRange, idx)
		}
		return args[idx], nil
	}
	v, ok := kw[field]
	if !ok {
		return nil, fmt.Errorf("%w: format field %q", ErrKeyNotFound, field)
	}
	return v, nil
}
