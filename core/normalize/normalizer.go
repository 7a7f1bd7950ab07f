// Package normalize flattens author-supplied children into the canonical
// node sequence that every downstream stage works on. Scalars become text,
// nested sequences are spliced in place, booleans and nil disappear, and
// spans and structured nodes pass through untouched.
package normalize

import (
	"reflect"

	"github.com/gaurav-prasanna/tgmarkup/core"
)

// Children normalizes children. It never fails: values it does not
// recognize contribute nothing.
func Children(children any) []core.Node {
	return appendChildren(nil, children)
}

func appendChildren(dst []core.Node, v any) []core.Node {
	switch x := v.(type) {
	case nil, bool:
		return dst
	case string:
		return append(dst, core.Text(x))
	case core.Text:
		return append(dst, x)
	case core.Span:
		return append(dst, x)
	case *core.Element:
		if x == nil {
			return dst
		}
		return append(dst, x)
	case *core.Button:
		if x == nil {
			return dst
		}
		return append(dst, x)
	case *core.Row:
		if x == nil {
			return dst
		}
		return append(dst, x)
	case *core.Keyboard:
		if x == nil {
			return dst
		}
		return append(dst, x)
	case []any:
		for _, c := range x {
			dst = appendChildren(dst, c)
		}
		return dst
	case []core.Node:
		for _, c := range x {
			dst = appendChildren(dst, c)
		}
		return dst
	}

	if s, ok := core.Scalar(v); ok {
		return append(dst, core.Text(s))
	}

	// Typed slices and arrays from Go callers ([]string, []*core.Element, ...).
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			dst = appendChildren(dst, rv.Index(i).Interface())
		}
	}
	return dst
}
