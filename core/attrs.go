package core

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Attrs is the attribute bag of an element. Values come either from Go
// callers (typed values) or from decoded documents (strings, numbers, bools,
// maps and slices), so every accessor coerces instead of asserting.
type Attrs map[string]any

// Has reports whether key is present with a non-nil value.
func (a Attrs) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// String returns the value stringified, or "" when absent.
func (a Attrs) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := Scalar(v); ok {
		return s
	}
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// TruthyString is String for truthy values and "" otherwise, so a false or
// zero attribute counts as absent.
func (a Attrs) TruthyString(key string) string {
	if !a.Truthy(key) {
		return ""
	}
	return a.String(key)
}

// Int64 returns the value as a number, or 0 when absent or not numeric.
func (a Attrs) Int64(key string) int64 {
	v, ok := a[key]
	if !ok || v == nil {
		return 0
	}
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int64(f)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return int64(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int64(f)
	}
	return 0
}

// Truthy applies JavaScript truthiness to the value under key: absent, nil,
// false, "", zero and NaN are false, everything else is true.
func (a Attrs) Truthy(key string) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// Decode stores the value under key into dst, which must be a non-nil
// pointer. Values already of dst's type (or a pointer to it) are assigned
// directly; anything else goes through a JSON round trip so decoded maps
// land in typed Bot API structs. Decode reports false, leaving dst
// untouched, when the value is falsy or does not fit.
func (a Attrs) Decode(key string, dst any) bool {
	if !a.Truthy(key) {
		return false
	}
	v := a[key]
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return false
	}
	target := dv.Elem()
	vv := reflect.ValueOf(v)
	if vv.Type().AssignableTo(target.Type()) {
		target.Set(vv)
		return true
	}
	if vv.Kind() == reflect.Pointer && vv.Elem().Type().AssignableTo(target.Type()) {
		target.Set(vv.Elem())
		return true
	}
	data, err := json.Marshal(v)
	if err != nil {
		return false
	}
	tmp := reflect.New(target.Type())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return false
	}
	target.Set(tmp.Elem())
	return true
}

// Without returns a copy of a lacking the given keys.
func (a Attrs) Without(keys ...string) Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Scalar stringifies strings and numbers the way JavaScript's String()
// does. Other values report false.
func Scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case Text:
		return string(x), true
	case json.Number:
		return x.String(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float()), true
	}
	return "", false
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case math.Abs(f) < 1e21 && math.Abs(f) >= 1e-6:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
