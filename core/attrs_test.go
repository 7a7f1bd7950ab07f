package core

import (
	"encoding/json"
	"math"
	"testing"
)

func TestAttrs_String(t *testing.T) {
	a := Attrs{
		"s":     "x",
		"i":     42,
		"u":     uint64(7),
		"f":     1.5,
		"whole": 3.0,
		"b":     true,
		"nil":   nil,
	}
	tests := map[string]string{
		"s":       "x",
		"i":       "42",
		"u":       "7",
		"f":       "1.5",
		"whole":   "3",
		"b":       "true",
		"nil":     "",
		"missing": "",
	}
	for key, want := range tests {
		if got := a.String(key); got != want {
			t.Errorf("String(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestAttrs_TruthyString(t *testing.T) {
	a := Attrs{"f": false, "z": 0, "e": "", "n": nil, "s": "x", "i": 7, "t": true}
	tests := map[string]string{
		"f": "", "z": "", "e": "", "n": "", "missing": "",
		"s": "x", "i": "7", "t": "true",
	}
	for key, want := range tests {
		if got := a.TruthyString(key); got != want {
			t.Errorf("TruthyString(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestAttrs_Int64(t *testing.T) {
	a := Attrs{
		"int":    int32(5),
		"uint":   uint64(12345678901),
		"float":  2.9,
		"str":    " 77 ",
		"bad":    "abc",
		"num":    json.Number("9"),
		"nan":    math.NaN(),
		"object": map[string]any{"x": 1},
	}
	tests := map[string]int64{
		"int":     5,
		"uint":    12345678901,
		"float":   2,
		"str":     77,
		"bad":     0,
		"num":     9,
		"nan":     0,
		"object":  0,
		"missing": 0,
	}
	for key, want := range tests {
		if got := a.Int64(key); got != want {
			t.Errorf("Int64(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestAttrs_Truthy(t *testing.T) {
	var nilMap map[string]any
	a := Attrs{
		"true":     true,
		"false":    false,
		"empty":    "",
		"str":      "x",
		"zero":     0,
		"one":      uint8(1),
		"nan":      math.NaN(),
		"obj":      map[string]any{},
		"nilMap":   nilMap,
		"struct":   WebAppInfo{},
		"nilValue": nil,
	}
	tests := map[string]bool{
		"true":     true,
		"false":    false,
		"empty":    false,
		"str":      true,
		"zero":     false,
		"one":      true,
		"nan":      false,
		"obj":      true,
		"nilMap":   false,
		"struct":   true,
		"nilValue": false,
		"missing":  false,
	}
	for key, want := range tests {
		if got := a.Truthy(key); got != want {
			t.Errorf("Truthy(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestAttrs_Decode(t *testing.T) {
	t.Run("map", func(t *testing.T) {
		a := Attrs{"webApp": map[string]any{"url": "https://example.com/"}}
		var w *WebAppInfo
		if !a.Decode("webApp", &w) {
			t.Fatal("Decode returned false")
		}
		if w == nil || w.URL != "https://example.com/" {
			t.Errorf("WebApp = %+v, want url https://example.com/", w)
		}
	})

	t.Run("typed value", func(t *testing.T) {
		a := Attrs{"loginUrl": LoginURL{URL: "https://example.com/login", RequestWriteAccess: true}}
		var l *LoginURL
		if !a.Decode("loginUrl", &l) {
			t.Fatal("Decode returned false")
		}
		if l.URL != "https://example.com/login" || !l.RequestWriteAccess {
			t.Errorf("LoginURL = %+v", l)
		}
	})

	t.Run("typed pointer", func(t *testing.T) {
		in := &KeyboardButtonPollType{Type: "quiz"}
		a := Attrs{"requestPoll": in}
		var p *KeyboardButtonPollType
		if !a.Decode("requestPoll", &p) {
			t.Fatal("Decode returned false")
		}
		if p != in {
			t.Error("pointer value was not assigned directly")
		}
	})

	t.Run("falsy", func(t *testing.T) {
		a := Attrs{"webApp": false}
		var w *WebAppInfo
		if a.Decode("webApp", &w) {
			t.Error("Decode of a falsy value returned true")
		}
	})

	t.Run("mismatched field", func(t *testing.T) {
		a := Attrs{"webApp": map[string]any{"url": 5}}
		var w *WebAppInfo
		if a.Decode("webApp", &w) {
			t.Error("Decode of a mismatched map returned true")
		}
		if w != nil {
			t.Errorf("WebApp = %+v, want nil", w)
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		a := Attrs{"webApp": "https://example.com"}
		var w *WebAppInfo
		if a.Decode("webApp", &w) {
			t.Error("Decode of a string into an object returned true")
		}
	})
}

func TestScalar(t *testing.T) {
	tests := []struct {
		in     any
		want   string
		wantOK bool
	}{
		{"x", "x", true},
		{Text("t"), "t", true},
		{-3, "-3", true},
		{0.1, "0.1", true},
		{1e21, "1e+21", true},
		{math.Inf(1), "Infinity", true},
		{true, "", false},
		{nil, "", false},
		{[]string{"a"}, "", false},
	}
	for _, tt := range tests {
		got, ok := Scalar(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Scalar(%#v) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
