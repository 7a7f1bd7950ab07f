// Package source loads markup trees from YAML or JSON documents.
//
// A document is either a single element (the message text) or a mapping
// with the keys text and reply_markup, each holding an element:
//
//	text:
//	  kind: fragment
//	  children:
//	    - "Hello, "
//	    - {kind: b, children: world}
//	reply_markup:
//	  kind: keyboard
//	  inline: true
//	  children:
//	    - kind: row
//	      children:
//	        - {kind: button, callbackData: hi, children: Wave}
//
// Element mappings carry kind, optional children and any other keys as
// attributes. A bare string document is plain text.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/gaurav-prasanna/tgmarkup/core/reduce"
	"github.com/goccy/go-yaml"
)

const (
	keyKind        = "kind"
	keyChildren    = "children"
	keyText        = "text"
	keyReplyMarkup = "reply_markup"
)

var ErrEmpty = errors.New("source: empty document")

// Document is a parsed source file.
type Document struct {
	Path        string
	Text        *core.Element
	ReplyMarkup *core.Element
}

// Compile reduces the document into a message.
func (d *Document) Compile() (*core.Message, error) {
	msg, err := reduce.Message(d.Text, d.ReplyMarkup)
	if err != nil && d.Path != "" {
		return nil, fmt.Errorf("%s: %w", d.Path, err)
	}
	return msg, err
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: load: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a YAML or JSON document.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("source: parse: %s", yaml.FormatError(err, false, true))
	}
	if raw == nil {
		return nil, ErrEmpty
	}

	switch v := plain(raw).(type) {
	case string:
		return &Document{Text: core.E(core.KindFragment, nil, v)}, nil
	case map[string]any:
		if _, ok := v[keyKind]; ok {
			el, err := element(v, keyText)
			if err != nil {
				return nil, err
			}
			return &Document{Text: el}, nil
		}
		return document(v)
	default:
		return nil, fmt.Errorf("source: document must be a mapping or a string, got %T", raw)
	}
}

func document(m map[string]any) (*Document, error) {
	doc := &Document{}
	for key, v := range m {
		switch key {
		case keyText:
			el, err := root(v, keyText)
			if err != nil {
				return nil, err
			}
			doc.Text = el
		case keyReplyMarkup:
			el, err := root(v, keyReplyMarkup)
			if err != nil {
				return nil, err
			}
			doc.ReplyMarkup = el
		default:
			return nil, fmt.Errorf("source: unexpected top-level key %q", key)
		}
	}
	if doc.Text == nil && doc.ReplyMarkup == nil {
		return nil, ErrEmpty
	}
	return doc, nil
}

// root accepts an element mapping or, for text, a scalar or list that is
// wrapped in a fragment.
func root(v any, path string) (*core.Element, error) {
	if m, ok := v.(map[string]any); ok {
		return element(m, path)
	}
	if path == keyText {
		children, err := convert(v, path)
		if err != nil {
			return nil, err
		}
		return core.E(core.KindFragment, nil, children), nil
	}
	return nil, fmt.Errorf("source: %s: expected an element mapping, got %T", path, v)
}

func element(m map[string]any, path string) (*core.Element, error) {
	name, ok := m[keyKind].(string)
	if !ok {
		return nil, fmt.Errorf("source: %s: kind must be a string", path)
	}
	kind := core.Kind(name)
	if !kind.Valid() {
		slog.Warn("unknown kind, keeping its text", "component", "source", "kind", name, "path", path)
	}
	path = path + "." + name

	var attrs core.Attrs
	for key, v := range m {
		if key == keyKind || key == keyChildren {
			continue
		}
		if attrs == nil {
			attrs = core.Attrs{}
		}
		attrs[key] = v
	}

	el := &core.Element{Kind: kind, Attrs: attrs}
	if children, ok := m[keyChildren]; ok {
		converted, err := convert(children, path)
		if err != nil {
			return nil, err
		}
		el.Children = converted
	}
	return el, nil
}

// convert turns nested element mappings into elements. Scalars and lists
// are kept for the normalizer.
func convert(v any, path string) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		if _, ok := v[keyKind]; !ok {
			return nil, fmt.Errorf("source: %s: child mapping without kind", path)
		}
		return element(v, path)
	case []any:
		out := make([]any, len(v))
		for i, c := range v {
			converted, err := convert(c, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return v, nil
	}
}

// plain rewrites decoded mappings so every key is a string.
func plain(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, x := range v {
			v[k] = plain(x)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, x := range v {
			out[fmt.Sprint(k)] = plain(x)
		}
		return out
	case []any:
		for i, x := range v {
			v[i] = plain(x)
		}
		return v
	default:
		return v
	}
}
