package reduce

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/tgmarkup/core"
)

var (
	ErrNotText     = errors.New("element does not reduce to text")
	ErrNotKeyboard = errors.New("element does not reduce to a keyboard")
)

// Message compiles a text tree and an optional keyboard tree into a message.
// Either tree may be nil.
func Message(text, markup *core.Element) (*core.Message, error) {
	msg := &core.Message{}

	if text != nil {
		span, ok := Element(text).(core.Span)
		if !ok {
			return nil, fmt.Errorf("text %q: %w", text.Kind, ErrNotText)
		}
		msg.Text = span
	}

	if markup != nil {
		kb, ok := Element(markup).(*core.Keyboard)
		if !ok {
			return nil, fmt.Errorf("reply_markup %q: %w", markup.Kind, ErrNotKeyboard)
		}
		msg.Keyboard = kb
	}

	return msg, nil
}
