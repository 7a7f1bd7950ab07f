// Package render provides output renderers for compiled messages.
// This file implements the JSON renderer: the sendMessage body minus chat_id.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/gaurav-prasanna/tgmarkup/core/extract"
)

// MessageJSON is the serialized form of a compiled message.
type MessageJSON struct {
	Text        string              `json:"text"`
	Entities    []core.Entity       `json:"entities,omitempty"`
	ReplyMarkup extract.ReplyMarkup `json:"reply_markup,omitempty"`
}

// JSONRenderer produces indented Bot API JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render serializes the text, entities and reply markup of msg.
func (r *JSONRenderer) Render(msg *core.Message) ([]byte, error) {
	if msg == nil {
		return nil, errNilMessage
	}
	out := MessageJSON{
		Text:        msg.Text.String(),
		Entities:    msg.Text.Entities(),
		ReplyMarkup: extract.Keyboard(msg.Keyboard),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
