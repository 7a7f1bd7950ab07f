// Package core defines the data model and stage interfaces of tgmarkup.
// The pure stages (normalize, reduce, extract) live in subpackages and work
// on these types; renderers and senders sit behind the interfaces below.
package core

import "context"

// Message is a compiled outbound message: formatted text plus an optional
// keyboard.
type Message struct {
	Text     Span
	Keyboard *Keyboard
}

// Renderer converts a compiled message into a final output format.
type Renderer interface {
	Render(msg *Message) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}

// Sender delivers a compiled message to a chat and returns the message id.
type Sender interface {
	Send(ctx context.Context, chatID int64, msg *Message) (int64, error)
}
