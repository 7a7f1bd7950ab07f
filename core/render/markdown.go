// Package render — Markdown renderer.
// Produces a readable preview: the text converted from its HTML form,
// followed by the keyboard as a list of rows.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/gaurav-prasanna/tgmarkup/core/extract"
)

// MarkdownRenderer writes a Markdown preview of a message.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts msg into Markdown.
func (r *MarkdownRenderer) Render(msg *core.Message) ([]byte, error) {
	if msg == nil {
		return nil, errNilMessage
	}
	src, err := serialize(Tree(msg.Text, true))
	if err != nil {
		return nil, err
	}
	markdown, err := htmltomarkdown.ConvertString(src)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(markdown))
	b.WriteString("\n")
	if msg.Keyboard != nil {
		writeKeyboard(&b, msg.Keyboard)
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// writeKeyboard lists each committed row as one item, buttons annotated
// with the capability they are sent with. Dropped buttons are left out.
func writeKeyboard(b *strings.Builder, kb *core.Keyboard) {
	mode := "Reply keyboard"
	if kb.Inline {
		mode = "Inline keyboard"
	}
	fmt.Fprintf(b, "\n---\n\n**%s**\n\n", mode)

	for _, row := range KeyboardRows(kb) {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, fmt.Sprintf("`[%s]` (%s)", c.Text, c.Capability))
		}
		fmt.Fprintf(b, "- %s\n", strings.Join(cells, " "))
	}
}

// Cell is one button as it would be sent.
type Cell struct {
	Text       string
	Capability string
}

// KeyboardRows lays kb out the way extract.Keyboard commits it: inline
// buttons without an action are dropped and empty rows are skipped.
func KeyboardRows(kb *core.Keyboard) [][]Cell {
	var rows [][]Cell
	for _, r := range kb.Rows {
		if r == nil {
			continue
		}
		var row []Cell
		for _, btn := range r.Buttons {
			capability := extract.Capability(btn, kb.Inline)
			if capability == "" {
				continue
			}
			row = append(row, Cell{Text: btn.Text, Capability: capability})
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
