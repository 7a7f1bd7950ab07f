// Package reduce implements the formatting reducer. It walks an element and
// its normalized children and produces either a formatted span (text-style
// kinds) or a structured keyboard node (layout kinds).
package reduce

import (
	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/gaurav-prasanna/tgmarkup/core/format"
	"github.com/gaurav-prasanna/tgmarkup/core/normalize"
)

// Element reduces a whole element tree.
func Element(el *core.Element) core.Node {
	if el == nil {
		return core.Span{}
	}
	return Render(el.Kind, el.Attrs, el.Children)
}

// Render reduces one element. Nested unreduced elements among children are
// reduced first, so the result is the same as evaluating the tree bottom-up.
// Text-style kinds return a core.Span; keyboard, row and button return the
// matching structured node; a fragment holding keyboards returns their merge.
func Render(kind core.Kind, attrs core.Attrs, children any) core.Node {
	nodes := resolve(normalize.Children(children))

	switch kind {
	case core.KindKeyboard:
		return keyboard(attrs, nodes)
	case core.KindRow:
		return row(nodes)
	case core.KindButton:
		return button(attrs, nodes)
	case core.KindFragment:
		if kb := mergeKeyboards(nodes); kb != nil {
			return kb
		}
	}

	text := concat(nodes)

	switch kind {
	case core.KindBold:
		return format.Bold(text)
	case core.KindItalic:
		return format.Italic(text)
	case core.KindUnderline:
		return format.Underline(text)
	case core.KindStrikethrough:
		return format.Strikethrough(text)
	case core.KindSpoiler:
		return format.Spoiler(text)
	case core.KindCode:
		return format.Code(text)
	case core.KindPre:
		return format.Pre(text, attrs.TruthyString("language"))
	case core.KindBlockquote:
		if attrs.Truthy("expandable") {
			return format.ExpandableBlockquote(text)
		}
		return format.Blockquote(text)
	case core.KindExpandableBlockquote:
		return format.ExpandableBlockquote(text)
	case core.KindLink:
		return format.Link(text, attrs.String("href"))
	case core.KindMention:
		return format.Mention(text, core.User{
			ID:        attrs.Int64("id"),
			FirstName: text.String(),
		})
	case core.KindCustomEmoji:
		return format.CustomEmoji(text, attrs.String("emojiId"))
	case core.KindLineBreak:
		return core.Plain("\n")
	case core.KindText:
		if attrs.Has("value") {
			return core.Plain(attrs.String("value"))
		}
		return text
	case core.KindFragment:
		return text
	default:
		return text
	}
}

// resolve reduces nested elements in place of themselves.
func resolve(nodes []core.Node) []core.Node {
	for i, n := range nodes {
		if el, ok := n.(*core.Element); ok {
			nodes[i] = Element(el)
		}
	}
	return nodes
}

// concat folds text and span children left to right. Structured children
// belong to the keyboard channel and contribute nothing.
func concat(nodes []core.Node) core.Span {
	spans := make([]core.Span, 0, len(nodes))
	for _, n := range nodes {
		switch x := n.(type) {
		case core.Text:
			spans = append(spans, core.Plain(string(x)))
		case core.Span:
			spans = append(spans, x)
		}
	}
	return core.Concat(spans...)
}
