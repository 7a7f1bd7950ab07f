// Package format provides the formatting primitives: each one applies a
// single Telegram entity over a span of text.
package format

import "github.com/gaurav-prasanna/tgmarkup/core"

// Join concatenates spans in order.
func Join(spans ...core.Span) core.Span { return core.Concat(spans...) }

func Bold(s core.Span) core.Span          { return s.Wrap(core.Entity{Type: core.EntityBold}) }
func Italic(s core.Span) core.Span        { return s.Wrap(core.Entity{Type: core.EntityItalic}) }
func Underline(s core.Span) core.Span     { return s.Wrap(core.Entity{Type: core.EntityUnderline}) }
func Strikethrough(s core.Span) core.Span { return s.Wrap(core.Entity{Type: core.EntityStrikethrough}) }
func Spoiler(s core.Span) core.Span       { return s.Wrap(core.Entity{Type: core.EntitySpoiler}) }
func Code(s core.Span) core.Span          { return s.Wrap(core.Entity{Type: core.EntityCode}) }

// Pre marks a preformatted block. language may be empty.
func Pre(s core.Span, language string) core.Span {
	return s.Wrap(core.Entity{Type: core.EntityPre, Language: language})
}

func Blockquote(s core.Span) core.Span {
	return s.Wrap(core.Entity{Type: core.EntityBlockquote})
}

// ExpandableBlockquote marks a quote collapsed by default.
func ExpandableBlockquote(s core.Span) core.Span {
	return s.Wrap(core.Entity{Type: core.EntityExpandableBlockquote})
}

// Link turns s into a clickable text link to url.
func Link(s core.Span, url string) core.Span {
	return s.Wrap(core.Entity{Type: core.EntityTextLink, URL: url})
}

// Mention links s to a user that may have no username.
func Mention(s core.Span, user core.User) core.Span {
	return s.Wrap(core.Entity{Type: core.EntityTextMention, User: &user})
}

// CustomEmoji renders s as the custom emoji with the given id.
func CustomEmoji(s core.Span, emojiID string) core.Span {
	return s.Wrap(core.Entity{Type: core.EntityCustomEmoji, CustomEmojiID: emojiID})
}
