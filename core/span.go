package core

import "unicode/utf16"

// EntityType is a Bot API MessageEntity type.
type EntityType string

const (
	EntityBold                 EntityType = "bold"
	EntityItalic               EntityType = "italic"
	EntityUnderline            EntityType = "underline"
	EntityStrikethrough        EntityType = "strikethrough"
	EntitySpoiler              EntityType = "spoiler"
	EntityCode                 EntityType = "code"
	EntityPre                  EntityType = "pre"
	EntityBlockquote           EntityType = "blockquote"
	EntityExpandableBlockquote EntityType = "expandable_blockquote"
	EntityTextLink             EntityType = "text_link"
	EntityTextMention          EntityType = "text_mention"
	EntityCustomEmoji          EntityType = "custom_emoji"
)

// Entity is one formatting run. Offset and Length count UTF-16 code units.
// See https://core.telegram.org/bots/api#messageentity
type Entity struct {
	Type          EntityType `json:"type"`
	Offset        int        `json:"offset"`
	Length        int        `json:"length"`
	URL           string     `json:"url,omitempty"`
	User          *User      `json:"user,omitempty"`
	Language      string     `json:"language,omitempty"`
	CustomEmojiID string     `json:"custom_emoji_id,omitempty"`
}

// End returns the offset just past the entity.
func (e Entity) End() int { return e.Offset + e.Length }

// Span is an immutable formatted-text value: plain text plus the entities
// applied over it. Entities are kept ordered by offset, enclosing entities
// before the ones they contain.
type Span struct {
	text     string
	entities []Entity
}

// Plain returns an unformatted span.
func Plain(s string) Span { return Span{text: s} }

// NewSpan builds a span from text and entities. The entities are copied.
func NewSpan(text string, entities ...Entity) Span {
	return Span{text: text, entities: append([]Entity(nil), entities...)}
}

func (Span) NodeType() NodeType { return SpanNode }
func (Span) node()              {}

// String returns the plain text.
func (s Span) String() string { return s.text }

// Entities returns a copy of the entities.
func (s Span) Entities() []Entity {
	if len(s.entities) == 0 {
		return nil
	}
	return append([]Entity(nil), s.entities...)
}

// Len is the text length in UTF-16 code units.
func (s Span) Len() int { return UTF16Len(s.text) }

// IsZero reports whether the span has neither text nor entities.
func (s Span) IsZero() bool { return s.text == "" && len(s.entities) == 0 }

// Wrap returns the span with e applied over the whole text. Offset and
// Length of e are overwritten.
func (s Span) Wrap(e Entity) Span {
	e.Offset = 0
	e.Length = s.Len()
	entities := make([]Entity, 0, len(s.entities)+1)
	entities = append(entities, e)
	entities = append(entities, s.entities...)
	return Span{text: s.text, entities: entities}
}

// Concat joins spans left to right, shifting entity offsets.
func Concat(spans ...Span) Span {
	switch len(spans) {
	case 0:
		return Span{}
	case 1:
		return spans[0]
	}
	var (
		text     []byte
		entities []Entity
		offset   int
	)
	for _, s := range spans {
		text = append(text, s.text...)
		for _, e := range s.entities {
			e.Offset += offset
			entities = append(entities, e)
		}
		offset += s.Len()
	}
	return Span{text: string(text), entities: entities}
}

// UTF16Len counts the UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
