package core

// Kind names an element kind of the markup tree.
type Kind string

// Text-style kinds.
const (
	KindBold                 Kind = "b"
	KindItalic               Kind = "i"
	KindUnderline            Kind = "u"
	KindStrikethrough        Kind = "s"
	KindSpoiler              Kind = "spoiler"
	KindCode                 Kind = "code"
	KindPre                  Kind = "pre"
	KindBlockquote           Kind = "blockquote"
	KindExpandableBlockquote Kind = "blockquote-expandable"
	KindLink                 Kind = "a"
	KindMention              Kind = "mention"
	KindCustomEmoji          Kind = "custom-emoji"
	KindFragment             Kind = "fragment"
	KindLineBreak            Kind = "br"
	KindText                 Kind = "text"
)

// Structural kinds.
const (
	KindKeyboard Kind = "keyboard"
	KindRow      Kind = "row"
	KindButton   Kind = "button"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBold, KindItalic, KindUnderline, KindStrikethrough, KindSpoiler,
		KindCode, KindPre, KindBlockquote, KindExpandableBlockquote, KindLink,
		KindMention, KindCustomEmoji, KindFragment, KindLineBreak, KindText:
		return true
	}
	return k.Structural()
}

// Structural reports whether k produces a layout node instead of text.
func (k Kind) Structural() bool {
	switch k {
	case KindKeyboard, KindRow, KindButton:
		return true
	}
	return false
}

// NodeType discriminates the members of a canonical child sequence.
type NodeType int

const (
	TextNode NodeType = iota
	SpanNode
	ElementNode
	ButtonNode
	RowNode
	KeyboardNode
)

func (t NodeType) String() string {
	switch t {
	case TextNode:
		return "text"
	case SpanNode:
		return "span"
	case ElementNode:
		return "element"
	case ButtonNode:
		return "button"
	case RowNode:
		return "row"
	case KeyboardNode:
		return "keyboard"
	}
	return "unknown"
}

// Node is one member of a normalized child sequence. The set of
// implementations is closed to this package.
type Node interface {
	NodeType() NodeType
	node()
}

// Text is a plain text run.
type Text string

func (Text) NodeType() NodeType { return TextNode }
func (Text) node()              {}

// Element is an unreduced markup node as handed over by the authoring layer.
// Children may hold anything the normalizer accepts.
type Element struct {
	Kind     Kind
	Attrs    Attrs
	Children any
}

// E builds an element. It mirrors the shape of a JSX call and keeps test
// fixtures and programmatic trees short.
func E(kind Kind, attrs Attrs, children ...any) *Element {
	el := &Element{Kind: kind, Attrs: attrs}
	if len(children) > 0 {
		el.Children = children
	}
	return el
}

func (*Element) NodeType() NodeType { return ElementNode }
func (*Element) node()              {}

// Structural reports whether the node belongs to the keyboard channel.
func Structural(n Node) bool {
	switch n.NodeType() {
	case ButtonNode, RowNode, KeyboardNode:
		return true
	}
	return false
}
