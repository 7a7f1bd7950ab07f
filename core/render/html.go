// Package render — HTML renderer.
// Rebuilds entity ranges into a nested element tree and serializes it in the
// Telegram HTML parse-mode dialect.
package render

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/tgmarkup/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var errNilMessage = errors.New("render: nil message")

// HTMLRenderer writes the message text as Telegram HTML. Keyboards have no
// HTML form and are not rendered.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render converts msg.Text into Telegram HTML.
func (r *HTMLRenderer) Render(msg *core.Message) ([]byte, error) {
	if msg == nil {
		return nil, errNilMessage
	}
	s, err := HTML(msg.Text)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// HTML serializes span as Telegram HTML.
func HTML(span core.Span) (string, error) {
	return serialize(Tree(span, false))
}

func serialize(root *html.Node) (string, error) {
	out, err := goquery.NewDocumentFromNode(root).Html()
	if err != nil {
		return "", fmt.Errorf("serializing HTML: %w", err)
	}
	return out, nil
}

// Tree builds a document node whose children mirror the entities of span.
// Entities are nested by range; one that only partially overlaps an earlier
// sibling is clipped to the free part. With breaks set, newlines outside pre
// blocks become <br> elements.
func Tree(span core.Span, breaks bool) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	units := utf16.Encode([]rune(span.String()))

	entities := span.Entities()
	order := make([]int, len(entities))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ea, eb := entities[a], entities[b]
		if ea.Offset != eb.Offset {
			return ea.Offset - eb.Offset
		}
		return eb.Length - ea.Length
	})
	sorted := make([]core.Entity, len(order))
	for i, idx := range order {
		sorted[i] = entities[idx]
	}

	b := &treeBuilder{units: units, breaks: breaks}
	b.build(root, sorted, 0, len(units), false)
	return root
}

type treeBuilder struct {
	units  []uint16
	breaks bool
}

func (b *treeBuilder) build(parent *html.Node, entities []core.Entity, start, end int, inPre bool) {
	cursor := start
	for i := 0; i < len(entities); {
		e := entities[i]
		from := min(max(e.Offset, cursor), end)
		to := min(max(e.End(), from), end)

		j := i + 1
		for j < len(entities) && entities[j].Offset < to {
			j++
		}

		b.text(parent, cursor, from, inPre)
		outer, inner := element(e)
		parent.AppendChild(outer)
		b.build(inner, entities[i+1:j], from, to, inPre || e.Type == core.EntityPre)

		cursor = to
		i = j
	}
	b.text(parent, cursor, end, inPre)
}

func (b *treeBuilder) text(parent *html.Node, from, to int, inPre bool) {
	if from >= to {
		return
	}
	s := string(utf16.Decode(b.units[from:to]))
	if !b.breaks || inPre {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: s})
		return
	}
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			parent.AppendChild(newElement("br"))
		}
		if line != "" {
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		}
	}
}

// element returns the node for e and the node its content goes into.
func element(e core.Entity) (outer, inner *html.Node) {
	var n *html.Node
	switch e.Type {
	case core.EntityBold:
		n = newElement("b")
	case core.EntityItalic:
		n = newElement("i")
	case core.EntityUnderline:
		n = newElement("u")
	case core.EntityStrikethrough:
		n = newElement("s")
	case core.EntitySpoiler:
		n = newElement("tg-spoiler")
	case core.EntityCode:
		n = newElement("code")
	case core.EntityPre:
		n = newElement("pre")
		if e.Language != "" {
			code := newElement("code", html.Attribute{Key: "class", Val: "language-" + e.Language})
			n.AppendChild(code)
			return n, code
		}
	case core.EntityBlockquote:
		n = newElement("blockquote")
	case core.EntityExpandableBlockquote:
		n = newElement("blockquote", html.Attribute{Key: "expandable"})
	case core.EntityTextLink:
		n = newElement("a", html.Attribute{Key: "href", Val: e.URL})
	case core.EntityTextMention:
		var id int64
		if e.User != nil {
			id = e.User.ID
		}
		n = newElement("a", html.Attribute{Key: "href", Val: "tg://user?id=" + strconv.FormatInt(id, 10)})
	case core.EntityCustomEmoji:
		n = newElement("tg-emoji", html.Attribute{Key: "emoji-id", Val: e.CustomEmojiID})
	default:
		n = newElement("span")
	}
	return n, n
}

func newElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}
