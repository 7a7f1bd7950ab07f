// Package chunk splits formatted text into parts that fit the Bot API
// message length limit. Lengths are counted in UTF-16 code units, the unit
// used by entity offsets.
package chunk

import (
	"unicode/utf16"

	"github.com/gaurav-prasanna/tgmarkup/core"
)

// MaxMessageLength is the longest text sendMessage accepts.
const MaxMessageLength = 4096

// Chunker splits spans into parts of at most Limit code units.
type Chunker struct {
	Limit int
}

// New creates a Chunker with the given limit.
// Defaults to MaxMessageLength if limit <= 0.
func New(limit int) *Chunker {
	if limit <= 0 {
		limit = MaxMessageLength
	}
	return &Chunker{Limit: limit}
}

// Chunk splits span. Cuts fall after the last newline in the window, else
// after the last space, else at the limit; a surrogate pair is never cut.
// Entities are clipped to each part and rebased. A span within the limit is
// returned as its only part.
func (c *Chunker) Chunk(span core.Span) []core.Span {
	if span.Len() <= c.Limit {
		return []core.Span{span}
	}

	units := utf16.Encode([]rune(span.String()))
	entities := span.Entities()

	var parts []core.Span
	for start := 0; start < len(units); {
		end := c.cut(units, start)
		parts = append(parts, core.NewSpan(
			string(utf16.Decode(units[start:end])),
			clip(entities, start, end, end == len(units))...,
		))
		start = end
	}
	return parts
}

func (c *Chunker) cut(units []uint16, start int) int {
	end := start + c.Limit
	if end >= len(units) {
		return len(units)
	}
	if utf16.IsSurrogate(rune(units[end-1])) && units[end-1] < 0xDC00 && end-1 > start {
		end--
	}
	for _, sep := range []uint16{'\n', ' '} {
		for i := end; i > start+1; i-- {
			if units[i-1] == sep {
				return i
			}
		}
	}
	return end
}

func clip(entities []core.Entity, start, end int, last bool) []core.Entity {
	var out []core.Entity
	for _, e := range entities {
		if e.Length == 0 {
			if e.Offset >= start && (e.Offset < end || last && e.Offset == end) {
				e.Offset -= start
				out = append(out, e)
			}
			continue
		}
		from, to := max(e.Offset, start), min(e.End(), end)
		if to <= from {
			continue
		}
		e.Offset, e.Length = from-start, to-from
		out = append(out, e)
	}
	return out
}
