package extract

// builder accumulates buttons into rows. It lives for one Keyboard call.
type builder[B any] struct {
	rows    [][]B
	current []B
}

func (b *builder[B]) add(btn B) {
	b.current = append(b.current, btn)
}

// row commits the current row. An empty row is not committed.
func (b *builder[B]) row() {
	if len(b.current) == 0 {
		return
	}
	b.rows = append(b.rows, b.current)
	b.current = nil
}

// build returns the committed rows plus any pending one, never nil.
func (b *builder[B]) build() [][]B {
	b.row()
	if b.rows == nil {
		return [][]B{}
	}
	return b.rows
}
