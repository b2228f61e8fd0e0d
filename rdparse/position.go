package rdparse

import "fmt"

// Position is a location in the source text.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in bytes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// advance moves p forward to offset, counting newlines in text on the way.
// It never moves backwards.
func (p Position) advance(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	for p.Offset < offset {
		if text[p.Offset] == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Offset++
	}
	return p
}

func startPosition(text string, offset int) Position {
	return Position{Line: 1, Column: 1}.advance(text, offset)
}
