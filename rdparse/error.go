package rdparse

import "fmt"

// ParseError reports input that the root rule could not match completely.
type ParseError struct {
	Pos       Position // furthest position scanned
	Remainder string   // input from Pos to the end
	State     State    // state the root rule returned
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unexpected token at %d:%d. Remainder: %s", e.Pos.Line, e.Pos.Column, e.Remainder)
}
