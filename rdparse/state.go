package rdparse

import "github.com/tliron/commonlog"

// Rule matches input at the offset of the given state.
//
// On a match it returns the advanced state and true. Otherwise it returns the
// state it was given and false.
type Rule func(State) (State, bool)

// shared is the mutable storage of one parse. Every State derived from the
// initial one points at the same instance.
type shared struct {
	text     string
	stack    []any
	ignore   []Rule
	lastSeen Position
	log      commonlog.Logger
	depth    int
}

// State is the parse state threaded through every rule.
type State struct {
	pos int
	sp  int
	p   *shared
}

func newState(text string, pos int, log commonlog.Logger) State {
	return State{
		pos: pos,
		p: &shared{
			text:     text,
			lastSeen: startPosition(text, pos),
			log:      log,
		},
	}
}

// Source returns the complete input text.
func (s State) Source() string {
	return s.p.text
}

// Offset returns the byte offset of the next unconsumed character.
func (s State) Offset() int {
	return s.pos
}

// StackPointer returns the number of live entries on the value stack.
func (s State) StackPointer() int {
	return s.sp
}

// Values returns a copy of the live portion of the value stack.
func (s State) Values() []any {
	return s.p.slice(0, s.sp)
}

// LastSeen returns the furthest position scanned so far by any rule of this
// parse. It does not depend on s.
func (s State) LastSeen() Position {
	return s.p.lastSeen
}

// Text returns the source between s and a later state.
func (s State) Text(to State) string {
	if to.pos < s.pos {
		return ""
	}
	return s.p.text[s.pos:to.pos]
}

// Remainder returns the unconsumed input.
func (s State) Remainder() string {
	return s.p.text[s.pos:]
}

func (p *shared) set(i int, v any) {
	if i < len(p.stack) {
		p.stack[i] = v
		return
	}
	p.stack = append(p.stack, v)
}

func (p *shared) slice(from, to int) []any {
	values := make([]any, to-from)
	copy(values, p.stack[from:to])
	return values
}

func (p *shared) see(pos int) {
	if pos > p.lastSeen.Offset {
		p.lastSeen = p.lastSeen.advance(p.text, pos)
	}
}

// push stores v at the stack pointer and returns the state past it.
func (s State) push(v any) State {
	s.p.set(s.sp, v)
	s.sp++
	return s
}
