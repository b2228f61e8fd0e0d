package rdparse

import (
	"fmt"

	"github.com/tliron/commonlog"
)

type Option func(*Parser)

// WithStart makes parsing begin at the given byte offset instead of 0.
func WithStart(offset int) Option {
	return func(p *Parser) {
		p.start = offset
	}
}

// WithPartial accepts matches that leave trailing input unconsumed.
func WithPartial() Option {
	return func(p *Parser) {
		p.partial = true
	}
}

// WithTrace logs the progress of Named rules to log.
func WithTrace(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser runs a root rule over complete input texts. A Parser holds no
// per-parse state and may be used from several goroutines.
type Parser struct {
	root    Rule
	start   int
	partial bool
	log     commonlog.Logger
}

// New creates a parser for root, which may be any value accepted by Use.
func New(root any, opts ...Option) *Parser {
	p := &Parser{root: Use(root)}
	for _, opt := range opts {
		opt(p)
	}
	if p.start < 0 {
		p.start = 0
	}
	return p
}

// Parse matches text against the root rule and returns the value on top of
// the value stack: the AST root. It returns a *ParseError if the root rule
// does not match, or if it leaves input unconsumed and the parser is not
// partial.
func (p *Parser) Parse(text string) (any, error) {
	start := min(p.start, len(text))
	s := newState(text, start, p.log)

	next, ok := p.root(s)
	if !ok || (!p.partial && next.pos < len(text)) {
		last := s.p.lastSeen
		return nil, &ParseError{
			Pos:       last,
			Remainder: text[last.Offset:],
			State:     next,
		}
	}

	if next.sp == 0 {
		return nil, nil
	}
	return s.p.stack[0], nil
}

// ParseAs parses text with p and asserts the AST root to T.
func ParseAs[T any](p *Parser, text string) (T, error) {
	var zero T
	v, err := p.Parse(text)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("parse result is %T, not %T", v, zero)
	}
	return t, nil
}
