// Package showif parses survey "show if" expressions such as
//
//	question[q.smoker] EQ true AND (question[q.age] IN [18, 19] OR question[q.country] EQ "NZ")
//
// into a small AST. Conditions are combined with AND and OR, which share one
// precedence level and associate to the left; parentheses group.
package showif

// Span locates a node in the source expression.
type Span struct {
	Pos  int    // byte offset of the first character
	Text string // source text of the node
}

// End returns the offset just past the node.
func (s Span) End() int {
	return s.Pos + len(s.Text)
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Pos && offset < s.End()
}

// Expr is a node of a parsed expression: *Condition or *BinaryExpression.
type Expr interface {
	Span() Span
	setSpan(Span)
}

// Literal is a string, number or boolean constant.
type Literal struct {
	Value any // string, float64 or bool
	Raw   string
}

// Condition tests the answer to one question, e.g. question[q.x] IN [1, 2].
// An EQ condition has exactly one value.
type Condition struct {
	Question   string
	Comparison string // OpEq or OpIn
	Values     []any
	span       Span
}

func (c *Condition) Span() Span      { return c.span }
func (c *Condition) setSpan(sp Span) { c.span = sp }

// BinaryExpression joins two expressions with AND or OR.
type BinaryExpression struct {
	Operator string
	Left     Expr
	Right    Expr
	span     Span
}

func (b *BinaryExpression) Span() Span      { return b.span }
func (b *BinaryExpression) setSpan(sp Span) { b.span = sp }

const (
	OpAnd = "AND"
	OpOr  = "OR"
	OpEq  = "EQ"
	OpIn  = "IN"
)

type operator string

type comparison struct {
	op     string
	values []any
}

type arrayLiteral struct {
	elements []*Literal
}
