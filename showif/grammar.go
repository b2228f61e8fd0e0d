package showif

import (
	"strings"
	"unicode"

	"github.com/dhamidi/showif/rdparse"
)

var (
	stringToken   = rdparse.Any(rdparse.Pattern(`('[^'\\]*(?:\\.[^'\\]*)*')`), rdparse.Pattern(`("[^"\\]*(?:\\.[^"\\]*)*")`))
	numberToken   = rdparse.Pattern(`([-+]?[0-9]*\.?[0-9]+)\b`)
	booleanToken  = rdparse.Pattern(`(true|false)\b`)
	questionToken = rdparse.Pattern(`question\[(.*?)\]`)
	operatorToken = rdparse.Pattern(`(AND|OR)`)
	whitespace    = rdparse.Pattern(`\s+`)
)

var expression, ruleNames = build()

func build() (rdparse.Rule, []string) {
	var names []string
	named := func(name string, rule any) rdparse.Rule {
		names = append(names, name)
		return rdparse.Named(name, rule)
	}

	expr := rdparse.Y(func(self rdparse.Rule) rdparse.Rule {
		stringLiteral := rdparse.Node(stringToken, func(v []any, from, to rdparse.State) any {
			raw := v[0].(string)
			value, err := unquote(raw)
			if err != nil {
				value = raw
			}
			return &Literal{Value: value, Raw: raw}
		})

		numberLiteral := rdparse.Node(numberToken, func(v []any, from, to rdparse.State) any {
			raw := v[0].(string)
			n, _ := parseNumber(raw)
			return &Literal{Value: n, Raw: raw}
		})

		booleanLiteral := rdparse.Node(booleanToken, func(v []any, from, to rdparse.State) any {
			raw := v[0].(string)
			return &Literal{Value: raw == "true", Raw: raw}
		})

		literal := named("Literal", rdparse.Any(stringLiteral, numberLiteral, booleanLiteral))

		array := named("Array", rdparse.Node(
			rdparse.All("[", rdparse.Any("]", rdparse.All(literal, rdparse.Star(rdparse.All(",", literal)), "]"))),
			func(v []any, from, to rdparse.State) any {
				arr := &arrayLiteral{elements: make([]*Literal, len(v))}
				for i, e := range v {
					arr.elements[i] = e.(*Literal)
				}
				return arr
			},
		))

		equals := named("Equals", rdparse.Node(rdparse.All("EQ", literal), func(v []any, from, to rdparse.State) any {
			return comparison{op: OpEq, values: []any{v[0].(*Literal).Value}}
		}))

		in := named("In", rdparse.Node(rdparse.All("IN", array), func(v []any, from, to rdparse.State) any {
			elements := v[0].(*arrayLiteral).elements
			values := make([]any, len(elements))
			for i, e := range elements {
				values[i] = e.Value
			}
			return comparison{op: OpIn, values: values}
		}))

		condition := named("Condition", rdparse.Node(
			rdparse.All(named("Question", questionToken), rdparse.Any(equals, in)),
			func(v []any, from, to rdparse.State) any {
				c := v[1].(comparison)
				return &Condition{
					Question:   v[0].(string),
					Comparison: c.op,
					Values:     c.values,
					span:       spanOf(from, to),
				}
			},
		))

		op := named("Operator", rdparse.Node(operatorToken, func(v []any, from, to rdparse.State) any {
			return operator(v[0].(string))
		}))

		primary := named("Primary", rdparse.Node(
			rdparse.Any(condition, rdparse.All("(", self, ")")),
			func(v []any, from, to rdparse.State) any {
				e := v[0].(Expr)
				e.setSpan(spanOf(from, to))
				return e
			},
		))

		return named("Expression", rdparse.Node(rdparse.All(primary, rdparse.Star(rdparse.All(op, primary))), leftToRight))
	})

	return rdparse.Ignore(whitespace, expr), names
}

// leftToRight folds primary (operator primary)* into left-associative
// binary expressions.
func leftToRight(v []any, from, to rdparse.State) any {
	left := v[0].(Expr)
	for i := 1; i+1 < len(v); i += 2 {
		right := v[i+1].(Expr)
		start, end := left.Span().Pos, right.Span().End()
		left = &BinaryExpression{
			Operator: string(v[i].(operator)),
			Left:     left,
			Right:    right,
			span:     Span{Pos: start, Text: from.Source()[start:end]},
		}
	}
	return left
}

// spanOf returns the span matched between two states, without the
// whitespace skipped before the first token.
func spanOf(from, to rdparse.State) Span {
	text := from.Text(to)
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	return Span{
		Pos:  from.Offset() + len(text) - len(trimmed),
		Text: trimmed,
	}
}

// Grammar returns the root rule for show-if expressions, whitespace
// skipping included.
func Grammar() rdparse.Rule {
	return expression
}

// NewParser returns a parser for show-if expressions.
func NewParser(opts ...rdparse.Option) *rdparse.Parser {
	return rdparse.New(expression, opts...)
}

var (
	parser        = NewParser()
	partialParser = NewParser(rdparse.WithPartial())
)

// Parse parses a complete expression. Errors are of type *rdparse.ParseError.
func Parse(text string) (Expr, error) {
	return rdparse.ParseAs[Expr](parser, text)
}

// ParsePartial parses the longest expression at the start of text and ignores
// whatever follows it.
func ParsePartial(text string) (Expr, error) {
	return rdparse.ParseAs[Expr](partialParser, text)
}
