package lsp

import (
	"fmt"
	"strings"

	"github.com/dhamidi/showif/showif"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func hover(text string, pos protocol.Position) *protocol.Hover {
	expr, err := showif.Parse(text)
	if err != nil {
		return nil
	}

	node := showif.Find(expr, offsetAt(text, pos))
	if node == nil {
		return nil
	}

	var b strings.Builder
	switch n := node.(type) {
	case *showif.Condition:
		fmt.Fprintf(&b, "question `%s`", n.Question)
		if n.Comparison == showif.OpEq {
			fmt.Fprintf(&b, " equals `%s`", formatValue(n.Values[0]))
		} else {
			values := make([]string, len(n.Values))
			for i, v := range n.Values {
				values[i] = formatValue(v)
			}
			fmt.Fprintf(&b, " is one of `[%s]`", strings.Join(values, ", "))
		}
	case *showif.BinaryExpression:
		fmt.Fprintf(&b, "`%s` of %d questions", n.Operator, len(showif.Questions(n)))
	}

	span := node.Span()
	rng := protocol.Range{
		Start: positionAt(text, span.Pos),
		End:   positionAt(text, span.End()),
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: b.String(),
		},
		Range: &rng,
	}
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
