// Package format renders parsed show-if expressions.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/showif/showif"
)

// Encoder writes one expression per call to its underlying writer.
type Encoder interface {
	Encode(expr showif.Expr) error
}

// New returns the encoder for the named format: "json" or "yaml".
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

type ruleNode struct {
	Type     string `json:"type" yaml:"type"`
	Question string `json:"question" yaml:"question"`
	Values   []any  `json:"values" yaml:"values"`
	Pos      int    `json:"pos" yaml:"pos"`
	Text     string `json:"text" yaml:"text"`
}

type binaryNode struct {
	Type     string `json:"type" yaml:"type"`
	Operator string `json:"operator" yaml:"operator"`
	Left     any    `json:"left" yaml:"left"`
	Right    any    `json:"right" yaml:"right"`
	Pos      int    `json:"pos" yaml:"pos"`
	Text     string `json:"text" yaml:"text"`
}

// Data converts expr to the plain structure that the encoders marshal.
func Data(expr showif.Expr) any {
	if expr == nil {
		return nil
	}
	return buildNode(expr)
}

func buildNode(expr showif.Expr) any {
	span := expr.Span()
	switch e := expr.(type) {
	case *showif.Condition:
		values := e.Values
		if values == nil {
			values = []any{}
		}
		return &ruleNode{
			Type:     "rule",
			Question: e.Question,
			Values:   values,
			Pos:      span.Pos,
			Text:     span.Text,
		}
	case *showif.BinaryExpression:
		return &binaryNode{
			Type:     "binaryExpression",
			Operator: e.Operator,
			Left:     buildNode(e.Left),
			Right:    buildNode(e.Right),
			Pos:      span.Pos,
			Text:     span.Text,
		}
	default:
		panic(fmt.Sprintf("format: unexpected expression %T", expr))
	}
}
