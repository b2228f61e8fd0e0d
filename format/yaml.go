package format

import (
	"io"

	"github.com/dhamidi/showif/showif"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w io.Writer
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

// Encode writes expr as a YAML document indented by two spaces.
func (e *YAMLEncoder) Encode(expr showif.Expr) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(Data(expr)); err != nil {
		return err
	}
	return enc.Close()
}
