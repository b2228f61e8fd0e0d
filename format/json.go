package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/showif/showif"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(expr showif.Expr) error {
	text, err := json.MarshalIndent(Data(expr), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}
