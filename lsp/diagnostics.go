package lsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/dhamidi/showif/rdparse"
	"github.com/dhamidi/showif/showif"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// diagnose parses text and reports the parse error, if any. The range covers
// the word at the error position.
func diagnose(text string) []protocol.Diagnostic {
	_, err := showif.Parse(text)
	if err == nil {
		return nil
	}

	var perr *rdparse.ParseError
	if !errors.As(err, &perr) {
		return []protocol.Diagnostic{newDiagnostic(protocol.Range{}, err.Error())}
	}

	word := strings.IndexFunc(perr.Remainder, unicode.IsSpace)
	if word < 0 {
		word = len(perr.Remainder)
	}
	start := positionAt(text, perr.Pos.Offset)
	end := positionAt(text, perr.Pos.Offset+word)

	message := "unexpected end of input"
	if word > 0 {
		message = fmt.Sprintf("unexpected %q", perr.Remainder[:word])
	}
	return []protocol.Diagnostic{newDiagnostic(protocol.Range{Start: start, End: end}, message)}
}

func newDiagnostic(rng protocol.Range, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// offsetAt converts a zero-based line and UTF-16 character to a byte offset
// into text. Lines past the end map to len(text).
func offsetAt(text string, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}
	return offset + protocol.Position{Character: pos.Character}.IndexIn(text[offset:])
}

// positionAt converts a byte offset into text to a zero-based line and
// UTF-16 character.
func positionAt(text string, offset int) protocol.Position {
	before := text[:offset]
	line := strings.Count(before, "\n")
	col := 0
	for _, r := range before[strings.LastIndexByte(before, '\n')+1:] {
		col += utf16.RuneLen(r)
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(col),
	}
}
