package showif

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the start production of the reference grammar.
const Start = "Expression"

// EBNFSource is the reference grammar for show-if expressions in the
// notation of golang.org/x/exp/ebnf. Productions with an upper-case name
// correspond to rules of the parser, lower-case ones describe tokens.
//
//go:embed showif.ebnf
var EBNFSource string

// EBNF parses and verifies the reference grammar.
func EBNF() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("showif.ebnf", strings.NewReader(EBNFSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// RuleNames returns the names of the traced rules of the parser, which match
// the upper-case productions of the reference grammar.
func RuleNames() []string {
	return append([]string(nil), ruleNames...)
}
