package showif

import (
	"sort"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

func TestEBNF(t *testing.T) {
	g, err := EBNF()
	if err != nil {
		t.Fatalf("grammar: %v", err)
	}

	var productions []string
	for name := range g {
		if unicode.IsUpper(rune(name[0])) {
			productions = append(productions, name)
		}
	}
	sort.Strings(productions)

	names := RuleNames()
	sort.Strings(names)

	if diff := cmp.Diff(productions, names); diff != "" {
		t.Errorf("productions and parser rules differ (-ebnf +parser):\n%s", diff)
	}
}
