package rdparse

import (
	"fmt"
	"regexp"
	"strings"
)

// String matches the literal lit.
func String(lit string) Rule {
	return func(s State) (State, bool) {
		next := s.skip()
		if !strings.HasPrefix(next.p.text[next.pos:], lit) {
			return s, false
		}
		next.pos += len(lit)
		return next, true
	}
}

// Pattern compiles expr and matches it with Regexp. It panics if expr is not
// a valid regular expression.
func Pattern(expr string) Rule {
	return Regexp(regexp.MustCompile(expr))
}

// Regexp matches re anchored at the current offset. Every capture group is
// pushed onto the value stack as a string, in order; groups that did not
// participate push "".
func Regexp(re *regexp.Regexp) Rule {
	anchored := regexp.MustCompile(`^(?:` + re.String() + `)`)
	groups := anchored.NumSubexp()

	return func(s State) (State, bool) {
		next := s.skip()
		rest := next.p.text[next.pos:]
		loc := anchored.FindStringSubmatchIndex(rest)
		if loc == nil {
			return s, false
		}
		for i := 1; i <= groups; i++ {
			var capture string
			if loc[2*i] >= 0 {
				capture = rest[loc[2*i]:loc[2*i+1]]
			}
			next = next.push(capture)
		}
		next.pos += loc[1]
		return next, true
	}
}

// Use converts a rule specification to a Rule. It accepts a Rule, a function
// with the Rule signature, a *regexp.Regexp, or a string, which is matched
// literally. Any other value is a programming error and Use panics.
func Use(rule any) Rule {
	switch r := rule.(type) {
	case Rule:
		if r == nil {
			panic("rdparse: nil rule")
		}
		return r
	case func(State) (State, bool):
		if r == nil {
			panic("rdparse: nil rule")
		}
		return r
	case *regexp.Regexp:
		return Regexp(r)
	case string:
		return String(r)
	default:
		panic(fmt.Sprintf("rdparse: invalid rule of type %T", rule))
	}
}

func useAll(rules []any) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Use(r)
	}
	return out
}
