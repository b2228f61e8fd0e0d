package rdparse

import "testing"

var ws = Pattern(`\s+`)

func TestIgnore(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		text string
		ok   bool
		end  int
	}{
		{"skips before tokens", Ignore(ws, All("a", "b")), "  a \n b", true, 7},
		{"drains trailing input", Ignore(ws, All("a", "b")), "a b   ", true, 6},
		{"nil disables skipping", Ignore(ws, All("a", Ignore(nil, All("b", "c")))), "a bc", false, 0},
		{"nil scope still tokenizes", Ignore(ws, All("a", Ignore(nil, All("b", "c")))), "abc  ", true, 5},
		{"inner scope shadows outer", Ignore(ws, Ignore(Pattern(`-+`), All("a", "b"))), "a b", false, 0},
		{"inner scope applies", Ignore(ws, Ignore(Pattern(`-+`), All("a", "b"))), "a--b", true, 4},
		{"skip rule accepts literals", Ignore(".", All("a", "b")), "..a.b", true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := start(tt.text)
			next, ok := tt.rule(s)
			if ok != tt.ok {
				t.Fatalf("match = %v, want %v", ok, tt.ok)
			}
			if next.Offset() != tt.end {
				t.Errorf("offset = %d, want %d", next.Offset(), tt.end)
			}
			if n := len(s.p.ignore); n != 0 {
				t.Errorf("ignore stack left with %d entries", n)
			}
		})
	}
}

func TestIgnoreFailureKeepsInputOffset(t *testing.T) {
	s := start("   x")
	next, ok := Ignore(ws, "a")(s)
	if ok {
		t.Fatal("unexpected match")
	}
	if next.Offset() != 0 {
		t.Errorf("offset = %d, want 0", next.Offset())
	}
	if got := s.LastSeen().Offset; got != 3 {
		t.Errorf("last seen offset = %d, want 3", got)
	}
}

func TestSkipRuleValuesAreDiscarded(t *testing.T) {
	next, ok := Ignore(Pattern(`(\s)`), Pattern(`(a)`))(start("  a"))
	if !ok {
		t.Fatal("expected match")
	}
	if next.StackPointer() != 1 || next.Values()[0] != "a" {
		t.Errorf("values = %v, want [a]", next.Values())
	}
}
