package rdparse

// Ignore runs rule with skip installed as the active skip rule. Token rules
// inside the scope drain every repetition of skip before they match. A nil
// skip disables skipping for the scope. Input matched by skip at the end of
// the scope is consumed as well.
func Ignore(skip any, rule any) Rule {
	inner := Use(rule)

	var skipper Rule
	if !isNil(skip) {
		skipper = Ignore(nil, Plus(skip))
	}

	return func(s State) (State, bool) {
		s.p.ignore = append(s.p.ignore, skipper)
		next, ok := inner(s)
		if ok {
			next = next.skip()
		} else {
			s.skip()
		}
		s.p.ignore = s.p.ignore[:len(s.p.ignore)-1]
		return next, ok
	}
}

// skip applies the innermost skip rule, if any, and records the furthest
// position reached.
func (s State) skip() State {
	if n := len(s.p.ignore); n > 0 {
		if skipper := s.p.ignore[n-1]; skipper != nil {
			if next, ok := skipper(s); ok {
				s.pos = next.pos
			}
		}
	}
	s.p.see(s.pos)
	return s
}

func isNil(rule any) bool {
	switch r := rule.(type) {
	case nil:
		return true
	case Rule:
		return r == nil
	}
	return false
}
