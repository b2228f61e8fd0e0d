package rdparse

// All matches rules in sequence. If any of them fails, All fails as a whole
// and returns its input.
func All(rules ...any) Rule {
	seq := useAll(rules)

	return func(s State) (State, bool) {
		cur := s
		for _, rule := range seq {
			next, ok := rule(cur)
			if !ok {
				return s, false
			}
			cur = next
		}
		return cur, true
	}
}

// Any tries rules in order and returns the result of the first one that
// matches.
func Any(rules ...any) Rule {
	alts := useAll(rules)

	return func(s State) (State, bool) {
		for _, rule := range alts {
			if next, ok := rule(s); ok {
				return next, true
			}
		}
		return s, false
	}
}

// Plus matches rule one or more times.
//
// Repetition stops at the first failure, or after an iteration that moved
// neither the offset nor the stack pointer. A rule that matches empty input
// but pushes a value every time, such as Node(Optional(x), f), still repeats
// without end; grammars must not repeat such rules.
func Plus(rule any) Rule {
	r := Use(rule)

	return func(s State) (State, bool) {
		cur, matched := s, false
		for {
			next, ok := r(cur)
			if !ok {
				break
			}
			progress := next.pos != cur.pos || next.sp != cur.sp
			cur, matched = next, true
			if !progress {
				break
			}
		}
		if !matched {
			return s, false
		}
		return cur, true
	}
}

// Optional matches rule zero or one time. It always matches.
func Optional(rule any) Rule {
	r := Use(rule)

	return func(s State) (State, bool) {
		if next, ok := r(s); ok {
			return next, true
		}
		return s, true
	}
}

// Star matches rule zero or more times. It always matches.
func Star(rule any) Rule {
	return Optional(Plus(rule))
}

// Reducer builds an AST value out of the values a rule pushed while matching
// the input between from and to. Returning nil pushes nothing.
type Reducer func(values []any, from, to State) any

// Node matches rule and replaces everything it pushed onto the value stack
// with the single value returned by reduce.
func Node(rule any, reduce Reducer) Rule {
	r := Use(rule)

	return func(s State) (State, bool) {
		next, ok := r(s)
		if !ok {
			return s, false
		}
		node := reduce(s.p.slice(s.sp, next.sp), s, next)
		next.sp = s.sp
		if node != nil {
			next = next.push(node)
		}
		return next, true
	}
}

// Y builds a recursive rule. The generator receives a rule that refers to
// the rule it is about to return.
//
//	expr := rdparse.Y(func(expr rdparse.Rule) rdparse.Rule {
//	    return rdparse.Any(number, rdparse.All("(", expr, ")"))
//	})
func Y(gen func(self Rule) Rule) Rule {
	var rule Rule
	self := func(s State) (State, bool) {
		return rule(s)
	}
	rule = gen(self)
	return rule
}
