package rdparse

import "strings"

// Named labels rule for tracing. When the parser was created with WithTrace,
// every attempt to match the rule is logged at debug level together with
// its outcome. Without a tracer Named adds no behavior.
func Named(name string, rule any) Rule {
	r := Use(rule)

	return func(s State) (State, bool) {
		log := s.p.log
		if log == nil {
			return r(s)
		}

		indent := strings.Repeat("  ", s.p.depth)
		at := startPosition(s.p.text, s.pos)
		log.Debugf("%s%s at %s", indent, name, at)

		s.p.depth++
		next, ok := r(s)
		s.p.depth--

		if ok {
			log.Debugf("%s%s matched %q", indent, name, s.Text(next))
		} else {
			log.Debugf("%s%s failed, furthest %s", indent, name, s.p.lastSeen)
		}
		return next, ok
	}
}
