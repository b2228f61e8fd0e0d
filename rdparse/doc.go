// Package rdparse provides a backtracking recursive-descent parsing engine
// built from composable combinators.
//
// # Overview
//
// A grammar is a tree of [Rule] values. Token rules ([String], [Pattern],
// [Regexp]) consume input; combinators ([All], [Any], [Plus], [Optional],
// [Star], [Node], [Ignore], [Y]) build larger rules out of smaller ones.
// A [Parser] runs the root rule over an input text and returns the value
// left in the first slot of the value stack.
//
//	number := rdparse.Node(rdparse.Pattern(`([0-9]+)`), func(v []any, from, to rdparse.State) any {
//	    n, _ := strconv.Atoi(v[0].(string))
//	    return n
//	})
//	list := rdparse.Node(rdparse.All("[", number, rdparse.Star(rdparse.All(",", number)), "]"),
//	    func(v []any, from, to rdparse.State) any { return v })
//	p := rdparse.New(rdparse.Ignore(rdparse.Pattern(`\s+`), list))
//	ast, err := p.Parse("[1, 2, 3]")
//
// # Match Protocol
//
// Every rule has the signature
//
//	func(State) (State, bool)
//
// A rule that does not match returns its input unchanged together with
// false. A rule that matches returns the advanced state and true, even
// when it consumed nothing. [State] is a small value: a rule can never
// disturb the state its caller holds.
//
// # Value Stack
//
// Pattern rules push their capture groups onto a stack shared by the whole
// parse. [Node] collapses everything its sub-rule pushed into a single value
// produced by a [Reducer]. Failed branches leave garbage above the surviving
// stack pointer; it is never read and is overwritten by later matches.
//
// # Skipping
//
// [Ignore] installs a skip rule (typically whitespace) that every token rule
// drains before matching. Scopes nest; only the innermost one applies, and a
// nil skip rule disables skipping inside its scope.
//
// # Errors
//
// Ordinary mismatches are not errors. [Parser.Parse] reports a single
// [*ParseError] located at the furthest offset any token rule scanned to,
// which is usually the point where the input stopped making sense.
//
// Alternatives are ordered: [Any] commits to the first alternative that
// matches. Grammars must list alternatives so that the first match is the
// intended one; the engine does not detect shadowed alternatives.
//
// A State is owned by a single parse and must not be shared between
// goroutines. Rules hold no mutable state and may be used concurrently.
package rdparse
