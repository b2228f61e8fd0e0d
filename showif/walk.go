package showif

// Walk calls fn for e and its operands in depth-first order. Children of a
// node are skipped when fn returns false for it.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	if b, ok := e.(*BinaryExpression); ok {
		Walk(b.Left, fn)
		Walk(b.Right, fn)
	}
}

// Questions returns the distinct question identifiers referenced by e, in
// order of first appearance.
func Questions(e Expr) []string {
	var ids []string
	seen := make(map[string]bool)
	Walk(e, func(e Expr) bool {
		if c, ok := e.(*Condition); ok && !seen[c.Question] {
			seen[c.Question] = true
			ids = append(ids, c.Question)
		}
		return true
	})
	return ids
}

// Find returns the innermost node whose span contains offset, or nil.
func Find(e Expr, offset int) Expr {
	var found Expr
	Walk(e, func(e Expr) bool {
		if !e.Span().Contains(offset) {
			return false
		}
		found = e
		return true
	})
	return found
}
