package presence

// TristateLower eliminates bare tristate leaves by translating them into
// explicit comparisons against "y" and "n", so SymbolExpand only ever has
// to handle Eq/Neq. It operates on the direct children of And/Or nodes;
// everything else is left untouched at this level and recursed into.
func TristateLower(root *Node, symtab SymbolTable, mode Mode) *Node {
	return Walk(root, tristateLowerVisit(symtab, mode))
}

func tristateLowerVisit(symtab SymbolTable, mode Mode) Visitor {
	var visit Visitor
	visit = func(n *Node) VisitResult {
		if n.Kind != KindAnd && n.Kind != KindOr {
			return Descend()
		}

		children := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = lowerChild(c, symtab, mode, visit)
		}
		if n.Kind == KindAnd {
			return Replace(NewAnd(children...))
		}
		return Replace(NewOr(children...))
	}
	return visit
}

// lowerChild implements the per-child rule table: a negated or bare known
// tristate symbol becomes a comparison; a composite child is recursed into
// with the same visitor; anything else (a non-tristate leaf, or an unknown
// name) is left unchanged.
func lowerChild(c *Node, symtab SymbolTable, mode Mode, visit Visitor) *Node {
	switch c.Kind {
	case KindNot:
		if name, ok := leafName(c.Child); ok && symtab.Known(name) && symtab.IsTristate(name) {
			if mode == ModeModule {
				// s is not built-in: module or off are both accepted.
				return NewNeq(NewLeaf(name), NewLeaf("y"))
			}
			// s must be completely off.
			return NewEq(NewLeaf(name), NewLeaf("n"))
		}
		return c

	case KindLeaf:
		if symtab.Known(c.Name) && symtab.IsTristate(c.Name) {
			if mode == ModeModule {
				// any non-off value selects.
				return NewNeq(NewLeaf(c.Name), NewLeaf("n"))
			}
			// must be built-in.
			return NewEq(NewLeaf(c.Name), NewLeaf("y"))
		}
		return c

	case KindAnd, KindOr, KindEq, KindNeq:
		return Walk(c, visit)

	default:
		return c
	}
}
