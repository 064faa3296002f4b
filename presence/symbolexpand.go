package presence

import "strings"

// SymbolExpand replaces every remaining Leaf, Eq and Neq node with a pure
// propositional subtree over CONFIG_* atoms and fresh atoms. After
// SymbolExpand, the tree contains only Leaf, Not, And and Or, and every Not
// wraps a Leaf.
func SymbolExpand(root *Node, symtab SymbolTable, mode Mode, fresh *FreshAtoms) (*Node, error) {
	var firstErr error
	visit := func(n *Node) VisitResult {
		switch n.Kind {
		case KindLeaf:
			return Replace(expandLeaf(n.Name, mode, symtab, fresh))

		case KindEq, KindNeq:
			name, ok := leafName(n.Left)
			if !ok {
				return Descend()
			}
			right, ok := leafName(n.Right)
			if !ok {
				return Descend()
			}
			expanded, err := expandCompare(n.Kind == KindNeq, name, right, symtab)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return Replace(NewLeaf(name))
			}
			return Replace(expanded)

		default:
			return Descend()
		}
	}

	out := Walk(root, visit)
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// isReservedLiteral reports whether name is one of the three reserved
// tristate literals, matched case-insensitively on the exact letters "y",
// "m" or "n" only -- "Y" or "Yes" as "y" is not intended.
func isReservedLiteral(name string) bool {
	switch strings.ToLower(name) {
	case "y", "m", "n":
		return true
	}
	return false
}

func expandLeaf(name string, mode Mode, symtab SymbolTable, fresh *FreshAtoms) *Node {
	if strings.ToLower(name) == "m" {
		if mode == ModeModule {
			// the proposition is contingently satisfiable: some assignment
			// makes the expression evaluate to module.
			return NewLeaf(fresh.Next())
		}
		// expr = y is needed, so bare "m" can never hold: a canonical
		// contradiction.
		a := fresh.Next()
		return NewAnd(NewLeaf(a), NewNot(NewLeaf(a)))
	}
	return NewLeaf(symtab.AtomY(name))
}

// expandCompare encodes Eq(left, right) (or Neq, when neq is set) as a
// boolean formula over the y/m atoms of the two operands. The
// literal-vs-literal swap happens before the literal-vs-literal error check,
// and the check applies only to the (possibly swapped) left operand,
// matching the behavior of the reader this was ported from.
func expandCompare(neq bool, left, right string, symtab SymbolTable) (*Node, error) {
	if isReservedLiteral(left) {
		left, right = right, left
	}
	if isReservedLiteral(left) {
		return nil, &RewriteError{Reason: "compare literal with literal"}
	}

	ly := NewLeaf(symtab.AtomY(left))
	lm := NewLeaf(symtab.AtomM(left))

	if !neq {
		switch strings.ToLower(right) {
		case "y":
			return ly, nil
		case "m":
			return lm, nil
		case "n":
			return NewAnd(NewNot(lm), NewNot(ly)), nil
		default:
			ry := NewLeaf(symtab.AtomY(right))
			rm := NewLeaf(symtab.AtomM(right))
			return NewOr(
				NewAnd(ly, ry),                                         // either both y
				NewAnd(lm, rm),                                         // or both m
				NewAnd(NewNot(ly), NewNot(ry), NewNot(lm), NewNot(rm)), // or everything disabled
			), nil
		}
	}

	switch strings.ToLower(right) {
	case "y":
		return NewNot(ly), nil
	case "m":
		return NewNot(lm), nil
	case "n":
		return NewOr(lm, ly), nil
	default:
		ry := NewLeaf(symtab.AtomY(right))
		rm := NewLeaf(symtab.AtomM(right))
		return NewOr(
			NewAnd(ly, NewNot(ry)),
			NewAnd(lm, NewNot(rm)),
			NewAnd(NewNot(ly), ry),
			NewAnd(NewNot(lm), rm),
		), nil
	}
}
