package presence

// Rewrite parses input, applies the full pipeline in the only order that is
// correct (NotPushdown before TristateLower, so Not has been resolved into
// comparisons or pushed onto leaves; TristateLower before SymbolExpand, so
// only comparisons and non-tristate leaves remain), and prints the result.
//
// fresh supplies the monotonically numbered atoms SymbolExpand mints for
// bare "m" literals; callers that want deterministic, byte-equal output
// across repeated runs should pass a freshly constructed *FreshAtoms per
// call.
func Rewrite(input string, symtab SymbolTable, mode Mode, fresh *FreshAtoms) (string, error) {
	root, err := Parse(input)
	if err != nil {
		return "", err
	}

	// Wrap a bare leaf or a top-level Not in a single-child And so passes
	// that case-split on And/Or roots see a uniform shape.
	root = wrapUniform(root)

	root = NotPushdown(root)
	root = ChoiceStrip(root)
	if root == nil {
		return "", nil
	}

	// ChoiceStrip can strip a wrapping And/Or back down to a bare leaf or
	// Not (when every sibling was a CHOICE_ symbol); re-wrap so
	// TristateLower, which only rewrites direct children of And/Or, still
	// sees one.
	root = wrapUniform(root)

	root = TristateLower(root, symtab, mode)
	root, err = SymbolExpand(root, symtab, mode, fresh)
	if err != nil {
		return "", err
	}

	return Print(root), nil
}

func wrapUniform(root *Node) *Node {
	if root.Kind == KindLeaf || root.Kind == KindNot {
		return NewAnd(root)
	}
	return root
}
