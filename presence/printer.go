package presence

import "strings"

// Print emits the canonical textual form of a fully rewritten tree: "!" for
// negation, "&&"/"||" for conjunction/disjunction, parenthesized unless the
// operator has exactly one child. A nil root is the "no constraint"
// sentinel and prints as the empty string.
func Print(root *Node) string {
	if root == nil {
		return ""
	}
	return print(root)
}

func print(n *Node) string {
	switch n.Kind {
	case KindLeaf:
		return n.Name

	case KindNot:
		// By invariant, after NotPushdown (and still true of the trees
		// SymbolExpand produces) Not wraps only a Leaf.
		return "!" + print(n.Child)

	case KindAnd:
		return joinOperands(n.Children, " && ")

	case KindOr:
		return joinOperands(n.Children, " || ")

	case KindEq:
		return print(n.Left) + " = " + print(n.Right)

	case KindNeq:
		return print(n.Left) + " != " + print(n.Right)

	default:
		return ""
	}
}

func joinOperands(children []*Node, sep string) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = print(c)
	}
	joined := strings.Join(parts, sep)
	if len(children) == 1 {
		return joined
	}
	return "(" + joined + ")"
}
