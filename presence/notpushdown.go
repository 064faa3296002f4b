package presence

// NotPushdown drives Not down to leaves using De Morgan's laws, cancels
// double negation, and turns Not over a comparison into the opposite
// comparison. After NotPushdown, no Not node has a composite operand (it
// wraps only a Leaf).
func NotPushdown(root *Node) *Node {
	return Walk(root, notPushdownVisit)
}

func notPushdownVisit(n *Node) VisitResult {
	if n.Kind != KindNot {
		return Descend()
	}

	switch n.Child.Kind {
	case KindAnd:
		negated := make([]*Node, len(n.Child.Children))
		for i, c := range n.Child.Children {
			negated[i] = NewNot(c)
		}
		return Replace(Walk(NewOr(negated...), notPushdownVisit))

	case KindOr:
		negated := make([]*Node, len(n.Child.Children))
		for i, c := range n.Child.Children {
			negated[i] = NewNot(c)
		}
		return Replace(Walk(NewAnd(negated...), notPushdownVisit))

	case KindNot:
		return Replace(Walk(n.Child.Child, notPushdownVisit))

	case KindEq:
		return Replace(NewNeq(n.Child.Left, n.Child.Right))

	case KindNeq:
		return Replace(NewEq(n.Child.Left, n.Child.Right))

	default: // Leaf: Not(Leaf(n)) stays as-is.
		return Descend()
	}
}
