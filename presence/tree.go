// Package presence implements the boolean-expression pipeline that turns a
// Kconfig dependency expression into a pure propositional formula over
// CONFIG_* atoms: Parser -> NotPushdown -> ChoiceStrip -> TristateLower ->
// SymbolExpand -> Printer.
package presence

// Kind identifies the variant of an expression tree Node, the way
// tokenKind tags a lexical token: a small closed set of string constants
// rather than an int enum, so mismatched kinds show up readably in test
// failures and %v output.
type Kind string

const (
	KindLeaf Kind = "leaf"
	KindNot  Kind = "not"
	KindAnd  Kind = "and"
	KindOr   Kind = "or"
	KindEq   Kind = "eq"
	KindNeq  Kind = "neq"
)

// Node is the tagged sum-type expression tree shared by every pass: Leaf(name),
// Not(child), And(children...), Or(children...), Eq(left, right),
// Neq(left, right). Only the fields relevant to Kind are populated; the rest
// are zero.
type Node struct {
	Kind Kind

	// Leaf
	Name string

	// Not
	Child *Node

	// And, Or
	Children []*Node

	// Eq, Neq
	Left  *Node
	Right *Node
}

func NewLeaf(name string) *Node {
	return &Node{Kind: KindLeaf, Name: name}
}

func NewNot(child *Node) *Node {
	return &Node{Kind: KindNot, Child: child}
}

// NewAnd panics if called with no children: every And/Or node must have at
// least one operand. Passes that might otherwise produce a childless And/Or
// instead collapse or drop the node entirely; see Walk.
func NewAnd(children ...*Node) *Node {
	if len(children) == 0 {
		panic("presence: And requires at least one child")
	}
	return &Node{Kind: KindAnd, Children: children}
}

func NewOr(children ...*Node) *Node {
	if len(children) == 0 {
		panic("presence: Or requires at least one child")
	}
	return &Node{Kind: KindOr, Children: children}
}

func NewEq(left, right *Node) *Node {
	return &Node{Kind: KindEq, Left: left, Right: right}
}

func NewNeq(left, right *Node) *Node {
	return &Node{Kind: KindNeq, Left: left, Right: right}
}

// leafName reports the name of n if n is a Leaf, and whether n was a Leaf
// at all. Several passes need to test "is this child a bare symbol" without
// caring about anything else.
func leafName(n *Node) (string, bool) {
	if n == nil || n.Kind != KindLeaf {
		return "", false
	}
	return n.Name, true
}
