package presence

import "strings"

const choicePrefix = "CHOICE_"

// ChoiceStrip removes CHOICE_* pseudo-symbols, artifacts of the RSF dump
// format with no semantic weight in a presence condition. Every CHOICE_
// leaf is dropped wherever it is found, not only where it is a direct
// operand of And/Or: a Not over one is dropped along with it. Walk's
// single-child collapse and empty-node drop handle the rest.
func ChoiceStrip(root *Node) *Node {
	return Walk(root, choiceStripVisit)
}

func choiceStripVisit(n *Node) VisitResult {
	if name, ok := leafName(n); ok && strings.HasPrefix(name, choicePrefix) {
		return Drop()
	}
	return Descend()
}
