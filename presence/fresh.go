package presence

import (
	"fmt"
	"sync/atomic"
)

// freshPrefix is reserved for atoms minted by SymbolExpand; it can never
// collide with a CONFIG_* atom.
const freshPrefix = "__FREE_"

// FreshAtoms mints globally unique atom names within one invocation of the
// driver. It is injected into SymbolExpand as an explicit parameter rather
// than kept as a package global, so tests stay deterministic; the counter
// itself is safe for concurrent use so callers may parallelize Rewrite
// across inputs sharing one FreshAtoms.
type FreshAtoms struct {
	n atomic.Int64
}

func NewFreshAtoms() *FreshAtoms {
	return &FreshAtoms{}
}

func (f *FreshAtoms) Next() string {
	return fmt.Sprintf("%s%d", freshPrefix, f.n.Add(1))
}
