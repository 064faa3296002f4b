package presence

// SymbolTable is the read-only contract TristateLower and SymbolExpand
// consult to resolve a Kconfig option name. The Parser and ChoiceStrip never
// look at it. The rsf package is the concrete implementation built from an
// RSF dump; tests in this package use small in-memory fakes.
type SymbolTable interface {
	// Known reports whether name is a declared option.
	Known(name string) bool
	// IsTristate reports whether name was declared tristate, as opposed to
	// a plain boolean or an integer option.
	IsTristate(name string) bool
	// AtomY is the atom asserting that name is selected as built-in.
	AtomY(name string) string
	// AtomM is the atom asserting that name is selected as a module. It is
	// still well-defined (CONFIG_<name>_MODULE) for non-tristate names;
	// downstream treats it as an ordinary, independent atom.
	AtomM(name string) string
}
