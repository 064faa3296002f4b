package presence

// fakeSymtab is the symbol table used throughout this package's tests: A
// and B are tristate, X is a plain boolean, every other name is unknown.
type fakeSymtab struct {
	tristate map[string]bool
}

func newFakeSymtab(tristateNames ...string) *fakeSymtab {
	m := map[string]bool{}
	for _, n := range tristateNames {
		m[n] = true
	}
	return &fakeSymtab{tristate: m}
}

func (f *fakeSymtab) Known(name string) bool {
	if f.tristate[name] {
		return true
	}
	return name == "X"
}

func (f *fakeSymtab) IsTristate(name string) bool {
	return f.tristate[name]
}

func (f *fakeSymtab) AtomY(name string) string {
	return "CONFIG_" + name
}

func (f *fakeSymtab) AtomM(name string) string {
	return "CONFIG_" + name + "_MODULE"
}

func defaultSymtab() *fakeSymtab {
	return newFakeSymtab("A", "B")
}
