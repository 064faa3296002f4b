package rsf

import "fmt"

// Option is one declared Kconfig option: whether it is tristate (as opposed
// to a plain boolean or an integer), and whether it is "omnipresent"
// (an integer-valued option, which this reader tracks but presence
// conditions never reference directly).
type Option struct {
	Name        string
	Tristate    bool
	Omnipresent bool
}

// AtomY is the atom asserting Name is selected as built-in.
func (o *Option) AtomY() string {
	return symbol(o.Name)
}

// AtomM is the atom asserting Name is selected as a module.
func (o *Option) AtomM() string {
	return symbolModule(o.Name)
}

func symbol(name string) string {
	return fmt.Sprintf("CONFIG_%s", name)
}

func symbolModule(name string) string {
	return fmt.Sprintf("CONFIG_%s_MODULE", name)
}

// options builds the name -> Option map from the Item and Choice records,
// computed once and cached: a batch model run looks every option up
// repeatedly while resolving each one's dependency string.
func (db *Database) options() map[string]*Option {
	db.optionsOnce.Do(func() {
		result := make(map[string]*Option)
		for _, item := range db.records["Item"] {
			if len(item) < 2 {
				continue
			}
			name, kind := item[0], item[1]
			switch kind {
			case "boolean", "tristate", "integer":
			default:
				continue
			}
			result[name] = &Option{
				Name:        name,
				Tristate:    kind == "tristate",
				Omnipresent: kind == "integer",
			}
		}
		for _, item := range db.records["Choice"] {
			if len(item) < 2 {
				continue
			}
			result[item[0]] = &Option{
				Name:     item[0],
				Tristate: len(item) > 2 && item[2] == "tristate",
			}
		}
		db.optionsVal = result
	})
	return db.optionsVal
}

// Known reports whether name was declared in the dump as a Choice or as an
// Item of type boolean, tristate or integer; Items of any other type are
// not tracked.
func (db *Database) Known(name string) bool {
	_, ok := db.options()[name]
	return ok
}

// IsTristate reports whether name was declared tristate.
func (db *Database) IsTristate(name string) bool {
	opt, ok := db.options()[name]
	return ok && opt.Tristate
}

// AtomY is the atom asserting name is selected as built-in, defined even
// for names the dump never declared (SymbolExpand still needs an atom for
// every leaf it sees, known or not).
func (db *Database) AtomY(name string) string {
	return symbol(name)
}

// AtomM is the atom asserting name is selected as a module.
func (db *Database) AtomM(name string) string {
	return symbolModule(name)
}
