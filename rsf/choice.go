package rsf

import "strings"

// Choice is a Kconfig "choice" pseudo-option: a group of mutually exclusive
// (or, when not Required, all-absent) items, represented in an RSF dump as
// its own CHOICE_<n> pseudo-symbol plus one ChoiceItem row per member.
type Choice struct {
	Name     string
	Tristate bool
	Required bool
}

// InsertForwardReferences computes the implication edges from each member
// item's symbol to the choice's own symbol, and back: the dependency facts
// that make a choice behave like an exactly-one-of (or at-most-one-of, when
// optional) constraint. The returned map is keyed by atom name, each value
// a list of dependency clauses to be conjoined the same way Database.depends
// joins multiple recorded rows for one option.
func (c *Choice) InsertForwardReferences(db *Database) map[string][]string {
	items := db.collect("ChoiceItem", 1)

	deps := map[string][]string{
		symbol(c.Name): nil,
	}
	if c.Tristate {
		deps[symbolModule(c.Name)] = nil
	}

	var ownItems []string
	for _, row := range items[c.Name] {
		if len(row) == 0 {
			continue
		}
		member := row[0]
		opt, ok := db.options()[member]
		if !ok {
			continue
		}
		ownItems = append(ownItems, member)
		deps[symbol(member)] = []string{symbol(c.Name)}
		if c.Tristate {
			// CHOICE_MODULE implies no member item is selected as a
			// static unit.
			deps[symbolModule(c.Name)] = append(deps[symbolModule(c.Name)], "!"+symbol(member))
			if opt.Tristate {
				deps[symbolModule(member)] = []string{symbolModule(c.Name)}
			}
		}
	}

	andClauseCount := len(ownItems)
	if !c.Required {
		// An optional choice also allows every item to be absent.
		andClauseCount++
	}
	orClause := make([]string, 0, andClauseCount)
	for x := 0; x < andClauseCount; x++ {
		andClause := make([]string, 0, len(ownItems))
		for y, item := range ownItems {
			if x == y {
				andClause = append(andClause, symbol(item))
			} else {
				andClause = append(andClause, "!"+symbol(item))
			}
		}
		orClause = append(orClause, strings.Join(andClause, " && "))
	}
	deps[symbol(c.Name)] = append(deps[symbol(c.Name)], "(("+strings.Join(orClause, ") || (")+"))")

	return deps
}

// Choices returns the Choice records declared in the dump.
func (db *Database) Choices() []*Choice {
	var out []*Choice
	for _, item := range db.records["Choice"] {
		if len(item) < 2 {
			continue
		}
		out = append(out, &Choice{
			Name:     item[0],
			Tristate: len(item) > 2 && item[2] == "tristate",
			Required: item[1] == "required",
		})
	}
	return out
}
