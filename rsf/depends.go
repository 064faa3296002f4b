package rsf

import (
	"errors"
	"strings"

	"github.com/delta-one/undertaker/presence"
)

// depends maps each option name to its raw dependency expression, joining
// more than one recorded Depends row for the same option as a conjunction
// of parenthesized clauses.
func (db *Database) depends() map[string]string {
	db.dependsOnce.Do(func() {
		grouped := db.collect("Depends", 0)
		result := make(map[string]string, len(grouped))
		for name, rows := range grouped {
			var exprs []string
			for _, row := range rows {
				if len(row) == 0 {
					continue
				}
				exprs = append(exprs, row[0])
			}
			switch len(exprs) {
			case 0:
			case 1:
				result[name] = exprs[0]
			default:
				result[name] = "(" + strings.Join(exprs, ") && (") + ")"
			}
		}
		db.dependsVal = result
	})
	return db.dependsVal
}

// Dependency rewrites the recorded dependency expression for name into a
// pure boolean presence condition. An option with no recorded dependency
// has no constraint at all and returns ("", nil); a dependency expression
// that fails to parse is absorbed the same way, so one malformed option
// doesn't abort a batch run over the rest of the dump.
func (db *Database) Dependency(name string, mode presence.Mode) (string, error) {
	expr, ok := db.depends()[name]
	if !ok || expr == "" {
		return "", nil
	}

	out, err := presence.Rewrite(expr, db, mode, presence.NewFreshAtoms())
	if err != nil {
		var perr *presence.ParseError
		if errors.As(err, &perr) {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// Options returns the name of every declared option and choice in the
// dump, in no particular order; cmd/undertaker's model command iterates
// this to drive a batch run.
func (db *Database) Options() []string {
	opts := db.options()
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	return names
}
