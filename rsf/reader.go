// Package rsf reads the RSF dump format (a tab-separated, shell-word
// tokenized table of Kconfig facts extracted from a kernel tree) into a
// queryable Database, and exposes it as a presence.SymbolTable.
package rsf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/shlex"

	perr "github.com/delta-one/undertaker/error"
)

// tags are the only record kinds this reader keeps; anything else in the
// dump is ignored.
var tags = map[string]bool{
	"Item":        true,
	"HasPrompts":  true,
	"Default":     true,
	"ItemSelects": true,
	"Depends":     true,
	"Choice":      true,
	"ChoiceItem":  true,
}

// ReadWarning reports a single RSF line that could not be tokenized. Reading
// continues past it, the same way a malformed shell-quoted line is skipped
// rather than aborting the whole dump.
type ReadWarning struct {
	Line int
	Text string
	*perr.PresenceError
}

// Database is the parsed contents of an RSF dump: one record slice per tag,
// plus the derived views (options, dependency strings) computed lazily and
// cached, since a batch run over every option in the dump recomputes the
// same views many times.
type Database struct {
	records map[string][][]string

	optionsOnce sync.Once
	optionsVal  map[string]*Option

	dependsOnce sync.Once
	dependsVal  map[string]string
}

// ReadDatabase parses an RSF dump. Lines that fail shell-word tokenization,
// or that don't belong to a tracked tag, are skipped; skipped-for-tokenizing
// lines are reported back as warnings rather than failing the read.
func ReadDatabase(r io.Reader) (*Database, []*ReadWarning) {
	db := &Database{records: make(map[string][][]string, len(tags))}
	for tag := range tags {
		db.records[tag] = nil
	}

	var warnings []*ReadWarning
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		row, err := shlex.Split(text)
		if err != nil {
			warnings = append(warnings, &ReadWarning{
				Line: line,
				Text: text,
				PresenceError: &perr.PresenceError{
					Cause: fmt.Errorf("couldn't parse rsf line: %w", err),
					Input: text,
				},
			})
			continue
		}
		if len(row) < 2 || !tags[row[0]] {
			continue
		}
		db.records[row[0]] = append(db.records[row[0]], row[1:])
	}
	return db, warnings
}

// collect groups the records under tag by the value in column col, the rest
// of the row (with that column removed) becoming the value.
func (db *Database) collect(tag string, col int) map[string][][]string {
	result := make(map[string][][]string)
	for _, item := range db.records[tag] {
		if len(item) <= col {
			continue
		}
		key := item[col]
		rest := make([]string, 0, len(item)-1)
		rest = append(rest, item[:col]...)
		rest = append(rest, item[col+1:]...)
		result[key] = append(result[key], rest)
	}
	return result
}
