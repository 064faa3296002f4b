package rsf

import (
	"strings"
	"testing"
)

func TestReadDatabase(t *testing.T) {
	dump := `Item A boolean
Item B tristate
Item C integer
Item D string
Depends A "B && C"
HasPrompts A 1
`
	db, warnings := ReadDatabase(strings.NewReader(dump))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if !db.Known("A") {
		t.Errorf("A should be known")
	}
	if db.IsTristate("A") {
		t.Errorf("A is boolean, not tristate")
	}
	if !db.IsTristate("B") {
		t.Errorf("B is tristate")
	}
	if db.Known("D") {
		t.Errorf("D is a string option, not tracked")
	}
}

func TestReadDatabase_SkipsUnparsableLines(t *testing.T) {
	dump := "Item A boolean\nDepends A \"unterminated\n"
	db, warnings := ReadDatabase(strings.NewReader(dump))
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].Line != 2 {
		t.Errorf("warning line = %d, want 2", warnings[0].Line)
	}
	if !db.Known("A") {
		t.Errorf("the well-formed line should still have been read")
	}
}

func TestReadDatabase_IgnoresUntrackedTags(t *testing.T) {
	dump := "SomeOtherTag A B\nItem A boolean\n"
	db, warnings := ReadDatabase(strings.NewReader(dump))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if !db.Known("A") {
		t.Errorf("A should be known")
	}
}

func TestDatabase_AtomNames(t *testing.T) {
	db, _ := ReadDatabase(strings.NewReader("Item A tristate\n"))
	if got := db.AtomY("A"); got != "CONFIG_A" {
		t.Errorf("AtomY(A) = %q, want CONFIG_A", got)
	}
	if got := db.AtomM("A"); got != "CONFIG_A_MODULE" {
		t.Errorf("AtomM(A) = %q, want CONFIG_A_MODULE", got)
	}
	if got := db.AtomY("UNKNOWN"); got != "CONFIG_UNKNOWN" {
		t.Errorf("AtomY is still well-defined for unknown names, got %q", got)
	}
}
