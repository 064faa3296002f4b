package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/delta-one/undertaker/presence"
	"github.com/delta-one/undertaker/rsf"
)

var rewriteFlags = struct {
	mode *string
	rsf  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "rewrite <expression>",
		Short:   "Rewrite a single ad-hoc boolean expression into a presence condition",
		Example: `  undertaker rewrite "A && !B" --mode m --rsf kernel.rsf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRewrite,
	}
	rewriteFlags.mode = cmd.Flags().StringP("mode", "m", "m", `build mode to resolve tristate semantics against, "y" or "m"`)
	rewriteFlags.rsf = cmd.Flags().String("rsf", "", "rsf dump to resolve tristate symbols against (default: treat every symbol as plain boolean)")
	rootCmd.AddCommand(cmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(*rewriteFlags.mode)
	if err != nil {
		return err
	}

	symtab, err := loadSymtab(*rewriteFlags.rsf)
	if err != nil {
		return err
	}

	out, err := presence.Rewrite(args[0], symtab, mode, presence.NewFreshAtoms())
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, out)
	return nil
}

func loadSymtab(path string) (presence.SymbolTable, error) {
	if path == "" {
		return booleanSymtab{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the rsf dump %s: %w", path, err)
	}
	defer f.Close()

	db, warnings := rsf.ReadDatabase(f)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "skipped unparsable rsf line %d: %s\n", w.Line, w.Text)
	}
	return db, nil
}

// booleanSymtab is the default symbol table when no rsf dump is given: no
// name is ever tristate, so TristateLower leaves every leaf alone and
// SymbolExpand resolves each one to its plain CONFIG_ atom.
type booleanSymtab struct{}

func (booleanSymtab) Known(name string) bool      { return false }
func (booleanSymtab) IsTristate(name string) bool { return false }
func (booleanSymtab) AtomY(name string) string    { return "CONFIG_" + name }
func (booleanSymtab) AtomM(name string) string    { return "CONFIG_" + name + "_MODULE" }
