package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags = struct {
	jsonLogs *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "undertaker",
	Short: "Extract presence conditions from a kernel configuration dump",
	Long: `undertaker reads an RSF dump of a Kconfig tree and rewrites each
option's dependency expression into a pure boolean presence condition over
CONFIG_* atoms, resolving tristate semantics against a chosen build mode.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.jsonLogs = rootCmd.PersistentFlags().Bool("json-logs", false, "emit structured JSON logs instead of development-mode ones")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
