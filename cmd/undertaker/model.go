package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/delta-one/undertaker/rsf"
)

var modelFlags = struct {
	mode   *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "model <rsf-file>",
		Short:   "Rewrite every option's dependency in an RSF dump into a presence condition",
		Example: `  undertaker model kernel.rsf --mode m -o kernel.model`,
		Args:    cobra.ExactArgs(1),
		RunE:    runModel,
	}
	modelFlags.mode = cmd.Flags().StringP("mode", "m", "m", `build mode to resolve tristate semantics against, "y" or "m"`)
	modelFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runModel(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(*rootFlags.jsonLogs)
	if err != nil {
		return err
	}
	defer logger.Sync()

	mode, err := parseMode(*modelFlags.mode)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cannot open the rsf dump %s: %w", args[0], err)
	}
	defer f.Close()

	db, warnings := rsf.ReadDatabase(f)
	for _, w := range warnings {
		logger.Warn("skipped unparsable rsf line", zap.Int("line", w.Line), zap.String("text", w.Text))
	}

	var out io.Writer = os.Stdout
	if *modelFlags.output != "" {
		outFile, err := os.OpenFile(*modelFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer outFile.Close()
		out = outFile
	}

	names := db.Options()
	sort.Strings(names)

	var processed, skipped int
	for _, name := range names {
		cond, err := db.Dependency(name, mode)
		if err != nil {
			logger.Warn("failed to rewrite dependency", zap.String("option", name), zap.Error(err))
			skipped++
			continue
		}
		processed++
		fmt.Fprintf(out, "%s: %s\n", name, cond)
	}

	logger.Info("model run complete",
		zap.Int("options", len(names)),
		zap.Int("rewritten", processed),
		zap.Int("skipped", skipped),
		zap.String("mode", string(mode)),
	)

	return nil
}
