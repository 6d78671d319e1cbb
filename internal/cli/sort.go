// Package cli — sort.go implements the "sort" command.
//
// The sort command insertion-sorts the fixed list of names
// {"Cory", "Ross", "Gordon", "Deborah"} with the C-string comparator from
// internal/strsort and prints one "name N: <name>" line per entry.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/snippets/internal/model"
	"github.com/shinji-kodama/snippets/internal/strsort"
)

// NewSortCommand creates the "sort" cobra command.
func NewSortCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Insertion-sort a fixed list of names",
		Long: `Sort the names Cory, Ross, Gordon and Deborah with an insertion sort
driven by a C-string comparator, and print them in order.

Examples:
  snippets sort
  snippets sort --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			names := strsort.DemoNames()
			seq := make([]*string, len(names))
			for i := range names {
				seq[i] = &names[i]
			}
			return runSort(cmd.OutOrStdout(), seq)
		},
	}

	return cmd
}

// runSort sorts seq and writes the report to w.
func runSort(w io.Writer, seq []*string) error {
	logger.Debug("sorting names", zap.Int("count", len(seq)))

	if err := strsort.SortStrings(seq, len(seq)); err != nil {
		if errors.Is(err, strsort.ErrNilReference) || errors.Is(err, strsort.ErrInvalidSize) {
			return model.WrapCLIError(model.ExitInvalidInput, "failed to sort names", err)
		}
		return fmt.Errorf("failed to sort names: %w", err)
	}

	report := model.SortReport{Names: make([]string, 0, len(seq))}
	for _, ref := range seq {
		report.Names = append(report.Names, *ref)
	}
	logger.Debug("names sorted", zap.Strings("names", report.Names))

	return render(w, report, func(w io.Writer) {
		printSortText(w, report)
	})
}

// printSortText writes one "name N: <name>" line per entry.
func printSortText(w io.Writer, report model.SortReport) {
	for i, name := range report.Names {
		fmt.Fprintf(w, "name %d: %s\n", i, name)
	}
}
