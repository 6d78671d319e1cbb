// Package cli — bytes.go implements the "bytes" command.
//
// The bytes command packs 'C', 'O', 'R', 'Y' into the byte lanes of a 32-bit
// integer and reads the integer's storage back one byte at a time. The text
// output is the word size, the char size, the packed value, and the four
// bytes as characters, one item per line with the characters on a single line.
// On a little-endian host the last line is "CORY".
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/snippets/internal/bytelayout"
	"github.com/shinji-kodama/snippets/internal/model"
)

// NewBytesCommand creates the "bytes" cobra command.
func NewBytesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytes",
		Short: "Show the in-memory byte order of a packed integer",
		Long: `Pack the characters C, O, R, Y into the four byte lanes of a 32-bit
integer (least significant first), then read the integer's memory back
byte by byte. The order of the printed characters reveals the host's
byte order.

Examples:
  snippets bytes
  snippets bytes --output yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBytes(cmd.OutOrStdout())
		},
	}

	return cmd
}

// runBytes checks the platform, runs the demonstration, and writes the
// report to w.
func runBytes(w io.Writer) error {
	if err := bytelayout.CheckOrder(); err != nil {
		return model.WrapCLIError(model.ExitUnsupportedPlatform, "platform byte order check failed", err)
	}

	r, err := bytelayout.Demo()
	if err != nil {
		return model.WrapCLIError(model.ExitUnsupportedPlatform, "platform width check failed", err)
	}
	logger.Debug("word packed",
		zap.Int32("value", int32(r.Value)),
		zap.Binary("bytes", r.Bytes),
		zap.Stringer("order", r.Order))

	return render(w, newByteReport(r), func(w io.Writer) {
		printBytesText(w, r)
	})
}

// newByteReport converts a demonstration result into its output form.
func newByteReport(r bytelayout.Report) model.ByteReport {
	report := model.ByteReport{
		WordSize:  r.WordSize,
		CharSize:  r.CharSize,
		Value:     int32(r.Value),
		Bytes:     make([]int, len(r.Bytes)),
		Text:      r.Text(),
		ByteOrder: r.Order.String(),
	}
	for i, b := range r.Bytes {
		report.Bytes[i] = int(b)
	}
	return report
}

// printBytesText writes the sizes and value one per line, then every byte
// as a character on a single line.
func printBytesText(w io.Writer, r bytelayout.Report) {
	fmt.Fprintf(w, "%d\n", r.WordSize)
	fmt.Fprintf(w, "%d\n", r.CharSize)
	fmt.Fprintf(w, "%d\n", r.Value)
	for _, b := range r.Bytes {
		fmt.Fprintf(w, "%c", b)
	}
	fmt.Fprintln(w)
}
