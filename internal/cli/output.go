package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/snippets/internal/model"
)

// render writes report to w in the selected output format. printText
// produces the plain output of the original program.
func render(w io.Writer, report interface{}, printText func(io.Writer)) error {
	switch format {
	case model.FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case model.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
	default:
		printText(w)
	}
	return nil
}
