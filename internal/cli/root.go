// Package cli implements the cobra-based commands for the snippets programs.
//
// Each demonstration (sort, bytes) is defined in its own file within this
// package. This file defines the root command, the global flags shared by
// every program, and the error handling that maps failures to exit codes.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/snippets/internal/logging"
	"github.com/shinji-kodama/snippets/internal/model"
)

// Global flag variables shared across all commands.
// These are bound to cobra persistent flags on whichever command is the
// root of the running program.
var (
	// jsonOutput is shorthand for --output json.
	jsonOutput bool

	// outputFlag is the raw value of --output.
	outputFlag string

	// verbose enables zap debug logging on stderr.
	verbose bool
)

// format is the output format resolved from the flags before a command runs.
var format = model.FormatText

// logger is replaced by a real logger when --verbose is set.
var logger = zap.NewNop()

// version, commit, and date are set at build time via ldflags.
// They are injected from the main packages to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates the "snippets" command with both demonstrations
// registered as subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snippets",
		Short: "String sorting and byte layout demonstrations",
		Long: `snippets runs two small demonstrations:

  sort   insertion-sorts a fixed list of names with a C-string comparator
  bytes  packs 'C','O','R','Y' into a 32-bit integer and reads its bytes back`,
	}

	rootCmd.AddCommand(NewSortCommand())
	rootCmd.AddCommand(NewBytesCommand())

	return asProgram(rootCmd)
}

// NewSortProgram creates the standalone "stringsort" program.
func NewSortProgram() *cobra.Command {
	cmd := NewSortCommand()
	cmd.Use = "stringsort"
	return asProgram(cmd)
}

// NewBytesProgram creates the standalone "bytelayout" program.
func NewBytesProgram() *cobra.Command {
	cmd := NewBytesCommand()
	cmd.Use = "bytelayout"
	return asProgram(cmd)
}

// asProgram makes cmd the root of a program: it installs the global flags,
// version string, and the pre-run hook that resolves them.
func asProgram(cmd *cobra.Command) *cobra.Command {
	// Errors are printed by Execute in the selected format.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)

	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (same as --output json)")
	cmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text, json, yaml")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		f, err := resolveFormat(outputFlag, jsonOutput)
		if err != nil {
			return err
		}
		format = f
		logger = logging.New(cmd.ErrOrStderr(), verbose)
		return nil
	}

	return cmd
}

// resolveFormat combines --output and --json into a single format.
func resolveFormat(output string, asJSON bool) (model.OutputFormat, error) {
	f, err := model.ParseOutputFormat(output)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "invalid --output value", err)
	}
	if asJSON {
		if f != model.FormatText && f != model.FormatJSON {
			return "", model.NewCLIError(model.ExitGeneralError,
				fmt.Sprintf("--json conflicts with --output %s", f))
		}
		f = model.FormatJSON
	}
	return f, nil
}

// Execute runs the program and handles exit codes.
// This is the main entry point called from the main packages.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err == nil {
		return
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(cliErr.Message, cliErr.Err)
	} else {
		printError(err.Error(), nil)
	}
	os.Exit(int(exitCode(err)))
}

// exitCode returns the process exit code for err.
func exitCode(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error message on stderr, as a JSON object when the
// JSON output format is selected and as "Error: ..." text otherwise.
func printError(message string, underlying error) {
	if format == model.FormatJSON {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
