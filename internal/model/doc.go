// Package model defines the report types and exit codes shared by the
// snippets commands.
//
// The package has no dependencies beyond the standard library. A report is
// built from a single run of a demonstration and rendered by the CLI; nothing
// here is persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
