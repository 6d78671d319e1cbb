package model

import (
	"fmt"
	"strings"
)

// OutputFormat selects how a command renders its report.
type OutputFormat string

const (
	// FormatText is the plain line-oriented output of the original programs.
	FormatText OutputFormat = "text"

	// FormatJSON renders the report as indented JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML renders the report as YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
// Returns an error if the string does not match any valid format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// SortReport is the result of the sorter program.
type SortReport struct {
	// Names holds the sequence in sorted order.
	Names []string `json:"names" yaml:"names"`
}

// ByteReport is the result of the byte-decomposition program.
type ByteReport struct {
	// WordSize is the size of the packed integer type in bytes.
	WordSize int `json:"wordSize" yaml:"wordSize"`

	// CharSize is the size of the character type in bytes.
	CharSize int `json:"charSize" yaml:"charSize"`

	// Value is the packed integer read back as a number.
	Value int32 `json:"value" yaml:"value"`

	// Bytes lists the integer's storage at increasing offsets.
	Bytes []int `json:"bytes" yaml:"bytes,flow"`

	// Text is Bytes printed as characters.
	Text string `json:"text" yaml:"text"`

	// ByteOrder is the host byte order observed while reading Bytes.
	ByteOrder string `json:"byteOrder" yaml:"byteOrder"`
}

// ExitCode defines the process exit codes of the snippets commands.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates the sort input was rejected, e.g. an absent
	// string reference or a size that does not fit the sequence.
	ExitInvalidInput ExitCode = 2

	// ExitUnsupportedPlatform indicates a platform assertion failed: the
	// packed integer type is too narrow, or the observed byte order does not
	// match the declared one.
	ExitUnsupportedPlatform ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error returns the message, followed by the underlying error if present.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
