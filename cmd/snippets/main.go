// Package main is the entry point for the snippets binary.
//
// snippets runs the string sort and byte layout demonstrations as
// subcommands of one binary.
// All functionality lives in internal/cli.
package main

import (
	"github.com/shinji-kodama/snippets/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
