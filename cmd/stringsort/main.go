// Package main is the entry point for the stringsort binary.
//
// stringsort insertion-sorts a fixed list of names and prints them in order.
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

	cli.Execute(cli.NewSortProgram())
}
