// Package main is the entry point for the bytelayout binary.
//
// bytelayout packs four characters into a 32-bit integer and prints its
// bytes in memory order.
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

	cli.Execute(cli.NewBytesProgram())
}
