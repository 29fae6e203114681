// Package main is the entry point for the gitpublish CLI.
//
// The binary analyzes conventional commits on a branch and creates the
// next semantic version tag. All functionality lives in the internal/cli
// package, which defines the cobra commands.
package main

import (
	"github.com/mmr-tortoise/gitpublish/internal/cli"
)

// version, commit and date are set at build time via ldflags. During
// development they default to "dev", "none" and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
