// Package cli implements the cobra-based CLI for gitpublish.
//
// The root command runs the publish workflow (analyze commits, propose a
// tag, create and push it). The next and branches subcommands, defined in
// their own files, expose the read-only parts of that workflow.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitpublish/internal/model"
)

// Global flag variables bound to cobra persistent flags on the root
// command, so they are available to every subcommand.
var (
	// configPath is an explicit config file path; empty means search the
	// well-known locations.
	configPath string

	// verbose enables debug/trace output on stderr.
	verbose bool
)

// Version, Commit and Date are set at build time via ldflags. They are
// injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command. Running
// it with no subcommand executes the publish workflow.
func NewRootCommand() *cobra.Command {
	opts := &publishOptions{}

	rootCmd := &cobra.Command{
		Use:   "gitpublish",
		Short: "Analyze commits and publish the next semantic version tag",
		Long: `gitpublish reads the conventional commits since the last tag on a branch,
decides whether the next release is a major, minor or patch bump, and
creates and pushes the corresponding tag.

Tag names come from per-branch patterns (e.g. "v{version}" on main,
"d{version}" on develop) configured in gitpublish.toml.`,

		// Errors are formatted by Execute, with exit codes from CLIError;
		// cobra's own printing would duplicate them.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVarP(&opts.branch, "branch", "b", "", "Branch to tag (default: prompt among configured branches)")
	rootCmd.Flags().StringVarP(&opts.remote, "remote", "r", "", "Remote to push to (default: prompt among configured remotes)")
	rootCmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Skip confirmation prompts")
	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Resolve and display the next tag without creating it")

	rootCmd.AddCommand(NewNextCommand())
	rootCmd.AddCommand(NewBranchesCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes. CLIError values
// carry their own exit code; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes "Error: <message>" to stderr, appending the
// underlying cause when one exists.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// VerboseLog prints a message to stderr only when --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
