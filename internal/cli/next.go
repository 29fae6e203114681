package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitpublish/internal/config"
	"github.com/mmr-tortoise/gitpublish/internal/gitrepo"
	"github.com/mmr-tortoise/gitpublish/internal/model"
	"github.com/mmr-tortoise/gitpublish/internal/release"
	"github.com/mmr-tortoise/gitpublish/internal/tagpattern"
	"github.com/mmr-tortoise/gitpublish/internal/ui"
)

// NewNextCommand creates the "next" subcommand: resolve the next tag for
// a branch and print only the tag name, for use in scripts. Warnings go
// to stderr so stdout stays a single parseable line.
func NewNextCommand() *cobra.Command {
	var branch string

	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next tag name without creating it",
		Long: `next analyzes the commits since the last tag and prints the tag name the
publish workflow would create. Nothing is fetched, created or pushed.

The branch defaults to the currently checked-out branch; it must be one
of the configured branches.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runNext(branch)
		},
	}

	nextCmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to resolve (default: current branch)")

	return nextCmd
}

func runNext(branch string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	repo, err := gitrepo.Open(".")
	if err != nil {
		return err
	}

	if branch == "" {
		branch, err = repo.CurrentBranch()
		if err != nil {
			return err
		}
	}
	if _, ok := cfg.Branches[branch]; !ok {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("branch %q is not configured for tagging (configured: %v)", branch, cfg.BranchNames()))
	}

	latestTag, err := repo.LatestTag(branch)
	if err != nil {
		return err
	}
	messages, err := repo.CommitMessagesSince(branch, latestTag)
	if err != nil {
		return err
	}

	pattern := tagpattern.New(cfg.PatternForBranch(branch))
	plan := release.Resolve(latestTag, messages, cfg.ConventionalCommits, pattern)

	printer := ui.New()
	for _, warning := range plan.Warnings {
		printer.Warn(warning)
	}

	fmt.Fprintln(printer.Out, plan.NextTag)
	return nil
}
