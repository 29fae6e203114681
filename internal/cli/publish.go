package cli

import (
	"fmt"
	"sort"

	"github.com/mmr-tortoise/gitpublish/internal/config"
	"github.com/mmr-tortoise/gitpublish/internal/gitrepo"
	"github.com/mmr-tortoise/gitpublish/internal/hooks"
	"github.com/mmr-tortoise/gitpublish/internal/model"
	"github.com/mmr-tortoise/gitpublish/internal/release"
	"github.com/mmr-tortoise/gitpublish/internal/tagpattern"
	"github.com/mmr-tortoise/gitpublish/internal/ui"
)

// publishOptions carries the root command's flags into the workflow.
type publishOptions struct {
	branch string
	remote string
	force  bool
	dryRun bool
}

// runPublish is the full publish workflow: load config, pick branch and
// remote, fetch, analyze commits, propose a tag, confirm, run hooks,
// create and push.
func runPublish(opts *publishOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	printer := ui.New()

	repo, err := gitrepo.Open(".")
	if err != nil {
		return err
	}
	VerboseLog("repository root: %s", repo.Path)

	branch, err := resolveBranch(repo, cfg, printer, opts.branch)
	if err != nil {
		return err
	}
	VerboseLog("selected branch: %s", branch)

	remote, err := resolveRemote(repo, printer, opts.remote)
	if err != nil {
		return err
	}

	if remote != "" {
		printer.Status(fmt.Sprintf("Fetching tags from '%s'...", remote))
		if err := repo.Fetch(remote); err != nil {
			if !gitrepo.IsAuthError(err) {
				return err
			}
			// Credential problems downgrade to a warning: local tags are
			// usually current enough to resolve the next version, and the
			// user may only want a local tag anyway.
			printer.Warn(model.FetchAuthenticationFailed{Remote: remote})
		}
	}

	latestTag, err := repo.LatestTag(branch)
	if err != nil {
		return err
	}
	VerboseLog("latest tag: %q", latestTag)

	messages, err := repo.CommitMessagesSince(branch, latestTag)
	if err != nil {
		return err
	}

	if len(messages) == 0 && latestTag != "" {
		head, err := repo.HeadHash()
		if err != nil {
			return err
		}
		printer.Warn(model.NoNewCommits{LatestTag: latestTag, CurrentCommitHash: head})

		if !opts.force && !opts.dryRun {
			ok, err := printer.Confirm("No new commits found. Create a tag anyway?")
			if err != nil {
				return err
			}
			if !ok {
				return model.NewCLIError(model.ExitUserCancelled, "cancelled by user")
			}
		}
	}

	printer.CommitAnalysis(messages, branch)

	pattern := tagpattern.New(cfg.PatternForBranch(branch))
	plan := release.Resolve(latestTag, messages, cfg.ConventionalCommits, pattern)

	for _, warning := range plan.Warnings {
		printer.Warn(warning)
	}
	if plan.Previous != nil {
		printer.Status(fmt.Sprintf("Version bump: %s", plan.Bump))
	}
	printer.ProposedTag(latestTag, plan.NextTag)

	if opts.dryRun {
		printer.Status("Dry run: no tag was created.")
		return nil
	}

	if !opts.force {
		ok, err := printer.Confirm(fmt.Sprintf("Create tag '%s'?", plan.NextTag))
		if err != nil {
			return err
		}
		if !ok {
			return model.NewCLIError(model.ExitUserCancelled, "cancelled by user")
		}
	}

	executor := hooks.NewExecutor(repo.Path)
	hookCtx := hooks.Context{
		Branch:      branch,
		Tag:         plan.NextTag,
		Remote:      remote,
		VersionBump: plan.Bump,
		CommitCount: len(messages),
	}

	// pre-tag-create is the veto point: a failing script aborts before any
	// ref is written.
	if err := executor.Run(hooks.PreTagCreate, hookCtx); err != nil {
		return err
	}

	if err := repo.CreateTag(plan.NextTag); err != nil {
		return err
	}
	printer.Success(fmt.Sprintf("Created tag '%s'", plan.NextTag))

	executor.RunPermissive(hooks.PostTagCreate, hookCtx, func(msg string) {
		printer.Warnf("%s", msg)
	})

	if remote == "" {
		printer.ManualPushInstruction(plan.NextTag, "origin")
		return nil
	}

	if err := repo.PushTag(remote, plan.NextTag); err != nil {
		// The tag exists locally, so tell the user how to finish by hand
		// before surfacing the push failure.
		printer.ManualPushInstruction(plan.NextTag, remote)
		return err
	}
	printer.Success(fmt.Sprintf("Pushed tag '%s' to '%s'", plan.NextTag, remote))

	executor.RunPermissive(hooks.PostPush, hookCtx, func(msg string) {
		printer.Warnf("%s", msg)
	})

	return nil
}

// resolveBranch returns the branch to tag. An explicit flag value must be
// configured and exist in the repository; otherwise the user picks among
// the configured branches that exist locally.
func resolveBranch(repo *gitrepo.Repo, cfg config.Config, printer *ui.Printer, flag string) (string, error) {
	if flag != "" {
		if _, ok := cfg.Branches[flag]; !ok {
			return "", model.NewCLIError(model.ExitConfigError,
				fmt.Sprintf("branch %q is not configured for tagging (configured: %v)", flag, cfg.BranchNames()))
		}
		if !repo.BranchExists(flag) {
			return "", model.NewCLIError(model.ExitGitError,
				fmt.Sprintf("branch %q does not exist in this repository", flag))
		}
		return flag, nil
	}

	var candidates []string
	for _, name := range cfg.BranchNames() {
		if repo.BranchExists(name) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return "", model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("none of the configured branches %v exist in this repository", cfg.BranchNames()))
	}

	return printer.SelectBranch(orderBranchCandidates(candidates))
}

// orderBranchCandidates moves primary release branches (main, master) to
// the front so the prompt's default selection is the conventional release
// branch; the rest keep their sorted order.
func orderBranchCandidates(names []string) []string {
	sort.SliceStable(names, func(i, j int) bool {
		return model.NewBranchContext(names[i]).IsReleaseBranch() &&
			!model.NewBranchContext(names[j]).IsReleaseBranch()
	})
	return names
}

// resolveRemote returns the remote to push to, or "" when the repository
// has no remotes (the tag then stays local).
func resolveRemote(repo *gitrepo.Repo, printer *ui.Printer, flag string) (string, error) {
	remotes, err := repo.Remotes()
	if err != nil {
		return "", err
	}

	if flag != "" {
		for _, remote := range remotes {
			if remote == flag {
				return flag, nil
			}
		}
		return "", model.NewCLIError(model.ExitGitError,
			fmt.Sprintf("remote %q is not configured in this repository", flag))
	}

	if len(remotes) == 0 {
		return "", nil
	}
	return printer.SelectRemote(remotes)
}
