// Package release turns a repository's state into a release plan: given
// the latest tag, the commit messages since it, and the branch's tag
// pattern, it decides the version bump, computes the next version, and
// collects the boundary warnings the user should see before confirming.
//
// The pipeline is pure. It touches neither git nor the filesystem, so it
// is testable with plain values; the cli package gathers the inputs and
// acts on the plan.
package release

import (
	"github.com/mmr-tortoise/gitpublish/internal/config"
	"github.com/mmr-tortoise/gitpublish/internal/conventional"
	"github.com/mmr-tortoise/gitpublish/internal/model"
	"github.com/mmr-tortoise/gitpublish/internal/semver"
	"github.com/mmr-tortoise/gitpublish/internal/tagpattern"
)

// seedVersion is the first version of a repository with no usable tag
// history. Starting at 0.1.0 rather than 0.0.1 or 1.0.0 matches the
// common convention for a project's first tagged release.
var seedVersion = semver.New(0, 1, 0)

// Plan is the outcome of resolving a release: what to bump, from what, to
// what, and what looked off along the way.
type Plan struct {
	// Bump is the decision derived from the commit messages. It is
	// advisory when Previous is nil, since a seeded version is not bumped.
	Bump model.VersionBump

	// Previous is the version parsed from the latest tag, or nil when no
	// tag existed or it could not be parsed.
	Previous *semver.Version

	// Next is the version the new tag will carry.
	Next semver.Version

	// NextTag is Next formatted through the branch's tag pattern.
	NextTag string

	// Warnings are the boundary conditions encountered: unparsable tags,
	// pattern mismatches. The release can proceed despite them; they
	// exist so the user decides with full information.
	Warnings []model.BoundaryWarning
}

// Resolve computes the release plan.
//
// The bump decision always comes from the commit messages. The previous
// version comes from latestTag when it parses; an empty latestTag seeds
// 0.1.0 silently (a fresh repository is not a boundary condition), and an
// unparsable one seeds 0.1.0 with an UnparsableTag warning. A tag that
// parses but does not match the branch's pattern is still used, with a
// TagMismatchPattern warning.
func Resolve(latestTag string, messages []string, cc config.ConventionalCommits, pattern tagpattern.Pattern) Plan {
	plan := Plan{
		Bump: conventional.NewAnalyzer(cc).Analyze(messages),
	}

	switch {
	case latestTag == "":
		plan.Next = seedVersion

	default:
		previous, err := semver.Parse(latestTag)
		if err != nil {
			plan.Warnings = append(plan.Warnings, model.UnparsableTag{
				Tag:    latestTag,
				Reason: err.Error(),
			})
			plan.Next = seedVersion
			break
		}

		// A template without the {version} placeholder makes Matches error;
		// such a pattern can never have produced the tag, so it is reported
		// the same way as an ordinary mismatch.
		if matched, err := pattern.Matches(latestTag); err != nil || !matched {
			plan.Warnings = append(plan.Warnings, model.TagMismatchPattern{
				Tag:     latestTag,
				Pattern: pattern.String(),
			})
		}

		plan.Previous = &previous
		plan.Next = previous.Bump(plan.Bump)
	}

	plan.NextTag = pattern.Format(plan.Next.String())
	return plan
}
