package conventional

import (
	"strings"

	"github.com/mmr-tortoise/gitpublish/internal/config"
	"github.com/mmr-tortoise/gitpublish/internal/model"
)

// Analyzer classifies a commit range into a version-bump decision using a
// configurable keyword vocabulary. It holds the vocabulary as a plain
// value, so tests can substitute arbitrary keyword sets.
type Analyzer struct {
	cfg config.ConventionalCommits
}

// NewAnalyzer creates an Analyzer with the given vocabulary.
func NewAnalyzer(cfg config.ConventionalCommits) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze folds the commit messages into one decision. It is total and
// sequential: the first breaking commit short-circuits the scan, so commit
// order matters only for how early the fold can stop.
//
// Per message:
//   - a breaking commit (header "!" or breaking-change footer) returns
//     Major immediately;
//   - a major- or minor-keyword hit (case-insensitive substring of the raw
//     message) yields a Minor candidate. Note the asymmetry: major
//     keywords do NOT force a Major bump the way the breaking marker
//     does, they escalate only to Minor. This mirrors the long-standing
//     observed precedence table; changing it would retag histories that
//     merely mention "deprecate", so it stays until a deliberate decision
//     is made;
//   - commit types feat/feature yield a Minor candidate; every other
//     type yields Patch.
//
// Candidates escalate under the Major > Minor > Patch ordering, and an
// empty or entirely unconventional range stays at the Patch floor.
func (a *Analyzer) Analyze(messages []string) model.VersionBump {
	bump := model.BumpPatch

	for _, message := range messages {
		parsed := Parse(message)

		if parsed.IsBreaking {
			return model.BumpMajor
		}

		candidate := model.BumpPatch

		lower := strings.ToLower(message)
		for _, keyword := range a.cfg.MajorKeywords {
			if strings.Contains(lower, keyword) {
				candidate = model.BumpMinor
			}
		}
		for _, keyword := range a.cfg.MinorKeywords {
			if strings.Contains(lower, keyword) {
				candidate = model.BumpMinor
			}
		}

		switch parsed.Type {
		case "feat", "feature":
			candidate = model.BumpMinor
		}

		if candidate.Supersedes(bump) {
			bump = candidate
		}
	}

	return bump
}
