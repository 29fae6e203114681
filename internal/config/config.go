package config

import "sort"

// Config is the full gitpublish configuration.
type Config struct {
	// Branches maps branch names to their tag pattern templates,
	// e.g. "main" -> "v{version}". Only configured branches can be tagged.
	Branches map[string]string `toml:"branches" yaml:"branches" json:"branches"`

	// ConventionalCommits configures commit-message analysis.
	ConventionalCommits ConventionalCommits `toml:"conventional_commits" yaml:"conventional_commits" json:"conventional_commits"`
}

// ConventionalCommits holds the commit-analysis vocabulary.
type ConventionalCommits struct {
	// Types lists the recognized conventional commit types. Informational:
	// the parser accepts any lowercase type and the analyzer hardcodes
	// which types drive the bump decision; this list exists for display
	// and future validation.
	Types []string `toml:"types" yaml:"types" json:"types"`

	// BreakingChangeIndicators lists the footer markers that flag a
	// breaking change. The parser currently matches the literal
	// "BREAKING CHANGE:" only; this list is carried as configuration
	// data but not yet threaded into the parser.
	BreakingChangeIndicators []string `toml:"breaking_change_indicators" yaml:"breaking_change_indicators" json:"breaking_change_indicators"`

	// MajorKeywords are matched case-insensitively as substrings of the
	// raw commit message. See the analyzer for how keyword hits are
	// weighted.
	MajorKeywords []string `toml:"major_keywords" yaml:"major_keywords" json:"major_keywords"`

	// MinorKeywords are matched like MajorKeywords.
	MinorKeywords []string `toml:"minor_keywords" yaml:"minor_keywords" json:"minor_keywords"`
}

// Default returns the built-in configuration: the conventional branch
// prefixes (v/d/g) and the standard conventional-commit vocabulary.
func Default() Config {
	return Config{
		Branches: map[string]string{
			"main":    "v{version}",
			"develop": "d{version}",
			"gray":    "g{version}",
		},
		ConventionalCommits: DefaultConventionalCommits(),
	}
}

// DefaultConventionalCommits returns the default analysis vocabulary.
func DefaultConventionalCommits() ConventionalCommits {
	return ConventionalCommits{
		Types: []string{
			"feat", "fix", "docs", "style", "refactor",
			"test", "chore", "build", "ci", "perf",
		},
		BreakingChangeIndicators: []string{"BREAKING CHANGE:", "BREAKING-CHANGE:"},
		MajorKeywords:            []string{"breaking", "deprecate"},
		MinorKeywords:            []string{"feature", "feat", "enhancement"},
	}
}

// PatternForBranch returns the tag pattern template configured for the
// branch, falling back to "v{version}" when the branch has no entry.
func (c Config) PatternForBranch(branch string) string {
	if pattern, ok := c.Branches[branch]; ok && pattern != "" {
		return pattern
	}
	return "v{version}"
}

// BranchNames returns the configured branch names in sorted order, so
// prompts and listings are deterministic.
func (c Config) BranchNames() []string {
	names := make([]string, 0, len(c.Branches))
	for name := range c.Branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyDefaults fills any field left unset by the config file. A nil slice
// means the field was absent (an explicitly empty list stays empty).
func (c *Config) applyDefaults() {
	def := Default()
	if len(c.Branches) == 0 {
		c.Branches = def.Branches
	}
	cc := &c.ConventionalCommits
	if cc.Types == nil {
		cc.Types = def.ConventionalCommits.Types
	}
	if cc.BreakingChangeIndicators == nil {
		cc.BreakingChangeIndicators = def.ConventionalCommits.BreakingChangeIndicators
	}
	if cc.MajorKeywords == nil {
		cc.MajorKeywords = def.ConventionalCommits.MajorKeywords
	}
	if cc.MinorKeywords == nil {
		cc.MinorKeywords = def.ConventionalCommits.MinorKeywords
	}
}
