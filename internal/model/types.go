package model

// VersionBump is the outcome of analyzing a commit range: which component
// of the semantic version the next release must increment.
//
// The three values form a total severity ordering Major > Minor > Patch,
// exposed via Supersedes.
type VersionBump string

const (
	// BumpMajor indicates a breaking change: increment MAJOR, reset the rest.
	BumpMajor VersionBump = "major"

	// BumpMinor indicates new functionality: increment MINOR, reset PATCH.
	BumpMinor VersionBump = "minor"

	// BumpPatch indicates fixes only (or nothing conventional detected):
	// increment PATCH.
	BumpPatch VersionBump = "patch"
)

// String returns the string representation of the VersionBump.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and hook environment variables.
func (b VersionBump) String() string {
	return string(b)
}

// IsValid checks whether the VersionBump value is one of the
// predefined bump kinds.
func (b VersionBump) IsValid() bool {
	switch b {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	default:
		return false
	}
}

// Supersedes reports whether b is strictly more severe than other,
// under the ordering Major > Minor > Patch.
func (b VersionBump) Supersedes(other VersionBump) bool {
	return b.rank() > other.rank()
}

func (b VersionBump) rank() int {
	switch b {
	case BumpMajor:
		return 3
	case BumpMinor:
		return 2
	case BumpPatch:
		return 1
	default:
		return 0
	}
}

// BranchContext pairs a branch name with whether it is a primary release
// branch. The main/master distinction affects only presentation defaults,
// never the bump decision.
type BranchContext struct {
	// Name is the git branch name.
	Name string

	// IsMain is true for the conventional primary branches ("main", "master").
	IsMain bool
}

// NewBranchContext creates a BranchContext, classifying "main" and
// "master" as primary release branches.
func NewBranchContext(name string) BranchContext {
	return BranchContext{
		Name:   name,
		IsMain: name == "main" || name == "master",
	}
}

// IsReleaseBranch reports whether this branch is a primary release branch.
func (b BranchContext) IsReleaseBranch() bool {
	return b.IsMain
}

// ShortHash truncates a full commit hash to the conventional 7-character
// display prefix. Hashes shorter than 7 characters are returned unchanged.
func ShortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
