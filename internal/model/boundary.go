package model

import "fmt"

// BoundaryWarning is a non-fatal condition encountered while resolving the
// next release tag near repository boundaries (no history, unparsable or
// mismatched tags, unreachable remotes). Warnings are reported to the user
// and never abort the workflow on their own.
//
// The set of implementations is closed: NoNewCommits, UnparsableTag,
// TagMismatchPattern and FetchAuthenticationFailed. The unexported marker
// method keeps it that way, so a type switch over warnings can be
// exhaustive.
type BoundaryWarning interface {
	fmt.Stringer

	// boundaryWarning restricts implementations to this package.
	boundaryWarning()
}

// NoNewCommits indicates that no commits were found since the latest tag.
type NoNewCommits struct {
	// LatestTag is the tag the commit walk started from.
	LatestTag string

	// CurrentCommitHash is the full hash of the current branch head.
	CurrentCommitHash string
}

func (w NoNewCommits) String() string {
	return fmt.Sprintf("No new commits since tag '%s' (current: %s)",
		w.LatestTag, ShortHash(w.CurrentCommitHash))
}

func (NoNewCommits) boundaryWarning() {}

// UnparsableTag indicates that a tag exists but cannot be parsed as a
// semantic version. The caller falls back to a seed version.
type UnparsableTag struct {
	// Tag is the offending tag name.
	Tag string

	// Reason is the parse failure description.
	Reason string
}

func (w UnparsableTag) String() string {
	return fmt.Sprintf("Cannot parse tag '%s': %s", w.Tag, w.Reason)
}

func (UnparsableTag) boundaryWarning() {}

// TagMismatchPattern indicates that a tag exists but does not match the
// tag pattern configured for the branch.
type TagMismatchPattern struct {
	// Tag is the existing tag name.
	Tag string

	// Pattern is the configured tag template, e.g. "v{version}".
	Pattern string
}

func (w TagMismatchPattern) String() string {
	return fmt.Sprintf("Tag '%s' does not match pattern '%s'", w.Tag, w.Pattern)
}

func (TagMismatchPattern) boundaryWarning() {}

// FetchAuthenticationFailed indicates that fetching from a remote failed
// due to authentication. The workflow proceeds with local data.
type FetchAuthenticationFailed struct {
	// Remote is the remote name, e.g. "origin".
	Remote string
}

func (w FetchAuthenticationFailed) String() string {
	return fmt.Sprintf("Authentication failed when fetching from remote '%s'", w.Remote)
}

func (FetchAuthenticationFailed) boundaryWarning() {}
