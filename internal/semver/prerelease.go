package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PreReleaseParseError describes a malformed pre-release suffix.
type PreReleaseParseError struct {
	// Input is the string that failed to parse.
	Input string

	// Reason describes what made the input invalid.
	Reason string
}

func (e *PreReleaseParseError) Error() string {
	return fmt.Sprintf("invalid pre-release %q: %s", e.Input, e.Reason)
}

// IdentifierKind distinguishes the recognized pre-release identifiers from
// free-form custom ones.
type IdentifierKind string

const (
	// KindAlpha is the "alpha" identifier (short form "a").
	KindAlpha IdentifierKind = "alpha"

	// KindBeta is the "beta" identifier (short form "b").
	KindBeta IdentifierKind = "beta"

	// KindReleaseCandidate is the "rc" identifier.
	KindReleaseCandidate IdentifierKind = "rc"

	// KindCustom is any other identifier matching [A-Za-z0-9-]+.
	// The literal text lives in PreReleaseIdentifier.Name.
	KindCustom IdentifierKind = "custom"
)

// PreReleaseIdentifier is the tag part of a pre-release suffix: alpha,
// beta, rc, or a custom alphanumeric-hyphen identifier. Name is populated
// only for KindCustom and is always stored lowercased.
type PreReleaseIdentifier struct {
	Kind IdentifierKind
	Name string
}

// Well-known identifiers.
var (
	Alpha            = PreReleaseIdentifier{Kind: KindAlpha}
	Beta             = PreReleaseIdentifier{Kind: KindBeta}
	ReleaseCandidate = PreReleaseIdentifier{Kind: KindReleaseCandidate}
)

// CustomIdentifier builds a custom identifier. The name is lowercased to
// match what parsing produces; validity is not checked here because the
// only external entry point is ParsePreReleaseIdentifier.
func CustomIdentifier(name string) PreReleaseIdentifier {
	return PreReleaseIdentifier{Kind: KindCustom, Name: strings.ToLower(name)}
}

// customIdentifierRe constrains custom identifiers to ASCII
// alphanumerics and hyphens.
var customIdentifierRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// ParsePreReleaseIdentifier resolves an identifier string case-insensitively.
// "alpha"/"a", "beta"/"b" and "rc" map to the well-known identifiers; any
// other [A-Za-z0-9-]+ string becomes a custom identifier.
func ParsePreReleaseIdentifier(s string) (PreReleaseIdentifier, error) {
	switch lower := strings.ToLower(s); lower {
	case "alpha", "a":
		return Alpha, nil
	case "beta", "b":
		return Beta, nil
	case "rc":
		return ReleaseCandidate, nil
	default:
		if !customIdentifierRe.MatchString(lower) {
			return PreReleaseIdentifier{}, &PreReleaseParseError{
				Input:  s,
				Reason: "identifier must contain only letters, digits and hyphens",
			}
		}
		return PreReleaseIdentifier{Kind: KindCustom, Name: lower}, nil
	}
}

// String returns the textual form of the identifier: the canonical name
// for the well-known kinds, the stored name for custom ones.
func (i PreReleaseIdentifier) String() string {
	if i.Kind == KindCustom {
		return i.Name
	}
	return string(i.Kind)
}

// PreRelease is a full pre-release suffix: an identifier with an optional
// monotonic iteration counter, e.g. "alpha", "beta.1", "rc.3",
// "staging.12". A nil Iteration means the counter is absent.
type PreRelease struct {
	Identifier PreReleaseIdentifier
	Iteration  *uint64
}

// NewPreRelease constructs a PreRelease. Pass nil for no iteration counter.
func NewPreRelease(identifier PreReleaseIdentifier, iteration *uint64) PreRelease {
	return PreRelease{Identifier: identifier, Iteration: iteration}
}

// ParsePreRelease parses a pre-release suffix. The input is split on the
// first dot: the head must be a valid identifier and the remainder, if
// present, must be a non-negative integer. Empty input is an error.
func ParsePreRelease(s string) (PreRelease, error) {
	if s == "" {
		return PreRelease{}, &PreReleaseParseError{Input: s, Reason: "empty pre-release identifier"}
	}

	head, rest, hasIteration := strings.Cut(s, ".")

	identifier, err := ParsePreReleaseIdentifier(head)
	if err != nil {
		return PreRelease{}, err
	}

	var iteration *uint64
	if hasIteration {
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return PreRelease{}, &PreReleaseParseError{
				Input:  s,
				Reason: fmt.Sprintf("iteration %q is not a non-negative integer", rest),
			}
		}
		iteration = &n
	}

	return PreRelease{Identifier: identifier, Iteration: iteration}, nil
}

// Increment returns a copy with the iteration counter advanced: an absent
// counter becomes 1, an existing counter grows by one. The identifier is
// never changed and Increment never fails.
func (p PreRelease) Increment() PreRelease {
	next := uint64(1)
	if p.Iteration != nil {
		next = *p.Iteration + 1
	}
	return PreRelease{Identifier: p.Identifier, Iteration: &next}
}

// String returns the textual form: the identifier, followed by "." and the
// iteration counter when one is present.
func (p PreRelease) String() string {
	if p.Iteration == nil {
		return p.Identifier.String()
	}
	return fmt.Sprintf("%s.%d", p.Identifier, *p.Iteration)
}
