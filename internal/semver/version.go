package semver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmr-tortoise/gitpublish/internal/model"
)

// VersionParseError describes a tag string that is not a valid version.
type VersionParseError struct {
	// Input is the original tag string, including any prefix.
	Input string

	// Reason describes what made the input invalid.
	Reason string
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %s", e.Input, e.Reason)
}

// Version is a semantic version with an optional pre-release suffix.
// A nil Pre means the version is stable.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   *PreRelease
}

// New constructs a stable version.
func New(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads a version from a tag string.
//
// At most one leading ASCII letter is stripped when it is immediately
// followed by a digit, so "v1.2.3", "V1.2.3", "d1.2.3" and "g1.2.3" all
// parse to 1.2.3. This is deliberately permissive: branch tag patterns use
// different single-letter prefixes ("v{version}", "d{version}", ...), and
// the prefix letter carries no version information.
//
// After prefix stripping, the input splits on the first '-' into the
// numeric core and an optional pre-release suffix. The core must be
// exactly three dot-separated non-negative integers.
func Parse(tag string) (Version, error) {
	s := tag
	if len(s) >= 2 && isASCIILetter(s[0]) && isASCIIDigit(s[1]) {
		s = s[1:]
	}

	core, preSuffix, hasPre := strings.Cut(s, "-")

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, &VersionParseError{
			Input:  tag,
			Reason: "expected X.Y.Z or X.Y.Z-PRERELEASE",
		}
	}

	components := make([]uint64, 3)
	for i, name := range [3]string{"major", "minor", "patch"} {
		n, err := strconv.ParseUint(parts[i], 10, 64)
		if err != nil {
			return Version{}, &VersionParseError{
				Input:  tag,
				Reason: fmt.Sprintf("%s component %q is not a non-negative integer", name, parts[i]),
			}
		}
		components[i] = n
	}

	v := Version{Major: components[0], Minor: components[1], Patch: components[2]}

	if hasPre {
		pre, err := ParsePreRelease(preSuffix)
		if err != nil {
			return Version{}, &VersionParseError{
				Input:  tag,
				Reason: err.Error(),
			}
		}
		v.Pre = &pre
	}

	return v, nil
}

// Bump returns the next version for the given bump kind. The pre-release
// suffix is always cleared: promoting any build, pre-release or not, yields
// a stable version. An invalid kind falls through to a patch bump, which
// keeps Bump total; callers always hold a parsed VersionBump in practice.
func (v Version) Bump(kind model.VersionBump) Version {
	switch kind {
	case model.BumpMajor:
		return Version{Major: v.Major + 1}
	case model.BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// WithPreRelease returns a copy of v carrying the given pre-release suffix.
func (v Version) WithPreRelease(pre PreRelease) Version {
	v.Pre = &pre
	return v
}

// IsPreRelease reports whether v carries a pre-release suffix.
func (v Version) IsPreRelease() bool {
	return v.Pre != nil
}

// String formats the version as "X.Y.Z", with "-PRERELEASE" appended when a
// pre-release suffix is present. Parse(v.String()) round-trips for every
// Version.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != nil {
		s += "-" + v.Pre.String()
	}
	return s
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
