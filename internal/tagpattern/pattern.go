// Package tagpattern formats versions into tag names and matches existing
// tag names against a branch's tag template.
//
// A pattern is a literal template containing one "{version}" placeholder,
// e.g. "v{version}" or "release-{version}". Formatting is plain
// substitution; matching derives an anchored regular expression by escaping
// the literal parts and substituting the placeholder with a three-component
// numeric capture. Pre-release suffixes are deliberately not matched: the
// matcher answers "is this a release tag for this branch", and pre-release
// tags are not.
package tagpattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is the template marker substituted with a version string.
const Placeholder = "{version}"

// versionCapture matches exactly three dot-separated integer runs.
const versionCapture = `(\d+\.\d+\.\d+)`

// PatternError describes an unusable tag pattern, most commonly a template
// with no {version} placeholder.
type PatternError struct {
	// Pattern is the offending template.
	Pattern string

	// Reason describes what made the template unusable.
	Reason string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid tag pattern %q: %s", e.Pattern, e.Reason)
}

// Pattern is a tag template. The zero value formats everything to the
// empty string and fails to match; construct with New.
type Pattern struct {
	// Template is the literal template text, e.g. "v{version}".
	Template string
}

// New creates a Pattern from a template string. The placeholder is
// enforced at match time, not here, because formatting a placeholder-free
// template is harmless (it just ignores the version).
func New(template string) Pattern {
	return Pattern{Template: template}
}

// Format substitutes the version string into the template. Total: no
// validation is performed and a template without the placeholder is
// returned unchanged.
func (p Pattern) Format(version string) string {
	return strings.ReplaceAll(p.Template, Placeholder, version)
}

// Matches reports whether the candidate tag was produced by this template
// from some X.Y.Z version. The template must contain the placeholder;
// every other character is matched literally.
func (p Pattern) Matches(tag string) (bool, error) {
	if !strings.Contains(p.Template, Placeholder) {
		return false, &PatternError{
			Pattern: p.Template,
			Reason:  "template must contain the {version} placeholder",
		}
	}

	escaped := regexp.QuoteMeta(p.Template)
	// QuoteMeta escapes the braces too, so the placeholder to replace is
	// its escaped form.
	expr := "^" + strings.ReplaceAll(escaped, regexp.QuoteMeta(Placeholder), versionCapture) + "$"

	re, err := regexp.Compile(expr)
	if err != nil {
		// Unreachable for any template QuoteMeta has escaped, but the
		// regexp API returns an error and swallowing it would hide a bug.
		return false, &PatternError{Pattern: p.Template, Reason: err.Error()}
	}

	return re.MatchString(tag), nil
}

// String returns the literal template.
func (p Pattern) String() string {
	return p.Template
}
