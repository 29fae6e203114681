package conventional

import (
	"regexp"
	"strings"
)

// BreakingChangeMarker is the footer text that flags a breaking change
// anywhere in a commit message.
const BreakingChangeMarker = "BREAKING CHANGE:"

// ParsedCommit is the structured form of one commit message. It is created
// fresh per message, never mutated, and discarded after classification.
type ParsedCommit struct {
	// Type is the conventional commit type ("feat", "fix", ...); "chore"
	// for messages that do not match the grammar.
	Type string

	// Scope is the parenthesized scope, empty when absent.
	Scope string

	// Description is the text after the colon, or the whole message for
	// non-conventional commits.
	Description string

	// IsBreaking is true when the header carries "!" or the message
	// contains the breaking-change footer.
	IsBreaking bool
}

// Header grammar, tried in order. The type is one or more lowercase
// letters, matched case-sensitively; the scope is any run of characters
// excluding ')'.
var (
	headerScopedRe   = regexp.MustCompile(`^([a-z]+)\(([^)]+)\)(!?):\s*(.*)`)
	headerBreakingRe = regexp.MustCompile(`^([a-z]+)!:\s*(.*)`)
	headerPlainRe    = regexp.MustCompile(`^([a-z]+):\s*(.*)`)
)

// Parse turns one raw commit message into a ParsedCommit. It is total:
// every input produces a record, and malformed or ambiguous headers fall
// through to the "chore" default rather than erroring.
//
// Only the first line is matched against the header grammar; the full
// message (all lines) is scanned for the breaking-change footer.
func Parse(message string) ParsedCommit {
	header, _, _ := strings.Cut(message, "\n")
	hasFooter := strings.Contains(message, BreakingChangeMarker)

	// type(scope)!: description / type(scope): description
	if m := headerScopedRe.FindStringSubmatch(header); m != nil {
		return ParsedCommit{
			Type:        m[1],
			Scope:       m[2],
			Description: m[4],
			IsBreaking:  m[3] == "!" || hasFooter,
		}
	}

	// type!: description
	if m := headerBreakingRe.FindStringSubmatch(header); m != nil {
		return ParsedCommit{
			Type:        m[1],
			Description: m[2],
			IsBreaking:  true,
		}
	}

	// type: description
	if m := headerPlainRe.FindStringSubmatch(header); m != nil {
		return ParsedCommit{
			Type:        m[1],
			Description: m[2],
			IsBreaking:  hasFooter,
		}
	}

	// Non-conventional message: classify as chore, keep the whole message
	// as the description.
	return ParsedCommit{
		Type:        "chore",
		Description: message,
	}
}
