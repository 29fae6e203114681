// Package conventional parses conventional-commit messages and folds a
// commit range into a version-bump decision.
//
// Parsing is intentionally not a full Conventional Commits validator: it
// extracts only the type, optional scope, breaking-change marker and
// description, and any message that does not match the grammar degrades to
// a "chore" record instead of failing. User commit histories are never
// invalid input — at worst a message contributes nothing to the bump
// decision.
package conventional
