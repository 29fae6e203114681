// Package semver implements parsing, formatting and arithmetic for the
// MAJOR.MINOR.PATCH[-PRERELEASE] version strings gitpublish reads from and
// writes into git tags.
//
// The grammar is deliberately more permissive than strict semver.org on the
// way in (a single leading letter prefix such as "v1.2.3" or "g1.2.3" is
// stripped, pre-release identifiers have alpha/beta/rc short forms) and
// canonical on the way out: String always produces "X.Y.Z" or
// "X.Y.Z-identifier[.n]".
//
// All operations are pure functions over immutable values; bumping a
// version always clears its pre-release.
package semver
