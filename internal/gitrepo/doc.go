// Package gitrepo provides the git operations gitpublish needs: finding
// the latest tag on a branch, listing commit messages since a tag, and
// creating, pushing and fetching tags.
//
// It shells out to the git CLI (via os/exec) rather than using a Go git
// library: tag reachability, describe semantics and credential helpers are
// exactly the installed git's, which is what users expect a tagging tool
// to agree with. Every command runs with `git -C <repo>` so the process
// working directory never changes.
//
// All command failures are wrapped in model.CLIError so the CLI layer can
// translate them into exit codes; fetch failures additionally preserve
// stderr so authentication problems can be recognized and downgraded to a
// boundary warning.
package gitrepo
