package gitrepo

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/mmr-tortoise/gitpublish/internal/model"
)

// recordSeparator delimits commit messages in git log output. ASCII 0x1e
// (record separator) cannot appear in a commit message taken from `git
// commit`, which makes splitting unambiguous even for multi-line bodies.
const recordSeparator = "\x1e"

// Repo is a handle on a local git repository, rooted at the repository
// top-level directory.
type Repo struct {
	// Path is the absolute path to the repository root.
	Path string
}

// Open discovers the git repository containing path (typically ".") and
// returns a Repo rooted at its top level. Returns a CLIError with
// ExitNotARepository when path is not inside a git repository.
func Open(path string) (*Repo, error) {
	out, err := runGit(path, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, model.WrapCLIError(model.ExitNotARepository,
			fmt.Sprintf("not a git repository: %s", path), err)
	}
	return &Repo{Path: strings.TrimSpace(out)}, nil
}

// CurrentBranch returns the short name of the checked-out branch, or
// "HEAD" in a detached state.
func (r *Repo) CurrentBranch() (string, error) {
	out, err := runGit(r.Path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// BranchExists reports whether a local ref with the given name exists.
// Only the exit code of `git rev-parse --verify` matters.
func (r *Repo) BranchExists(branch string) bool {
	_, err := runGit(r.Path, "rev-parse", "--verify", "--quiet", branch)
	return err == nil
}

// HeadHash returns the full SHA of the current HEAD commit.
func (r *Repo) HeadHash() (string, error) {
	out, err := runGit(r.Path, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Remotes returns the configured remote names, sorted with "origin" first
// so prompts default to the conventional remote.
func (r *Repo) Remotes() ([]string, error) {
	out, err := runGit(r.Path, "remote")
	if err != nil {
		return nil, err
	}

	var remotes []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			remotes = append(remotes, line)
		}
	}

	sort.Slice(remotes, func(i, j int) bool {
		if remotes[i] == "origin" {
			return true
		}
		if remotes[j] == "origin" {
			return false
		}
		return remotes[i] < remotes[j]
	})
	return remotes, nil
}

// Fetch updates local refs and tags from the remote. The returned error
// preserves git's stderr, so IsAuthError can recognize credential
// failures; callers treat those as a boundary warning rather than a fatal
// error and continue with local data.
func (r *Repo) Fetch(remote string) error {
	_, err := runGit(r.Path, "fetch", "--tags", remote)
	return err
}

// IsAuthError reports whether an error from Fetch or PushTag looks like an
// authentication failure. Git surfaces these only as transport-specific
// stderr text, so this is substring classification by necessity.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"authentication failed",
		"permission denied",
		"could not read username",
		"could not read password",
		"publickey",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// LatestTag returns the most recent tag reachable from the branch head,
// or "" when no tag is reachable. Uses `git describe --tags --abbrev=0`,
// which follows both lightweight and annotated tags.
func (r *Repo) LatestTag(branch string) (string, error) {
	out, err := runGit(r.Path, "describe", "--tags", "--abbrev=0", branch)
	if err != nil {
		// `git describe` fails when the branch has no tags at all; that
		// is a normal state for a fresh repository, not an error.
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "no names found") ||
			strings.Contains(msg, "no tags can describe") ||
			strings.Contains(msg, "cannot describe") {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommitMessagesSince returns the full messages (subject and body) of all
// commits on the branch since the given tag, oldest first. An empty tag
// returns the branch's entire history.
func (r *Repo) CommitMessagesSince(branch, tag string) ([]string, error) {
	rangeSpec := branch
	if tag != "" {
		rangeSpec = fmt.Sprintf("%s..%s", tag, branch)
	}

	// %B is the raw body (subject + body); the record separator keeps
	// multi-line messages intact through the split below.
	out, err := runGit(r.Path, "log", "--reverse", "--format=%B"+recordSeparator, rangeSpec)
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, chunk := range strings.Split(out, recordSeparator) {
		if msg := strings.TrimSpace(chunk); msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

// CreateTag creates a lightweight tag at the current HEAD.
func (r *Repo) CreateTag(name string) error {
	_, err := runGit(r.Path, "tag", name)
	return err
}

// PushTag pushes a single tag to the remote using an explicit refs/tags
// refspec, so a branch with the same name can never be pushed by accident.
func (r *Repo) PushTag(remote, name string) error {
	_, err := runGit(r.Path, "push", remote, "refs/tags/"+name)
	return err
}

// runGit executes a git command with the given arguments against the
// repository at dir. On success it returns stdout; on failure it returns a
// model.CLIError with ExitGitError whose message includes stderr, which is
// where git reports everything useful about a failure.
func runGit(dir string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", dir}, args...)

	cmd := exec.Command("git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if s := strings.TrimSpace(stderr.String()); s != "" {
			message = fmt.Sprintf("%s: %s", message, s)
		}
		return "", model.WrapCLIError(model.ExitGitError, message, err)
	}

	return stdout.String(), nil
}
