// Package hooks runs user-supplied lifecycle scripts around tag creation
// and pushing.
//
// Scripts live in .gitpublish/hooks/ inside the repository, named after
// the hook type (pre-tag-create, post-tag-create, post-push). They receive
// the release context as GITPUBLISH_* environment variables and signal
// failure with a non-zero exit code. A pre-tag-create failure aborts the
// publish; the post hooks are advisory and only warn.
package hooks

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/mmr-tortoise/gitpublish/internal/model"
)

// Dir is the hook script directory, relative to the repository root.
const Dir = ".gitpublish/hooks"

// Type identifies a lifecycle hook. Its value is also the script name.
type Type string

const (
	// PreTagCreate runs before the tag is created; failure aborts.
	PreTagCreate Type = "pre-tag-create"

	// PostTagCreate runs after the tag exists locally; advisory.
	PostTagCreate Type = "post-tag-create"

	// PostPush runs after the tag was pushed; advisory.
	PostPush Type = "post-push"
)

// String returns the hook name, which doubles as its script file name.
func (t Type) String() string {
	return string(t)
}

// IsValid checks whether the Type is one of the defined lifecycle hooks.
func (t Type) IsValid() bool {
	switch t {
	case PreTagCreate, PostTagCreate, PostPush:
		return true
	default:
		return false
	}
}

// Context carries the release information exposed to hook scripts.
type Context struct {
	// Branch is the branch being tagged.
	Branch string

	// Tag is the tag name being created or pushed.
	Tag string

	// Remote is the remote the tag will be pushed to.
	Remote string

	// VersionBump is the bump decision, when known.
	VersionBump model.VersionBump

	// CommitCount is the number of commits since the previous tag;
	// negative when unknown.
	CommitCount int
}

// Env maps the context to GITPUBLISH_* environment entries in the
// KEY=value form expected by exec.Cmd.Env. VersionBump and CommitCount
// are included only when set.
func (c Context) Env() []string {
	env := []string{
		"GITPUBLISH_BRANCH=" + c.Branch,
		"GITPUBLISH_TAG_NAME=" + c.Tag,
		"GITPUBLISH_REMOTE=" + c.Remote,
	}
	if c.VersionBump != "" {
		env = append(env, "GITPUBLISH_VERSION_BUMP="+c.VersionBump.String())
	}
	if c.CommitCount >= 0 {
		env = append(env, "GITPUBLISH_COMMIT_COUNT="+strconv.Itoa(c.CommitCount))
	}
	return env
}

// Executor locates and runs hook scripts for one repository.
type Executor struct {
	// RepoPath is the repository root; scripts are looked up under
	// RepoPath/.gitpublish/hooks.
	RepoPath string
}

// NewExecutor creates an Executor for the repository at repoPath.
func NewExecutor(repoPath string) *Executor {
	return &Executor{RepoPath: repoPath}
}

// scriptPath returns where the script for a hook type would live.
func (e *Executor) scriptPath(t Type) string {
	return filepath.Join(e.RepoPath, Dir, t.String())
}

// Exists reports whether a script is installed for the hook type.
func (e *Executor) Exists(t Type) bool {
	info, err := os.Stat(e.scriptPath(t))
	return err == nil && info.Mode().IsRegular()
}

// Run executes the hook script with the context's environment appended to
// the current process environment. A missing script is a no-op. A
// non-zero exit returns a CLIError with ExitHookFailed carrying the
// script's combined output, so the user sees why their hook rejected the
// release.
func (e *Executor) Run(t Type, ctx Context) error {
	path := e.scriptPath(t)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return model.WrapCLIError(model.ExitHookFailed,
			fmt.Sprintf("cannot stat hook script %s", path), err)
	}
	if !info.Mode().IsRegular() {
		return model.NewCLIError(model.ExitHookFailed,
			fmt.Sprintf("hook path is not a file: %s", path))
	}

	cmd := exec.Command(path)
	cmd.Dir = e.RepoPath
	cmd.Env = append(os.Environ(), ctx.Env()...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		message := fmt.Sprintf("hook %s failed", t)
		if s := string(output); s != "" {
			message = fmt.Sprintf("%s: %s", message, s)
		}
		return model.WrapCLIError(model.ExitHookFailed, message, err)
	}
	return nil
}

// RunPermissive executes the hook but never fails: errors are reported
// through warn and swallowed. Used for the post hooks, where the tag
// operation has already succeeded and a hook failure must not
// retroactively fail it.
func (e *Executor) RunPermissive(t Type, ctx Context, warn func(string)) {
	if err := e.Run(t, ctx); err != nil {
		warn(err.Error())
	}
}
