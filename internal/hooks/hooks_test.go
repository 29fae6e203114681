package hooks

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/gitpublish/internal/model"
)

// writeHook installs an executable shell script for the given hook type
// in a repo directory.
func writeHook(t *testing.T, repoPath string, hookType Type, script string) {
	t.Helper()

	dir := filepath.Join(repoPath, Dir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, hookType.String()),
		[]byte("#!/bin/sh\n"+script),
		0755,
	))
}

// skipOnWindows skips hook execution tests where /bin/sh is unavailable.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("hook scripts require a POSIX shell")
	}
}

// TestType_IsValid checks that only defined hook types pass validation.
func TestType_IsValid(t *testing.T) {
	assert.True(t, PreTagCreate.IsValid())
	assert.True(t, PostTagCreate.IsValid())
	assert.True(t, PostPush.IsValid())
	assert.False(t, Type("pre-push").IsValid())
	assert.False(t, Type("").IsValid())
}

// TestContext_Env verifies the environment variable mapping, including
// the conditional entries.
func TestContext_Env(t *testing.T) {
	full := Context{
		Branch:      "main",
		Tag:         "v1.2.3",
		Remote:      "origin",
		VersionBump: model.BumpMinor,
		CommitCount: 4,
	}
	assert.Equal(t, []string{
		"GITPUBLISH_BRANCH=main",
		"GITPUBLISH_TAG_NAME=v1.2.3",
		"GITPUBLISH_REMOTE=origin",
		"GITPUBLISH_VERSION_BUMP=minor",
		"GITPUBLISH_COMMIT_COUNT=4",
	}, full.Env())

	// Unknown bump and commit count are omitted, not emitted empty.
	sparse := Context{Branch: "main", Tag: "v1.2.3", Remote: "origin", CommitCount: -1}
	assert.Equal(t, []string{
		"GITPUBLISH_BRANCH=main",
		"GITPUBLISH_TAG_NAME=v1.2.3",
		"GITPUBLISH_REMOTE=origin",
	}, sparse.Env())
}

// TestExecutor_Run_MissingScript verifies that an uninstalled hook is a
// silent no-op.
func TestExecutor_Run_MissingScript(t *testing.T) {
	executor := NewExecutor(t.TempDir())

	assert.False(t, executor.Exists(PreTagCreate))
	assert.NoError(t, executor.Run(PreTagCreate, Context{CommitCount: -1}))
}

// TestExecutor_Run_Success verifies that a passing script runs in the
// repo directory with the context environment.
func TestExecutor_Run_Success(t *testing.T) {
	skipOnWindows(t)

	repoPath := t.TempDir()
	writeHook(t, repoPath, PreTagCreate,
		`printf '%s %s' "$GITPUBLISH_TAG_NAME" "$GITPUBLISH_BRANCH" > hook-output`)

	executor := NewExecutor(repoPath)
	require.True(t, executor.Exists(PreTagCreate))

	err := executor.Run(PreTagCreate, Context{
		Branch:      "main",
		Tag:         "v1.0.0",
		Remote:      "origin",
		VersionBump: model.BumpPatch,
		CommitCount: 2,
	})
	require.NoError(t, err)

	// The script ran with repoPath as its working directory.
	output, err := os.ReadFile(filepath.Join(repoPath, "hook-output"))
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0 main", string(output))
}

// TestExecutor_Run_Failure verifies that a failing script yields a
// CLIError with ExitHookFailed carrying the script's output.
func TestExecutor_Run_Failure(t *testing.T) {
	skipOnWindows(t)

	repoPath := t.TempDir()
	writeHook(t, repoPath, PreTagCreate, "echo tag rejected by policy\nexit 1")

	executor := NewExecutor(repoPath)
	err := executor.Run(PreTagCreate, Context{CommitCount: -1})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitHookFailed, cliErr.Code)
	assert.Contains(t, cliErr.Message, "tag rejected by policy")
}

// TestExecutor_Run_NotAFile verifies rejection of a directory at the
// script path.
func TestExecutor_Run_NotAFile(t *testing.T) {
	repoPath := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repoPath, Dir, PostPush.String()), 0755))

	executor := NewExecutor(repoPath)
	err := executor.Run(PostPush, Context{CommitCount: -1})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitHookFailed, cliErr.Code)
}

// TestExecutor_RunPermissive verifies that failures are routed to the
// warn callback instead of being returned.
func TestExecutor_RunPermissive(t *testing.T) {
	skipOnWindows(t)

	repoPath := t.TempDir()
	writeHook(t, repoPath, PostPush, "exit 1")

	var warned []string
	executor := NewExecutor(repoPath)
	executor.RunPermissive(PostPush, Context{CommitCount: -1}, func(msg string) {
		warned = append(warned, msg)
	})

	require.Len(t, warned, 1)
	assert.Contains(t, warned[0], "post-push")
}
