package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersionBump_String verifies that VersionBump values produce the
// expected string representations for CLI output and hook environment
// variables.
func TestVersionBump_String(t *testing.T) {
	tests := []struct {
		bump     VersionBump
		expected string
	}{
		{BumpMajor, "major"},
		{BumpMinor, "minor"},
		{BumpPatch, "patch"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.bump.String())
		})
	}
}

// TestVersionBump_IsValid checks that only defined bump kinds pass validation.
func TestVersionBump_IsValid(t *testing.T) {
	assert.True(t, BumpMajor.IsValid())
	assert.True(t, BumpMinor.IsValid())
	assert.True(t, BumpPatch.IsValid())
	assert.False(t, VersionBump("invalid").IsValid())
	assert.False(t, VersionBump("").IsValid())
}

// TestVersionBump_Supersedes verifies the Major > Minor > Patch ordering.
func TestVersionBump_Supersedes(t *testing.T) {
	assert.True(t, BumpMajor.Supersedes(BumpMinor))
	assert.True(t, BumpMajor.Supersedes(BumpPatch))
	assert.True(t, BumpMinor.Supersedes(BumpPatch))

	assert.False(t, BumpPatch.Supersedes(BumpMinor))
	assert.False(t, BumpMinor.Supersedes(BumpMajor))
	assert.False(t, BumpMajor.Supersedes(BumpMajor))
}

// TestNewBranchContext verifies main/master classification.
func TestNewBranchContext(t *testing.T) {
	assert.True(t, NewBranchContext("main").IsReleaseBranch())
	assert.True(t, NewBranchContext("master").IsReleaseBranch())
	assert.False(t, NewBranchContext("develop").IsReleaseBranch())
	assert.False(t, NewBranchContext("Main").IsReleaseBranch()) // case sensitive
}

// TestShortHash verifies 7-character truncation and pass-through of
// already-short values.
func TestShortHash(t *testing.T) {
	assert.Equal(t, "abc1234", ShortHash("abc1234def5678901234567890123456789012345"))
	assert.Equal(t, "abc1234", ShortHash("abc1234"))
	assert.Equal(t, "abc", ShortHash("abc"))
	assert.Equal(t, "", ShortHash(""))
}

// TestCLIError verifies message formatting, exit code carrying and
// unwrapping of the underlying cause.
func TestCLIError(t *testing.T) {
	cause := errors.New("exit status 128")

	wrapped := WrapCLIError(ExitGitError, "git tag failed", cause)
	assert.Equal(t, ExitGitError, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "git tag failed")
	assert.Contains(t, wrapped.Error(), "exit status 128")
	assert.Equal(t, cause, errors.Unwrap(wrapped))

	plain := NewCLIError(ExitUserCancelled, "cancelled by user")
	assert.Equal(t, "cancelled by user", plain.Error())
	assert.Nil(t, errors.Unwrap(plain))
}
