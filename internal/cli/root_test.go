package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRootCommand verifies command wiring: name, subcommands and flags.
func TestNewRootCommand(t *testing.T) {
	rootCmd := NewRootCommand()

	assert.Equal(t, "gitpublish", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)

	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["next"], "next subcommand should be registered")
	assert.True(t, names["branches"], "branches subcommand should be registered")

	for _, flag := range []string{"branch", "remote", "force", "dry-run"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(flag), "flag %s should exist", flag)
	}
	for _, flag := range []string{"config", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "persistent flag %s should exist", flag)
	}
}

// TestOrderBranchCandidates verifies that release branches lead the
// prompt list and the remaining order is preserved.
func TestOrderBranchCandidates(t *testing.T) {
	assert.Equal(t, []string{"main", "develop", "gray"},
		orderBranchCandidates([]string{"develop", "gray", "main"}))
	assert.Equal(t, []string{"master", "feature-x", "staging"},
		orderBranchCandidates([]string{"feature-x", "master", "staging"}))
	assert.Equal(t, []string{"develop", "gray"},
		orderBranchCandidates([]string{"develop", "gray"}))
}

// TestNextCommand_Flags verifies the next subcommand's flag surface.
func TestNextCommand_Flags(t *testing.T) {
	nextCmd := NewNextCommand()

	assert.Equal(t, "next", nextCmd.Name())
	require.NotNil(t, nextCmd.Flags().Lookup("branch"))
}
