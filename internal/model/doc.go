// Package model defines the domain value types for the gitpublish CLI.
//
// This package contains pure data structures with no external dependencies:
// the version-bump decision (VersionBump), the branch classification
// (BranchContext), the non-fatal boundary warnings surfaced to the user,
// and the exit-code machinery (ExitCode, CLIError) that translates domain
// errors into OS process exit codes.
//
// All entities are value types constructed on demand from external strings
// and discarded after a decision is produced. There is no persistent store
// and no identity beyond structural equality.
package model
