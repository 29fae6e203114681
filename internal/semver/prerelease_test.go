package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePreReleaseIdentifier verifies resolution of well-known
// identifiers, their short forms, case folding and custom identifiers.
func TestParsePreReleaseIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected PreReleaseIdentifier
		hasError bool
	}{
		{input: "alpha", expected: Alpha},
		{input: "a", expected: Alpha},
		{input: "beta", expected: Beta},
		{input: "b", expected: Beta},
		{input: "rc", expected: ReleaseCandidate},
		{input: "ALPHA", expected: Alpha}, // case insensitive
		{input: "Rc", expected: ReleaseCandidate},
		{input: "staging", expected: CustomIdentifier("staging")},
		{input: "NIGHTLY", expected: CustomIdentifier("nightly")}, // lowercased
		{input: "pre-1", expected: CustomIdentifier("pre-1")},

		{input: "", hasError: true},
		{input: "rc.1", hasError: true},   // dots belong to the iteration split
		{input: "sta ge", hasError: true}, // whitespace
		{input: "α", hasError: true},      // non-ASCII
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParsePreReleaseIdentifier(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestParsePreRelease verifies the identifier/iteration split on the
// first dot.
func TestParsePreRelease(t *testing.T) {
	tests := []struct {
		input    string
		expected PreRelease
		hasError bool
	}{
		{input: "alpha", expected: PreRelease{Identifier: Alpha}},
		{input: "beta.1", expected: PreRelease{Identifier: Beta, Iteration: uintPtr(1)}},
		{input: "rc.12", expected: PreRelease{Identifier: ReleaseCandidate, Iteration: uintPtr(12)}},
		{input: "staging.0", expected: PreRelease{Identifier: CustomIdentifier("staging"), Iteration: uintPtr(0)}},

		{input: "", hasError: true},
		{input: "rc.", hasError: true},    // empty iteration
		{input: "rc.x", hasError: true},   // non-numeric iteration
		{input: "rc.-1", hasError: true},  // negative iteration
		{input: "rc.1.2", hasError: true}, // everything after the first dot must be one integer
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParsePreRelease(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				var parseErr *PreReleaseParseError
				assert.ErrorAs(t, err, &parseErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestPreRelease_Increment verifies counter arithmetic: absent becomes 1,
// present advances by one, and the receiver is never mutated.
func TestPreRelease_Increment(t *testing.T) {
	bare := PreRelease{Identifier: Alpha}
	incremented := bare.Increment()
	assert.Equal(t, "alpha.1", incremented.String())
	assert.Nil(t, bare.Iteration, "receiver must not be mutated")

	counted := PreRelease{Identifier: ReleaseCandidate, Iteration: uintPtr(5)}
	next := counted.Increment()
	assert.Equal(t, "rc.6", next.String())
	assert.Equal(t, uint64(5), *counted.Iteration, "receiver must not be mutated")

	// The returned counter is a fresh pointer, not a shared one.
	again := next.Increment()
	assert.Equal(t, "rc.7", again.String())
	assert.Equal(t, uint64(6), *next.Iteration)
}

// TestPreRelease_String verifies display formatting for all identifier kinds.
func TestPreRelease_String(t *testing.T) {
	assert.Equal(t, "alpha", PreRelease{Identifier: Alpha}.String())
	assert.Equal(t, "beta.2", PreRelease{Identifier: Beta, Iteration: uintPtr(2)}.String())
	assert.Equal(t, "rc.1", PreRelease{Identifier: ReleaseCandidate, Iteration: uintPtr(1)}.String())
	assert.Equal(t, "staging.9", PreRelease{Identifier: CustomIdentifier("staging"), Iteration: uintPtr(9)}.String())
}
