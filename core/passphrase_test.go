package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePassphraseDisabledPolicy(t *testing.T) {
	constraints := CompilePassphrase(DisabledPassphrasePolicy())

	assert.Equal(t, PassphrasePolicyConstraints{
		PolicyInEffect: false,
		NumWords:       Between(3, 20),
		WordSeparator:  TextBetween(0, 1),
		Capitalize:     RequiresTrue(),
		IncludeNumber:  RequiresTrue(),
	}, constraints)
}

func TestCompilePassphrase(t *testing.T) {
	constraints := CompilePassphrase(PassphrasePolicy{
		MinNumberWords: 5,
		Capitalize:     true,
		IncludeNumber:  true,
	})

	assert.True(t, constraints.PolicyInEffect)
	assert.Equal(t, Between(5, 20), constraints.NumWords)
	assert.Equal(t, lockedOn(), constraints.Capitalize)
	assert.Equal(t, lockedOn(), constraints.IncludeNumber)
}

func TestCompilePassphraseRaisesMax(t *testing.T) {
	constraints := CompilePassphrase(PassphrasePolicy{MinNumberWords: 25})

	assert.Equal(t, Between(25, 25), constraints.NumWords)
	require.NoError(t, ValidatePassphraseConstraints(constraints))
}

func TestPassphrasePolicyInEffect(t *testing.T) {
	tests := []struct {
		name     string
		policy   PassphrasePolicy
		expected bool
	}{
		{"disabled", PassphrasePolicy{}, false},
		{"words at default", PassphrasePolicy{MinNumberWords: 3}, false},
		{"words above default", PassphrasePolicy{MinNumberWords: 4}, true},
		{"capitalize", PassphrasePolicy{Capitalize: true}, true},
		{"include number", PassphrasePolicy{IncludeNumber: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompilePassphrase(tt.policy).PolicyInEffect)
		})
	}
}

func TestPassphraseAdjust(t *testing.T) {
	constraints := CompilePassphrase(PassphrasePolicy{Capitalize: true})

	tests := []struct {
		name     string
		input    PassphraseSettings
		expected PassphraseSettings
	}{
		{
			"defaults gain capitalization",
			DefaultPassphraseSettings(),
			PassphraseSettings{NumWords: 6, WordSeparator: "-", Capitalize: true},
		},
		{
			"too few words",
			PassphraseSettings{NumWords: 1, WordSeparator: "-"},
			PassphraseSettings{NumWords: 3, WordSeparator: "-", Capitalize: true},
		},
		{
			"too many words",
			PassphraseSettings{NumWords: 30, WordSeparator: " "},
			PassphraseSettings{NumWords: 20, WordSeparator: " ", Capitalize: true},
		},
		{
			"long separator truncated",
			PassphraseSettings{NumWords: 4, WordSeparator: "::"},
			PassphraseSettings{NumWords: 4, WordSeparator: ":", Capitalize: true},
		},
		{
			"empty separator kept",
			PassphraseSettings{NumWords: 4},
			PassphraseSettings{NumWords: 4, Capitalize: true},
		},
		{
			"unlocked number passes through",
			PassphraseSettings{NumWords: 4, IncludeNumber: true},
			PassphraseSettings{NumWords: 4, Capitalize: true, IncludeNumber: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := constraints.Adjust(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, result, constraints.Adjust(result))
		})
	}
}

func TestPassphraseWithoutPolicyPassesThrough(t *testing.T) {
	constraints := CompilePassphrase(DisabledPassphrasePolicy())

	for _, state := range []PassphraseSettings{
		DefaultPassphraseSettings(),
		{NumWords: 3, WordSeparator: ".", Capitalize: true},
		{NumWords: 20, IncludeNumber: true},
	} {
		assert.Equal(t, state, constraints.Calibrate(state).Adjust(state))
	}
}

func TestPassphraseCalibrateAndFinalize(t *testing.T) {
	constraints := CompilePassphrase(PassphrasePolicy{MinNumberWords: 8})
	state := PassphraseSettings{NumWords: 1}

	assert.Equal(t, constraints, constraints.Calibrate(state))
	assert.Equal(t, state, constraints.Finalize(state))
	assert.Equal(t, 8, constraints.Dynamic().Calibrate(state).Adjust(state).NumWords)
}
