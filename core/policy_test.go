package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func generatorPolicy(data PolicyData) Policy {
	return Policy{Type: PasswordGeneratorPolicy, Enabled: true, Data: data}
}

func TestPasswordLeastPrivilege(t *testing.T) {
	acc := PasswordPolicy{MinLength: 10, UseUppercase: true, NumberCount: 2, SpecialCount: 4}

	result := PasswordLeastPrivilege(acc, generatorPolicy(PolicyData{
		MinLength:  intPtr(8),
		UseLower:   true,
		UseNumbers: true,
		MinNumbers: intPtr(3),
	}))

	assert.Equal(t, PasswordPolicy{
		MinLength:    10,
		UseUppercase: true,
		UseLowercase: true,
		UseNumbers:   true,
		NumberCount:  3,
		SpecialCount: 4,
	}, result)
}

func TestPasswordLeastPrivilegeIgnoresInapplicablePolicies(t *testing.T) {
	acc := PasswordPolicy{MinLength: 10}
	strict := PolicyData{MinLength: intPtr(50), UseSpecial: true}

	disabled := generatorPolicy(strict)
	disabled.Enabled = false
	other := generatorPolicy(strict)
	other.Type = "masterPassword"

	assert.Equal(t, acc, PasswordLeastPrivilege(acc, disabled))
	assert.Equal(t, acc, PasswordLeastPrivilege(acc, other))
}

func TestPassphraseLeastPrivilege(t *testing.T) {
	acc := PassphrasePolicy{MinNumberWords: 5, IncludeNumber: true}

	result := PassphraseLeastPrivilege(acc, generatorPolicy(PolicyData{
		MinNumberWords: intPtr(4),
		Capitalize:     true,
	}))

	assert.Equal(t, PassphrasePolicy{MinNumberWords: 5, Capitalize: true, IncludeNumber: true}, result)
}

func TestReduce(t *testing.T) {
	policies := []Policy{
		generatorPolicy(PolicyData{MinLength: intPtr(12), MinNumberWords: intPtr(4)}),
		generatorPolicy(PolicyData{UseSpecial: true, MinSpecial: intPtr(2), IncludeNumber: true}),
		generatorPolicy(PolicyData{MinLength: intPtr(14), MinNumberWords: intPtr(6)}),
	}

	assert.Equal(t, PasswordPolicy{MinLength: 14, UseSpecial: true, SpecialCount: 2}, ReducePassword(policies...))
	assert.Equal(t, PassphrasePolicy{MinNumberWords: 6, IncludeNumber: true}, ReducePassphrase(policies...))
	assert.Equal(t, DisabledPasswordPolicy(), ReducePassword())
	assert.Equal(t, DisabledPassphrasePolicy(), ReducePassphrase())
}

func TestReduceIsOrderIndependent(t *testing.T) {
	a := generatorPolicy(PolicyData{MinLength: intPtr(9), UseUpper: true, MinNumbers: intPtr(1)})
	b := generatorPolicy(PolicyData{MinLength: intPtr(7), UseNumbers: true, MinNumbers: intPtr(4)})

	assert.Equal(t, ReducePassword(a, b), ReducePassword(b, a))
}
