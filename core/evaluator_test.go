package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordEvaluatorAccessors(t *testing.T) {
	policy := PasswordPolicy{MinLength: 20, UseNumbers: true, NumberCount: 4, UseSpecial: true, SpecialCount: 2}
	evaluator := NewPasswordEvaluator(nil, policy)

	assert.Equal(t, policy, evaluator.Policy())
	assert.True(t, evaluator.PolicyInEffect())
	assert.Equal(t, Between(20, 128), evaluator.Length())
	assert.Equal(t, Between(4, 9), evaluator.MinDigits())
	assert.Equal(t, Between(2, 9), evaluator.MinSpecialCharacters())
	assert.Equal(t, CompilePassword(policy), evaluator.Constraints())
}

func TestPasswordEvaluatorWithoutPolicy(t *testing.T) {
	evaluator := NewPasswordEvaluator(NewCompiler(), DisabledPasswordPolicy())

	assert.False(t, evaluator.PolicyInEffect())
	assert.Equal(t, DefaultPasswordSettings(), evaluator.ApplyPolicy(DefaultPasswordSettings()))
}

func TestPasswordEvaluatorApplyPolicy(t *testing.T) {
	evaluator := NewPasswordEvaluator(nil, PasswordPolicy{UseNumbers: true, NumberCount: 3})
	options := DefaultPasswordSettings()
	options.Number = false
	options.MinNumber = 0

	result := evaluator.ApplyPolicy(options)

	assert.True(t, result.Number)
	assert.Equal(t, 3, result.MinNumber)
	assert.Equal(t, 14, result.Length)
}

func TestPasswordEvaluatorSanitize(t *testing.T) {
	evaluator := NewPasswordEvaluator(nil, DisabledPasswordPolicy())

	options := DefaultPasswordSettings()
	options.Special = true
	options.MinSpecial = 0
	options.Number = false
	options.MinNumber = 0

	result := evaluator.Sanitize(options)

	assert.Equal(t, 1, result.MinSpecial, "enabled class cascades to one character")
	assert.Equal(t, 0, result.MinNumber, "disabled class keeps its minimum")
	assert.Equal(t, 5, result.MinLength)
}

func TestPasswordEvaluatorSanitizeReportsCalibratedFloor(t *testing.T) {
	evaluator := NewPasswordEvaluator(nil, PasswordPolicy{UseSpecial: true, SpecialCount: 3})

	options := DefaultPasswordSettings()
	options.MinLowercase = 4
	options.MinUppercase = 4

	result := evaluator.Sanitize(options)

	// 4 lowercase + 4 uppercase + 1 digit + 3 special
	assert.Equal(t, 12, result.MinLength)
	assert.Equal(t, 14, result.Length)
	assert.True(t, result.Special)
	assert.Equal(t, 3, result.MinSpecial)
}

func TestPassphraseEvaluator(t *testing.T) {
	policy := PassphrasePolicy{MinNumberWords: 7, IncludeNumber: true}
	evaluator := NewPassphraseEvaluator(nil, policy)

	assert.Equal(t, policy, evaluator.Policy())
	assert.True(t, evaluator.PolicyInEffect())
	assert.Equal(t, Between(7, 20), evaluator.NumWords())

	options := DefaultPassphraseSettings()
	expected := PassphraseSettings{NumWords: 7, WordSeparator: "-", IncludeNumber: true}
	assert.Equal(t, expected, evaluator.ApplyPolicy(options))
	assert.Equal(t, expected, evaluator.Sanitize(options))
}
