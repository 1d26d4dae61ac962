package core

// PasswordOptions are password settings together with the length floor
// the policy imposes on them.
type PasswordOptions struct {
	PasswordSettings
	MinLength int `json:"minLength"`
}

// PasswordEvaluator applies a password policy to one settings value at a
// time, calibrating against that value first.
type PasswordEvaluator struct {
	policy      PasswordPolicy
	constraints PasswordPolicyConstraints
}

// NewPasswordEvaluator compiles policy with compiler. A nil compiler uses
// the built-in system limits.
func NewPasswordEvaluator(compiler *Compiler, policy PasswordPolicy) *PasswordEvaluator {
	if compiler == nil {
		compiler = defaultCompiler
	}
	return &PasswordEvaluator{
		policy:      policy,
		constraints: compiler.CompilePassword(policy),
	}
}

// Policy returns the policy applied by the evaluator.
func (e *PasswordEvaluator) Policy() PasswordPolicy {
	return e.policy
}

// Constraints returns the compiled constraints.
func (e *PasswordEvaluator) Constraints() PasswordPolicyConstraints {
	return e.constraints
}

// PolicyInEffect reports whether the policy differs from the system limits.
func (e *PasswordEvaluator) PolicyInEffect() bool {
	return e.constraints.PolicyInEffect
}

// Length is always large enough for the minimum digits and special
// characters.
func (e *PasswordEvaluator) Length() *Range {
	return e.constraints.Length
}

func (e *PasswordEvaluator) MinDigits() *Range {
	return e.constraints.MinNumber
}

func (e *PasswordEvaluator) MinSpecialCharacters() *Range {
	return e.constraints.MinSpecial
}

// ApplyPolicy returns options corrected by the policy.
func (e *PasswordEvaluator) ApplyPolicy(options PasswordSettings) PasswordSettings {
	return e.constraints.Calibrate(options).Adjust(options)
}

// Sanitize applies the policy, reports the calibrated length floor, and
// gives every enabled digit or special class at least one character.
func (e *PasswordEvaluator) Sanitize(options PasswordSettings) PasswordOptions {
	calibration := e.constraints.Calibrate(options)
	adjusted := calibration.Adjust(options)

	if adjusted.Number {
		adjusted.MinNumber = max(adjusted.MinNumber, 1)
	}
	if adjusted.Special {
		adjusted.MinSpecial = max(adjusted.MinSpecial, 1)
	}

	return PasswordOptions{
		PasswordSettings: adjusted,
		MinLength:        calibration.Constraints.Length.MinOr(0),
	}
}

// PassphraseEvaluator applies a passphrase policy.
type PassphraseEvaluator struct {
	policy      PassphrasePolicy
	constraints PassphrasePolicyConstraints
}

// NewPassphraseEvaluator compiles policy with compiler. A nil compiler uses
// the built-in system limits.
func NewPassphraseEvaluator(compiler *Compiler, policy PassphrasePolicy) *PassphraseEvaluator {
	if compiler == nil {
		compiler = defaultCompiler
	}
	return &PassphraseEvaluator{
		policy:      policy,
		constraints: compiler.CompilePassphrase(policy),
	}
}

func (e *PassphraseEvaluator) Policy() PassphrasePolicy {
	return e.policy
}

func (e *PassphraseEvaluator) PolicyInEffect() bool {
	return e.constraints.PolicyInEffect
}

// NumWords bounds the number of words in the passphrase.
func (e *PassphraseEvaluator) NumWords() *Range {
	return e.constraints.NumWords
}

// ApplyPolicy returns options corrected by the policy.
func (e *PassphraseEvaluator) ApplyPolicy(options PassphraseSettings) PassphraseSettings {
	return e.constraints.Adjust(options)
}

// Sanitize is ApplyPolicy; passphrase settings have no cascading fields.
func (e *PassphraseEvaluator) Sanitize(options PassphraseSettings) PassphraseSettings {
	return e.constraints.Adjust(options)
}
