package core

// PassphrasePolicyConstraints bound every passphrase setting. They do not
// depend on the current settings, so they are their own calibration.
type PassphrasePolicyConstraints struct {
	PolicyInEffect bool   `json:"policyInEffect"`
	NumWords       *Range `json:"numWords,omitempty"`
	WordSeparator  *Text  `json:"wordSeparator,omitempty"`
	Capitalize     *Flag  `json:"capitalize,omitempty"`
	IncludeNumber  *Flag  `json:"includeNumber,omitempty"`
}

// CompilePassphrase compiles policy into passphrase constraints.
func (c *Compiler) CompilePassphrase(policy PassphrasePolicy) PassphrasePolicyConstraints {
	defaults := c.defaults.Passphrase

	constraints := PassphrasePolicyConstraints{
		PolicyInEffect: passphrasePolicyInEffect(policy, defaults),
		NumWords:       AtLeast(policy.MinNumberWords, defaults.NumWords),
		WordSeparator:  TextBetween(0, 1),
		Capitalize:     MaybeReadonly(policy.Capitalize, RequiresTrue()),
		IncludeNumber:  MaybeReadonly(policy.IncludeNumber, RequiresTrue()),
	}

	c.log().Debug("compiled passphrase policy",
		"policy_in_effect", constraints.PolicyInEffect,
		"num_words", constraints.NumWords.String(),
	)
	return constraints
}

func passphrasePolicyInEffect(policy PassphrasePolicy, defaults PassphraseBoundaries) bool {
	return policy.Capitalize ||
		policy.IncludeNumber ||
		policy.MinNumberWords > defaults.NumWords.MinOr(0)
}

// Calibrate returns c.
func (c PassphrasePolicyConstraints) Calibrate(current PassphraseSettings) PassphrasePolicyConstraints {
	return c
}

// Dynamic returns c as DynamicConstraints.
func (c PassphrasePolicyConstraints) Dynamic() DynamicConstraints[PassphraseSettings] {
	return Calibrated[PassphraseSettings, PassphrasePolicyConstraints](c.Calibrate)
}

// Adjust fits the word count, truncates the separator and applies locked
// toggles. Adjust is idempotent.
func (c PassphrasePolicyConstraints) Adjust(state PassphraseSettings) PassphraseSettings {
	return PassphraseSettings{
		NumWords:      FitToBounds(state.NumWords, c.NumWords),
		WordSeparator: FitToLength(state.WordSeparator, c.WordSeparator),
		Capitalize:    EnforceConstant(state.Capitalize, c.Capitalize),
		IncludeNumber: EnforceConstant(state.IncludeNumber, c.IncludeNumber),
	}
}

// Finalize returns state unchanged.
func (c PassphrasePolicyConstraints) Finalize(state PassphraseSettings) PassphraseSettings {
	return state
}
