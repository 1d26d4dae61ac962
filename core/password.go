package core

// PasswordPolicyConstraints bound every password setting. Produced by
// compiling a PasswordPolicy; never modified afterwards.
type PasswordPolicyConstraints struct {
	// PolicyInEffect reports whether the policy differs from the system
	// limits in any respect.
	PolicyInEffect bool `json:"policyInEffect"`

	// Length always fits the sum of the class minimums.
	Length *Range `json:"length,omitempty"`

	Lowercase    *Flag  `json:"lowercase,omitempty"`
	Uppercase    *Flag  `json:"uppercase,omitempty"`
	Number       *Flag  `json:"number,omitempty"`
	Special      *Flag  `json:"special,omitempty"`
	MinLowercase *Range `json:"minLowercase,omitempty"`
	MinUppercase *Range `json:"minUppercase,omitempty"`
	MinNumber    *Range `json:"minNumber,omitempty"`
	MinSpecial   *Range `json:"minSpecial,omitempty"`
}

// CompilePassword compiles policy into password constraints. The steps
// run in a fixed order because later ones consume earlier results.
func (c *Compiler) CompilePassword(policy PasswordPolicy) PasswordPolicyConstraints {
	defaults := c.defaults.Password

	// class minimums
	minLowercase := Maybe(policy.UseLowercase, AtLeastOne())
	minUppercase := Maybe(policy.UseUppercase, AtLeastOne())
	minNumber := Maybe(policy.UseNumbers, AtLeast(policy.NumberCount, defaults.MinDigits))
	minSpecial := Maybe(policy.UseSpecial, AtLeast(policy.SpecialCount, defaults.MinSpecialCharacters))

	// the length must hold every class minimum at once
	length := AtLeastSum(
		AtLeast(policy.MinLength, defaults.Length),
		minLowercase, minUppercase, minNumber, minSpecial,
	)

	constraints := PasswordPolicyConstraints{
		PolicyInEffect: passwordPolicyInEffect(policy, defaults),
		Length:         length,
		Lowercase:      readonlyTrueWhen(policy.UseLowercase),
		Uppercase:      readonlyTrueWhen(policy.UseUppercase),
		Number:         readonlyTrueWhen(policy.UseNumbers),
		Special:        readonlyTrueWhen(policy.UseSpecial),
		MinLowercase:   minLowercase,
		MinUppercase:   minUppercase,
		MinNumber:      minNumber,
		MinSpecial:     minSpecial,
	}

	c.log().Debug("compiled password policy",
		"policy_in_effect", constraints.PolicyInEffect,
		"length", constraints.Length.String(),
		"min_number", constraints.MinNumber.String(),
		"min_special", constraints.MinSpecial.String(),
	)
	return constraints
}

func passwordPolicyInEffect(policy PasswordPolicy, defaults PasswordBoundaries) bool {
	return policy.UseUppercase ||
		policy.UseLowercase ||
		policy.UseNumbers ||
		policy.UseSpecial ||
		policy.MinLength > defaults.Length.MinOr(0) ||
		policy.NumberCount > defaults.MinDigits.MinOr(0) ||
		policy.SpecialCount > defaults.MinSpecialCharacters.MinOr(0)
}

// Calibrate derives the constraints that hold for current. A class is
// active when the user enabled it or the policy requires it; inactive
// classes lose their minimum constraint.
func (c PasswordPolicyConstraints) Calibrate(current PasswordSettings) PasswordStateConstraints {
	lowercase := current.Lowercase || c.Lowercase.required()
	uppercase := current.Uppercase || c.Uppercase.required()
	number := current.Number || c.Number.required()
	special := current.Special || c.Special.required()

	// Active minimums carry over from compilation. Raising them to the
	// current value would keep the user from ever lowering them again.
	calibrated := c
	calibrated.MinLowercase = Maybe(lowercase, c.MinLowercase)
	calibrated.MinUppercase = Maybe(uppercase, c.MinUppercase)
	calibrated.MinNumber = Maybe(number, c.MinNumber)
	calibrated.MinSpecial = Maybe(special, c.MinSpecial)

	// The length floor does follow the current minimums.
	calibrated.Length = AtLeastSum(c.Length,
		AtLeast(current.MinNumber, calibrated.MinNumber),
		AtLeast(current.MinSpecial, calibrated.MinSpecial),
		AtLeast(current.MinLowercase, calibrated.MinLowercase),
		AtLeast(current.MinUppercase, calibrated.MinUppercase),
	)

	return PasswordStateConstraints{Constraints: calibrated}
}

// Dynamic returns c as DynamicConstraints.
func (c PasswordPolicyConstraints) Dynamic() DynamicConstraints[PasswordSettings] {
	return Calibrated[PasswordSettings, PasswordStateConstraints](c.Calibrate)
}

// PasswordStateConstraints are password constraints calibrated against one
// settings snapshot.
type PasswordStateConstraints struct {
	Constraints PasswordPolicyConstraints `json:"constraints"`
}

// Adjust fits every numeric field into its range and applies every locked
// toggle. Unconstrained fields pass through. Adjust is idempotent.
func (s PasswordStateConstraints) Adjust(state PasswordSettings) PasswordSettings {
	c := s.Constraints
	return PasswordSettings{
		Length:       FitToBounds(state.Length, c.Length),
		Ambiguous:    state.Ambiguous,
		Lowercase:    EnforceConstant(state.Lowercase, c.Lowercase),
		Uppercase:    EnforceConstant(state.Uppercase, c.Uppercase),
		Number:       EnforceConstant(state.Number, c.Number),
		Special:      EnforceConstant(state.Special, c.Special),
		MinLowercase: FitToBounds(state.MinLowercase, c.MinLowercase),
		MinUppercase: FitToBounds(state.MinUppercase, c.MinUppercase),
		MinNumber:    FitToBounds(state.MinNumber, c.MinNumber),
		MinSpecial:   FitToBounds(state.MinSpecial, c.MinSpecial),
	}
}

// Finalize returns state unchanged: policy constraints are always live,
// so nothing is deferred to the end of an editing session.
func (s PasswordStateConstraints) Finalize(state PasswordSettings) PasswordSettings {
	return state
}
