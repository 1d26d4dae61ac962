package core

import "fmt"

// The validators diagnose constraint sets and system limits. The engine
// repairs conflicts on its own and never calls them; they exist for
// configuration checks and tooling.

// ValidateRange reports an empty range. A nil range is valid.
func ValidateRange(field string, r *Range) error {
	if r == nil || r.Min == nil || r.Max == nil {
		return nil
	}
	if *r.Min > *r.Max {
		return newValidationError(field, fmt.Sprintf("min %d exceeds max %d", *r.Min, *r.Max), ErrEmptyRange)
	}
	return nil
}

// ValidatePasswordConstraints checks that every range is satisfiable and
// that the length can hold every class minimum at once.
func ValidatePasswordConstraints(c PasswordPolicyConstraints) error {
	ranges := []struct {
		field string
		r     *Range
	}{
		{"length", c.Length},
		{"minLowercase", c.MinLowercase},
		{"minUppercase", c.MinUppercase},
		{"minNumber", c.MinNumber},
		{"minSpecial", c.MinSpecial},
	}
	for _, entry := range ranges {
		if err := ValidateRange(entry.field, entry.r); err != nil {
			return err
		}
	}

	floor := 0
	for _, entry := range ranges[1:] {
		floor += max(entry.r.MinOr(0), 0)
	}
	if c.Length.MinOr(0) < floor {
		return newValidationError("length",
			fmt.Sprintf("min %d cannot hold %d required characters", c.Length.MinOr(0), floor),
			ErrLengthFloor)
	}
	return nil
}

// ValidatePassphraseConstraints checks that every bound is satisfiable.
func ValidatePassphraseConstraints(c PassphrasePolicyConstraints) error {
	if err := ValidateRange("numWords", c.NumWords); err != nil {
		return err
	}
	if t := c.WordSeparator; t != nil && t.MinLength != nil && t.MaxLength != nil && *t.MinLength > *t.MaxLength {
		return newValidationError("wordSeparator",
			fmt.Sprintf("minLength %d exceeds maxLength %d", *t.MinLength, *t.MaxLength),
			ErrEmptyRange)
	}
	return nil
}

// ValidateDefaults checks system limits: every range satisfiable and no
// bound below zero.
func ValidateDefaults(d Defaults) error {
	ranges := []struct {
		field string
		r     *Range
	}{
		{"password.length", d.Password.Length},
		{"password.min_digits", d.Password.MinDigits},
		{"password.min_special_characters", d.Password.MinSpecialCharacters},
		{"passphrase.num_words", d.Passphrase.NumWords},
	}
	for _, entry := range ranges {
		if err := ValidateRange(entry.field, entry.r); err != nil {
			return err
		}
		if entry.r.MinOr(0) < 0 || entry.r.MaxOr(0) < 0 {
			return newValidationError(entry.field, "bounds must not be negative", ErrNegativeBound)
		}
	}
	return nil
}
