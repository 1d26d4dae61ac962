package core

// PasswordPolicy is the administrator ruleset for generated passwords.
// A zero value enforces nothing.
type PasswordPolicy struct {
	MinLength    int  `json:"minLength"`
	UseUppercase bool `json:"useUppercase"`
	UseLowercase bool `json:"useLowercase"`
	UseNumbers   bool `json:"useNumbers"`
	NumberCount  int  `json:"numberCount"`
	UseSpecial   bool `json:"useSpecial"`
	SpecialCount int  `json:"specialCount"`
}

// PassphrasePolicy is the administrator ruleset for generated passphrases.
// A zero value enforces nothing.
type PassphrasePolicy struct {
	MinNumberWords int  `json:"minNumberWords"`
	Capitalize     bool `json:"capitalize"`
	IncludeNumber  bool `json:"includeNumber"`
}

// DisabledPasswordPolicy returns a password policy that enforces nothing.
func DisabledPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{}
}

// DisabledPassphrasePolicy returns a passphrase policy that enforces nothing.
func DisabledPassphrasePolicy() PassphrasePolicy {
	return PassphrasePolicy{}
}

// PolicyType identifies the kind of an organization policy.
type PolicyType string

const (
	// PasswordGeneratorPolicy constrains the password and passphrase generators.
	PasswordGeneratorPolicy PolicyType = "passwordGenerator"
)

// PolicyData is the payload of a generator policy as an organization
// delivers it. Nil fields were not set by the administrator.
type PolicyData struct {
	MinLength      *int `json:"minLength,omitempty"`
	UseUpper       bool `json:"useUpper,omitempty"`
	UseLower       bool `json:"useLower,omitempty"`
	UseNumbers     bool `json:"useNumbers,omitempty"`
	MinNumbers     *int `json:"minNumbers,omitempty"`
	UseSpecial     bool `json:"useSpecial,omitempty"`
	MinSpecial     *int `json:"minSpecial,omitempty"`
	MinNumberWords *int `json:"minNumberWords,omitempty"`
	Capitalize     bool `json:"capitalize,omitempty"`
	IncludeNumber  bool `json:"includeNumber,omitempty"`
}

// Policy is one organization's policy.
type Policy struct {
	ID      string     `json:"id,omitempty"`
	Type    PolicyType `json:"type"`
	Enabled bool       `json:"enabled"`
	Data    PolicyData `json:"data"`
}

func (p Policy) applies() bool {
	return p.Enabled && p.Type == PasswordGeneratorPolicy
}

// PasswordLeastPrivilege folds p into acc, keeping the stricter value of
// every field. Disabled policies and policies of another type leave acc
// unchanged.
func PasswordLeastPrivilege(acc PasswordPolicy, p Policy) PasswordPolicy {
	if !p.applies() {
		return acc
	}
	return PasswordPolicy{
		MinLength:    maxOf(acc.MinLength, p.Data.MinLength),
		UseUppercase: acc.UseUppercase || p.Data.UseUpper,
		UseLowercase: acc.UseLowercase || p.Data.UseLower,
		UseNumbers:   acc.UseNumbers || p.Data.UseNumbers,
		NumberCount:  maxOf(acc.NumberCount, p.Data.MinNumbers),
		UseSpecial:   acc.UseSpecial || p.Data.UseSpecial,
		SpecialCount: maxOf(acc.SpecialCount, p.Data.MinSpecial),
	}
}

// PassphraseLeastPrivilege folds p into acc, keeping the stricter value of
// every field.
func PassphraseLeastPrivilege(acc PassphrasePolicy, p Policy) PassphrasePolicy {
	if !p.applies() {
		return acc
	}
	return PassphrasePolicy{
		MinNumberWords: maxOf(acc.MinNumberWords, p.Data.MinNumberWords),
		Capitalize:     acc.Capitalize || p.Data.Capitalize,
		IncludeNumber:  acc.IncludeNumber || p.Data.IncludeNumber,
	}
}

// ReducePassword combines the policies of every organization the user
// belongs to into one password policy.
func ReducePassword(policies ...Policy) PasswordPolicy {
	acc := DisabledPasswordPolicy()
	for _, p := range policies {
		acc = PasswordLeastPrivilege(acc, p)
	}
	return acc
}

// ReducePassphrase combines the policies of every organization the user
// belongs to into one passphrase policy.
func ReducePassphrase(policies ...Policy) PassphrasePolicy {
	acc := DisabledPassphrasePolicy()
	for _, p := range policies {
		acc = PassphraseLeastPrivilege(acc, p)
	}
	return acc
}

func maxOf(current int, candidate *int) int {
	if candidate == nil {
		return current
	}
	return max(current, *candidate)
}
