package core

// PasswordSettings configures the password generator.
type PasswordSettings struct {
	Length       int  `json:"length"`
	Ambiguous    bool `json:"ambiguous"`
	Uppercase    bool `json:"uppercase"`
	MinUppercase int  `json:"minUppercase"`
	Lowercase    bool `json:"lowercase"`
	MinLowercase int  `json:"minLowercase"`
	Number       bool `json:"number"`
	MinNumber    int  `json:"minNumber"`
	Special      bool `json:"special"`
	MinSpecial   int  `json:"minSpecial"`
}

// PassphraseSettings configures the passphrase generator.
type PassphraseSettings struct {
	NumWords      int    `json:"numWords"`
	WordSeparator string `json:"wordSeparator"`
	Capitalize    bool   `json:"capitalize"`
	IncludeNumber bool   `json:"includeNumber"`
}

// PasswordBoundaries are the system limits of the password generator.
type PasswordBoundaries struct {
	Length               *Range `json:"length" yaml:"length"`
	MinDigits            *Range `json:"minDigits" yaml:"min_digits"`
	MinSpecialCharacters *Range `json:"minSpecialCharacters" yaml:"min_special_characters"`
}

// PassphraseBoundaries are the system limits of the passphrase generator.
type PassphraseBoundaries struct {
	NumWords *Range `json:"numWords" yaml:"num_words"`
}

// Defaults are the system limits a policy is compiled against.
type Defaults struct {
	Password   PasswordBoundaries   `json:"password" yaml:"password"`
	Passphrase PassphraseBoundaries `json:"passphrase" yaml:"passphrase"`
}

// DefaultBoundaries returns the built-in system limits. Each call returns
// fresh values.
func DefaultBoundaries() Defaults {
	return Defaults{
		Password:   DefaultPasswordBoundaries(),
		Passphrase: DefaultPassphraseBoundaries(),
	}
}

// DefaultPasswordBoundaries returns the built-in password limits.
func DefaultPasswordBoundaries() PasswordBoundaries {
	return PasswordBoundaries{
		Length:               Between(5, 128),
		MinDigits:            Between(0, 9),
		MinSpecialCharacters: Between(0, 9),
	}
}

// DefaultPassphraseBoundaries returns the built-in passphrase limits.
func DefaultPassphraseBoundaries() PassphraseBoundaries {
	return PassphraseBoundaries{
		NumWords: Between(3, 20),
	}
}

// DefaultPasswordSettings are the settings of a new password generator.
func DefaultPasswordSettings() PasswordSettings {
	return PasswordSettings{
		Length:       14,
		Ambiguous:    true,
		Uppercase:    true,
		MinUppercase: 1,
		Lowercase:    true,
		MinLowercase: 1,
		Number:       true,
		MinNumber:    1,
		Special:      false,
		MinSpecial:   0,
	}
}

// DefaultPassphraseSettings are the settings of a new passphrase generator.
func DefaultPassphraseSettings() PassphraseSettings {
	return PassphraseSettings{
		NumWords:      6,
		WordSeparator: "-",
		Capitalize:    false,
		IncludeNumber: false,
	}
}
