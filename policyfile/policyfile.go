// Package policyfile reads policy documents and settings snapshots.
//
// Both are JSONC: JSON with comments and trailing commas, stripped with
// tidwall/jsonc before decoding. A policy document lists the generator
// policies of every organization the user belongs to:
//
//	{
//	  // engineering org
//	  "policies": [
//	    {"id": "eng", "type": "passwordGenerator", "enabled": true,
//	     "data": {"minLength": 12, "useNumbers": true, "minNumbers": 2}},
//	  ],
//	}
//
// A settings snapshot is a single password or passphrase settings object;
// fields it omits keep the generator defaults.
package policyfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"genpolicy/core"
)

// ErrMissingType indicates a policy without a type.
var ErrMissingType = errors.New("policy type is required")

// Document is a policy document.
type Document struct {
	Policies []core.Policy `json:"policies"`
}

// Parse decodes a policy document.
func Parse(data []byte) (*Document, error) {
	var document Document
	if err := json.Unmarshal(jsonc.ToJSON(data), &document); err != nil {
		return nil, fmt.Errorf("parsing policy document: %w", err)
	}
	for i, policy := range document.Policies {
		if policy.Type == "" {
			return nil, fmt.Errorf("policy %d (%q): %w", i, policy.ID, ErrMissingType)
		}
	}
	return &document, nil
}

// Load reads and decodes the policy document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy document: %w", err)
	}
	return Parse(data)
}

// Password folds the document into the strictest password policy.
func (d *Document) Password() core.PasswordPolicy {
	return core.ReducePassword(d.Policies...)
}

// Passphrase folds the document into the strictest passphrase policy.
func (d *Document) Passphrase() core.PassphrasePolicy {
	return core.ReducePassphrase(d.Policies...)
}

// ParseSettings decodes a settings snapshot over base.
func ParseSettings[S any](data []byte, base S) (S, error) {
	settings := base
	if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return base, fmt.Errorf("parsing settings: %w", err)
	}
	return settings, nil
}

// LoadSettings reads a settings snapshot from path over base.
func LoadSettings[S any](path string, base S) (S, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading settings: %w", err)
	}
	return ParseSettings(data, base)
}
