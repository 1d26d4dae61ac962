// Package core implements the generator policy-constraint engine.
//
// An administrator policy is compiled into per-field boundaries, the
// boundaries are calibrated against the user's current settings, and the
// calibrated boundaries correct every candidate settings value before it
// is shown or stored:
//
//	policy -> Compile -> PolicyConstraints -> Calibrate(current) -> StateConstraints -> Adjust(candidate)
//
// Every operation is pure and total. Conflicting bounds are repaired by
// widening them, never reported as failures.
package core

import "strconv"

// Range is an inclusive numeric boundary. A nil Min or Max leaves that
// side open. A nil *Range is the absence of a constraint.
// Ranges are immutable once constructed; builders always allocate.
type Range struct {
	Min *int `json:"min,omitempty" yaml:"min,omitempty"`
	Max *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// Between returns the range [lower, upper].
func Between(lower, upper int) *Range {
	return &Range{Min: intPtr(lower), Max: intPtr(upper)}
}

// Floor returns a range with only a lower bound.
func Floor(lower int) *Range {
	return &Range{Min: intPtr(lower)}
}

// MinOr returns the lower bound, or def when r or its lower bound is absent.
func (r *Range) MinOr(def int) int {
	if r == nil || r.Min == nil {
		return def
	}
	return *r.Min
}

// MaxOr returns the upper bound, or def when r or its upper bound is absent.
func (r *Range) MaxOr(def int) int {
	if r == nil || r.Max == nil {
		return def
	}
	return *r.Max
}

func (r *Range) String() string {
	if r == nil {
		return "unconstrained"
	}
	lower, upper := "-inf", "+inf"
	if r.Min != nil {
		lower = strconv.Itoa(*r.Min)
	}
	if r.Max != nil {
		upper = strconv.Itoa(*r.Max)
	}
	return "[" + lower + ", " + upper + "]"
}

// Flag fixes a boolean field. When Readonly is set the field always takes
// RequiredValue; a readonly flag without a required value forces false.
type Flag struct {
	Readonly      bool `json:"readonly,omitempty"`
	RequiredValue bool `json:"requiredValue,omitempty"`
}

// Text bounds the length of a string field, counted in runes.
type Text struct {
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`
}

// TextBetween returns a text boundary of [lower, upper] runes.
func TextBetween(lower, upper int) *Text {
	return &Text{MinLength: intPtr(lower), MaxLength: intPtr(upper)}
}

func intPtr(v int) *int {
	return &v
}
