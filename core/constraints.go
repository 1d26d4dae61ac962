package core

import "unicode/utf8"

// AtLeastOne returns a range requiring a count of one or more.
func AtLeastOne() *Range {
	return Floor(1)
}

// RequiresTrue returns a flag naming true as the required value without
// locking the field.
func RequiresTrue() *Flag {
	return &Flag{RequiredValue: true}
}

// AtLeast copies b and raises its lower bound to minimum. When b has an
// upper bound it is raised as well, so the result is never empty.
func AtLeast(minimum int, b *Range) *Range {
	result := &Range{Min: intPtr(minimum)}
	if b == nil {
		return result
	}
	if b.Min != nil && *b.Min > minimum {
		result.Min = intPtr(*b.Min)
	}
	if b.Max != nil {
		result.Max = intPtr(max(*b.Max, minimum))
	}
	return result
}

// AtLeastSum raises the lower bound of b to the sum of the dependencies'
// lower bounds. Absent and negative lower bounds count as zero.
func AtLeastSum(b *Range, dependencies ...*Range) *Range {
	consistent := 0
	for _, dependency := range dependencies {
		consistent += max(dependency.MinOr(0), 0)
	}
	return AtLeast(max(b.MinOr(0), consistent), b)
}

// Maybe returns b when enabled and nil otherwise.
func Maybe[T any](enabled bool, b *T) *T {
	if !enabled {
		return nil
	}
	return b
}

// MaybeReadonly returns a readonly copy of b when enabled; otherwise b is
// returned unchanged.
func MaybeReadonly(enabled bool, b *Flag) *Flag {
	if !enabled {
		return b
	}
	result := Flag{}
	if b != nil {
		result = *b
	}
	result.Readonly = true
	return &result
}

// FitToBounds clamps value into b. An absent side is unbounded.
func FitToBounds(value int, b *Range) int {
	if b == nil {
		return value
	}
	if b.Max != nil {
		value = min(value, *b.Max)
	}
	if b.Min != nil {
		value = max(value, *b.Min)
	}
	return value
}

// EnforceConstant returns the required value of a readonly flag and value
// otherwise.
func EnforceConstant(value bool, b *Flag) bool {
	if b != nil && b.Readonly {
		return b.RequiredValue
	}
	return value
}

// FitToLength truncates value to the maximum length of b. Strings shorter
// than the minimum pass through; there is no sensible padding.
func FitToLength(value string, b *Text) string {
	if b == nil || b.MaxLength == nil {
		return value
	}
	limit := max(*b.MaxLength, 0)
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit])
}
