package core

// StateConstraints corrects settings values. Adjust runs on every edit;
// Finalize runs once when editing ends.
type StateConstraints[S any] interface {
	Adjust(state S) S
	Finalize(state S) S
}

// DynamicConstraints derive state constraints from the current settings.
// They must be recalibrated after every settings or policy change before
// Adjust is trusted.
type DynamicConstraints[S any] interface {
	Calibrate(current S) StateConstraints[S]
}

// Calibrated wraps a concrete calibration function as DynamicConstraints.
type Calibrated[S any, C StateConstraints[S]] func(current S) C

// Calibrate implements DynamicConstraints.
func (f Calibrated[S, C]) Calibrate(current S) StateConstraints[S] {
	return f(current)
}
