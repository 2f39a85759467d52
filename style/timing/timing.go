// Package timing provides the animation timing functions used by style
// transitions, i.e. easing curves mapping a clock fraction in [0,1] to an
// interpolation fraction in [0,1].
package timing

import "math"

// Function is an easing curve. Implementations must map 0 to 0 and 1 to 1
// and should stay within [0,1] in between.
type Function func(t float64) float64

// Linear easing, the identity curve.
var Linear Function = func(t float64) float64 {
	return t
}

// EaseIn is the cubic ease-in curve.
var EaseIn Function = func(t float64) float64 {
	return t * t * t
}

// EaseOut is the cubic ease-out curve.
var EaseOut Function = func(t float64) float64 {
	return 1 - (1-t)*(1-t)*(1-t)
}

// EaseInOut is a sinusoidal ease-in-out curve.
var EaseInOut Function = func(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// ByName returns the curve for one of the stylesheet-level names
// "linear", "ease-in", "ease-out" or "ease-in-out".
func ByName(name string) (Function, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "ease-in":
		return EaseIn, true
	case "ease-out":
		return EaseOut, true
	case "ease-in-out":
		return EaseInOut, true
	}
	return nil, false
}
