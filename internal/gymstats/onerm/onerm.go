// Package onerm estimates one-rep-max values from submaximal sets.
package onerm

import "errors"

// ErrRepsTooHigh is returned by Brzycki for rep counts at which the
// formula denominator is zero or negative.
var ErrRepsTooHigh = errors.New("rep count too high for estimation")

// Epley estimates the one-rep max as weight * (1 + reps/30).
// A single rep is already a max attempt, so the weight is returned as is.
func Epley(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}

// Brzycki estimates the one-rep max as weight * 36 / (37 - reps).
// The formula breaks down at 37 reps and above.
func Brzycki(weight float64, reps int) (float64, error) {
	if reps >= 37 {
		return 0, ErrRepsTooHigh
	}
	if reps == 1 {
		return weight, nil
	}
	return weight * 36 / float64(37-reps), nil
}

// Volume is the total load moved in a set.
func Volume(weight float64, reps int) float64 {
	return weight * float64(reps)
}
