package euclid

import (
	"errors"
	"math/bits"
)

// ErrOverflow is returned when a result does not fit in uint64.
var ErrOverflow = errors.New("result overflows uint64")

// GCD returns the greatest common divisor of a and b.
// The GCD is the largest integer that divides both a and b; GCD(0, 0) == 0.
func GCD(a, b uint64) uint64 {
	// a plain remainder loop would shave a few instructions, but the
	// coefficient chains cost little and keep a single algorithm to test
	return ExtGCD(a, b).GCD
}

// TryLCM returns the least common multiple of a and b, which is 0 if either
// input is 0. TryLCM returns ErrOverflow if the result does not fit in
// uint64.
func TryLCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(a/GCD(a, b), b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// LCM is like TryLCM but panics if the result overflows.
func LCM(a, b uint64) uint64 {
	m, err := TryLCM(a, b)
	if err != nil {
		panic(err)
	}
	return m
}
