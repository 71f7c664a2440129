package euclid

import "errors"

// Errors returned by ModInverse.
var (
	ErrModulusInvalid = errors.New("modulus is less than two")
	ErrNotCoprime     = errors.New("arguments are not coprime")
)

// ModInverse returns the modular multiplicative inverse of a modulo m, that
// is, the unique v in [1, m) with (a*v) mod m == 1. The inverse exists only
// when GCD(a, m) == 1; otherwise ModInverse returns ErrNotCoprime. The
// modulus must be at least 2.
func ModInverse(a, m uint64) (uint64, error) {
	if m < 2 {
		return 0, ErrModulusInvalid
	}
	r := ExtGCD(a%m, m)
	if r.GCD != 1 {
		return 0, ErrNotCoprime
	}
	// r.X satisfies (a mod m)*X + m*Y == 1, so a*X == 1 (mod m); shift X
	// into [1, m), which it cannot overshoot since |X| <= m/2
	if r.X < 0 {
		return m - uint64(-r.X), nil
	}
	return uint64(r.X), nil
}
