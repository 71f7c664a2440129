// Package euclid computes greatest common divisors together with Bézout
// coefficients using the extended Euclidean algorithm.
// See the Result type and ExtGCD function for details.
package euclid

import "fmt"

// Result is a solution to Bézout's identity for a pair of inputs (a, b):
//
//	a*X + b*Y == GCD
//
// GCD is the greatest common divisor of a and b. It is 0 only when both
// inputs are 0. Bézout coefficients are not unique; any valid (X, Y) pair
// returned by this package differs from another valid pair by a multiple of
// (b/GCD, -a/GCD).
type Result struct {
	GCD  uint64
	X, Y int64
}

// String renders r as the three base-10 integers "GCD X Y" separated by
// single spaces.
func (r Result) String() string {
	return fmt.Sprintf("%d %d %d", r.GCD, r.X, r.Y)
}

// ExtGCD solves Bézout's identity for a and b using the iterative form of
// the extended Euclidean algorithm. Argument order does not matter:
// internally the larger value is taken as the first dividend and the
// coefficients are swapped back afterward, so r.X always multiplies a and
// r.Y always multiplies b.
//
// ExtGCD is total over its domain. The remainder chain is non-negative and
// stays within uint64; the final coefficients of 64-bit inputs are bounded
// by |X| <= b/(2*GCD) and |Y| <= a/(2*GCD) and so always fit in int64.
// Intermediate coefficient values from the last iteration can exceed that
// bound, but Go's integer arithmetic is modular, which keeps the in-range
// final values exact.
//
// The degenerate inputs follow the b == 0 convention of the algorithm:
// ExtGCD(a, 0) == {a, 1, 0} (including a == 0) and ExtGCD(0, b) == {b, 0, 1}
// for b > 0.
func ExtGCD(a, b uint64) Result {
	// per Wikipedia's pseudocode, with signed coefficient chains; tracking
	// s and t in uint64 as the remainders are would rely on wraparound
	// reinterpretation, since true coefficients alternate in sign
	swapped := b > a
	if swapped {
		a, b = b, a
	}
	var (
		s, s0 int64 = 0, 1
		t, t0 int64 = 1, 0
		r, r0       = b, a
	)
	for r != 0 {
		q := r0 / r
		r, r0 = r0-q*r, r
		s, s0 = s0-int64(q)*s, s
		t, t0 = t0-int64(q)*t, t
	}
	x, y := s0, t0
	if swapped {
		x, y = y, x
	}
	return Result{GCD: r0, X: x, Y: y}
}

// ExtGCDRecursive solves Bézout's identity for a and b by recursive descent
// on (b, a mod b) with back-substitution on the way out. It has the same
// contract as ExtGCD and returns the identical GCD for every input pair;
// the coefficient pair may differ from ExtGCD's but satisfies the identity
// on its own. Recursion depth is O(log min(a, b)), at most 91 frames for
// 64-bit inputs (Fibonacci worst case).
func ExtGCDRecursive(a, b uint64) Result {
	swapped := b > a
	if swapped {
		a, b = b, a
	}
	g, x, y := extGCDRec(a, b)
	if swapped {
		x, y = y, x
	}
	return Result{GCD: g, X: x, Y: y}
}

// extGCDRec requires a >= b, which the recursive step preserves because
// a mod b < b.
func extGCDRec(a, b uint64) (g uint64, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := extGCDRec(b, a%b)
	// a mod b == a - (a/b)*b substituted into g == b*x1 + (a mod b)*y1
	return g, y1, x1 - int64(a/b)*y1
}
