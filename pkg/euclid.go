// Package pkg provides small shared utilities.
package pkg

// Mod returns the Euclidean remainder of a modulo n: the result is always in
// [0, n) for n > 0, regardless of the sign of a. The built-in % operator
// follows the sign of the dividend, which is the wrong wrap direction for
// cyclic indexing.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}
