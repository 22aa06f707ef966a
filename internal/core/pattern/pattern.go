// Package pattern classifies decimal digit strings by repetition shape.
// This is part of the Functional Core - no I/O, only pure functions.
//
// Both predicates expect the canonical base-10 representation of a
// non-negative integer: no sign, no leading zeros ("0" for zero), as
// produced by big.Int.String or strconv.Itoa.
package pattern

// IsDoubleRepetition reports whether digits consists of exactly two
// repetitions of a substring, e.g. "55", "6464", "123123". Strings of
// odd length cannot split into two equal non-empty halves.
func IsDoubleRepetition(digits string) bool {
	n := len(digits)
	if n == 0 || n%2 != 0 {
		return false
	}
	half := n / 2
	return digits[:half] == digits[half:]
}

// IsMultipleRepetition reports whether digits consists of two or more
// repetitions of a substring with no remainder, e.g. "123123123" (3x)
// or "111" (3x). Every double repetition is also a multiple repetition.
//
// Candidate period lengths are checked in increasing order; only
// divisors of the total length can tile the string exactly.
func IsMultipleRepetition(digits string) bool {
	n := len(digits)
	for d := 1; d <= n/2; d++ {
		if n%d != 0 {
			continue
		}
		if hasPeriod(digits, d) {
			return true
		}
	}
	return false
}

// hasPeriod reports whether digits is the first d characters repeated.
// Comparing each character against the one d positions earlier avoids
// building the repeated candidate string.
func hasPeriod(digits string, d int) bool {
	for i := d; i < len(digits); i++ {
		if digits[i] != digits[i-d] {
			return false
		}
	}
	return true
}
