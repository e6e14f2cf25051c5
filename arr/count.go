package arr

import (
	"math"
	"math/bits"
)

// ─────────────────────────────────────────────────────────────────────────────
// Result-set sizes
//
// Each function returns the exact number of tuples the matching generator
// produces for a source of the given length. Results saturate at
// math.MaxInt instead of overflowing.
// ─────────────────────────────────────────────────────────────────────────────

// CombinationCount returns C(length, n), or 0 when n is out of range.
func CombinationCount(length, n int) int {
	if n < 0 || length < 0 || n > length {
		return 0
	}
	if n > length-n {
		n = length - n
	}
	result := uint64(1)
	for i := 1; i <= n; i++ {
		// result * (length-n+i) / i is exact: it equals C(length-n+i, i).
		hi, lo := bits.Mul64(result, uint64(length-n+i))
		if hi >= uint64(i) {
			return math.MaxInt
		}
		q, _ := bits.Div64(hi, lo, uint64(i))
		if q > math.MaxInt {
			return math.MaxInt
		}
		result = q
	}
	return int(result)
}

// PermutationCount returns P(length, n) = length!/(length-n)!, or 0 when n
// is out of range.
func PermutationCount(length, n int) int {
	if n < 0 || length < 0 || n > length {
		return 0
	}
	result := 1
	for k := length - n + 1; k <= length; k++ {
		result = mulSat(result, k)
	}
	return result
}

// RepeatedCombinationCount returns C(length+n-1, n).
func RepeatedCombinationCount(length, n int) int {
	switch {
	case n < 0 || length < 0:
		return 0
	case n == 0:
		return 1
	case length == 0:
		return 0
	}
	return CombinationCount(length+n-1, n)
}

// RepeatedPermutationCount returns length^n.
func RepeatedPermutationCount(length, n int) int {
	if n < 0 || length < 0 {
		return 0
	}
	result := 1
	for range n {
		result = mulSat(result, length)
	}
	return result
}

// ProductCount returns the number of tuples in the cartesian product of
// lists with the given lengths. No lengths yields 0, matching [Product].
func ProductCount(lengths ...int) int {
	if len(lengths) == 0 {
		return 0
	}
	result := 1
	for _, l := range lengths {
		if l <= 0 {
			return 0
		}
		result = mulSat(result, l)
	}
	return result
}

// mulSat multiplies two non-negative ints, saturating at math.MaxInt.
func mulSat(a, b int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt
	}
	return int(lo)
}
