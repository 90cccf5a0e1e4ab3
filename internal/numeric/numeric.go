// Package numeric holds scalar helpers shared by the vector package.
package numeric

import (
	"math"
	"strconv"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute near zero and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 || math.IsInf(largest, 0) {
		return false
	}

	return diff/largest <= eps
}

// FloorDiv returns the largest integral value not greater than x/k,
// computed from the remainder so that results stay consistent with
// math.Mod (1 // 0.1 is 9, not 10). k must be non-zero.
func FloorDiv(x, k float64) float64 {
	mod := math.Mod(x, k)
	div := (x - mod) / k
	if mod != 0 && (k < 0) != (mod < 0) {
		div--
	}

	if div == 0 {
		return math.Copysign(0, x/k)
	}

	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}

	return floor
}

// Round rounds x to precision fractional digits. Ties are broken to even
// on the exact binary value of x, so 2.675 rounds to 2.67 at precision 2
// because its binary value lies just below the midpoint. A negative
// precision rounds to tens, hundreds and so on.
func Round(x float64, precision int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	if precision < 0 {
		pow := math.Pow10(-precision)
		if math.IsInf(pow, 0) {
			return math.Copysign(0, x)
		}
		return math.RoundToEven(x/pow) * pow
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', precision, 64), 64)
	if err != nil {
		return x
	}

	return rounded
}
