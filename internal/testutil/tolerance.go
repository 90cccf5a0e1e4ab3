// Package testutil provides assertions and deterministic inputs for
// vector tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireCoordsNearlyEqual fails t if got and want differ in dimension or
// if any coordinate pair differs by more than eps (absolute tolerance).
func RequireCoordsNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "dimension mismatch")
	for i := range got {
		require.InDeltaf(t, want[i], got[i], eps, "coordinate %d", i)
	}
}

// RequireFinite fails t if any coordinate is NaN or Inf.
func RequireFinite(t testing.TB, coords []float64) {
	t.Helper()
	for i, c := range coords {
		require.Falsef(t, math.IsNaN(c) || math.IsInf(c, 0), "coordinate %d: non-finite value %v", i, c)
	}
}

// MaxAbsDiff returns the largest absolute coordinate difference.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
