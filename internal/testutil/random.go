package testutil

import "math/rand"

// RandomCoords returns n coordinates drawn uniformly from
// [-amplitude, amplitude) with a fixed seed for reproducibility.
func RandomCoords(seed int64, n int, amplitude float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RandomIntCoords returns n integral coordinates in [-limit, limit]
// with a fixed seed. Integral inputs keep sums and products exact.
func RandomIntCoords(seed int64, n, limit int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(rng.Intn(2*limit+1) - limit)
	}
	return out
}

// Sequence returns the coordinates 0, 1, ..., n-1.
func Sequence(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
