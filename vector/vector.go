package vector

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vector/internal/numeric"
)

// Vector is an ordered, fixed-dimension sequence of coordinates.
// Its dimension is fixed at construction. A Vector owns its coordinate
// storage exclusively; no two vectors share a backing array.
type Vector struct {
	coords []float64
}

// New returns a vector holding a copy of coords, in order.
// Calling New with no arguments yields a 0-dimensional vector.
func New(coords ...float64) *Vector {
	return FromSlice(coords)
}

// FromSlice returns a vector holding a copy of s.
func FromSlice(s []float64) *Vector {
	c := make([]float64, len(s))
	copy(c, s)
	return &Vector{coords: c}
}

// Zero returns an n-dimensional zero vector. Negative n yields dimension 0.
func Zero(n int) *Vector {
	if n < 0 {
		n = 0
	}
	return &Vector{coords: make([]float64, n)}
}

// Clone returns a deep copy of v.
// Cloning a nil vector yields a 0-dimensional vector.
func (v *Vector) Clone() *Vector {
	return FromSlice(v.data())
}

// Dimension returns the number of coordinates. A nil vector has dimension 0.
func (v *Vector) Dimension() int {
	if v == nil {
		return 0
	}
	return len(v.coords)
}

// At returns the coordinate at index i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.Dimension() {
		return 0, &IndexError{Index: i, Dimension: v.Dimension()}
	}
	return v.coords[i], nil
}

// Coordinates returns a copy of the coordinates.
func (v *Vector) Coordinates() []float64 {
	c := make([]float64, v.Dimension())
	copy(c, v.data())
	return c
}

// Equal reports whether v and o have the same dimension and identical
// coordinates in the same order. A dimension mismatch is simply unequal.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.coords) != len(o.coords) {
		return false
	}
	for i, c := range v.coords {
		if c != o.coords[i] {
			return false
		}
	}
	return true
}

// ApproxEqual is like Equal but compares coordinates within eps,
// absolute near zero and relative otherwise.
func (v *Vector) ApproxEqual(o *Vector, eps float64) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.coords) != len(o.coords) {
		return false
	}
	for i, c := range v.coords {
		if !numeric.NearlyEqual(c, o.coords[i], eps) {
			return false
		}
	}
	return true
}

// Magnitude returns the Euclidean norm. It is 0 for an empty vector.
func (v *Vector) Magnitude() float64 {
	if v.Dimension() == 0 {
		return 0
	}
	return math.Sqrt(vecmath.DotProduct(v.coords, v.coords))
}

// Normalized returns v divided by its magnitude.
func (v *Vector) Normalized() (*Vector, error) {
	out := v.Clone()
	if _, err := out.Normalize(); err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize scales v to unit magnitude in place and returns v.
// A zero-magnitude vector fails with ErrDivisionByZero and is left as is.
func (v *Vector) Normalize() (*Vector, error) {
	return v.DivInPlace(v.Magnitude())
}

// Round rounds every coordinate to precision fractional digits in place
// and returns v. Ties are broken half to even on the exact binary value
// of each coordinate; a negative precision rounds to tens, hundreds, ...
func (v *Vector) Round(precision int) *Vector {
	for i, c := range v.coords {
		v.coords[i] = numeric.Round(c, precision)
	}
	return v
}

// data returns the coordinate storage, or nil for a nil vector.
func (v *Vector) data() []float64 {
	if v == nil {
		return nil
	}
	return v.coords
}
