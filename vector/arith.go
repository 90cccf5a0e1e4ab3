package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vector/internal/numeric"
)

// Add returns the elementwise sum v + o.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if err := v.requireSameDimension("add", o); err != nil {
		return nil, err
	}
	out := v.Clone()
	vecmath.AddBlockInPlace(out.coords, o.coords)
	return out, nil
}

// AddInPlace sets v to v + o and returns v.
func (v *Vector) AddInPlace(o *Vector) (*Vector, error) {
	if err := v.requireSameDimension("add", o); err != nil {
		return nil, err
	}
	vecmath.AddBlockInPlace(v.coords, o.coords)
	return v, nil
}

// AddScalar returns a new vector with k added to every coordinate.
func (v *Vector) AddScalar(k float64) *Vector {
	return v.Clone().AddScalarInPlace(k)
}

// AddScalarInPlace adds k to every coordinate of v and returns v.
func (v *Vector) AddScalarInPlace(k float64) *Vector {
	for i := range v.coords {
		v.coords[i] += k
	}
	return v
}

// Sub returns the elementwise difference v - o.
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if err := v.requireSameDimension("subtract", o); err != nil {
		return nil, err
	}
	out := v.Clone()
	vecmath.AddBlockInPlace(out.coords, negated(o.coords))
	return out, nil
}

// SubInPlace sets v to v - o and returns v.
func (v *Vector) SubInPlace(o *Vector) (*Vector, error) {
	if err := v.requireSameDimension("subtract", o); err != nil {
		return nil, err
	}
	vecmath.AddBlockInPlace(v.coords, negated(o.coords))
	return v, nil
}

// SubScalar returns a new vector with k subtracted from every coordinate.
func (v *Vector) SubScalar(k float64) *Vector {
	return v.Clone().SubScalarInPlace(k)
}

// SubScalarInPlace subtracts k from every coordinate of v and returns v.
func (v *Vector) SubScalarInPlace(k float64) *Vector {
	for i := range v.coords {
		v.coords[i] -= k
	}
	return v
}

// Dot returns the scalar product of v and o.
func (v *Vector) Dot(o *Vector) (float64, error) {
	if err := v.requireSameDimension("scalar product", o); err != nil {
		return 0, err
	}
	if v.Dimension() == 0 {
		return 0, nil
	}
	return vecmath.DotProduct(v.coords, o.coords), nil
}

// Scale returns a new vector with every coordinate multiplied by k.
func (v *Vector) Scale(k float64) *Vector {
	out := Zero(v.Dimension())
	vecmath.ScaleBlock(out.coords, v.data(), k)
	return out
}

// ScaleInPlace multiplies every coordinate of v by k and returns v.
func (v *Vector) ScaleInPlace(k float64) *Vector {
	vecmath.ScaleBlockInPlace(v.coords, k)
	return v
}

// Neg returns a new vector with every coordinate negated.
func (v *Vector) Neg() *Vector {
	return &Vector{coords: negated(v.data())}
}

// Div returns a new vector with every coordinate divided by k.
func (v *Vector) Div(k float64) (*Vector, error) {
	return v.Clone().DivInPlace(k)
}

// DivInPlace divides every coordinate of v by k and returns v.
func (v *Vector) DivInPlace(k float64) (*Vector, error) {
	if k == 0 {
		return nil, fmt.Errorf("%w: divide %d-dimensional vector", ErrDivisionByZero, v.Dimension())
	}
	for i := range v.coords {
		v.coords[i] /= k
	}
	return v, nil
}

// FloorDiv returns a new vector with every coordinate floor-divided by k.
func (v *Vector) FloorDiv(k float64) (*Vector, error) {
	return v.Clone().FloorDivInPlace(k)
}

// FloorDivInPlace floor-divides every coordinate of v by k and returns v.
func (v *Vector) FloorDivInPlace(k float64) (*Vector, error) {
	if k == 0 {
		return nil, fmt.Errorf("%w: floor-divide %d-dimensional vector", ErrDivisionByZero, v.Dimension())
	}
	for i, c := range v.coords {
		v.coords[i] = numeric.FloorDiv(c, k)
	}
	return v, nil
}

// Cross returns the cross product v × o. Both vectors must be 3-dimensional.
func (v *Vector) Cross(o *Vector) (*Vector, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil vector", ErrUnsupportedOperand)
	}
	if v.Dimension() != 3 || len(o.coords) != 3 {
		return nil, unsupportedDimension("cross product", v.Dimension(), len(o.coords))
	}
	a, b := v.coords, o.coords
	return New(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// CrossInPlace sets v to v × o and returns v.
func (v *Vector) CrossInPlace(o *Vector) (*Vector, error) {
	c, err := v.Cross(o)
	if err != nil {
		return nil, err
	}
	copy(v.coords, c.coords)
	return v, nil
}

func (v *Vector) requireSameDimension(op string, o *Vector) error {
	if o == nil {
		return fmt.Errorf("%w: nil vector", ErrUnsupportedOperand)
	}
	if v.Dimension() != len(o.coords) {
		return mismatch(op, v.Dimension(), len(o.coords))
	}
	return nil
}

func negated(x []float64) []float64 {
	out := make([]float64, len(x))
	vecmath.ScaleBlock(out, x, -1)
	return out
}
