// Package vector provides an N-dimensional float64 vector value type with
// elementwise arithmetic, scalar (dot) and cross products, magnitude,
// normalization and rounding.
//
// Every operation has a form that returns a new Vector and leaves the
// receiver untouched, and most have an InPlace form that overwrites the
// receiver's coordinates and returns the receiver for chaining. In-place
// operations validate their operands before writing, so a failed call
// leaves the receiver unchanged.
//
// Elementwise kernels are delegated to github.com/cwbudde/algo-vecmath.
//
// A Vector is not safe for concurrent mutation; callers sharing one
// instance across goroutines must synchronize in-place calls themselves.
package vector
