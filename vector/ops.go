package vector

import (
	"fmt"
	"strings"
)

// Operand is the right-hand side of a binary operator: a *Vector or a Scalar.
type Operand interface {
	operand()
}

// Scalar is a plain number used as an Operand.
type Scalar float64

func (Scalar) operand() {}

func (*Vector) operand() {}

// Op identifies a binary vector operator.
type Op int

const (
	OpAdd      Op = iota // +
	OpSub                // -
	OpMul                // *
	OpDiv                // /
	OpFloorDiv           // //
	OpCross              // ^
)

var opSymbols = [...]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpFloorDiv: "//",
	OpCross:    "^",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opSymbols[op]
}

// ParseOp parses an operator symbol. The in-place spellings ("+=", "//=",
// ...) are accepted as well; inPlace reports whether one was used.
func ParseOp(s string) (op Op, inPlace bool, err error) {
	s = strings.TrimSpace(s)
	if base, ok := strings.CutSuffix(s, "="); ok {
		s, inPlace = base, true
	}
	for i, sym := range opSymbols {
		if sym == s {
			return Op(i), inPlace, nil
		}
	}
	return 0, false, fmt.Errorf("%w: unknown operator %q", ErrParse, s)
}

// Apply evaluates v op x and returns a new result, leaving v untouched.
// OpMul with a vector operand yields the dot product as a Scalar; every
// other defined combination yields a *Vector.
func (v *Vector) Apply(op Op, x Operand) (Operand, error) {
	switch x := x.(type) {
	case *Vector:
		if op == OpMul {
			d, err := v.Dot(x)
			if err != nil {
				return nil, err
			}
			return Scalar(d), nil
		}
	case Scalar, nil:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedOperand, x)
	}

	out := v.Clone()
	if err := out.ApplyInPlace(op, x); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyInPlace evaluates v op= x, overwriting v. OpMul with a vector
// operand fails with ErrInvalidAssignment since its result is a scalar.
// On error v is unchanged.
func (v *Vector) ApplyInPlace(op Op, x Operand) error {
	switch x := x.(type) {
	case *Vector:
		return v.applyVectorInPlace(op, x)
	case Scalar:
		return v.applyScalarInPlace(op, float64(x))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedOperand, x)
	}
}

func (v *Vector) applyVectorInPlace(op Op, x *Vector) error {
	var err error
	switch op {
	case OpAdd:
		_, err = v.AddInPlace(x)
	case OpSub:
		_, err = v.SubInPlace(x)
	case OpMul:
		if err = v.requireSameDimension("scalar product", x); err == nil {
			err = fmt.Errorf("%w: %s= with a vector operand", ErrInvalidAssignment, op)
		}
	case OpCross:
		_, err = v.CrossInPlace(x)
	default:
		err = fmt.Errorf("%w: vector %s vector", ErrUnsupportedOperand, op)
	}
	return err
}

func (v *Vector) applyScalarInPlace(op Op, k float64) error {
	var err error
	switch op {
	case OpAdd:
		v.AddScalarInPlace(k)
	case OpSub:
		v.SubScalarInPlace(k)
	case OpMul:
		v.ScaleInPlace(k)
	case OpDiv:
		_, err = v.DivInPlace(k)
	case OpFloorDiv:
		_, err = v.FloorDivInPlace(k)
	default:
		err = fmt.Errorf("%w: vector %s scalar", ErrUnsupportedOperand, op)
	}
	return err
}
