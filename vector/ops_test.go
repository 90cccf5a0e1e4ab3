package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		op      Op
		inPlace bool
	}{
		{in: "+", op: OpAdd},
		{in: "-", op: OpSub},
		{in: "*", op: OpMul},
		{in: "/", op: OpDiv},
		{in: "//", op: OpFloorDiv},
		{in: "^", op: OpCross},
		{in: "+=", op: OpAdd, inPlace: true},
		{in: " //= ", op: OpFloorDiv, inPlace: true},
		{in: "^=", op: OpCross, inPlace: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			op, inPlace, err := ParseOp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.op, op)
			assert.Equal(t, tt.inPlace, inPlace)
		})
	}

	for _, bad := range []string{"", "=", "%", "**", "=="} {
		_, _, err := ParseOp(bad)
		assert.ErrorIs(t, err, ErrParse, "ParseOp(%q)", bad)
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "//", OpFloorDiv.String())
	assert.Equal(t, "^", OpCross.String())
	assert.Equal(t, "Op(42)", Op(42).String())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		x    Operand
		want Operand
	}{
		{name: "add vector", op: OpAdd, x: New(4, 5, 6), want: New(5, 7, 9)},
		{name: "add scalar", op: OpAdd, x: Scalar(3), want: New(4, 5, 6)},
		{name: "sub vector", op: OpSub, x: New(4, 5, 6), want: New(-3, -3, -3)},
		{name: "sub scalar", op: OpSub, x: Scalar(3), want: New(-2, -1, 0)},
		{name: "dot", op: OpMul, x: New(2, 2, 2), want: Scalar(12)},
		{name: "scale", op: OpMul, x: Scalar(2), want: New(2, 4, 6)},
		{name: "div", op: OpDiv, x: Scalar(2), want: New(0.5, 1, 1.5)},
		{name: "floor div", op: OpFloorDiv, x: Scalar(2), want: New(0, 1, 1)},
		{name: "cross", op: OpCross, x: New(4, 5, 6), want: New(-3, 6, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(1, 2, 3)
			got, err := v.Apply(tt.op, tt.x)
			require.NoError(t, err)

			switch want := tt.want.(type) {
			case Scalar:
				assert.Equal(t, want, got)
			case *Vector:
				gv, ok := got.(*Vector)
				require.True(t, ok, "want *Vector, got %T", got)
				assert.True(t, want.Equal(gv), "got %v, want %v", gv, want)
			}
			assert.True(t, v.Equal(New(1, 2, 3)), "Apply must not mutate the receiver")
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		x    Operand
		want error
	}{
		{name: "add mismatch", op: OpAdd, x: New(1, 2), want: ErrDimensionMismatch},
		{name: "dot mismatch", op: OpMul, x: New(1, 2), want: ErrDimensionMismatch},
		{name: "div zero", op: OpDiv, x: Scalar(0), want: ErrDivisionByZero},
		{name: "floor div zero", op: OpFloorDiv, x: Scalar(0), want: ErrDivisionByZero},
		{name: "div vector", op: OpDiv, x: New(1, 2, 3), want: ErrUnsupportedOperand},
		{name: "cross scalar", op: OpCross, x: Scalar(1), want: ErrUnsupportedOperand},
		{name: "cross 2d", op: OpCross, x: New(1, 2), want: ErrUnsupportedDimension},
		{name: "nil", op: OpAdd, x: nil, want: ErrUnsupportedOperand},
		{name: "unknown op", op: Op(99), x: Scalar(1), want: ErrUnsupportedOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(1, 2, 3).Apply(tt.op, tt.x)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApplyInPlace(t *testing.T) {
	v := New(1, 2, 3)
	alias := v

	require.NoError(t, v.ApplyInPlace(OpAdd, New(4, 5, 6)))
	assert.True(t, alias.Equal(New(5, 7, 9)))

	require.NoError(t, v.ApplyInPlace(OpMul, Scalar(2)))
	assert.True(t, alias.Equal(New(10, 14, 18)))

	require.NoError(t, v.ApplyInPlace(OpFloorDiv, Scalar(4)))
	assert.True(t, alias.Equal(New(2, 3, 4)))

	require.NoError(t, v.ApplyInPlace(OpCross, New(1, 0, 0)))
	assert.True(t, alias.Equal(New(0, 4, -3)), "got %v", alias)
}

func TestApplyInPlaceMulVectorIsInvalidAssignment(t *testing.T) {
	v := New(1, 2, 3)

	err := v.ApplyInPlace(OpMul, New(2, 2, 2))
	require.ErrorIs(t, err, ErrInvalidAssignment)
	assert.True(t, v.Equal(New(1, 2, 3)), "failed *= must not mutate")

	err = v.ApplyInPlace(OpMul, New(2, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestApplyInPlaceErrorsLeaveReceiver(t *testing.T) {
	v := New(1, 2, 3)
	assert.ErrorIs(t, v.ApplyInPlace(OpSub, New(1)), ErrDimensionMismatch)
	assert.ErrorIs(t, v.ApplyInPlace(OpDiv, Scalar(0)), ErrDivisionByZero)
	assert.ErrorIs(t, v.ApplyInPlace(OpDiv, New(1, 1, 1)), ErrUnsupportedOperand)
	assert.ErrorIs(t, v.ApplyInPlace(OpCross, Scalar(2)), ErrUnsupportedOperand)
	assert.ErrorIs(t, v.ApplyInPlace(OpAdd, nil), ErrUnsupportedOperand)
	assert.True(t, v.Equal(New(1, 2, 3)))
}
