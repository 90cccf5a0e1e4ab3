package vector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-vector/internal/testutil"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    *Vector
		want string
	}{
		{name: "empty", v: New(), want: "Vector()"},
		{name: "integers", v: New(1, 2, 3), want: "Vector(1, 2, 3)"},
		{name: "reals", v: New(0.25, -1.5, 1e-7), want: "Vector(0.25, -1.5, 1e-07)"},
		{name: "nil", v: nil, want: "Vector()"},
		{name: "millions", v: New(1000000, 2500000), want: "Vector(1000000, 2500000)"},
		{name: "large fraction", v: New(2500000.5), want: "Vector(2500000.5)"},
		{name: "exponent threshold", v: New(1e16, 9999999999999998), want: "Vector(1e+16, 9999999999999998)"},
		{name: "small", v: New(0.0001, 0.00001), want: "Vector(0.0001, 1e-05)"},
		{
			name: "twelve in full",
			v:    FromSlice(testutil.Sequence(12)),
			want: "Vector(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)",
		},
		{
			name: "thirteen abbreviated",
			v:    FromSlice(testutil.Sequence(13)),
			want: "Vector(0, 1, 2, ..., 10, 11, 12)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestStringAbbreviationIsCosmetic(t *testing.T) {
	a := FromSlice(testutil.Sequence(15))
	b := FromSlice(testutil.Sequence(15))

	s := a.String()
	assert.Equal(t, "Vector(0, 1, 2, ..., 12, 13, 14)", s)
	assert.Equal(t, 1, strings.Count(s, "..."))
	assert.Len(t, strings.Split(s, ", "), 7)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 15, a.Dimension())

	// Coordinates hidden by the ellipsis still participate in equality.
	c := b.Clone()
	c.coords[7] = -1
	assert.Equal(t, a.String(), c.String())
	assert.False(t, a.Equal(c))

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.Equal(t, 15, sum.Dimension())
}

func TestFormatOptions(t *testing.T) {
	v := FromSlice(testutil.Sequence(15))

	assert.Equal(t,
		"Vector(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)",
		v.Format(WithMaxElements(0)))
	assert.Equal(t,
		"Vector(0, 1, ..., 13, 14)",
		v.Format(WithEdgeItems(2)))
	assert.Equal(t,
		"Vector(0, ..., 14)",
		v.Format(WithMaxElements(4), WithEdgeItems(1)))

	// Edge items covering the whole vector disable abbreviation.
	assert.Equal(t,
		"Vector(0, 1, 2, 3, 4)",
		FromSlice(testutil.Sequence(5)).Format(WithMaxElements(2), WithEdgeItems(3)))

	assert.Equal(t, "Vector(0.267, 0.535)", New(0.26726, 0.53452).Format(WithPrecision(3)))
	assert.Equal(t, "Vector(1.00, 2.00)", New(1, 2).Format(WithPrecision(2), nil))
}

func TestFormatScalar(t *testing.T) {
	assert.Equal(t, "1000000", FormatScalar(1e6))
	assert.Equal(t, "12", FormatScalar(12))
	assert.Equal(t, "1e+16", FormatScalar(1e16))
	assert.Equal(t, "3.142", FormatScalar(3.14159, WithPrecision(3), WithMaxElements(1)))
}
