package vector

import (
	"math"
	"strconv"
	"strings"
)

const (
	defaultMaxElements = 12
	defaultEdgeItems   = 3
	ellipsis           = "..."
)

type formatConfig struct {
	maxElements int
	edgeItems   int
	precision   int
}

// FormatOption configures Format.
type FormatOption func(*formatConfig)

func defaultFormatConfig() formatConfig {
	return formatConfig{
		maxElements: defaultMaxElements,
		edgeItems:   defaultEdgeItems,
		precision:   -1,
	}
}

// WithMaxElements sets the largest dimension that is rendered in full.
// Larger vectors are abbreviated. Zero or a negative value disables
// abbreviation.
func WithMaxElements(n int) FormatOption {
	return func(cfg *formatConfig) {
		cfg.maxElements = n
	}
}

// WithEdgeItems sets how many leading and trailing coordinates an
// abbreviated vector shows around the ellipsis.
func WithEdgeItems(n int) FormatOption {
	return func(cfg *formatConfig) {
		if n > 0 {
			cfg.edgeItems = n
		}
	}
}

// WithPrecision renders coordinates with a fixed number of fractional
// digits. A negative precision selects the shortest exact representation.
func WithPrecision(p int) FormatOption {
	return func(cfg *formatConfig) {
		cfg.precision = p
	}
}

// String renders v as "Vector(c0, c1, ...)". Vectors with more than 12
// coordinates show only the first and last three around "...".
func (v *Vector) String() string {
	return v.Format()
}

// Format renders v like String, configured by opts. Abbreviation only
// affects the rendered text.
func (v *Vector) Format(opts ...FormatOption) string {
	cfg := defaultFormatConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var coords []float64
	if v != nil {
		coords = v.coords
	}

	var b strings.Builder
	b.WriteString("Vector(")
	n := len(coords)
	if cfg.maxElements > 0 && n > cfg.maxElements && 2*cfg.edgeItems < n {
		writeCoords(&b, coords[:cfg.edgeItems], cfg.precision)
		b.WriteString(", " + ellipsis + ", ")
		writeCoords(&b, coords[n-cfg.edgeItems:], cfg.precision)
	} else {
		writeCoords(&b, coords, cfg.precision)
	}
	b.WriteByte(')')
	return b.String()
}

func writeCoords(b *strings.Builder, coords []float64, precision int) {
	for i, c := range coords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatCoord(c, precision))
	}
}

// FormatScalar renders x the way Format renders a single coordinate.
// Only WithPrecision affects the result.
func FormatScalar(x float64, opts ...FormatOption) string {
	cfg := defaultFormatConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return formatCoord(x, cfg.precision)
}

// Shortest form uses positional notation for magnitudes in [1e-4, 1e16)
// and exponent notation outside it, so 1000000 prints as 1000000.
func formatCoord(c float64, precision int) string {
	if precision >= 0 {
		return strconv.FormatFloat(c, 'f', precision, 64)
	}
	if abs := math.Abs(c); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		return strconv.FormatFloat(c, 'f', -1, 64)
	}
	return strconv.FormatFloat(c, 'g', -1, 64)
}
