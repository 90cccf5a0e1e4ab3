package vector

import (
	"fmt"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Parse reads a vector from its text form. Accepted spellings include
// "Vector(1, 2, 3)", "(1, 2, 3)", "[1, 2, 3]" and "1, 2, 3". A single
// trailing comma is allowed, so "3," is a 1-dimensional vector.
// Abbreviated display output containing "..." is rejected.
func Parse(s string) (*Vector, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "Vector")
	body = strings.TrimSpace(body)

	if open, ok := firstByte(body); ok && (open == '(' || open == '[') {
		closing := byte(')')
		if open == '[' {
			closing = ']'
		}
		if len(body) < 2 || body[len(body)-1] != closing {
			return nil, fmt.Errorf("%w: unbalanced %q in %q", ErrParse, open, s)
		}
		body = strings.TrimSpace(body[1 : len(body)-1])
	}

	if body == "" {
		return Zero(0), nil
	}

	parts := strings.Split(body, ",")
	if len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	coords := make([]float64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == ellipsis {
			return nil, fmt.Errorf("%w: abbreviated vector %q", ErrParse, s)
		}
		c, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: coordinate %d: %w", ErrParse, i, err)
		}
		coords[i] = c
	}
	return &Vector{coords: coords}, nil
}

func firstByte(s string) (byte, bool) {
	if s == "" {
		return 0, false
	}
	return s[0], true
}

// MarshalText encodes v in its full, unabbreviated display form.
func (v *Vector) MarshalText() ([]byte, error) {
	return []byte(v.Format(WithMaxElements(0))), nil
}

// UnmarshalText decodes text accepted by Parse into v.
func (v *Vector) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	v.coords = p.coords
	return nil
}

// MarshalJSON encodes v as a JSON array of numbers.
func (v *Vector) MarshalJSON() ([]byte, error) {
	coords := []float64{}
	if v != nil && v.coords != nil {
		coords = v.coords
	}
	return gojson.Marshal(coords)
}

// UnmarshalJSON decodes a JSON array of numbers into v. JSON null
// yields a 0-dimensional vector.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := gojson.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("vector: decode json: %w", err)
	}
	if coords == nil {
		coords = []float64{}
	}
	v.coords = coords
	return nil
}
