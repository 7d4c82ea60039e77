package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// ParseFloats parses a comma-separated list of numbers, like "10,-5.5,0".
// Whitespace around each number is ignored. An empty string is an empty list.
func ParseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))

	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d of %q", i, s)
		}

		out[i] = f
	}

	return out, nil
}

// ParseDegrees is like ParseFloats, but converts each value from degrees to
// radians.
func ParseDegrees(s string) ([]float64, error) {
	fs, err := ParseFloats(s)
	if err != nil {
		return nil, err
	}

	for i := range fs {
		fs[i] = Rad(fs[i])
	}

	return fs, nil
}

// ParseXYZ parses exactly three comma-separated numbers.
func ParseXYZ(s string) (x, y, z float64, err error) {
	fs, err := ParseFloats(s)
	if err != nil {
		return 0, 0, 0, err
	}

	if len(fs) != 3 {
		return 0, 0, 0, errors.Errorf("expected x,y,z but got %d values in %q", len(fs), s)
	}

	return fs[0], fs[1], fs[2], nil
}
