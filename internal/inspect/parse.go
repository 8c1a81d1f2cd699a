package inspect

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/tensor"
)

// ParseShape parses a comma-separated shape string (for example: "2,3,4").
func ParseShape(raw string) (tensor.Shape, error) {
	dims, err := ParseInts(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	shape := tensor.Shape(dims)
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// ParseInts parses a comma-separated list of integers.
func ParseInts(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.New("empty value")
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseFloats parses a comma-separated list of numbers.
func ParseFloats(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.New("empty value")
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseArgInts converts positional command line arguments to integers.
func parseArgInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}
