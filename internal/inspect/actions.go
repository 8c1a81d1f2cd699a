package inspect

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/born-ml/ndarray/tensor"
)

// Run executes the command selected in args and writes its result to w.
func Run(w io.Writer, args *Arguments) error {
	cfg := &Config{}
	if args.Config != "" {
		loaded, err := LoadConfig(args.Config)
		if err != nil {
			return err
		}
		cfg = loaded
		logrus.Debugf("Loaded config %s", args.Config)
	}

	switch {
	case args.Offset != nil:
		return PrintOffset(w, cfg, args.Offset)
	case args.Unravel != nil:
		return PrintUnravel(w, cfg, args.Unravel)
	case args.Show != nil:
		return Show(w, cfg, args.Show, args.Plain)
	default:
		return ErrMissingCommand
	}
}

// resolveShape prefers the flag value and falls back to the config file.
func resolveShape(flag tensor.Shape, cfg *Config) (tensor.Shape, error) {
	if flag != nil {
		return flag, nil
	}
	if len(cfg.Shape) == 0 {
		return nil, errors.Wrap(ErrMissingArgument, "no shape given (use --shape or a config file)")
	}
	shape := tensor.Shape(cfg.Shape)
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "config shape")
	}
	return shape, nil
}

// PrintOffset prints the row-major linear offset of a coordinate tuple.
func PrintOffset(w io.Writer, cfg *Config, a *OffsetArguments) error {
	shape, err := resolveShape(a.Shape, cfg)
	if err != nil {
		return err
	}
	off, err := shape.Offset(a.Coords...)
	if err != nil {
		return errors.Wrapf(err, "coordinates %v for shape %v", a.Coords, shape)
	}
	logrus.Debugf("Offset of %v in %v is %d", a.Coords, shape, off)
	_, err = fmt.Fprintln(w, off)
	return err
}

// PrintUnravel prints the coordinate tuple of a linear offset.
func PrintUnravel(w io.Writer, cfg *Config, a *UnravelArguments) error {
	shape, err := resolveShape(a.Shape, cfg)
	if err != nil {
		return err
	}
	coords, err := shape.Unravel(a.Offset)
	if err != nil {
		return errors.Wrapf(err, "offset %d for shape %v", a.Offset, shape)
	}
	_, err = fmt.Fprintln(w, coords)
	return err
}

// Show builds the tensor described by cfg and a, indexes it by the leading
// coordinates in a.Index and renders the resulting view.
func Show(w io.Writer, cfg *Config, a *ShowArguments, plain bool) error {
	t, err := buildTensor(cfg, a)
	if err != nil {
		return err
	}
	defer t.Release()

	index := a.Index
	if index == nil {
		index = cfg.Index
	}
	view, err := subView(t, index)
	if err != nil {
		return err
	}
	logrus.Debugf("Rendering %v of %v", view, t)
	return render(w, view, index, plain)
}

func buildTensor(cfg *Config, a *ShowArguments) (*tensor.Tensor[float64], error) {
	shape, err := resolveShape(a.Shape, cfg)
	if err != nil {
		return nil, err
	}

	values := a.Values
	if values == nil && a.Fill == nil {
		values = cfg.Values
	}
	if values != nil {
		t, err := tensor.FromSlice(shape, values)
		if err != nil {
			return nil, errors.Wrap(err, "could not build tensor")
		}
		return t, nil
	}

	fill := 0.0
	switch {
	case a.Fill != nil:
		fill = *a.Fill
	case cfg.Fill != nil:
		fill = *cfg.Fill
	}
	return tensor.Full(shape, fill)
}

// subView indexes t by each leading coordinate in turn. Coordinates are
// validated here so bad input is reported as an error rather than a panic.
func subView(t *tensor.Tensor[float64], index []int) (tensor.View[float64], error) {
	shape := t.Shape()
	if len(index) > len(shape) {
		return tensor.View[float64]{}, errors.Wrapf(tensor.ErrArityMismatch,
			"%d coordinates for rank %d", len(index), len(shape))
	}
	v := t.View()
	for j, i := range index {
		if i < 0 || i >= shape[j] {
			return tensor.View[float64]{}, errors.Wrapf(tensor.ErrIndexOutOfRange,
				"coordinate %d for dimension %d (extent %d)", i, j, shape[j])
		}
		v = v.Index(i)
	}
	return v, nil
}
