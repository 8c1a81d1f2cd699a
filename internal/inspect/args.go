package inspect

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/born-ml/ndarray/tensor"
)

// Arguments holds the parsed command line. Exactly one command field is set.
type Arguments struct {
	Debug  bool
	Plain  bool
	Config string

	Offset  *OffsetArguments
	Unravel *UnravelArguments
	Show    *ShowArguments
}

// OffsetArguments converts a coordinate tuple to a linear offset.
type OffsetArguments struct {
	Shape  tensor.Shape // nil: taken from the config file
	Coords []int
}

// UnravelArguments converts a linear offset to a coordinate tuple.
type UnravelArguments struct {
	Shape  tensor.Shape // nil: taken from the config file
	Offset int
}

// ShowArguments builds a tensor and prints the view at Index.
type ShowArguments struct {
	Shape  tensor.Shape // nil: taken from the config file
	Values []float64    // nil: taken from the config file, else Fill
	Fill   *float64
	Index  []int
}

var (
	ErrMissingCommand  = errors.New("missing command")
	ErrMissingArgument = errors.New("missing argument")
)

// ParseArguments parses argv (program name first). Usage and parse errors are
// printed by the parser; ErrMissingCommand is returned when only help or the
// version was requested.
func ParseArguments(argv []string, appVersion string) (*Arguments, error) {
	var args Arguments
	app := cli.NewApp()
	app.Name = "ndarray"
	app.Usage = "Inspect row-major addressing of fixed-shape arrays"
	app.Version = appVersion

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config,c", Usage: "YAML file with shape, values, fill and index"},
		cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
		cli.BoolFlag{Name: "plain", Usage: "Render tab separated text instead of tables"},
	}
	app.Before = func(c *cli.Context) error {
		args.Debug = c.Bool("debug")
		args.Plain = c.Bool("plain")
		args.Config = c.String("config")
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      "offset",
			Usage:     "Print the linear offset of a coordinate tuple",
			ArgsUsage: "<i1> <i2> ... <ik>",
			Flags:     []cli.Flag{cli.StringFlag{Name: "shape,s", Usage: "Shape, e.g. 2,3,4"}},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return ErrMissingArgument
				}
				shape, err := optionalShape(c)
				if err != nil {
					return err
				}
				coords, err := parseArgInts(c.Args())
				if err != nil {
					return err
				}
				args.Offset = &OffsetArguments{Shape: shape, Coords: coords}
				return nil
			},
		},
		{
			Name:      "unravel",
			Usage:     "Print the coordinate tuple of a linear offset",
			ArgsUsage: "<offset>",
			Flags:     []cli.Flag{cli.StringFlag{Name: "shape,s", Usage: "Shape, e.g. 2,3,4"}},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return ErrMissingArgument
				}
				shape, err := optionalShape(c)
				if err != nil {
					return err
				}
				offset, err := parseArgInts(c.Args())
				if err != nil {
					return err
				}
				args.Unravel = &UnravelArguments{Shape: shape, Offset: offset[0]}
				return nil
			},
		},
		{
			Name:  "show",
			Usage: "Build a float64 tensor and print the view at the given leading coordinates",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "shape,s", Usage: "Shape, e.g. 2,3"},
				cli.StringFlag{Name: "values", Usage: "Comma separated elements in row-major order"},
				cli.Float64Flag{Name: "fill", Usage: "Value for every element when no values are given"},
				cli.StringFlag{Name: "index,i", Usage: "Leading coordinates of the view to print, e.g. 1,0"},
			},
			Action: func(c *cli.Context) error {
				shape, err := optionalShape(c)
				if err != nil {
					return err
				}
				show := &ShowArguments{Shape: shape}
				if c.IsSet("values") {
					if show.Values, err = ParseFloats(c.String("values")); err != nil {
						return errors.Wrap(err, "invalid values")
					}
				}
				if c.IsSet("fill") {
					fill := c.Float64("fill")
					show.Fill = &fill
				}
				if c.IsSet("index") {
					if show.Index, err = ParseInts(c.String("index")); err != nil {
						return errors.Wrap(err, "invalid index")
					}
				}
				args.Show = show
				return nil
			},
		},
	}

	if err := app.Run(argv); err != nil {
		return nil, err
	}
	if args.Offset == nil && args.Unravel == nil && args.Show == nil {
		return nil, ErrMissingCommand
	}
	return &args, nil
}

func optionalShape(c *cli.Context) (tensor.Shape, error) {
	if !c.IsSet("shape") {
		return nil, nil
	}
	return ParseShape(c.String("shape"))
}
