// Package main is the orient command. It reads named orientations from a JSON file, prints every
// representation of each and applies them to points.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"go.viam.com/orientation/logging"
	"go.viam.com/orientation/spatialmath"
)

const (
	// Flags.
	flagConfig  = "config"
	flagPoint   = "point"
	flagInverse = "inverse"
	flagDebug   = "debug"
	flagLevel   = "log-level"
	flagEpsilon = "epsilon"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	var logger logging.Logger

	return &cli.App{
		Name:      "orient",
		Usage:     "convert, compare and apply 3D orientations",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagConfig,
				Aliases:  []string{"c"},
				Usage:    "load orientations from `FILE`",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging, same as --log-level=debug",
			},
			&cli.StringFlag{
				Name:  flagLevel,
				Usage: "log `LEVEL`, one of debug, info, warn or error",
				Value: "info",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logging.LevelFromString(c.String(flagLevel))
			if err != nil {
				return err
			}
			if c.Bool(flagDebug) {
				level = logging.DEBUG
			}
			logger = logging.NewWriterLogger("orient", level, c.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print a table of the configured orientations, invalid ones included",
				Action: func(c *cli.Context) error {
					return listAction(c, logger)
				},
			},
			{
				Name:      "show",
				Usage:     "print every representation of the named orientations, all of them if none is named",
				ArgsUsage: "[name...]",
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:  flagPoint,
						Usage: "also rotate the point `X,Y,Z`",
					},
					&cli.BoolFlag{
						Name:  flagInverse,
						Usage: "rotate the point by the inverse orientation",
					},
				},
				Action: func(c *cli.Context) error {
					return showAction(c, logger)
				},
			},
			{
				Name:      "compare",
				Usage:     "print the angle between two orientations and whether they are equal",
				ArgsUsage: "<name> <name>",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  flagEpsilon,
						Usage: "tolerance, in radians",
						Value: 1e-6,
					},
				},
				Action: func(c *cli.Context) error {
					return compareAction(c, logger)
				},
			},
			{
				Name:      "between",
				Usage:     "print the rotation taking the first orientation to the second",
				ArgsUsage: "<from> <to>",
				Action: func(c *cli.Context) error {
					return betweenAction(c, logger)
				},
			},
		},
	}
}

// loadOrientations reads and parses the config file, reporting every invalid entry at once.
func loadOrientations(c *cli.Context, logger logging.Logger) (map[string]spatialmath.Orientation, error) {
	path := c.String(flagConfig)
	cfg, err := spatialmath.NewOrientationConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debugw("loaded config", "path", path, "orientations", cfg.Names())

	orientations, err := cfg.Parse()
	if err != nil {
		logger.Errorw("invalid config", "path", path, "error", err)
		return nil, errors.Wrapf(err, "cannot parse %s", path)
	}
	return orientations, nil
}

func lookup(orientations map[string]spatialmath.Orientation, name string) (spatialmath.Orientation, error) {
	o, ok := orientations[name]
	if !ok {
		return nil, errors.Errorf("no orientation named %q", name)
	}
	return o, nil
}

func twoNames(c *cli.Context) (string, string, error) {
	if c.Args().Len() != 2 {
		return "", "", errors.Errorf("%s needs exactly two orientation names, got %d", c.Command.Name, c.Args().Len())
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

func listAction(c *cli.Context, logger logging.Logger) error {
	path := c.String(flagConfig)
	cfg, err := spatialmath.NewOrientationConfigFromFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		logger.Warnw("config has invalid orientations", "path", path, "error", err)
	}
	printf(c.App.Writer, "%s", cfg)
	return nil
}

func showAction(c *cli.Context, logger logging.Logger) error {
	orientations, err := loadOrientations(c, logger)
	if err != nil {
		return err
	}

	var point *spatialmath.Point3D
	if coords := c.Float64Slice(flagPoint); c.IsSet(flagPoint) {
		if len(coords) != 3 {
			return errors.Errorf("point needs 3 coordinates, got %d", len(coords))
		}
		point = spatialmath.NewPoint3D(coords[0], coords[1], coords[2])
	}

	names := c.Args().Slice()
	if len(names) == 0 {
		names = lo.Keys(orientations)
		sort.Strings(names)
	}

	for _, name := range names {
		o, err := lookup(orientations, name)
		if err != nil {
			return err
		}
		printOrientation(c.App.Writer, name, o)

		if point == nil {
			continue
		}
		rotated := spatialmath.NewPoint3D(0, 0, 0)
		if c.Bool(flagInverse) {
			err = spatialmath.InverseTransform(o, point, rotated)
		} else {
			err = spatialmath.Transform(o, point, rotated)
		}
		if err != nil {
			return errors.Wrapf(err, "cannot rotate %s by %q", point, name)
		}
		logger.Debugw("rotated point", "orientation", name, "inverse", c.Bool(flagInverse))
		printf(c.App.Writer, "  %-16s %s -> %s", "point:", point, rotated)
	}
	return nil
}

func compareAction(c *cli.Context, logger logging.Logger) error {
	first, second, err := twoNames(c)
	if err != nil {
		return err
	}
	orientations, err := loadOrientations(c, logger)
	if err != nil {
		return err
	}
	a, err := lookup(orientations, first)
	if err != nil {
		return err
	}
	b, err := lookup(orientations, second)
	if err != nil {
		return err
	}

	qa, qb := spatialmath.Quaternion(a.Quaternion()), spatialmath.Quaternion(b.Quaternion())
	distance := spatialmath.QuatDistancePrecise(&qa, &qb)
	epsilon := c.Float64(flagEpsilon)
	printf(c.App.Writer, "angle between %s and %s: %v rad (%v deg)", first, second, distance, spatialmath.RadToDeg(distance))
	printf(c.App.Writer, "equal within %v: %t", epsilon, spatialmath.OrientationGeometricallyEquals(a, b, epsilon))
	return nil
}

func betweenAction(c *cli.Context, logger logging.Logger) error {
	from, to, err := twoNames(c)
	if err != nil {
		return err
	}
	orientations, err := loadOrientations(c, logger)
	if err != nil {
		return err
	}
	a, err := lookup(orientations, from)
	if err != nil {
		return err
	}
	b, err := lookup(orientations, to)
	if err != nil {
		return err
	}
	printOrientation(c.App.Writer, fmt.Sprintf("%s -> %s", from, to), spatialmath.OrientationBetween(a, b))
	return nil
}

func printOrientation(w io.Writer, name string, o spatialmath.Orientation) {
	q := spatialmath.Quaternion(o.Quaternion())
	rv := o.RotationVector()
	printf(w, "%s:", name)
	printf(w, "  %-16s %s", "quaternion:", &q)
	printf(w, "  %-16s %s", "rotation matrix:", o.RotationMatrix())
	printf(w, "  %-16s %s", "axis angles:", o.AxisAngles())
	printf(w, "  %-16s %s", "rotation vector:", spatialmath.NewVector3DFromR3(rv.R3()))
	printf(w, "  %-16s %s", "euler angles:", o.EulerAngles())
}

// printf prints a message with a trailing newline to the given writer.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}
