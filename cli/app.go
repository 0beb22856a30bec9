// Package cli contains all business logic needed by the vehiclekin CLI command.
package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/vehiclekin/logging"
)

const (
	// Flags.
	flagDescription = "description"
	flagBaseLink    = "base-link"
	flagDebug       = "debug"
	flagMode        = "mode"
	flagConfig      = "config"
	flagMatrix      = "matrix"
	flagInverse     = "inverse"

	distanceMode3D = "3d"
	distanceMode2D = "2d"
	distanceModeX  = "x"
	distanceModeY  = "y"

	defaultBaseLink = "base_link"
)

// NewApp returns the vehiclekin command line application writing its results to out.
func NewApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "vehiclekin",
		Usage:     "measure a vehicle from its robot description",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagDescription,
				Aliases: []string{"d"},
				Usage:   "load the robot description from URDF `FILE`",
			},
			&cli.StringFlag{
				Name:    flagBaseLink,
				Aliases: []string{"b"},
				Value:   defaultBaseLink,
				Usage:   "link multi joint queries are expressed in",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "links",
				Usage:  "list the joints of the robot description",
				Action: LinksAction,
			},
			{
				Name:      "transform",
				Usage:     "print the pose of a joint relative to one of its ancestor links",
				ArgsUsage: "<joint> [link]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  flagInverse,
						Usage: "print the pose of the link in the joint frame instead",
					},
					poseMatrixFlag(),
				},
				Action: TransformAction,
			},
			{
				Name:      "relative",
				Usage:     "print the pose of the second joint in the frame of the first",
				ArgsUsage: "<joint> <joint>",
				Flags:     []cli.Flag{poseMatrixFlag()},
				Action:    RelativeAction,
			},
			{
				Name:      "distance",
				Usage:     "print the distance between two joints",
				ArgsUsage: "<joint> <joint>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagMode,
						Value: distanceMode3D,
						Usage: "one of 3d, 2d, x or y; x and y are signed",
					},
				},
				Action: DistanceAction,
			},
			{
				Name:      "rotation",
				Usage:     "print the yaw of the first joint relative to the second",
				ArgsUsage: "<joint> <joint>",
				Action:    RotationAction,
			},
			{
				Name:      "radius",
				Usage:     "print the radius of the geometry attached below a joint",
				ArgsUsage: "<joint>",
				Action:    RadiusAction,
			},
			{
				Name:      "steering-limit",
				Usage:     "print the steering limit of a joint",
				ArgsUsage: "<joint>",
				Action:    SteeringLimitAction,
			},
			{
				Name:  "geometry",
				Usage: "print the vehicle geometry described by a config file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagConfig,
						Aliases:  []string{"c"},
						Required: true,
						Usage:    "load configuration from `FILE`",
					},
				},
				Action: GeometryAction,
			},
		},
	}
}

func poseMatrixFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    flagMatrix,
		Aliases: []string{"m"},
		Usage:   "also print the 4x4 homogeneous transformation matrix",
	}
}

func newLogger(c *cli.Context) logging.Logger {
	if c.Bool(flagDebug) {
		return logging.NewDebugLogger("vehiclekin")
	}
	return logging.NewBlankLogger("vehiclekin")
}

func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}
