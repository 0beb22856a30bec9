package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	goutils "go.viam.com/utils"

	"go.viam.com/vehiclekin/config"
	"go.viam.com/vehiclekin/kinematics"
	"go.viam.com/vehiclekin/logging"
	"go.viam.com/vehiclekin/spatialmath"
	"go.viam.com/vehiclekin/utils"
)

func withResolver(c *cli.Context, nArgs int, fn func(r *kinematics.Resolver, args []string) error) error {
	args := c.Args().Slice()
	if len(args) != nArgs {
		return errors.Errorf("%s expects %d arguments, got %d", c.Command.Name, nArgs, len(args))
	}
	description := c.String(flagDescription)
	if description == "" {
		return errors.Errorf("--%s is required", flagDescription)
	}

	logger := newLogger(c)
	defer goutils.UncheckedErrorFunc(logger.Sync)

	r, err := kinematics.NewResolverFromFile(description, c.String(flagBaseLink), logger)
	if err != nil {
		return err
	}
	return fn(r, args)
}

// LinksAction prints a table of the joints of the robot description.
func LinksAction(c *cli.Context) error {
	return withResolver(c, 0, func(r *kinematics.Resolver, _ []string) error {
		printf(c.App.Writer, "%s (root link %q)", r.Model().Name(), r.Model().Root())
		printf(c.App.Writer, "%s", r.Model().String())
		return nil
	})
}

// TransformAction prints the pose of a joint relative to the given link, or the base link if none is given.
func TransformAction(c *cli.Context) error {
	nArgs := 2
	if c.Args().Len() == 1 {
		nArgs = 1
	}
	return withResolver(c, nArgs, func(r *kinematics.Resolver, args []string) error {
		link := r.BaseLink()
		if len(args) == 2 {
			link = args[1]
		}
		pose, err := r.Transform(args[0], link)
		if err != nil {
			return err
		}
		if c.Bool(flagInverse) {
			pose = spatialmath.PoseInverse(pose)
		}
		printPose(c, pose)
		return nil
	})
}

// RelativeAction prints the pose of the second joint expressed in the frame of the first.
func RelativeAction(c *cli.Context) error {
	return withResolver(c, 2, func(r *kinematics.Resolver, args []string) error {
		pose, err := r.PoseBetweenJoints(args[0], args[1])
		if err != nil {
			return err
		}
		printPose(c, pose)
		return nil
	})
}

func printPose(c *cli.Context, pose spatialmath.Pose) {
	pt := pose.Point()
	ea := pose.Orientation().EulerAngles()
	q := pose.Orientation().Quaternion()
	printf(c.App.Writer, "translation: X:%.6f Y:%.6f Z:%.6f", pt.X, pt.Y, pt.Z)
	printf(c.App.Writer, "rpy (deg): Roll:%.4f Pitch:%.4f Yaw:%.4f",
		utils.RadToDeg(ea.Roll), utils.RadToDeg(ea.Pitch), utils.RadToDeg(ea.Yaw))
	printf(c.App.Writer, "quaternion: W:%.6f X:%.6f Y:%.6f Z:%.6f", q.Real, q.Imag, q.Jmag, q.Kmag)
	if !c.Bool(flagMatrix) {
		return
	}
	m := spatialmath.PoseToMatrix(pose)
	printf(c.App.Writer, "matrix:")
	for i := 0; i < 4; i++ {
		row := m.Row(i)
		printf(c.App.Writer, "  %.6f %.6f %.6f %.6f", row[0], row[1], row[2], row[3])
	}
}

// DistanceAction prints the distance between two joints.
func DistanceAction(c *cli.Context) error {
	return withResolver(c, 2, func(r *kinematics.Resolver, args []string) error {
		var query func(a, b string) (float64, error)
		switch mode := c.String(flagMode); mode {
		case distanceMode3D:
			query = r.DistanceBetweenJoints
		case distanceMode2D:
			query = r.DistanceBetweenJoints2D
		case distanceModeX:
			query = r.DistanceBetweenJointsX
		case distanceModeY:
			query = r.DistanceBetweenJointsY
		default:
			return errors.Errorf("unknown distance mode %q", mode)
		}
		d, err := query(args[0], args[1])
		if err != nil {
			return err
		}
		printf(c.App.Writer, "%.6f", d)
		return nil
	})
}

// RotationAction prints the yaw between two joints in radians and degrees.
func RotationAction(c *cli.Context) error {
	return withResolver(c, 2, func(r *kinematics.Resolver, args []string) error {
		rad, err := r.RotationBetweenJoints(args[0], args[1])
		if err != nil {
			return err
		}
		printf(c.App.Writer, "%.6f rad (%.4f deg)", rad, utils.RadToDeg(rad))
		return nil
	})
}

// RadiusAction prints the radius of the geometry of a joint's child link.
func RadiusAction(c *cli.Context) error {
	return withResolver(c, 1, func(r *kinematics.Resolver, args []string) error {
		radius, err := r.JointRadius(args[0])
		if err != nil {
			return err
		}
		printf(c.App.Writer, "%.6f", radius)
		return nil
	})
}

// SteeringLimitAction prints the steering limit of a joint in radians and degrees.
func SteeringLimitAction(c *cli.Context) error {
	return withResolver(c, 1, func(r *kinematics.Resolver, args []string) error {
		limit, err := r.JointSteeringLimits(args[0])
		if err != nil {
			return err
		}
		printf(c.App.Writer, "%.6f rad (%.4f deg)", limit, utils.RadToDeg(limit))
		return nil
	})
}

// GeometryAction prints the vehicle geometry described by a config file.
func GeometryAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg, err := config.Read(c.String(flagConfig), logger)
	if err != nil {
		return err
	}
	if !c.Bool(flagDebug) {
		logger = logging.NewLogger("vehiclekin")
		logger.SetLevel(cfg.LogLevel)
	}
	defer goutils.UncheckedErrorFunc(logger.Sync)

	g, err := cfg.NewGeometry(logger)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", g.String())
	return nil
}
