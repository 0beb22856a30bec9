package vehicle

import (
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"go.viam.com/vehiclekin/kinematics"
	"go.viam.com/vehiclekin/logging"
	"go.viam.com/vehiclekin/utils"
)

// radiusTolerance is how far apart the radii of the wheels of one axle may be before a warning is logged.
const radiusTolerance = 1e-6

// Geometry holds the static dimensions of a vehicle, in meters and radians.
// Steering limits and the hinge offset are zero for axles without steering joints.
type Geometry struct {
	WheelBase  float64
	FrontTrack float64
	RearTrack  float64

	FrontWheelRadius float64
	RearWheelRadius  float64

	FrontSteeringLimit float64
	RearSteeringLimit  float64

	// SteeringHingeOffset is the planar distance from the front left steering axis to its wheel.
	SteeringHingeOffset float64
}

// NewGeometry measures the vehicle described by cfg. All distances are taken in the resolver's base link.
func NewGeometry(resolver *kinematics.Resolver, cfg Config, logger logging.Logger) (*Geometry, error) {
	if err := cfg.Validate("vehicle"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("vehicle")
	}
	var g Geometry

	wheelBase, err := resolver.DistanceBetweenJointsX(cfg.FrontLeftWheel, cfg.RearLeftWheel)
	if err != nil {
		return nil, errors.Wrap(err, "wheel base")
	}
	g.WheelBase = math.Abs(wheelBase)

	if g.FrontTrack, err = track(resolver, cfg.FrontLeftWheel, cfg.FrontRightWheel); err != nil {
		return nil, errors.Wrap(err, "front track")
	}
	if g.RearTrack, err = track(resolver, cfg.RearLeftWheel, cfg.RearRightWheel); err != nil {
		return nil, errors.Wrap(err, "rear track")
	}

	if g.FrontWheelRadius, err = axleRadius(resolver, cfg.FrontLeftWheel, cfg.FrontRightWheel, logger); err != nil {
		return nil, errors.Wrap(err, "front wheel radius")
	}
	if g.RearWheelRadius, err = axleRadius(resolver, cfg.RearLeftWheel, cfg.RearRightWheel, logger); err != nil {
		return nil, errors.Wrap(err, "rear wheel radius")
	}

	if cfg.FrontSteered() {
		if g.FrontSteeringLimit, err = axleSteeringLimit(resolver, cfg.FrontLeftSteering, cfg.FrontRightSteering); err != nil {
			return nil, errors.Wrap(err, "front steering limit")
		}
		if g.SteeringHingeOffset, err = resolver.DistanceBetweenJoints2D(cfg.FrontLeftSteering, cfg.FrontLeftWheel); err != nil {
			return nil, errors.Wrap(err, "steering hinge offset")
		}
	}
	if cfg.RearSteered() {
		if g.RearSteeringLimit, err = axleSteeringLimit(resolver, cfg.RearLeftSteering, cfg.RearRightSteering); err != nil {
			return nil, errors.Wrap(err, "rear steering limit")
		}
	}

	logger.Debugw("vehicle geometry", "wheel_base", g.WheelBase, "front_track", g.FrontTrack, "rear_track", g.RearTrack)
	return &g, nil
}

func track(resolver *kinematics.Resolver, left, right string) (float64, error) {
	y, err := resolver.DistanceBetweenJointsY(left, right)
	if err != nil {
		return 0, err
	}
	return math.Abs(y), nil
}

func axleRadius(resolver *kinematics.Resolver, left, right string, logger logging.Logger) (float64, error) {
	l, err := resolver.JointRadius(left)
	if err != nil {
		return 0, err
	}
	r, err := resolver.JointRadius(right)
	if err != nil {
		return 0, err
	}
	if !utils.Float64AlmostEqual(l, r, radiusTolerance) {
		logger.Warnw("wheels of one axle have different radii, using the left one", "left", left, "right", right,
			"left_radius", l, "right_radius", r)
	}
	return l, nil
}

// axleSteeringLimit returns the tighter of the two steering limits.
func axleSteeringLimit(resolver *kinematics.Resolver, left, right string) (float64, error) {
	l, err := resolver.JointSteeringLimits(left)
	if err != nil {
		return 0, err
	}
	r, err := resolver.JointSteeringLimits(right)
	if err != nil {
		return 0, err
	}
	return math.Min(l, r), nil
}

// String prints out a table of the vehicle dimensions, with angles in degrees.
func (g Geometry) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Dimension", "Value"})
	t.AppendRow(table.Row{"Wheel base", fmt.Sprintf("%.3f m", g.WheelBase)})
	t.AppendRow(table.Row{"Front track", fmt.Sprintf("%.3f m", g.FrontTrack)})
	t.AppendRow(table.Row{"Rear track", fmt.Sprintf("%.3f m", g.RearTrack)})
	t.AppendRow(table.Row{"Front wheel radius", fmt.Sprintf("%.3f m", g.FrontWheelRadius)})
	t.AppendRow(table.Row{"Rear wheel radius", fmt.Sprintf("%.3f m", g.RearWheelRadius)})
	t.AppendRow(table.Row{"Front steering limit", fmt.Sprintf("%.2f deg", utils.RadToDeg(g.FrontSteeringLimit))})
	t.AppendRow(table.Row{"Rear steering limit", fmt.Sprintf("%.2f deg", utils.RadToDeg(g.RearSteeringLimit))})
	t.AppendRow(table.Row{"Steering hinge offset", fmt.Sprintf("%.3f m", g.SteeringHingeOffset)})
	return t.Render()
}
