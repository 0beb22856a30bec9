package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// floatEpsilon is the tolerance used when comparing pose translations.
const floatEpsilon = 1e-6

// Pose represents a 6dof pose, position and orientation, with respect to the origin.
// The Point() method returns the position in (x,y,z) meters, and the Orientation() method returns an Orientation object.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// NewZeroPose returns a pose at (0,0,0) with same orientation as whatever frame it is placed in.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	q := newDualQuaternionFromRotation(o)
	q.SetTranslation(p)
	return q
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in.
func NewPoseFromPoint(point r3.Vector) Pose {
	return NewPose(point, nil)
}

// NewPoseFromOrientation takes in an orientation and returns a pose with no translation.
func NewPoseFromOrientation(o Orientation) Pose {
	return NewPose(r3.Vector{}, o)
}

// Compose treats Poses as functions A(x) and B(x) and produces a new function C(x) = A(B(x)).
// In a kinematic chain A is the pose of a parent frame and B the pose of its child expressed in the parent,
// so the result is the pose of the child expressed in A's reference frame.
// Rotations do not commute, so Compose(a, b) is in general different from Compose(b, a).
func Compose(a, b Pose) Pose {
	aq := newDualQuaternionFromPose(a)
	bq := newDualQuaternionFromPose(b)
	return &dualQuaternion{aq.Transformation(bq.Number)}
}

// PoseInverse returns the inverse of a pose.
func PoseInverse(p Pose) Pose {
	return newDualQuaternionFromPose(p).Invert()
}

// PoseBetween returns the difference between two Poses, expressed in the frame of a.
// Compose(a, PoseBetween(a, b)) is equal to b.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, floatEpsilon)
}

// PoseAlmostEqualEps will return a bool describing whether 2 poses are approximately the same,
// comparing translations with the given tolerance.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon) && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}
