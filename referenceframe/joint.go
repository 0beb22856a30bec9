package referenceframe

import (
	"github.com/golang/geo/r3"

	"go.viam.com/vehiclekin/spatialmath"
)

// JointType describes how a joint lets its child link move relative to its parent link.
type JointType string

// The joint types of a robot description.
const (
	FixedJoint      = JointType("fixed")
	RevoluteJoint   = JointType("revolute")
	ContinuousJoint = JointType("continuous")
	PrismaticJoint  = JointType("prismatic")
	FloatingJoint   = JointType("floating")
	PlanarJoint     = JointType("planar")
)

// ParseJointType checks that a joint type string names a known joint type.
func ParseJointType(s string) (JointType, error) {
	switch t := JointType(s); t {
	case FixedJoint, RevoluteJoint, ContinuousJoint, PrismaticJoint, FloatingJoint, PlanarJoint:
		return t, nil
	default:
		return "", NewUnsupportedJointTypeError(s)
	}
}

// Bounded reports whether joints of this type carry lower and upper limits.
func (t JointType) Bounded() bool {
	return t == RevoluteJoint || t == PrismaticJoint
}

// Limit represents the limits of motion of a joint. Translation limits are in meters,
// revolute limits are in radians.
type Limit struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Joint is a named edge connecting a parent link to a child link.
type Joint struct {
	Name   string
	Type   JointType
	Parent string
	Child  string

	// Origin is the fixed transform of the joint frame relative to the parent link frame.
	Origin spatialmath.Pose

	// Axis is the unit rotation or translation axis, nil for joints that do not move.
	Axis *r3.Vector

	// Limit is nil when the description has no limit for this joint.
	Limit *Limit
}

func (j Joint) clone() Joint {
	if j.Axis != nil {
		axis := *j.Axis
		j.Axis = &axis
	}
	if j.Limit != nil {
		limit := *j.Limit
		j.Limit = &limit
	}
	if j.Origin == nil {
		j.Origin = spatialmath.NewZeroPose()
	}
	return j
}

// Link is a rigid body node in the tree.
type Link struct {
	Name string

	// ParentJoint is empty for the root link.
	ParentJoint string
	ChildJoints []string

	Collisions []spatialmath.GeometryConfig
	Visuals    []spatialmath.GeometryConfig
}

func (l Link) clone() Link {
	l.ChildJoints = append([]string(nil), l.ChildJoints...)
	l.Collisions = append([]spatialmath.GeometryConfig(nil), l.Collisions...)
	l.Visuals = append([]spatialmath.GeometryConfig(nil), l.Visuals...)
	return l
}
