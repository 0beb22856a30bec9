// Package kinematics extracts static geometric quantities from a robot description:
// offsets of joints relative to their ancestor links, distances and rotations between joints,
// wheel radii and steering limits.
package kinematics

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/vehiclekin/logging"
	"go.viam.com/vehiclekin/referenceframe"
	"go.viam.com/vehiclekin/referenceframe/urdf"
	"go.viam.com/vehiclekin/spatialmath"
	"go.viam.com/vehiclekin/utils"
)

// symmetryTolerance bounds |upper + lower| for a steering joint to be considered symmetric.
const symmetryTolerance = 1e-9

// A Resolver answers kinematic queries about a description model relative to a base link.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	model    *referenceframe.Model
	baseLink string
	logger   logging.Logger
}

// NewResolver returns a resolver over the given model whose multi-joint queries are expressed in baseLink.
func NewResolver(model *referenceframe.Model, baseLink string, logger logging.Logger) (*Resolver, error) {
	if model == nil {
		return nil, ErrModelUnavailable
	}
	if _, ok := model.Link(baseLink); !ok {
		return nil, NewLinkNotFoundError(baseLink)
	}
	if logger == nil {
		logger = logging.NewBlankLogger("kinematics")
	}
	logger.Debugw("kinematic resolver ready", "model", model.Name(), "root", model.Root(), "base_link", baseLink)
	return &Resolver{model: model, baseLink: baseLink, logger: logger}, nil
}

// NewResolverFromURDF parses a URDF document and returns a resolver over it.
func NewResolverFromURDF(xmlData []byte, baseLink string, logger logging.Logger) (*Resolver, error) {
	model, err := urdf.UnmarshalModelXML(xmlData, "")
	if err != nil {
		return nil, errors.Wrapf(ErrModelUnavailable, "%v", err)
	}
	return NewResolver(model, baseLink, logger)
}

// NewResolverFromFile reads and parses a URDF file and returns a resolver over it.
func NewResolverFromFile(path, baseLink string, logger logging.Logger) (*Resolver, error) {
	model, err := urdf.ParseModelXMLFile(path, "")
	if err != nil {
		return nil, errors.Wrapf(ErrModelUnavailable, "%v", err)
	}
	return NewResolver(model, baseLink, logger)
}

// BaseLink returns the link multi-joint queries are expressed in.
func (r *Resolver) BaseLink() string {
	return r.baseLink
}

// Model returns the description model the resolver walks.
func (r *Resolver) Model() *referenceframe.Model {
	return r.model
}

// Transform returns the pose of a joint expressed in the frame of one of its ancestor links.
// The joint's own origin is always part of the chain, so parentLinkName must be the joint's
// parent link or an ancestor of it.
func (r *Resolver) Transform(jointName, parentLinkName string) (spatialmath.Pose, error) {
	joint, ok := r.model.Joint(jointName)
	if !ok {
		return nil, NewJointNotFoundError(jointName)
	}
	if _, ok := r.model.Link(parentLinkName); !ok {
		return nil, NewLinkNotFoundError(parentLinkName)
	}

	pose := joint.Origin
	current := joint.Parent
	for current != parentLinkName {
		link, _ := r.model.Link(current)
		if link.ParentJoint == "" {
			return nil, NewDisconnectedChainError(jointName, parentLinkName)
		}
		parent, _ := r.model.Joint(link.ParentJoint)
		pose = spatialmath.Compose(parent.Origin, pose)
		current = parent.Parent
	}
	return pose, nil
}

// TransformVector returns the translation from parentLinkName to the joint, expressed in parentLinkName.
func (r *Resolver) TransformVector(jointName, parentLinkName string) (r3.Vector, error) {
	pose, err := r.Transform(jointName, parentLinkName)
	if err != nil {
		return r3.Vector{}, err
	}
	return pose.Point(), nil
}

// TransformRotation returns the orientation of the joint frame relative to parentLinkName.
func (r *Resolver) TransformRotation(jointName, parentLinkName string) (spatialmath.Orientation, error) {
	pose, err := r.Transform(jointName, parentLinkName)
	if err != nil {
		return nil, err
	}
	return pose.Orientation(), nil
}

// Pose returns the pose of the joint expressed in the base link.
func (r *Resolver) Pose(jointName string) (spatialmath.Pose, error) {
	return r.Transform(jointName, r.baseLink)
}

// PoseBetweenJoints returns the pose of jointB expressed in the frame of jointA.
func (r *Resolver) PoseBetweenJoints(jointA, jointB string) (spatialmath.Pose, error) {
	a, err := r.Pose(jointA)
	if err != nil {
		return nil, err
	}
	b, err := r.Pose(jointB)
	if err != nil {
		return nil, err
	}
	return spatialmath.PoseBetween(a, b), nil
}

// positionDelta returns pos(a) - pos(b), both expressed in the base link.
func (r *Resolver) positionDelta(jointA, jointB string) (r3.Vector, error) {
	a, err := r.TransformVector(jointA, r.baseLink)
	if err != nil {
		return r3.Vector{}, err
	}
	b, err := r.TransformVector(jointB, r.baseLink)
	if err != nil {
		return r3.Vector{}, err
	}
	return a.Sub(b), nil
}

// DistanceBetweenJoints returns the euclidean distance between two joints.
func (r *Resolver) DistanceBetweenJoints(jointA, jointB string) (float64, error) {
	d, err := r.positionDelta(jointA, jointB)
	if err != nil {
		return 0, err
	}
	return d.Norm(), nil
}

// DistanceBetweenJoints2D returns the distance between two joints projected on the x-y plane of the base link.
func (r *Resolver) DistanceBetweenJoints2D(jointA, jointB string) (float64, error) {
	d, err := r.positionDelta(jointA, jointB)
	if err != nil {
		return 0, err
	}
	return math.Hypot(d.X, d.Y), nil
}

// DistanceBetweenJointsX returns the signed x offset of jointA from jointB in the base link.
func (r *Resolver) DistanceBetweenJointsX(jointA, jointB string) (float64, error) {
	d, err := r.positionDelta(jointA, jointB)
	if err != nil {
		return 0, err
	}
	return d.X, nil
}

// DistanceBetweenJointsY returns the signed y offset of jointA from jointB in the base link.
func (r *Resolver) DistanceBetweenJointsY(jointA, jointB string) (float64, error) {
	d, err := r.positionDelta(jointA, jointB)
	if err != nil {
		return 0, err
	}
	return d.Y, nil
}

// RotationBetweenJoints returns yaw(jointA) - yaw(jointB) in radians, both measured in the base link,
// wrapped to (-pi, pi].
func (r *Resolver) RotationBetweenJoints(jointA, jointB string) (float64, error) {
	a, err := r.TransformRotation(jointA, r.baseLink)
	if err != nil {
		return 0, err
	}
	b, err := r.TransformRotation(jointB, r.baseLink)
	if err != nil {
		return 0, err
	}
	return utils.WrapRad(a.EulerAngles().Yaw - b.EulerAngles().Yaw), nil
}

// JointRadius returns the radius of the first cylinder or sphere collision geometry of the joint's child link.
// Visual geometries are used when no collision geometry has a radius.
func (r *Resolver) JointRadius(jointName string) (float64, error) {
	joint, ok := r.model.Joint(jointName)
	if !ok {
		return 0, NewJointNotFoundError(jointName)
	}
	link, _ := r.model.Link(joint.Child)
	for _, geometries := range [][]spatialmath.GeometryConfig{link.Collisions, link.Visuals} {
		for _, g := range geometries {
			if radius, ok := g.Radius(); ok {
				return radius, nil
			}
		}
	}
	return 0, NewNoRadiusError(jointName, joint.Child)
}

// JointSteeringLimits returns the largest steering angle of a joint whose limits are symmetric around zero.
func (r *Resolver) JointSteeringLimits(jointName string) (float64, error) {
	joint, ok := r.model.Joint(jointName)
	if !ok {
		return 0, NewJointNotFoundError(jointName)
	}
	if !joint.Type.Bounded() || joint.Limit == nil {
		return 0, NewNotBoundedError(jointName, string(joint.Type))
	}
	lower, upper := joint.Limit.Lower, joint.Limit.Upper
	if math.Abs(upper+lower) > symmetryTolerance {
		return 0, NewAsymmetricLimitsError(jointName, lower, upper)
	}
	r.logger.Debugw("steering limit", "joint", jointName, "limit_deg", utils.RadToDeg(upper))
	return upper, nil
}
