package kinematics

import (
	"github.com/pkg/errors"
)

var (
	// ErrModelUnavailable is returned when no usable description model could be obtained.
	ErrModelUnavailable = errors.New("robot description model unavailable")
	// ErrNotFound is returned when a named joint or link does not exist in the model.
	ErrNotFound = errors.New("not found")
	// ErrDisconnectedChain is returned when the requested ancestor link is not reached walking up from a joint.
	ErrDisconnectedChain = errors.New("disconnected kinematic chain")
	// ErrMissingAttribute is returned when a link or joint lacks the data a query needs.
	ErrMissingAttribute = errors.New("missing attribute")
	// ErrNotBounded is returned when a joint has no lower and upper limits.
	ErrNotBounded = errors.New("joint is not bounded")
	// ErrAsymmetricLimits is returned when a steering joint's limits are not centered on zero.
	ErrAsymmetricLimits = errors.New("joint limits are not symmetric")
)

// NewJointNotFoundError returns an error for a joint missing from the model.
func NewJointNotFoundError(name string) error {
	return errors.Wrapf(ErrNotFound, "joint %q", name)
}

// NewLinkNotFoundError returns an error for a link missing from the model.
func NewLinkNotFoundError(name string) error {
	return errors.Wrapf(ErrNotFound, "link %q", name)
}

// NewDisconnectedChainError returns an error for a walk from a joint that ran off the root
// without meeting the given link.
func NewDisconnectedChainError(jointName, linkName string) error {
	return errors.Wrapf(ErrDisconnectedChain, "link %q is not an ancestor of joint %q", linkName, jointName)
}

// NewNoRadiusError returns an error for a link without cylinder or sphere geometry.
func NewNoRadiusError(jointName, linkName string) error {
	return errors.Wrapf(ErrMissingAttribute,
		"child link %q of joint %q has no cylinder or sphere collision or visual geometry", linkName, jointName)
}

// NewNotBoundedError returns an error for a joint that carries no limits.
func NewNotBoundedError(jointName string, jointType string) error {
	return errors.Wrapf(ErrNotBounded, "%s joint %q has no limits", jointType, jointName)
}

// NewAsymmetricLimitsError returns an error for a joint whose lower limit is not the negated upper limit.
func NewAsymmetricLimitsError(jointName string, lower, upper float64) error {
	return errors.Wrapf(ErrAsymmetricLimits, "joint %q has limits [%v, %v]", jointName, lower, upper)
}
