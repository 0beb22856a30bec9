package referenceframe

import "github.com/pkg/errors"

// ErrNoModelInformation is used when there is no model information.
var ErrNoModelInformation = errors.New("no model information")

// ErrInvalidTopology is wrapped by every error describing a link/joint tree that cannot be walked.
var ErrInvalidTopology = errors.New("invalid kinematic tree")

// NewUnsupportedJointTypeError returns an error indicating that a given joint type is not supported.
func NewUnsupportedJointTypeError(jointType string) error {
	return errors.Errorf("unsupported joint type detected: %q", jointType)
}

// NewDuplicateNameError returns an error indicating that a link or joint name is used more than once.
func NewDuplicateNameError(kind, name string) error {
	return errors.Wrapf(ErrInvalidTopology, "%s name %q is used more than once", kind, name)
}

// NewMissingLinkError returns an error indicating that a joint references a link absent from the model.
func NewMissingLinkError(jointName, linkName string) error {
	return errors.Wrapf(ErrInvalidTopology, "joint %q references link %q which is not in the model", jointName, linkName)
}

// NewMultipleParentsError returns an error indicating that a link is the child of more than one joint.
func NewMultipleParentsError(linkName string, joints ...string) error {
	return errors.Wrapf(ErrInvalidTopology, "link %q is the child of more than one joint %v", linkName, joints)
}

// NewRootError returns an error indicating that the tree does not have exactly one root link.
func NewRootError(roots []string) error {
	if len(roots) == 0 {
		return errors.Wrap(ErrInvalidTopology, "no root link found")
	}
	return errors.Wrapf(ErrInvalidTopology, "expected a single root link, found %d: %v", len(roots), roots)
}

// NewCycleError returns an error indicating that joints connect the given links in a cycle.
func NewCycleError(linkNames []string) error {
	return errors.Wrapf(ErrInvalidTopology, "joints form a cycle through links %v", linkNames)
}

// NewInvalidLimitError returns an error indicating that a joint's lower limit is above its upper limit.
func NewInvalidLimitError(jointName string, lower, upper float64) error {
	return errors.Wrapf(ErrInvalidTopology, "joint %q lower limit %f is above upper limit %f", jointName, lower, upper)
}
