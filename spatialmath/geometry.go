package spatialmath

import (
	"fmt"

	"github.com/pkg/errors"
)

// GeometryType defines what geometry creator representations are known.
type GeometryType string

// The set of allowed representations for geometry.
const (
	UnknownType  = GeometryType("")
	BoxType      = GeometryType("box")
	SphereType   = GeometryType("sphere")
	CylinderType = GeometryType("cylinder")
	MeshType     = GeometryType("mesh")
)

// GeometryConfig specifies the shape and placement of a collision or visual geometry attached to a link.
// All dimensions are in meters.
type GeometryConfig struct {
	Type GeometryType `json:"type"`

	// parameters used for defining a box's rectangular cross-section
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	Z float64 `json:"z,omitempty"`

	// parameters used for defining a sphere or cylinder
	R float64 `json:"r,omitempty"`

	// parameters used for defining a cylinder
	L float64 `json:"l,omitempty"`

	// Filename of a mesh geometry, kept verbatim
	Filename string `json:"filename,omitempty"`

	// Origin of the geometry relative to the link frame
	Origin Pose `json:"-"`

	Label string `json:"label,omitempty"`
}

var errGeometryTypeUnsupported = errors.New("unsupported Geometry type")

// Validate checks that the dimensions of the geometry make sense for its type.
func (config *GeometryConfig) Validate() error {
	switch config.Type {
	case BoxType:
		if config.X <= 0 || config.Y <= 0 || config.Z <= 0 {
			return errors.Errorf("box dimensions must be positive, got %.3f %.3f %.3f", config.X, config.Y, config.Z)
		}
	case SphereType:
		if config.R <= 0 {
			return errors.Errorf("sphere radius must be positive, got %.3f", config.R)
		}
	case CylinderType:
		if config.R <= 0 || config.L <= 0 {
			return errors.Errorf("cylinder radius and length must be positive, got %.3f %.3f", config.R, config.L)
		}
	case MeshType:
		if config.Filename == "" {
			return errors.New("mesh geometry requires a filename")
		}
	case UnknownType:
		return errors.Wrap(errGeometryTypeUnsupported, "no geometry type given")
	default:
		return errors.Wrapf(errGeometryTypeUnsupported, "%q", string(config.Type))
	}
	return nil
}

// Radius returns the radius of round geometries. Boxes and meshes have no radius.
func (config GeometryConfig) Radius() (float64, bool) {
	//nolint:exhaustive
	switch config.Type {
	case SphereType, CylinderType:
		return config.R, true
	default:
		return 0, false
	}
}

// String returns a short human readable description of the geometry.
func (config GeometryConfig) String() string {
	//nolint:exhaustive
	switch config.Type {
	case BoxType:
		return fmt.Sprintf("box X:%.3f, Y:%.3f, Z:%.3f", config.X, config.Y, config.Z)
	case SphereType:
		return fmt.Sprintf("sphere R:%.3f", config.R)
	case CylinderType:
		return fmt.Sprintf("cylinder R:%.3f, L:%.3f", config.R, config.L)
	case MeshType:
		return fmt.Sprintf("mesh %s", config.Filename)
	default:
		return string(config.Type)
	}
}
