package urdf

import (
	"encoding/xml"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/vehiclekin/spatialmath"
)

// geometryElem is a struct which details the XML used in a URDF collision or visual geometry.
type geometryElem struct {
	Origin   *pose `xml:"origin"`
	Geometry struct {
		XMLName  xml.Name  `xml:"geometry"`
		Box      *box      `xml:"box,omitempty"`
		Sphere   *sphere   `xml:"sphere,omitempty"`
		Cylinder *cylinder `xml:"cylinder,omitempty"`
		Mesh     *mesh     `xml:"mesh,omitempty"`
	} `xml:"geometry"`
	Name string `xml:"name,attr,omitempty"`
}

type box struct {
	XMLName xml.Name `xml:"box"`
	Size    string   `xml:"size,attr"` // "x y z" format, in meters
}

type sphere struct {
	XMLName xml.Name `xml:"sphere"`
	Radius  float64  `xml:"radius,attr"` // in meters
}

type cylinder struct {
	XMLName xml.Name `xml:"cylinder"`
	Radius  float64  `xml:"radius,attr"` // in meters
	Length  float64  `xml:"length,attr"` // in meters
}

type mesh struct {
	XMLName  xml.Name `xml:"mesh"`
	Filename string   `xml:"filename,attr"`
}

func (g *geometryElem) toConfig() (spatialmath.GeometryConfig, error) {
	origin, err := g.Origin.parse()
	if err != nil {
		return spatialmath.GeometryConfig{}, err
	}
	cfg := spatialmath.GeometryConfig{Origin: origin, Label: g.Name}
	switch {
	case g.Geometry.Box != nil:
		dims, err := parseTriple(g.Geometry.Box.Size, "box size")
		if err != nil {
			return spatialmath.GeometryConfig{}, err
		}
		cfg.Type = spatialmath.BoxType
		cfg.X, cfg.Y, cfg.Z = dims.X, dims.Y, dims.Z
	case g.Geometry.Sphere != nil:
		cfg.Type = spatialmath.SphereType
		cfg.R = g.Geometry.Sphere.Radius
	case g.Geometry.Cylinder != nil:
		cfg.Type = spatialmath.CylinderType
		cfg.R = g.Geometry.Cylinder.Radius
		cfg.L = g.Geometry.Cylinder.Length
	case g.Geometry.Mesh != nil:
		cfg.Type = spatialmath.MeshType
		cfg.Filename = g.Geometry.Mesh.Filename
	default:
		return spatialmath.GeometryConfig{}, errors.New("couldn't parse xml: no geometry defined")
	}
	if err := cfg.Validate(); err != nil {
		return spatialmath.GeometryConfig{}, err
	}
	return cfg, nil
}

type frame struct {
	Link string `xml:"link,attr"`
}

type limit struct {
	XMLName xml.Name `xml:"limit"`
	Lower   float64  `xml:"lower,attr"` // translation limits are in meters, revolute limits are in radians
	Upper   float64  `xml:"upper,attr"` // translation limits are in meters, revolute limits are in radians
}

type axis struct {
	XMLName xml.Name `xml:"axis"`
	XYZ     string   `xml:"xyz,attr"` // "x y z" format
}

// parse returns the normalized joint axis. A missing axis element means the x axis.
func (a *axis) parse() (r3.Vector, error) {
	if a == nil {
		return r3.Vector{X: 1}, nil
	}
	v, err := parseTriple(a.XYZ, "axis xyz")
	if err != nil {
		return r3.Vector{}, err
	}
	if v.Norm() < 1e-9 {
		return r3.Vector{}, errors.New("joint axis must not be the zero vector")
	}
	return v.Normalize(), nil
}

type pose struct {
	XMLName xml.Name `xml:"origin"`
	RPY     string   `xml:"rpy,attr"` // Fixed frame angle "r p y" format, in radians
	XYZ     string   `xml:"xyz,attr"` // "x y z" format, in meters
}

// parse returns the pose of an origin element. A missing origin element or attribute means zero.
func (p *pose) parse() (spatialmath.Pose, error) {
	if p == nil {
		return spatialmath.NewZeroPose(), nil
	}
	xyz, err := parseTriple(p.XYZ, "origin xyz")
	if err != nil {
		return nil, err
	}
	rpy, err := parseTriple(p.RPY, "origin rpy")
	if err != nil {
		return nil, err
	}
	return spatialmath.NewPose(xyz, &spatialmath.EulerAngles{Roll: rpy.X, Pitch: rpy.Y, Yaw: rpy.Z}), nil
}

// parseTriple reads a space delimited "x y z" attribute. The empty string is the zero vector.
func parseTriple(s, what string) (r3.Vector, error) {
	vals := spatialmath.SpaceDelimitedStringToSlice(s)
	if len(vals) == 0 {
		return r3.Vector{}, nil
	}
	if len(vals) != 3 {
		return r3.Vector{}, errors.Errorf("%s must have 3 values, got %q", what, s)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return r3.Vector{}, errors.Errorf("%s has a non numeric value: %q", what, s)
		}
	}
	return r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
