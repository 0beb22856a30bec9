// Package urdf reads robot descriptions in the Universal Robot Description Format into a
// referenceframe.Model.
package urdf

import (
	"encoding/xml"
	"os"

	"github.com/pkg/errors"

	"go.viam.com/vehiclekin/referenceframe"
)

// ModelConfig represents all supported fields in a Universal Robot Description Format (URDF) file.
type ModelConfig struct {
	XMLName xml.Name `xml:"robot"`
	Name    string   `xml:"name,attr"`
	Links   []link   `xml:"link"`
	Joints  []joint  `xml:"joint"`
}

// link is a struct which details the XML used in a URDF link element.
type link struct {
	XMLName   xml.Name       `xml:"link"`
	Name      string         `xml:"name,attr"`
	Collision []geometryElem `xml:"collision"`
	Visual    []geometryElem `xml:"visual"`
}

// joint is a struct which details the XML used in a URDF joint element.
type joint struct {
	XMLName xml.Name `xml:"joint"`
	Name    string   `xml:"name,attr"`
	Type    string   `xml:"type,attr"`
	Parent  frame    `xml:"parent"`
	Child   frame    `xml:"child"`
	Origin  *pose    `xml:"origin,omitempty"`
	Axis    *axis    `xml:"axis,omitempty"`
	Limit   *limit   `xml:"limit,omitempty"`
}

// UnmarshalModelXML will transfer the given URDF XML data into an equivalent Model.
// If modelName is empty the name attribute of the robot element is used.
func UnmarshalModelXML(xmlData []byte, modelName string) (*referenceframe.Model, error) {
	// empty data probably means that the read URDF has no actionable information
	if len(xmlData) == 0 {
		return nil, referenceframe.ErrNoModelInformation
	}

	urdf := &ModelConfig{}
	if err := xml.Unmarshal(xmlData, urdf); err != nil {
		return nil, errors.Wrap(err, "failed to convert URDF data to equivalent URDFConfig struct")
	}

	// Use default name if none is provided
	if modelName == "" {
		modelName = urdf.Name
	}

	links := make([]referenceframe.Link, 0, len(urdf.Links))
	for _, linkElem := range urdf.Links {
		l := referenceframe.Link{Name: linkElem.Name}
		for i := range linkElem.Collision {
			geo, err := linkElem.Collision[i].toConfig()
			if err != nil {
				return nil, errors.Wrapf(err, "link %q collision %d", linkElem.Name, i)
			}
			l.Collisions = append(l.Collisions, geo)
		}
		for i := range linkElem.Visual {
			geo, err := linkElem.Visual[i].toConfig()
			if err != nil {
				return nil, errors.Wrapf(err, "link %q visual %d", linkElem.Name, i)
			}
			l.Visuals = append(l.Visuals, geo)
		}
		links = append(links, l)
	}

	joints := make([]referenceframe.Joint, 0, len(urdf.Joints))
	for _, jointElem := range urdf.Joints {
		jointType, err := referenceframe.ParseJointType(jointElem.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "joint %q", jointElem.Name)
		}
		origin, err := jointElem.Origin.parse()
		if err != nil {
			return nil, errors.Wrapf(err, "joint %q", jointElem.Name)
		}
		thisJoint := referenceframe.Joint{
			Name:   jointElem.Name,
			Type:   jointType,
			Parent: jointElem.Parent.Link,
			Child:  jointElem.Child.Link,
			Origin: origin,
		}

		// Slightly different axis and limits handling for each joint type
		//nolint:exhaustive
		switch jointType {
		case referenceframe.RevoluteJoint, referenceframe.PrismaticJoint:
			if jointElem.Limit != nil {
				if jointElem.Limit.Lower > jointElem.Limit.Upper {
					return nil, referenceframe.NewInvalidLimitError(jointElem.Name, jointElem.Limit.Lower, jointElem.Limit.Upper)
				}
				thisJoint.Limit = &referenceframe.Limit{Lower: jointElem.Limit.Lower, Upper: jointElem.Limit.Upper}
			}
			fallthrough
		case referenceframe.ContinuousJoint, referenceframe.PlanarJoint:
			// a continuous joint only carries velocity and effort limits, its position is unbounded
			jointAxis, err := jointElem.Axis.parse()
			if err != nil {
				return nil, errors.Wrapf(err, "joint %q", jointElem.Name)
			}
			thisJoint.Axis = &jointAxis
		}
		joints = append(joints, thisJoint)
	}

	return referenceframe.NewModel(modelName, links, joints)
}

// ParseModelXMLFile will read a given file and parse the contained URDF XML data into an equivalent Model.
func ParseModelXMLFile(filename, modelName string) (*referenceframe.Model, error) {
	//nolint:gosec
	xmlData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read URDF file")
	}

	return UnmarshalModelXML(xmlData, modelName)
}
