package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// Basic explanation: Imagine a 3d cartesian grid centered at 0,0,0, and a sphere of radius 1 centered at
// that same point. An orientation can be expressed by first specifying an axis, i.e. a line from the origin
// to a point on that sphere, represented by (rx, ry, rz), and a rotation around that axis, theta.

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates an empty R4AA struct.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// AxisAngles returns the orientation in axis angle representation.
func (r4 *R4AA) AxisAngles() *R4AA {
	return r4
}

// Quaternion returns orientation in quaternion representation.
func (r4 *R4AA) Quaternion() quat.Number {
	return r4.ToQuat()
}

// EulerAngles returns orientation in Euler angle representation.
func (r4 *R4AA) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(r4.Quaternion())
}

// ToR3 converts an R4 angle axis to R3.
func (r4 *R4AA) ToR3() r3.Vector {
	return r3.Vector{X: r4.RX * r4.Theta, Y: r4.RY * r4.Theta, Z: r4.RZ * r4.Theta}
}

// ToQuat converts an R4 axis angle to a unit quaternion.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 *R4AA) ToQuat() quat.Number {
	if r4.Theta == 0 {
		return quat.Number{Real: 1}
	}
	axis := r3.Vector{X: r4.RX, Y: r4.RY, Z: r4.RZ}
	if axis.Norm() < 1e-12 {
		return quat.Number{Real: 1}
	}
	axis = axis.Normalize()
	sinA := math.Sin(r4.Theta / 2)
	return quat.Number{Real: math.Cos(r4.Theta / 2), Imag: axis.X * sinA, Jmag: axis.Y * sinA, Kmag: axis.Z * sinA}
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) *R4AA {
	denom := Norm(q)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return &R4AA{Theta: angle, RX: 0, RY: 0, RZ: 1}
	}
	return &R4AA{Theta: angle, RX: q.Imag / denom, RY: q.Jmag / denom, RZ: q.Kmag / denom}
}
