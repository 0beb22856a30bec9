// Package spatialmath defines spatial mathematical operations used to describe
// the fixed transforms of a robot description.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	AxisAngles() *R4AA
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
}

// NewZeroOrientation returns an orientatation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &quaternion{1, 0, 0, 0}
}

// NewOrientationFromQuaternion wraps a quaternion, normalizing it to unit length.
func NewOrientationFromQuaternion(q quat.Number) Orientation {
	n := quaternion(Normalize(q))
	return &n
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the same orientation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. Quaternions have double coverage,
// the scalar +/- will represent the same orientation.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	if math.Signbit(a.Real) != math.Signbit(b.Real) {
		b = Flip(b)
	}
	return math.Abs(a.Real-b.Real) < tol &&
		math.Abs(a.Imag-b.Imag) < tol &&
		math.Abs(a.Jmag-b.Jmag) < tol &&
		math.Abs(a.Kmag-b.Kmag) < tol
}

// Normalize scales a quaternion to unit length. The zero quaternion normalizes to the identity.
func Normalize(q quat.Number) quat.Number {
	l := quat.Abs(q)
	if l < 1e-12 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/l, q)
}

// Norm returns the norm of the quaternion, i.e. the sqrt of the squares of the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

type quaternion quat.Number

// AxisAngles returns the orientation in axis angle representation.
func (q *quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q.Quaternion())
}

// Quaternion returns orientation in quaternion representation.
func (q *quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// EulerAngles returns orientation in Euler angle representation.
func (q *quaternion) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(q.Quaternion())
}
