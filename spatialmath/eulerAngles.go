package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are three angles (in radians) used to represent the rotation of an object in 3D Euclidean space.
// They follow the fixed-axis roll/pitch/yaw convention of robot descriptions: the rotation is applied
// about X by Roll, then about the fixed Y by Pitch, then about the fixed Z by Yaw, i.e. R = Rz(yaw)·Ry(pitch)·Rx(roll).
type EulerAngles struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns orientation in quaternion representation.
func (ea *EulerAngles) Quaternion() quat.Number {
	cy := math.Cos(ea.Yaw * 0.5)
	sy := math.Sin(ea.Yaw * 0.5)
	cp := math.Cos(ea.Pitch * 0.5)
	sp := math.Sin(ea.Pitch * 0.5)
	cr := math.Cos(ea.Roll * 0.5)
	sr := math.Sin(ea.Roll * 0.5)

	q := quat.Number{}
	q.Real = cr*cp*cy + sr*sp*sy
	q.Imag = sr*cp*cy - cr*sp*sy
	q.Jmag = cr*sp*cy + sr*cp*sy
	q.Kmag = cr*cp*sy - sr*sp*cy

	return q
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// QuatToEulerAngles converts a quaternion to the euler angle representation. Algorithm from Wikipedia.
// https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles#Quaternion_to_Euler_angles_conversion
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	var angles EulerAngles

	// roll (x-axis rotation)
	sinrCosp := 2 * (q.Real*q.Imag + q.Jmag*q.Kmag)
	cosrCosp := 1 - 2*(q.Imag*q.Imag+q.Jmag*q.Jmag)
	angles.Roll = math.Atan2(sinrCosp, cosrCosp)

	// pitch (y-axis rotation)
	sinp := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	if math.Abs(sinp) >= 1 {
		angles.Pitch = math.Copysign(math.Pi/2., sinp) // use 90 degrees if out of range
	} else {
		angles.Pitch = math.Asin(sinp)
	}

	// yaw (z-axis rotation)
	sinyCosp := 2 * (q.Real*q.Kmag + q.Imag*q.Jmag)
	cosyCosp := 1 - 2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag)
	angles.Yaw = math.Atan2(sinyCosp, cosyCosp)

	return &angles
}
