package spatialmath

import "github.com/go-gl/mathgl/mgl64"

// PoseToMatrix returns the 4x4 homogeneous transformation matrix of a pose.
func PoseToMatrix(p Pose) mgl64.Mat4 {
	q := Normalize(p.Orientation().Quaternion())
	rot := mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}.Mat4()
	pt := p.Point()
	return mgl64.Translate3D(pt.X, pt.Y, pt.Z).Mul4(rot)
}
