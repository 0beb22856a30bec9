package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{Real: math.Cos(th / 2.), Imag: math.Sin(th / 2.)} // in quaternion representation
	aa45x = &R4AA{th, 1., 0., 0.}                                        // in axis-angle representation
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}                     // in euler angle representation
)

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.AxisAngles(), test.ShouldResemble, NewR4AA())
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{1, 0, 0, 0})
	test.That(t, zero.EulerAngles(), test.ShouldResemble, NewEulerAngles())
}

func TestQuaternions(t *testing.T) {
	qq45x := quaternion(q45x)
	test.That(t, qq45x.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, qq45x.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, qq45x.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, qq45x.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, qq45x.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, qq45x.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, qq45x.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, qq45x.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, qq45x.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, qq45x.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, qq45x.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
}

func TestEulerAngles(t *testing.T) {
	test.That(t, ea45x.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, ea45x.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, ea45x.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, ea45x.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, ea45x.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, ea45x.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, ea45x.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, ea45x.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)

	t.Run("round trip", func(t *testing.T) {
		ea := &EulerAngles{Roll: 0.1, Pitch: -0.4, Yaw: 2.5}
		back := QuatToEulerAngles(ea.Quaternion())
		test.That(t, back.Roll, test.ShouldAlmostEqual, ea.Roll)
		test.That(t, back.Pitch, test.ShouldAlmostEqual, ea.Pitch)
		test.That(t, back.Yaw, test.ShouldAlmostEqual, ea.Yaw)
	})

	t.Run("gimbal lock clamps pitch", func(t *testing.T) {
		ea := &EulerAngles{Pitch: math.Pi / 2}
		test.That(t, QuatToEulerAngles(ea.Quaternion()).Pitch, test.ShouldAlmostEqual, math.Pi/2, 1e-6)
	})
}

func TestAxisAngles(t *testing.T) {
	test.That(t, aa45x.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, aa45x.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, aa45x.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, aa45x.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, aa45x.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, aa45x.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, aa45x.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	test.That(t, aa45x.ToR3().X, test.ShouldAlmostEqual, th)

	// an unnormalized axis describes the same rotation
	aa := &R4AA{Theta: th, RX: 3}
	test.That(t, QuaternionAlmostEqual(aa.ToQuat(), q45x, 1e-9), test.ShouldBeTrue)
}

func TestQuaternionAlmostEqual(t *testing.T) {
	test.That(t, QuaternionAlmostEqual(q45x, Flip(q45x), 1e-9), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(q45x, quat.Number{Real: 1}, 1e-9), test.ShouldBeFalse)
	test.That(t, OrientationAlmostEqual(NewOrientationFromQuaternion(quat.Scale(3, q45x)), aa45x), test.ShouldBeTrue)
	test.That(t, NewOrientationFromQuaternion(quat.Number{}).Quaternion(), test.ShouldResemble, quat.Number{Real: 1})
}
