package spatialmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestNewPose(t *testing.T) {
	p := NewPose(r3.Vector{X: 1, Y: 2, Z: 3}, &EulerAngles{Yaw: math.Pi / 2})
	test.That(t, R3VectorAlmostEqual(p.Point(), r3.Vector{X: 1, Y: 2, Z: 3}, 1e-9), test.ShouldBeTrue)
	test.That(t, p.Orientation().EulerAngles().Yaw, test.ShouldAlmostEqual, math.Pi/2)

	zero := NewZeroPose()
	test.That(t, zero.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, OrientationAlmostEqual(zero.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)

	test.That(t, NewPoseFromPoint(r3.Vector{X: 4}).Point().X, test.ShouldAlmostEqual, 4)
	test.That(t, NewPoseFromOrientation(ea45x).Point(), test.ShouldResemble, r3.Vector{})
}

func TestCompose(t *testing.T) {
	// parent translated along x and yawed 90 degrees; child translated along its own x
	parent := NewPose(r3.Vector{X: 1}, &EulerAngles{Yaw: math.Pi / 2})
	child := NewPoseFromPoint(r3.Vector{X: 2})

	composed := Compose(parent, child)
	test.That(t, R3VectorAlmostEqual(composed.Point(), r3.Vector{X: 1, Y: 2}, 1e-9), test.ShouldBeTrue)
	test.That(t, composed.Orientation().EulerAngles().Yaw, test.ShouldAlmostEqual, math.Pi/2)

	// the other order applies the rotation to nothing and just sums translations
	reversed := Compose(child, parent)
	test.That(t, R3VectorAlmostEqual(reversed.Point(), r3.Vector{X: 3}, 1e-9), test.ShouldBeTrue)
	test.That(t, PoseAlmostEqual(composed, reversed), test.ShouldBeFalse)

	identity := Compose(NewZeroPose(), parent)
	test.That(t, PoseAlmostEqual(identity, parent), test.ShouldBeTrue)
}

func TestPoseInverse(t *testing.T) {
	p := NewPose(r3.Vector{X: 1, Y: -2, Z: 0.5}, &EulerAngles{Roll: 0.3, Pitch: 0.2, Yaw: -1.1})
	test.That(t, PoseAlmostEqual(Compose(p, PoseInverse(p)), NewZeroPose()), test.ShouldBeTrue)
	test.That(t, PoseAlmostEqual(Compose(PoseInverse(p), p), NewZeroPose()), test.ShouldBeTrue)

	other := NewPose(r3.Vector{X: 3}, &EulerAngles{Yaw: 0.4})
	test.That(t, PoseAlmostEqual(Compose(p, PoseBetween(p, other)), other), test.ShouldBeTrue)
}

func TestPoseToMatrix(t *testing.T) {
	ea := &EulerAngles{Roll: 0.3, Pitch: -0.2, Yaw: 1.2}
	p := NewPose(r3.Vector{X: 1, Y: 2, Z: 3}, ea)

	expected := mgl64.Translate3D(1, 2, 3).
		Mul4(mgl64.HomogRotate3DZ(ea.Yaw)).
		Mul4(mgl64.HomogRotate3DY(ea.Pitch)).
		Mul4(mgl64.HomogRotate3DX(ea.Roll))
	test.That(t, PoseToMatrix(p).ApproxEqualThreshold(expected, 1e-9), test.ShouldBeTrue)

	inv := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.HomogRotate3DZ(ea.Yaw)).Inv()
	test.That(t, PoseToMatrix(PoseInverse(NewPose(r3.Vector{X: 1, Y: 2, Z: 3}, &EulerAngles{Yaw: ea.Yaw}))).ApproxEqualThreshold(inv, 1e-9),
		test.ShouldBeTrue)
}
