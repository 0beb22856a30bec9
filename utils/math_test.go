package utils

import (
	"math"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)
}

func TestWrapRad(t *testing.T) {
	test.That(t, WrapRad(0), test.ShouldEqual, 0.0)
	test.That(t, WrapRad(math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, WrapRad(-math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, WrapRad(3*math.Pi/2), test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, WrapRad(-3*math.Pi/2), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, WrapRad(5*math.Pi+0.25), test.ShouldAlmostEqual, -math.Pi+0.25)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1, 1+1e-9, 1e-6), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.1, 1e-6), test.ShouldBeFalse)
}

func TestResolvePathFrom(t *testing.T) {
	test.That(t, ResolvePathFrom("/etc/vehicle/config.json", "robot.urdf"), test.ShouldEqual, "/etc/vehicle/robot.urdf")
	test.That(t, ResolvePathFrom("/etc/vehicle/config.json", "/opt/robot.urdf"), test.ShouldEqual, "/opt/robot.urdf")
	test.That(t, ResolvePathFrom("", "a/../robot.urdf"), test.ShouldEqual, "robot.urdf")
	test.That(t, filepath.IsAbs(ResolveFile("referenceframe/testurdf/vehicle.urdf")), test.ShouldBeTrue)
}
