package config

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/vehiclekin/kinematics"
	"go.viam.com/vehiclekin/logging"
	"go.viam.com/vehiclekin/utils"
)

func TestRead(t *testing.T) {
	logger := logging.NewTestLogger(t)
	cfg, err := Read(utils.ResolveFile("config/testdata/vehicle.json"), logger)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, cfg.BaseLink, test.ShouldEqual, "chassis")
	test.That(t, cfg.LogLevel, test.ShouldEqual, logging.DEBUG)
	test.That(t, cfg.DescriptionPath(), test.ShouldEqual, utils.ResolveFile("referenceframe/testurdf/vehicle.urdf"))
	test.That(t, cfg.Vehicle, test.ShouldNotBeNil)
	test.That(t, cfg.Vehicle.RearRightSteering, test.ShouldEqual, "rear_right_steering_joint")

	g, err := cfg.NewGeometry(logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.WheelBase, test.ShouldAlmostEqual, 2.0)
	test.That(t, g.FrontSteeringLimit, test.ShouldAlmostEqual, 0.6)
}

func TestReadSubstitutesEnvironment(t *testing.T) {
	t.Setenv("VEHICLEKIN_BASE_LINK", "base_footprint")
	logger := logging.NewTestLogger(t)
	cfg, err := Read(utils.ResolveFile("config/testdata/vehicle.json"), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.BaseLink, test.ShouldEqual, "base_footprint")

	r, err := cfg.NewResolver(logger)
	test.That(t, err, test.ShouldBeNil)
	v, err := r.TransformVector("front_left_wheel_joint", r.BaseLink())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v.Z, test.ShouldAlmostEqual, 0.3)
}

func TestReadYAML(t *testing.T) {
	logger := logging.NewTestLogger(t)
	cfg, err := Read(utils.ResolveFile("config/testdata/vehicle.yaml"), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.BaseLink, test.ShouldEqual, "chassis")
	test.That(t, cfg.LogLevel, test.ShouldEqual, logging.WARN)
	test.That(t, cfg.Vehicle.FrontLeftSteering, test.ShouldEqual, "front_left_steering_joint")
	test.That(t, cfg.Vehicle.RearSteered(), test.ShouldBeFalse)

	g, err := cfg.NewGeometry(logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.RearSteeringLimit, test.ShouldEqual, 0.0)
	test.That(t, g.SteeringHingeOffset, test.ShouldAlmostEqual, 0.1)

	_, err = yamlToJSON([]byte("description: [unterminated"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "yaml")
}

func TestFromReaderErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)

	_, err := Read("does/not/exist.json", logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = FromReader("", strings.NewReader("{"), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode")

	_, err = FromReader("", strings.NewReader(`{"base_link": "chassis"}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "description")

	_, err = FromReader("", strings.NewReader(`{"description": "x.urdf"}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "base_link")

	_, err = FromReader("", strings.NewReader(`{"description": "x.urdf", "base_link": "a", "log_level": "loud"}`), logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = FromReader("", strings.NewReader(`{"description": "x.urdf", "base_link": "a", "vehicle": {}}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "front_left_wheel")
}

func TestNewGeometryErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)

	cfg, err := FromReader("", strings.NewReader(`{"description": "missing.urdf", "base_link": "a"}`), logger)
	test.That(t, err, test.ShouldBeNil)
	_, err = cfg.NewGeometry(logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "vehicle")

	cfg, err = FromReader("", strings.NewReader(
		`{"description": "missing.urdf", "base_link": "a", "vehicle": {"front_left_wheel": "a", "front_right_wheel": "b",
		"rear_left_wheel": "c", "rear_right_wheel": "d"}}`), logger)
	test.That(t, err, test.ShouldBeNil)
	_, err = cfg.NewGeometry(logger)
	test.That(t, errors.Is(err, kinematics.ErrModelUnavailable), test.ShouldBeTrue)
}
