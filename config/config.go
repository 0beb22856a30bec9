// Package config defines the structures to configure the vehicle kinematics tooling.
package config

import (
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"go.viam.com/vehiclekin/kinematics"
	"go.viam.com/vehiclekin/logging"
	"go.viam.com/vehiclekin/utils"
	"go.viam.com/vehiclekin/vehicle"
)

// A Config describes which robot description to load and how to measure it.
type Config struct {
	// ConfigFilePath is the path the config was read from, if any.
	ConfigFilePath string `json:"-"`

	// Description is a URDF file, relative to the config file unless absolute.
	Description string          `json:"description"`
	BaseLink    string          `json:"base_link"`
	LogLevel    logging.Level   `json:"log_level,omitempty"`
	Vehicle     *vehicle.Config `json:"vehicle,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (c *Config) Validate(path string) error {
	if c.Description == "" {
		return goutils.NewConfigValidationFieldRequiredError(path, "description")
	}
	if c.BaseLink == "" {
		return goutils.NewConfigValidationFieldRequiredError(path, "base_link")
	}
	if c.Vehicle != nil {
		if err := c.Vehicle.Validate(path + ".vehicle"); err != nil {
			return err
		}
	}
	return nil
}

// DescriptionPath returns the location of the robot description file.
func (c *Config) DescriptionPath() string {
	return utils.ResolvePathFrom(c.ConfigFilePath, c.Description)
}

// NewResolver loads the configured robot description.
func (c *Config) NewResolver(logger logging.Logger) (*kinematics.Resolver, error) {
	return kinematics.NewResolverFromFile(c.DescriptionPath(), c.BaseLink, logger.Sublogger("kinematics"))
}

// NewGeometry loads the configured robot description and measures the configured vehicle.
func (c *Config) NewGeometry(logger logging.Logger) (*vehicle.Geometry, error) {
	if c.Vehicle == nil {
		return nil, goutils.NewConfigValidationFieldRequiredError(c.ConfigFilePath, "vehicle")
	}
	resolver, err := c.NewResolver(logger)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load %q", c.DescriptionPath())
	}
	return vehicle.NewGeometry(resolver, *c.Vehicle, logger.Sublogger("vehicle"))
}
