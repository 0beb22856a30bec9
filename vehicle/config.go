// Package vehicle derives the geometry a four wheel steering controller needs from a robot description.
package vehicle

import (
	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// Config names the wheel and steering joints of a vehicle in its robot description.
type Config struct {
	FrontLeftWheel  string `json:"front_left_wheel"`
	FrontRightWheel string `json:"front_right_wheel"`
	RearLeftWheel   string `json:"rear_left_wheel"`
	RearRightWheel  string `json:"rear_right_wheel"`

	FrontLeftSteering  string `json:"front_left_steering,omitempty"`
	FrontRightSteering string `json:"front_right_steering,omitempty"`
	RearLeftSteering   string `json:"rear_left_steering,omitempty"`
	RearRightSteering  string `json:"rear_right_steering,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.FrontLeftWheel == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "front_left_wheel")
	}
	if cfg.FrontRightWheel == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "front_right_wheel")
	}
	if cfg.RearLeftWheel == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "rear_left_wheel")
	}
	if cfg.RearRightWheel == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "rear_right_wheel")
	}

	if (cfg.FrontLeftSteering == "") != (cfg.FrontRightSteering == "") {
		return utils.NewConfigValidationError(path,
			errors.New("front_left_steering and front_right_steering must be set together"))
	}
	if (cfg.RearLeftSteering == "") != (cfg.RearRightSteering == "") {
		return utils.NewConfigValidationError(path,
			errors.New("rear_left_steering and rear_right_steering must be set together"))
	}
	return nil
}

// FrontSteered reports whether the front wheels are steered.
func (cfg *Config) FrontSteered() bool {
	return cfg.FrontLeftSteering != ""
}

// RearSteered reports whether the rear wheels are steered.
func (cfg *Config) RearSteered() bool {
	return cfg.RearLeftSteering != ""
}
